package quota

import "errors"

// ErrQuotaExhausted is returned when a client has no requests remaining for the current day.
var ErrQuotaExhausted = errors.New("daily request quota exhausted")

// DefaultDailyLimit is the number of recommendation requests granted per client per day.
const DefaultDailyLimit = 50
