package quota

import "context"

// Service enforces the per-client daily request allowance.
type Service struct {
	store *Store
	limit int
}

// NewService creates a Service backed by the given Store.
// A limit of 0 (or less) disables the quota entirely; the store is never
// touched in that case.
func NewService(store *Store, limit int) *Service {
	return &Service{store: store, limit: limit}
}

// Use consumes one request from the client's daily allowance.
// Returns ErrQuotaExhausted when the allowance for today is spent.
func (s *Service) Use(ctx context.Context, client string) error {
	if s.limit <= 0 {
		return nil
	}
	return s.store.Use(ctx, client, s.limit)
}

// Remaining reports the client's remaining allowance for today.
func (s *Service) Remaining(ctx context.Context, client string) (int, error) {
	if s.limit <= 0 {
		return 0, nil
	}
	return s.store.Remaining(ctx, client, s.limit)
}

// Limit returns the configured daily limit. Zero means the quota is disabled.
func (s *Service) Limit() int {
	if s.limit < 0 {
		return 0
	}
	return s.limit
}
