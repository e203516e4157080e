package recommend

// Place is a recommended destination: a mappable location plus a short
// caption explaining the pick.
type Place struct {
	Location string `json:"location"`
	Caption  string `json:"caption"`
}

// Result is the terminal outcome of one dispatch. Exactly one of Place or
// Text is set; a dispatch that produced nothing returns a nil *Result.
type Result struct {
	Place *Place `json:"place,omitempty"`
	Text  string `json:"text,omitempty"`
}

// Sink receives presentation side effects as the stream is consumed.
// Both operations have replace semantics: each call overwrites whatever
// was previously shown.
type Sink interface {
	// ShowPlace updates the map view keyed by location and displays caption.
	ShowPlace(location, caption string)
	// ShowText displays body as fallback informational text.
	ShowText(body string)
}
