package ai

// IntentResult captures the structured output from the AI model.
type IntentResult struct {
	// Intent describes the user's primary goal: "ticket" (book a metro
	// ticket), "fare" (price a trip without booking), or "chat".
	Intent string `json:"intent"`

	// Origin is the boarding station name extracted from the user's input.
	// Nullable because not all intents carry stations (e.g. "chat").
	Origin *string `json:"origin,omitempty"`

	// Destination is the target station name extracted from the user's input.
	Destination *string `json:"destination,omitempty"`

	// TripType is "one_way" or "two_way". Defaults to one_way when the user
	// does not mention a return.
	TripType string `json:"trip_type,omitempty"`

	// Reply is a short, polite response to the user, acting as the metro
	// booking concierge.
	Reply string `json:"reply"`
}
