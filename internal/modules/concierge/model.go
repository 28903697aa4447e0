package concierge

import "errors"

// ErrInsufficientTokens is returned when a user has no chat tokens remaining for the current month.
var ErrInsufficientTokens = errors.New("insufficient tokens")

// DefaultTokens is the number of concierge chat tokens granted per month.
const DefaultTokens = 100
