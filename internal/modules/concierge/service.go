package concierge

import "context"

// Planner produces a conversational answer for a user message.
// Implemented by service.JourneyPlanner.
type Planner interface {
	PlanJourney(ctx context.Context, userID, userMessage string) (string, error)
}

// Service guards the journey planner behind a monthly token quota.
type Service struct {
	store   *Store
	planner Planner
}

// NewService creates a Service backed by the given Store and planner.
func NewService(store *Store, planner Planner) *Service {
	return &Service{store: store, planner: planner}
}

// UseToken deducts one token from the user's monthly allowance.
// If the user row does not exist yet it is initialised and the token is immediately consumed.
// Returns ErrInsufficientTokens when the quota for the current month is exhausted.
func (s *Service) UseToken(ctx context.Context, uid string) error {
	err := s.store.UseToken(ctx, uid)
	if err != ErrInsufficientTokens {
		return err
	}

	// Row may be missing: try to create it, then retry the deduction once.
	if initErr := s.store.EnsureUser(ctx, uid); initErr != nil {
		return initErr
	}
	return s.store.UseToken(ctx, uid)
}

// Chat consumes one token and forwards the message to the journey planner.
// A token is spent even when the planner returns a clarification question,
// matching how model calls are billed upstream.
func (s *Service) Chat(ctx context.Context, uid, message string) (string, error) {
	if err := s.UseToken(ctx, uid); err != nil {
		return "", err
	}
	return s.planner.PlanJourney(ctx, uid, message)
}
