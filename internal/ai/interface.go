package ai

import (
	"context"
)

// LLMProvider defines the contract for interacting with AI models.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type LLMProvider interface {
	// ParseTicketIntent analyzes the user's natural language input and extracts
	// structured metro-ticket intent. contextMap carries dynamic information
	// like "current_time" and "stations" (the known station list).
	ParseTicketIntent(ctx context.Context, userMessage string, currentContext map[string]string) (*IntentResult, error)
}
