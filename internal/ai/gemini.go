package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements LLMProvider using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Use Gemini 2.0 Flash for low latency and cost efficiency.
	model := client.GenerativeModel("gemini-2.0-flash")

	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"

	// Station extraction needs precision, not creativity.
	model.SetTemperature(0.2)

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// ParseTicketIntent analyzes user input to extract metro-ticket intent.
func (p *GeminiProvider) ParseTicketIntent(ctx context.Context, userMessage string, currentContext map[string]string) (*IntentResult, error) {
	systemPrompt := buildSystemPrompt(currentContext)

	fullPrompt := fmt.Sprintf("%s\n\nUser Message: %s", systemPrompt, userMessage)

	resp, err := p.model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	// Clean up potential markdown formatting (json mode should handle this, safety first).
	cleanJSON := cleanJSONString(responseText.String())

	var result IntentResult
	if err := json.Unmarshal([]byte(cleanJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, cleanJSON)
	}

	return &result, nil
}

// buildSystemPrompt constructs the instructions for the AI.
func buildSystemPrompt(ctxMap map[string]string) string {
	currentTime := ctxMap["current_time"]
	stations := ctxMap["stations"]

	if currentTime == "" {
		currentTime = "UNKNOWN_TIME"
	}
	if stations == "" {
		stations = "NONE"
	}

	return fmt.Sprintf(`Role: You are the booking concierge for "CityPass", a metro ticketing app in Hyderabad.
Context:
- Current System Time: %s
- Known Stations: %s

RULES:

1. INTENT:
   - User wants to buy/book a ticket -> "intent": "ticket".
   - User only asks what a trip costs -> "intent": "fare".
   - Anything else (greetings, help, small talk) -> "intent": "chat".

2. STATIONS:
   - "origin" and "destination" MUST be copied verbatim from the Known Stations list.
   - If the user names a place that is not in the list, leave the field null and ask
     for a station from the list in "reply".
   - You MUST NOT set "intent": "ticket" unless BOTH origin and destination are clear.

3. TRIP TYPE:
   - Keywords "return", "round trip", "both ways", "up and down" -> "trip_type": "two_way".
   - Otherwise -> "trip_type": "one_way".

4. REPLY:
   - Always set "reply": one short, friendly sentence confirming what you understood
     or asking for the missing detail. No markdown.

Respond with a single JSON object with keys: intent, origin, destination, trip_type, reply.`, currentTime, stations)
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
