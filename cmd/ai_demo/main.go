package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"citypass/internal/ai"
)

func main() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	ctx := context.Background()
	provider, err := ai.NewGeminiProvider(ctx, apiKey)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer provider.Close()

	// Simulated context
	currentContext := map[string]string{
		"current_time": time.Now().Format(time.RFC3339),
		"stations":     "Miyapur, KPHB Colony, Kukatpally, Ameerpet, Punjagutta, MG Bus Station, Dilsukhnagar, LB Nagar",
	}

	userMessage := "book me a return ticket from miyapur to ameerpet"
	fmt.Printf("User: %s\n", userMessage)

	result, err := provider.ParseTicketIntent(ctx, userMessage, currentContext)
	if err != nil {
		log.Fatalf("Error parsing intent: %v", err)
	}

	fmt.Printf("AI Reply: %s\n", result.Reply)
	fmt.Printf("Intent: %s\n", result.Intent)
	if result.Origin != nil {
		fmt.Printf("Origin: %s\n", *result.Origin)
	}
	if result.Destination != nil {
		fmt.Printf("Destination: %s\n", *result.Destination)
	}
	fmt.Printf("Trip Type: %s\n", result.TripType)
}
