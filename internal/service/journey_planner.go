// README: Conversational journey planner; AI intent parsing on top of fare and ticket services.
package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"citypass/internal/ai"
	"citypass/internal/modules/fare"
	"citypass/internal/modules/station"
	"citypass/internal/modules/ticket"
	"citypass/internal/types"
)

// JourneyPlanner orchestrates AI intent parsing and ticket issuance.
type JourneyPlanner struct {
	aiProvider ai.LLMProvider
	catalog    *station.Catalog
	fares      *fare.Service
	tickets    *ticket.Service
	loc        *time.Location
}

// NewJourneyPlanner creates a JourneyPlanner with initialized dependencies.
func NewJourneyPlanner(aiProvider ai.LLMProvider, catalog *station.Catalog, fares *fare.Service, tickets *ticket.Service) (*JourneyPlanner, error) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return nil, fmt.Errorf("failed to load Asia/Kolkata location: %w", err)
	}
	return &JourneyPlanner{
		aiProvider: aiProvider,
		catalog:    catalog,
		fares:      fares,
		tickets:    tickets,
		loc:        loc,
	}, nil
}

// stationNames renders the catalog as a comma-separated list for the AI context.
func (p *JourneyPlanner) stationNames() string {
	all := p.catalog.All()
	names := make([]string, 0, len(all))
	for _, s := range all {
		names = append(names, s.Name)
	}
	return strings.Join(names, ", ")
}

// PlanJourney processes a user message and returns a conversational response.
// Ticket intents issue a real ticket into the user's history.
func (p *JourneyPlanner) PlanJourney(ctx context.Context, userID, userMessage string) (string, error) {
	now := time.Now().In(p.loc)
	currentContext := map[string]string{
		"current_time": now.Format(time.RFC3339),
		"stations":     p.stationNames(),
	}

	intent, err := p.aiProvider.ParseTicketIntent(ctx, userMessage, currentContext)
	if err != nil {
		log.Printf("AI Error: %v", err)
		return "", fmt.Errorf("ai error: %w", err)
	}

	if intent.Intent == "chat" {
		return intent.Reply, nil
	}

	// Both remaining intents need a resolvable station pair. The model is
	// instructed to ask for missing pieces itself, so fall back to its reply.
	if intent.Origin == nil || *intent.Origin == "" || intent.Destination == nil || *intent.Destination == "" {
		return intent.Reply, nil
	}

	origin, err := p.catalog.FindByName(*intent.Origin)
	if err != nil {
		return fmt.Sprintf("I couldn't find a station called %q on the network. Could you pick a nearby metro station?", *intent.Origin), nil
	}
	dest, err := p.catalog.FindByName(*intent.Destination)
	if err != nil {
		return fmt.Sprintf("I couldn't find a station called %q on the network. Could you pick a nearby metro station?", *intent.Destination), nil
	}

	roundTrip := intent.TripType == "two_way"

	switch intent.Intent {
	case "fare":
		q, err := p.fares.Quote(ctx, origin.ID, dest.ID, roundTrip)
		if err != nil {
			log.Printf("Fare Error: %v", err)
			return "", fmt.Errorf("fare error: %w", err)
		}
		kind := "one-way"
		if roundTrip {
			kind = "round-trip"
		}
		return fmt.Sprintf("A %s ticket from %s to %s (%d stops) costs ₹%d. Want me to book it?",
			kind, origin.Name, dest.Name, q.Stops, q.Amount), nil

	case "ticket":
		if origin.ID == dest.ID {
			return fmt.Sprintf("Boarding and destination are both %s. Where are you headed?", origin.Name), nil
		}
		tk, err := p.tickets.Issue(ctx, types.ID(userID), origin.ID, dest.ID, roundTrip)
		if err != nil {
			log.Printf("Ticket Error: %v", err)
			return "", fmt.Errorf("ticket error: %w", err)
		}
		kind := "one-way"
		if roundTrip {
			kind = "round-trip"
		}
		return fmt.Sprintf("Done! Your %s ticket %s from %s to %s is booked for ₹%d. Show the QR code at the gate.",
			kind, tk.ID, origin.Name, dest.Name, tk.Fare.Amount), nil
	}

	// Unknown intent value from the model: surface its own reply.
	return intent.Reply, nil
}
