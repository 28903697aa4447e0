// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"citypass/internal/ai"
	"citypass/internal/config"
	httptransport "citypass/internal/http"
	"citypass/internal/infra"
	"citypass/internal/modules/booking"
	"citypass/internal/modules/bus"
	"citypass/internal/modules/cart"
	"citypass/internal/modules/concierge"
	"citypass/internal/modules/fare"
	"citypass/internal/modules/payment"
	"citypass/internal/modules/station"
	"citypass/internal/modules/ticket"
	"citypass/internal/service"
)

func main() {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var verifier infra.TokenVerifier
	if cfg.Firebase.ProjectID != "" {
		verifier, err = infra.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
		if err != nil {
			log.Fatalf("firebase init: %v", err)
		}
	} else {
		log.Println("CITYPASS_FIREBASE_PROJECT_ID not set; API runs without authentication")
	}

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	defer redisClient.Close()

	catalog := station.DefaultNetwork()

	fareSvc := fare.NewService(catalog, fare.NewStore(dbPool))
	cartSvc := cart.NewService(cart.NewStore(redisClient))
	ticketSvc := ticket.NewService(fareSvc, ticket.NewStore(redisClient))
	bookingSvc := booking.NewService(booking.NewStore(dbPool))
	paymentSvc := payment.NewService(payment.NewStore(dbPool), bookingSvc)
	busSvc := bus.NewService(bus.NewStore(dbPool, redisClient))

	var conciergeSvc *concierge.Service
	if cfg.AI.GeminiKey != "" {
		provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer provider.Close()

		planner, err := service.NewJourneyPlanner(provider, catalog, fareSvc, ticketSvc)
		if err != nil {
			log.Fatalf("journey planner init: %v", err)
		}
		conciergeSvc = concierge.NewService(concierge.NewStore(dbPool), planner)
	} else {
		log.Println("GEMINI_API_KEY not set; concierge chat disabled")
	}

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Catalog:     catalog,
		Fare:        fareSvc,
		Cart:        cartSvc,
		Ticket:      ticketSvc,
		Booking:     bookingSvc,
		Payment:     paymentSvc,
		Bus:         busSvc,
		BusRadiusKm: cfg.Bus.NearbyRadiusKm,
		Concierge:   conciergeSvc,
		Verifier:    verifier,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
