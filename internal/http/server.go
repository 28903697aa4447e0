// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"citypass/internal/http/handlers"
	"citypass/internal/http/middleware"
	"citypass/internal/infra"
	"citypass/internal/modules/booking"
	"citypass/internal/modules/bus"
	"citypass/internal/modules/cart"
	"citypass/internal/modules/concierge"
	"citypass/internal/modules/fare"
	"citypass/internal/modules/payment"
	"citypass/internal/modules/station"
	"citypass/internal/modules/ticket"
)

type ServerDeps struct {
	Catalog  *station.Catalog
	Fare     *fare.Service
	Cart     *cart.Service
	Ticket   *ticket.Service
	Booking  *booking.Service
	Payment  *payment.Service
	Bus      *bus.Service
	// BusRadiusKm is the default nearby-search radius for GET /api/bus/nearby.
	BusRadiusKm float64
	// Concierge is optional; the chat route is only mounted when set.
	Concierge *concierge.Service
	// Verifier is optional; without it the /api group runs unauthenticated
	// and handlers take the uid from the request (local development).
	Verifier infra.TokenVerifier
}

type Server struct {
	deps ServerDeps
}

func NewServer(deps ServerDeps) *Server {
	return &Server{deps: deps}
}

// Routes builds the gin engine with all middleware and API routes mounted.
func (s *Server) Routes() *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Logging())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	stationH := handlers.NewStationHandler(s.deps.Catalog)
	fareH := handlers.NewFareHandler(s.deps.Fare)
	cartH := handlers.NewCartHandler(s.deps.Cart)
	ticketH := handlers.NewTicketHandler(s.deps.Ticket)
	bookingH := handlers.NewBookingHandler(s.deps.Booking)
	paymentH := handlers.NewPaymentHandler(s.deps.Payment)
	busH := handlers.NewBusHandler(s.deps.Bus, s.deps.BusRadiusKm)

	api := r.Group("/api")
	if s.deps.Verifier != nil {
		api.Use(middleware.Auth(s.deps.Verifier))
	}

	api.GET("/stations", stationH.List)
	api.GET("/fare", fareH.Quote)

	api.GET("/cart", cartH.Get)
	api.PUT("/cart", cartH.Put)
	api.DELETE("/cart", cartH.Clear)

	api.POST("/tickets", ticketH.Issue)
	api.GET("/tickets/history", ticketH.History)

	api.POST("/bookings", bookingH.Create)
	api.GET("/bookings", bookingH.List)
	api.GET("/bookings/:id", bookingH.Get)
	api.POST("/bookings/:id/confirm", bookingH.Confirm)
	api.POST("/bookings/:id/start", bookingH.Start)
	api.POST("/bookings/:id/complete", bookingH.Complete)
	api.POST("/bookings/:id/cancel", bookingH.Cancel)

	api.POST("/payments/checkout", paymentH.Checkout)
	api.GET("/payments/:booking_id", paymentH.GetByBooking)

	api.POST("/bus/location", busH.Update)
	api.GET("/bus/nearby", busH.Nearby)

	if s.deps.Concierge != nil {
		conciergeH := handlers.NewConciergeHandler(s.deps.Concierge)
		api.POST("/concierge/chat", conciergeH.Chat)
	}

	return r
}
