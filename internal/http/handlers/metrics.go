// README: Prometheus counters for core business operations.
package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ticketsIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "citypass_tickets_issued_total",
		Help: "Number of metro tickets issued.",
	})
	bookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "citypass_bookings_created_total",
		Help: "Number of service bookings created.",
	})
	paymentsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "citypass_payments_recorded_total",
		Help: "Number of successful checkout payments recorded.",
	})
)
