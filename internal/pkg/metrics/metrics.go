package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values
const (
	ResultAccepted = "accepted"
	ResultReplayed = "replayed"
	ResultRejected = "rejected"
	ResultError    = "error"
	ResultOK       = "ok"
	ResultConflict = "conflict"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "registry_http_requests_total",
		Help: "HTTP requests by method, route and status code",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "registry_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 14), // 1ms to ~8s
	}, []string{"method", "route"})

	ContributionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "registry_contributions_total",
		Help: "Contribution submissions by result",
	}, []string{"result"})

	ContributedAmountTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "registry_contributed_amount_total",
		Help: "Sum of accepted contribution amounts",
	})

	ItemsCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "registry_items_completed_total",
		Help: "Items whose contributed amount reached the price",
	})

	EmailsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "registry_emails_total",
		Help: "Outgoing email sends by kind and result",
	}, []string{"kind", "result"})

	ReservationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "registry_reservations_total",
		Help: "Reservation attempts by result",
	}, []string{"result"})
)
