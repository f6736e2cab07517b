package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var BookingsSubmittedCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "clubdesk_bookings_submitted_total",
	Help: "Number of bookings submitted, by event type",
}, []string{"event_type"})

var BookingAmount = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "clubdesk_booking_amount",
	Help:    "Distribution of booking amounts",
	Buckets: []float64{50, 100, 200, 500, 1000, 2000, 5000},
})

var QuoteRequestCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "clubdesk_quote_requests_total",
	Help: "Number of booking quote requests",
})

var VerificationFailureCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "clubdesk_verification_failures_total",
	Help: "Number of failed member verifications, by reason",
}, []string{"reason"})

var StreamConnectionsGauge = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "clubdesk_stream_connections",
	Help: "Current number of live booking feed connections",
})
