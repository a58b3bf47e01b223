package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitbook_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitbook_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitbook_bookings_created_total",
			Help: "Total number of bookings created",
		},
	)

	BookingConflictsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitbook_booking_conflicts_total",
			Help: "Total number of booking requests rejected due to a slot conflict",
		},
		[]string{"party"},
	)

	BookingCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitbook_booking_cancellations_total",
			Help: "Total number of booking cancellations",
		},
	)

	SlotComputationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitbook_slot_computations_total",
			Help: "Total number of slot grid computations",
		},
		[]string{"available"},
	)

	AvailabilityUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitbook_availability_updates_total",
			Help: "Total number of trainer availability writes",
		},
		[]string{"action"},
	)

	RateLimitedRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitbook_rate_limited_requests_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitbook_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fitbook_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBookingCreated() {
	BookingsCreatedTotal.Inc()
}

// RecordBookingConflict tracks rejected bookings; party is "trainer" or "client".
func RecordBookingConflict(party string) {
	BookingConflictsTotal.WithLabelValues(party).Inc()
}

func RecordBookingCancellation() {
	BookingCancellationsTotal.Inc()
}

func RecordSlotComputation(available bool) {
	if available {
		SlotComputationsTotal.WithLabelValues("true").Inc()
	} else {
		SlotComputationsTotal.WithLabelValues("false").Inc()
	}
}

func RecordAvailabilityUpdate(action string) {
	AvailabilityUpdatesTotal.WithLabelValues(action).Inc()
}

func RecordRateLimited() {
	RateLimitedRequestsTotal.Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
