package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "antologia_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "antologia_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	PaymentsRecordedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "antologia_payments_recorded_total",
			Help: "Total number of membership payments recorded",
		},
		[]string{"payment_type"},
	)

	AttendanceMarkedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "antologia_attendance_marked_total",
			Help: "Total number of attendance marks",
		},
		[]string{"status"},
	)

	InactivityAlertsLast = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "antologia_inactivity_alerts",
			Help: "Number of members in the last computed inactivity alert set",
		},
	)

	NotificationsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "antologia_notifications_sent_total",
			Help: "Total number of member notifications sent",
		},
		[]string{"type", "status"},
	)

	NotificationQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "antologia_notification_queue_length",
			Help: "Current length of the notification queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordPayment(paymentType string) {
	PaymentsRecordedTotal.WithLabelValues(paymentType).Inc()
}

func RecordAttendanceMark(status string) {
	AttendanceMarkedTotal.WithLabelValues(status).Inc()
}

func RecordAlertCount(n int) {
	InactivityAlertsLast.Set(float64(n))
}

func RecordNotification(notifType, status string) {
	NotificationsSentTotal.WithLabelValues(notifType, status).Inc()
}
