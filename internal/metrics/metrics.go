package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gym_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gym_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	MembersCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gym_members_created_total",
			Help: "Total number of members created",
		},
		[]string{"plan"},
	)

	LeadsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gym_leads_created_total",
			Help: "Total number of leads submitted",
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gym_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gym_email_queue_length",
			Help: "Current length of email queue",
		},
	)

	RenewalSweepsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gym_renewal_sweeps_total",
			Help: "Total number of renewal sweeps run",
		},
	)

	RenewalRemindersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gym_renewal_reminders_total",
			Help: "Total number of renewal reminders by outcome",
		},
		[]string{"outcome"},
	)

	GalleryPhotosTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gym_gallery_photos_total",
			Help: "Total number of gallery photo operations",
		},
		[]string{"action"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordMemberCreated(plan string) {
	MembersCreatedTotal.WithLabelValues(plan).Inc()
}

func RecordLeadCreated() {
	LeadsCreatedTotal.Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}

func RecordSweep() {
	RenewalSweepsTotal.Inc()
}

func RecordReminder(outcome string) {
	RenewalRemindersTotal.WithLabelValues(outcome).Inc()
}

func RecordGalleryPhoto(action string) {
	GalleryPhotosTotal.WithLabelValues(action).Inc()
}
