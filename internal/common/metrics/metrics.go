package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ApplicationsReceived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "applications_received_total",
			Help: "Total number of application submissions received",
		},
	)

	ApplicationsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "applications_rejected_total",
			Help: "Total number of submissions rejected at validation",
		},
		[]string{"error_code"},
	)

	ApplicationsAccepted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "applications_accepted_total",
			Help: "Total number of submissions accepted",
		},
	)

	RenderDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "document_render_duration_seconds",
			Help: "Duration of document rendering in seconds",
		},
	)

	RenderPages = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "document_render_pages",
			Help:    "Number of pages in rendered documents",
			Buckets: []float64{1, 2, 3, 4, 5, 8, 12},
		},
	)

	RenderFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "document_render_failures_total",
			Help: "Total number of failed document renders",
		},
		[]string{"error_code"},
	)

	EmailsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_emails_sent_total",
			Help: "Total number of notification emails delivered",
		},
		[]string{"provider", "role"},
	)

	EmailsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_emails_failed_total",
			Help: "Total number of notification emails that failed to deliver",
		},
		[]string{"provider", "role"},
	)
)
