package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Demo action metrics
var (
	// ActionsTotal counts finished actions by outcome (rendered, errored, render_failed)
	ActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ajaxdemo",
			Subsystem: "controller",
			Name:      "actions_total",
			Help:      "Total number of finished demo actions",
		},
		[]string{"action", "outcome"},
	)

	// ActionDuration observes the time from loading shown to loading hidden
	ActionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ajaxdemo",
			Subsystem: "controller",
			Name:      "action_duration_seconds",
			Help:      "Demo action duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 1.5, 2, 5, 10, 30},
		},
		[]string{"action"},
	)

	// ActionsInFlight is the number of actions currently loading
	ActionsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "ajaxdemo",
			Subsystem: "controller",
			Name:      "actions_in_flight",
			Help:      "Number of demo actions currently loading",
		},
	)

	// NotificationsTotal counts notifications shown by kind
	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ajaxdemo",
			Subsystem: "notify",
			Name:      "notifications_total",
			Help:      "Total notifications shown",
		},
		[]string{"kind"},
	)

	// RateLimitedTotal counts action triggers rejected by the rate limiter
	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ajaxdemo",
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Total action triggers rejected by the rate limiter",
		},
	)
)
