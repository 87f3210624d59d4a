package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TipsSelected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gardencare_tips_selected_total",
			Help: "Care tips selected, by rule category and selection path",
		},
		[]string{"category", "path"},
	)

	HealthScoresComputed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gardencare_health_scores_computed_total",
			Help: "Per-plant health score computations",
		},
	)

	NotificationsPlanned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gardencare_notifications_planned_total",
			Help: "Notification plans produced, by kind",
		},
		[]string{"kind"},
	)

	NotificationsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gardencare_notifications_dropped_total",
			Help: "Notification plans dropped because dispatch capability degraded",
		},
	)

	SeenStateSaveFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gardencare_seen_state_save_failures_total",
			Help: "Failed persists of the seen-tips day state",
		},
	)
)
