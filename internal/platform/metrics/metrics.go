package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	PapersCreated       prometheus.Counter
	SlotsFilled         prometheus.Counter
	StagesAdvanced      *prometheus.CounterVec
	NotificationsSent   prometheus.Counter
	NotificationsFailed prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		PapersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "paperflow_papers_created_total",
			Help: "Total number of papers registered",
		}),
		SlotsFilled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "paperflow_slots_filled_total",
			Help: "Total number of reviewer slot assignments",
		}),
		StagesAdvanced: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "paperflow_stages_advanced_total",
			Help: "Total number of successful stage advancements by target stage",
		}, []string{"stage"}),
		NotificationsSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "paperflow_notifications_sent_total",
			Help: "Total number of stage-change notifications delivered",
		}),
		NotificationsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "paperflow_notifications_failed_total",
			Help: "Total number of stage-change notification delivery failures",
		}),
	}
}
