package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSceneMetrics() {
	r.GesturesStarted = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "nodify_gestures_started_total",
			Help: "Total number of pointer gestures started",
		},
		[]string{"mode"},
	)

	r.GesturesEnded = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "nodify_gestures_ended_total",
			Help: "Total number of pointer gestures ended, by outcome",
		},
		[]string{"mode", "outcome"},
	)

	r.ConnectRejections = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "nodify_connect_rejections_total",
			Help: "Total number of refused connection attempts",
		},
		[]string{"reason"},
	)

	r.GraphChanges = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "nodify_graph_changes_total",
			Help: "Total number of node or connection additions and removals",
		},
	)

	r.NodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "nodify_nodes",
			Help: "Current number of nodes in the scene",
		},
	)

	r.ConnectionsTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "nodify_connections",
			Help: "Current number of connections in the scene",
		},
	)
}
