// Package metrics exports nodify scene and camera activity as Prometheus
// metrics.
//
// A Registry implements both nodify.Observer and nodify.ViewObserver:
//
//	reg := metrics.NewRegistry()
//	s := nodify.NewScene(nodify.WithObserver(reg))
//	v := nodify.NewView(s, nodify.WithViewObserver(reg))
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for an editor session.
type Registry struct {
	// Scene Metrics
	GesturesStarted   *prometheus.CounterVec
	GesturesEnded     *prometheus.CounterVec
	ConnectRejections *prometheus.CounterVec
	GraphChanges      prometheus.Counter
	NodesTotal        prometheus.Gauge
	ConnectionsTotal  prometheus.Gauge

	// View Metrics
	ViewScale      prometheus.Gauge
	ZoomsTotal     prometheus.Counter
	ZoomRejections prometheus.Counter

	registry *prometheus.Registry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initSceneMetrics()
	r.initViewMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
