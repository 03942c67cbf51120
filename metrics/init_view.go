package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initViewMetrics() {
	r.ViewScale = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "nodify_view_scale",
			Help: "Cumulative relative zoom of the view",
		},
	)
	r.ViewScale.Set(1)

	r.ZoomsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "nodify_view_zooms_total",
			Help: "Total number of accepted zoom steps",
		},
	)

	r.ZoomRejections = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "nodify_view_zoom_rejections_total",
			Help: "Total number of zoom steps refused by the scale limits",
		},
	)
}
