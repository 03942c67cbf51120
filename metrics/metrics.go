package metrics

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	dto "github.com/prometheus/client_model/go"

	"github.com/gogpu/nodify"
)

var (
	_ nodify.Observer     = (*Registry)(nil)
	_ nodify.ViewObserver = (*Registry)(nil)
)

// GestureBegan implements nodify.Observer.
func (r *Registry) GestureBegan(mode nodify.GestureMode) {
	r.GesturesStarted.WithLabelValues(mode.String()).Inc()
}

// GestureEnded implements nodify.Observer.
func (r *Registry) GestureEnded(mode nodify.GestureMode, committed bool) {
	outcome := "cancelled"
	if committed {
		outcome = "committed"
	}
	r.GesturesEnded.WithLabelValues(mode.String(), outcome).Inc()
}

// ConnectRejected implements nodify.Observer.
func (r *Registry) ConnectRejected(err error) {
	r.ConnectRejections.WithLabelValues(RejectReason(err)).Inc()
}

// GraphChanged implements nodify.Observer.
func (r *Registry) GraphChanged(nodes, connections int) {
	r.GraphChanges.Inc()
	r.NodesTotal.Set(float64(nodes))
	r.ConnectionsTotal.Set(float64(connections))
}

// ScaleChanged implements nodify.ViewObserver.
func (r *Registry) ScaleChanged(scale float64) {
	r.ZoomsTotal.Inc()
	r.ViewScale.Set(scale)
}

// ZoomRejected implements nodify.ViewObserver.
func (r *Registry) ZoomRejected(float64) {
	r.ZoomRejections.Inc()
}

// RejectReason maps a connect error to its metric label.
func RejectReason(err error) string {
	switch {
	case errors.Is(err, nodify.ErrSelfConnection):
		return "self_connection"
	case errors.Is(err, nodify.ErrSlotOccupied):
		return "slot_occupied"
	case errors.Is(err, nodify.ErrForeignSlot):
		return "foreign_slot"
	}
	return "other"
}

// Sample is one gathered metric value.
type Sample struct {
	Name   string
	Labels string // k=v pairs joined by commas, sorted by key
	Value  float64
}

// Samples gathers every counter and gauge with a non-zero value, sorted by
// name then labels.
func (r *Registry) Samples() ([]Sample, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("metrics: gather: %w", err)
	}
	var out []Sample
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			v, ok := value(mf.GetType(), m)
			if !ok || v == 0 {
				continue
			}
			out = append(out, Sample{Name: mf.GetName(), Labels: labels(m), Value: v})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Labels < out[j].Labels
	})
	return out, nil
}

func value(t dto.MetricType, m *dto.Metric) (float64, bool) {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue(), true
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue(), true
	}
	return 0, false
}

func labels(m *dto.Metric) string {
	pairs := make([]string, 0, len(m.GetLabel()))
	for _, lp := range m.GetLabel() {
		pairs = append(pairs, lp.GetName()+"="+lp.GetValue())
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ",")
}
