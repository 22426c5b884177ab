// Package metrics records oracle cache activity as Prometheus metrics.
package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/maisem/keypad"
)

// PrometheusObserver implements keypad.Observer using Prometheus counters.
type PrometheusObserver struct {
	reg *prometheus.Registry

	hitsTotal  *prometheus.CounterVec
	fillsTotal *prometheus.CounterVec
	costTotal  *prometheus.CounterVec
}

var _ keypad.Observer = (*PrometheusObserver)(nil)

// NewPrometheusObserver creates an observer whose metrics are registered on
// a fresh registry.
func NewPrometheusObserver() *PrometheusObserver {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &PrometheusObserver{
		reg: reg,
		hitsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "keypad_cache_hits_total",
				Help: "Number of oracle queries answered from the cache",
			},
			[]string{"pad"},
		),
		fillsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "keypad_cache_fills_total",
				Help: "Number of oracle queries computed by a level search",
			},
			[]string{"pad"},
		),
		costTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "keypad_filled_presses_total",
				Help: "Sum of press counts of filled cache entries",
			},
			[]string{"pad"},
		),
	}
}

// CacheHit increments the hit counter for q's pad.
func (p *PrometheusObserver) CacheHit(q keypad.Query) {
	p.hitsTotal.WithLabelValues(q.Pad.String()).Inc()
}

// CacheFill increments the fill counter for q's pad.
func (p *PrometheusObserver) CacheFill(q keypad.Query, cost int) {
	p.fillsTotal.WithLabelValues(q.Pad.String()).Inc()
	p.costTotal.WithLabelValues(q.Pad.String()).Add(float64(cost))
}

// WriteText writes all gathered metrics to w in the Prometheus text format.
func (p *PrometheusObserver) WriteText(w io.Writer) error {
	mfs, err := p.reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
