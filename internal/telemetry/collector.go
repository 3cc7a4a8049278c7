// Package telemetry exposes Tracker activity as prometheus counters.
package telemetry

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/grindlemire/go-inview"
)

// Collector implements inview.Observer with prometheus counters.
type Collector struct {
	signals       prometheus.Counter
	cancellations prometheus.Counter
	evaluations   prometheus.Counter
	transitions   *prometheus.CounterVec
}

// Ensure Collector implements inview.Observer.
var _ inview.Observer = (*Collector)(nil)

// NewCollector creates the counters and registers them on reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		signals: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "inview_signals_total",
			Help: "Total number of scroll and resize signals received",
		}),
		cancellations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "inview_debounce_cancellations_total",
			Help: "Total number of pending debounce timers replaced by a newer signal",
		}),
		evaluations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "inview_evaluations_total",
			Help: "Total number of visibility evaluations",
		}),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inview_transitions_total",
				Help: "Total number of notified visibility changes",
			},
			[]string{"state"},
		),
	}

	for _, col := range []prometheus.Collector{c.signals, c.cancellations, c.evaluations, c.transitions} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}
	return c, nil
}

// SignalReceived implements inview.Observer.
func (c *Collector) SignalReceived() {
	c.signals.Inc()
}

// DebounceCanceled implements inview.Observer.
func (c *Collector) DebounceCanceled() {
	c.cancellations.Inc()
}

// Evaluated implements inview.Observer.
func (c *Collector) Evaluated(inViewport, notified bool) {
	c.evaluations.Inc()
	if notified {
		c.transitions.WithLabelValues(StateLabel(inViewport)).Inc()
	}
}

// StateLabel returns the transitions label value for a state.
func StateLabel(inViewport bool) string {
	if inViewport {
		return "in_viewport"
	}
	return "not_in_viewport"
}

// WriteText gathers every metric from g and writes the text exposition
// format to w.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
