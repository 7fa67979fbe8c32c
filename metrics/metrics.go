// Package metrics exports Prometheus counters for cheapest-route queries.
//
// A Collector is a route.Observer: pass it to route.Cheapest with
// route.WithObserver and it records the outcome, cost and solver work of
// every query. Metrics live on the Registerer handed to NewCollector, so
// several collectors never clash on the global registry.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/zambonin/villedieu/route"
)

const namespace = "cheaproute"

// Outcome label values of the query counter.
const (
	OutcomeOK           = "ok"
	OutcomeInvalidInput = "invalid_input"
	OutcomeUnreachable  = "unreachable"
	OutcomeCorrupt      = "corrupt_predecessors"
	OutcomeOther        = "other"
)

// Collector records route queries. It is safe for concurrent use.
type Collector struct {
	queries     *prometheus.CounterVec
	cost        prometheus.Histogram
	hops        prometheus.Histogram
	relaxations prometheus.Counter
	stale       prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		queries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "queries_total",
				Help:      "Number of cheapest-route queries by outcome.",
			},
			[]string{"outcome"},
		),
		cost: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "route_cost",
			Help:      "Total cost of successful routes.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		hops: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "route_hops",
			Help:      "Number of legs of successful routes.",
			Buckets:   prometheus.LinearBuckets(0, 1, 16),
		}),
		relaxations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "relaxations_total",
			Help:      "Distance improvements performed by the solver.",
		}),
		stale: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stale_pops_total",
			Help:      "Outdated frontier entries skipped by the solver.",
		}),
	}

	if err := reg.Register(c); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Collector) members() []prometheus.Collector {
	return []prometheus.Collector{
		c.queries, c.cost, c.hops, c.relaxations, c.stale,
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, m := range c.members() {
		m.Describe(ch)
	}
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, m := range c.members() {
		m.Collect(ch)
	}
}

// ObserveRoute implements route.Observer.
func (c *Collector) ObserveRoute(r *route.Route, err error) {
	c.queries.WithLabelValues(Outcome(err)).Inc()
	if err != nil || r == nil {
		return
	}

	c.cost.Observe(r.Cost)
	c.hops.Observe(float64(len(r.Legs)))
	c.relaxations.Add(float64(r.Stats.Relaxations))
	c.stale.Add(float64(r.Stats.Stale))
}

// Outcome maps a Cheapest error onto its label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, route.ErrInvalidInput):
		return OutcomeInvalidInput
	case errors.Is(err, route.ErrUnreachable):
		return OutcomeUnreachable
	case errors.Is(err, route.ErrCorruptPredecessors):
		return OutcomeCorrupt
	default:
		return OutcomeOther
	}
}

// A compile time check to ensure Collector implements route.Observer and
// prometheus.Collector.
var (
	_ route.Observer       = (*Collector)(nil)
	_ prometheus.Collector = (*Collector)(nil)
)
