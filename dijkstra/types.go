// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on priced graphs.
//
// Options:
//
//	– Source:           index of the starting vertex (required, 0 ≤ Source < N).
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this stay unreached.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//	– OnRelax:          optional hook invoked on every successful relaxation.
//
// Errors (sentinel):
//
//	– ErrNoSource        if no Source option was given.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source index is outside 0..N-1.
//	– ErrBadMaxDistance  if MaxDistance < 0 or NaN (panics in the option constructor).
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 or NaN (panics in the option constructor).
package dijkstra

import (
	"errors"
	"math"

	"github.com/lightningnetwork/lnd/fn/v2"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no source vertex was configured.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source index is not a vertex of the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero, a negative or NaN value.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// noSource marks an Options value whose Source was never set.
const noSource = -1

// RelaxFunc observes one successful relaxation: the recorded distance of v
// drops from old to new through predecessor via. old is +Inf on first reach.
type RelaxFunc func(v int, old, new float64, via int)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex index.
// MaxDistance      – vertices whose distance would exceed this value are not explored.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable.
//
//	Must be > 0. Default is +Inf (no obstacles).
//
// OnRelax          – called after each strict improvement of a distance; nil disables.
type Options struct {
	Source           int       // The index of the source vertex
	MaxDistance      float64   // Maximum distance to explore
	InfEdgeThreshold float64   // Weight threshold at or above which edges are non-traversable
	OnRelax          RelaxFunc // Relaxation hook
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex index. Must be called.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Panics with ErrBadMaxDistance on a negative or NaN value.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered non-traversable. Panics with ErrBadInfThreshold unless positive.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if !(threshold > 0) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithOnRelax installs a relaxation hook.
func WithOnRelax(f RelaxFunc) Option {
	return func(o *Options) {
		o.OnRelax = f
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - Source:           unset (Dijkstra fails with ErrNoSource).
//   - MaxDistance:      +Inf (no distance limit; explore all reachable).
//   - InfEdgeThreshold: +Inf (no edges treated as impassable).
//   - OnRelax:          nil.
func DefaultOptions() Options {
	return Options{
		Source:           noSource,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// Stats counts the work done by one Dijkstra run.
type Stats struct {
	Pops        int // frontier entries extracted
	Stale       int // extracted entries skipped as outdated
	Settled     int // vertices whose distance became final
	Relaxations int // strict distance improvements
}

// Result is the output of one Dijkstra run. It is owned by the caller;
// nothing inside the solver keeps a reference to it.
type Result struct {
	// Source is the vertex the run started from.
	Source int

	// Dist[v] is the minimum cost from Source to v, or +Inf if unreachable.
	Dist []float64

	// Prev[v] is the predecessor of v on one cheapest path, or None for
	// the source and for unreachable vertices.
	Prev []fn.Option[int]

	// Stats reports counters gathered during the run.
	Stats Stats
}

// Reachable reports whether v has a finite distance.
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.Dist) && !math.IsInf(r.Dist[v], 1)
}
