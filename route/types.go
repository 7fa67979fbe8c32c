// Package route defines the request, result and error types of the
// cheapest-route pipeline.
package route

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zambonin/villedieu/dijkstra"
	"github.com/zambonin/villedieu/tariff"
)

// Sentinel errors returned by the route package. Every failure of Cheapest
// matches exactly one of ErrInvalidInput, ErrUnreachable or
// ErrCorruptPredecessors; ErrDivisionByZero additionally marks a zero
// efficiency, which is also an ErrInvalidInput.
var (
	// ErrInvalidInput indicates a shape mismatch, an out-of-range index or a
	// bad numeric parameter. The underlying cause stays in the error chain.
	ErrInvalidInput = errors.New("route: invalid input")

	// ErrDivisionByZero indicates a zero efficiency.
	ErrDivisionByZero = errors.New("route: division by zero")

	// ErrUnreachable indicates that the destination cannot be reached from
	// the source.
	ErrUnreachable = errors.New("route: destination unreachable")

	// ErrCorruptPredecessors indicates a predecessor vector that does not
	// lead back to the source.
	ErrCorruptPredecessors = errors.New("route: predecessor chain does not reach source")
)

// Request carries one routing query. Distances and Tolls are read-only for
// the duration of the call and are never retained.
type Request struct {
	// Distances is the N×N table of physical distances; 0 = no edge.
	Distances [][]float64

	// Tolls holds one non-negative toll per node.
	Tolls []float64

	// Source and Destination are node indices in 0..N-1.
	Source      int
	Destination int

	// UnitPrice is the cost of one unit of fuel.
	UnitPrice float64

	// Efficiency is the distance covered per unit of fuel.
	Efficiency float64
}

// Params returns the cost model scalars of r.
func (r Request) Params() tariff.Params {
	return tariff.Params{UnitPrice: r.UnitPrice, Efficiency: r.Efficiency}
}

// Leg is one hop of a route with its cost broken down.
type Leg struct {
	From     int     // node left
	To       int     // node entered
	Distance float64 // physical distance of the edge
	Fuel     float64 // Distance*UnitPrice/Efficiency
	Toll     float64 // toll charged on this hop
	Cost     float64 // priced weight of the edge (Fuel + Toll)
}

// Route is the answer to a Request.
type Route struct {
	// Nodes lists the visited node indices from source to destination, inclusive.
	Nodes []int

	// Cost is the total priced cost: the left-to-right sum of Legs[i].Cost.
	Cost float64

	// Legs holds len(Nodes)-1 hops.
	Legs []Leg

	// Stats reports solver counters for the query.
	Stats dijkstra.Stats
}

// String renders the route as "0 -> 4 -> 5 (cost 9.6)".
func (r *Route) String() string {
	parts := make([]string, len(r.Nodes))
	for i, v := range r.Nodes {
		parts[i] = fmt.Sprint(v)
	}

	return fmt.Sprintf("%s (cost %v)", strings.Join(parts, " -> "), r.Cost)
}

// Observer receives the outcome of every Cheapest call. r is nil when err
// is non-nil.
type Observer interface {
	ObserveRoute(r *Route, err error)
}

// Options configures Cheapest.
type Options struct {
	TollMode  tariff.TollMode
	Observers []Observer
}

// Option represents a functional option for configuring Cheapest.
type Option func(*Options)

// WithTollMode selects which endpoint of an edge pays its toll.
// Default: tariff.TollOnDeparture.
func WithTollMode(m tariff.TollMode) Option {
	return func(o *Options) {
		o.TollMode = m
	}
}

// WithObserver registers an Observer notified after every query.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observers = append(o.Observers, obs)
	}
}

// DefaultOptions returns the defaults: toll on departure, no observers.
func DefaultOptions() Options {
	return Options{TollMode: tariff.TollOnDeparture}
}
