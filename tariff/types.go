// Package tariff defines the cost model that turns a distance graph into a
// priced graph: fuel spent on a distance plus a per-node toll.
//
// Errors:
//
//	ErrNilGraph        - graph pointer is nil.
//	ErrBadParams       - unit price or efficiency is not a finite positive number.
//	ErrZeroEfficiency  - efficiency is zero (it is a divisor); also matches ErrBadParams.
//	ErrBadTolls        - toll vector has the wrong length or a non-finite/negative entry.
package tariff

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for the cost model.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Transform.
	ErrNilGraph = errors.New("tariff: graph is nil")

	// ErrBadParams indicates an invalid unit price or efficiency.
	ErrBadParams = errors.New("tariff: unit price and efficiency must be finite and positive")

	// ErrZeroEfficiency indicates a zero efficiency, which would divide by zero.
	ErrZeroEfficiency = errors.New("tariff: efficiency is zero")

	// ErrBadTolls indicates a toll vector that does not fit the graph.
	ErrBadTolls = errors.New("tariff: invalid toll vector")
)

// TollMode selects which endpoint of an edge pays its toll.
type TollMode int

const (
	// TollOnDeparture charges toll[i] on every edge i→j, i.e. the toll of
	// the node being left. This is the default.
	TollOnDeparture TollMode = iota

	// TollOnArrival charges toll[j] on every edge i→j, i.e. the toll of the
	// node being entered.
	TollOnArrival
)

// String implements fmt.Stringer.
func (m TollMode) String() string {
	switch m {
	case TollOnDeparture:
		return "departure"
	case TollOnArrival:
		return "arrival"
	default:
		return fmt.Sprintf("TollMode(%d)", int(m))
	}
}

// ParseTollMode maps "departure" or "arrival" to a TollMode.
func ParseTollMode(s string) (TollMode, error) {
	switch s {
	case "", "departure":
		return TollOnDeparture, nil
	case "arrival":
		return TollOnArrival, nil
	default:
		return 0, fmt.Errorf("tariff: unknown toll mode %q", s)
	}
}

// Params are the two global scalars of the cost model.
type Params struct {
	// UnitPrice is the cost of one unit of fuel.
	UnitPrice float64

	// Efficiency is the distance covered per unit of fuel.
	Efficiency float64
}

// Validate checks that both scalars are finite and positive.
// A zero efficiency matches both ErrZeroEfficiency and ErrBadParams.
func (p Params) Validate() error {
	if p.Efficiency == 0 {
		return fmt.Errorf("%w: %w", ErrBadParams, ErrZeroEfficiency)
	}
	if !finitePositive(p.UnitPrice) {
		return fmt.Errorf("%w: unit price %v", ErrBadParams, p.UnitPrice)
	}
	if !finitePositive(p.Efficiency) {
		return fmt.Errorf("%w: efficiency %v", ErrBadParams, p.Efficiency)
	}

	return nil
}

// Fuel returns the fuel cost of covering distance: distance*UnitPrice/Efficiency.
func (p Params) Fuel(distance float64) float64 {
	return distance * p.UnitPrice / p.Efficiency
}

// EdgeCost returns the priced weight of one edge: Fuel(distance) + toll.
// It evaluates the exact expression Transform applies to every cell.
func EdgeCost(distance, toll float64, p Params) float64 {
	return distance*p.UnitPrice/p.Efficiency + toll
}

func finitePositive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

// Options configures Transform.
type Options struct {
	TollMode TollMode
}

// Option represents a functional option for configuring Transform.
type Option func(*Options)

// WithTollMode selects which endpoint of an edge pays its toll.
func WithTollMode(m TollMode) Option {
	return func(o *Options) {
		o.TollMode = m
	}
}

// DefaultOptions returns the defaults: TollOnDeparture.
func DefaultOptions() Options {
	return Options{TollMode: TollOnDeparture}
}

// TollIndex returns the index of the toll charged on edge from→to.
func (o Options) TollIndex(from, to int) int {
	if o.TollMode == TollOnArrival {
		return to
	}

	return from
}
