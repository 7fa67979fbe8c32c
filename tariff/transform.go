package tariff

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/zambonin/villedieu/core"
	"github.com/zambonin/villedieu/matrix"
)

// Transform derives the priced graph consumed by the solver. For every
// present edge i→j with distance w:
//
//	priced(i, j) = w * p.UnitPrice / p.Efficiency + tolls[k]
//
// where k is i (TollOnDeparture, default) or j (TollOnArrival). Absent
// edges stay absent; no edge is ever created. g is not modified.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. p must be valid (ErrBadParams, ErrZeroEfficiency).
//  3. tolls must have N finite non-negative entries (ErrBadTolls).
//
// Complexity: O(N²) time and memory.
func Transform(g *core.Graph, tolls []float64, p Params, opts ...Option) (*core.Graph, error) {
	// 1) Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate.
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := matrix.ValidateVecLen(tolls, g.Order()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadTolls, err)
	}
	if err := matrix.ValidateNonNegative(tolls); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadTolls, err)
	}

	// 3) Price every present cell.
	axis := matrix.AxisRows
	if cfg.TollMode == TollOnArrival {
		axis = matrix.AxisCols
	}
	priced, err := matrix.MaskedAffine(g.Matrix(), p.UnitPrice, p.Efficiency, tolls, axis)
	if err != nil {
		return nil, fmt.Errorf("tariff: %w", err)
	}

	log.Debugf("Priced %d edges (unit price %v, efficiency %v, toll on %v)",
		g.Size(), p.UnitPrice, p.Efficiency, cfg.TollMode)
	log.Tracef("Priced table: %v", newLogClosure(func() string {
		return spew.Sdump(priced.ToRows())
	}))

	out, err := core.FromDense(priced)
	if err != nil {
		return nil, fmt.Errorf("tariff: %w", err)
	}
	if dropped := g.Size() - out.Size(); dropped > 0 {
		log.Debugf("Dropped %d edges whose priced cost overflows", dropped)
	}

	return out, nil
}
