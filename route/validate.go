package route

import (
	"errors"
	"fmt"

	"github.com/zambonin/villedieu/matrix"
	"github.com/zambonin/villedieu/tariff"
)

// invalidf wraps cause under ErrInvalidInput with a short context.
func invalidf(ctx string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidInput, ctx, cause)
}

// Validate checks the structural and numeric preconditions of req before
// any computation. It has no side effects.
//
// Checks (in order, first failure wins):
//  1. Distances is a non-empty N×N table.
//  2. len(Tolls) == N.
//  3. 0 ≤ Source < N and 0 ≤ Destination < N.
//  4. Distances and Tolls are finite and non-negative.
//  5. UnitPrice and Efficiency are finite and positive; a zero Efficiency
//     also matches ErrDivisionByZero.
//
// Every failure matches ErrInvalidInput.
func Validate(req Request) error {
	// 1) Shape.
	n, err := matrix.ValidateSquareRows(req.Distances)
	if err != nil {
		return invalidf("distances", err)
	}

	// 2) Toll vector length.
	if err := matrix.ValidateVecLen(req.Tolls, n); err != nil {
		return invalidf("tolls", err)
	}

	// 3) Index bounds. Valid indices are 0..N-1; N itself is rejected.
	if err := checkIndex("source", req.Source, n); err != nil {
		return err
	}
	if err := checkIndex("destination", req.Destination, n); err != nil {
		return err
	}

	// 4) Numeric policy.
	if err := matrix.ValidateNonNegativeRows(req.Distances); err != nil {
		return invalidf("distances", err)
	}
	if err := matrix.ValidateNonNegative(req.Tolls); err != nil {
		return invalidf("tolls", err)
	}

	// 5) Cost model scalars.
	if err := req.Params().Validate(); err != nil {
		if errors.Is(err, tariff.ErrZeroEfficiency) {
			return fmt.Errorf("%w: %w: %w", ErrInvalidInput, ErrDivisionByZero, err)
		}
		return invalidf("params", err)
	}

	return nil
}

// errIndexRange is the cause recorded for out-of-range indices.
var errIndexRange = errors.New("index out of range")

func checkIndex(name string, v, n int) error {
	if v < 0 || v >= n {
		return invalidf(name, fmt.Errorf("%w: %d not in [0,%d)", errIndexRange, v, n))
	}

	return nil
}
