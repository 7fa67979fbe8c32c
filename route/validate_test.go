package route_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zambonin/villedieu/matrix"
	"github.com/zambonin/villedieu/route"
	"github.com/zambonin/villedieu/tariff"
)

func TestValidate_Rejects(t *testing.T) {
	t.Parallel()

	nonSquare := make([][]float64, 8)
	for i := range nonSquare {
		nonSquare[i] = make([]float64, 9)
	}

	cases := []struct {
		name  string
		edit  func(r *route.Request)
		cause error
	}{
		{"8x9 distances", func(r *route.Request) { r.Distances = nonSquare }, matrix.ErrNonSquare},
		{"ragged distances", func(r *route.Request) { r.Distances[3] = []float64{0, 1} }, matrix.ErrNonSquare},
		{"empty distances", func(r *route.Request) { r.Distances = nil }, matrix.ErrInvalidDimensions},
		{"short tolls", func(r *route.Request) { r.Tolls = r.Tolls[:7] }, matrix.ErrDimensionMismatch},
		{"nil tolls", func(r *route.Request) { r.Tolls = nil }, matrix.ErrNilMatrix},
		{"negative source", func(r *route.Request) { r.Source = -1 }, nil},
		{"source equals N", func(r *route.Request) { r.Source = 8 }, nil},
		{"destination equals N", func(r *route.Request) { r.Destination = 8 }, nil},
		{"destination far out", func(r *route.Request) { r.Destination = 100 }, nil},
		{"negative distance", func(r *route.Request) { r.Distances[0][1] = -4 }, matrix.ErrNegativeValue},
		{"NaN distance", func(r *route.Request) { r.Distances[2][4] = math.NaN() }, matrix.ErrNaNInf},
		{"negative toll", func(r *route.Request) { r.Tolls[2] = -1 }, matrix.ErrNegativeValue},
		{"infinite toll", func(r *route.Request) { r.Tolls[2] = math.Inf(1) }, matrix.ErrNaNInf},
		{"zero unit price", func(r *route.Request) { r.UnitPrice = 0 }, tariff.ErrBadParams},
		{"negative efficiency", func(r *route.Request) { r.Efficiency = -5 }, tariff.ErrBadParams},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := freshStanford()
			tc.edit(&req)

			err := route.Validate(req)
			require.ErrorIs(t, err, route.ErrInvalidInput)
			if tc.cause != nil {
				require.ErrorIs(t, err, tc.cause)
			}

			rt, err := route.Cheapest(req)
			require.ErrorIs(t, err, route.ErrInvalidInput)
			require.Nil(t, rt)
		})
	}
}

func TestValidate_ZeroEfficiency(t *testing.T) {
	t.Parallel()

	req := freshStanford()
	req.Efficiency = 0

	err := route.Validate(req)
	require.ErrorIs(t, err, route.ErrInvalidInput)
	require.ErrorIs(t, err, route.ErrDivisionByZero)
	require.ErrorIs(t, err, tariff.ErrZeroEfficiency)
}

func TestValidate_ShapeBeforeIndex(t *testing.T) {
	t.Parallel()

	// Both the shape and the index are wrong; the shape is reported.
	req := freshStanford()
	req.Tolls = req.Tolls[:3]
	req.Source = 42

	err := route.Validate(req)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestValidate_Accepts(t *testing.T) {
	t.Parallel()

	require.NoError(t, route.Validate(freshStanford()))
	require.NoError(t, route.Validate(squareRequest()))

	// Largest valid index is N-1.
	req := freshStanford()
	req.Source, req.Destination = 7, 7
	require.NoError(t, route.Validate(req))

	// Single node, zero tolls.
	one := route.Request{
		Distances:  [][]float64{{0}},
		Tolls:      []float64{0},
		UnitPrice:  1,
		Efficiency: 1,
	}
	require.NoError(t, route.Validate(one))
}

// freshStanford returns the 8-node query over deep copies, so tests may
// edit cells freely.
func freshStanford() route.Request {
	req := stanfordRequest()
	rows := make([][]float64, len(req.Distances))
	for i := range req.Distances {
		rows[i] = append([]float64(nil), req.Distances[i]...)
	}
	req.Distances = rows
	req.Tolls = append([]float64(nil), req.Tolls...)

	return req
}
