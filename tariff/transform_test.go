package tariff_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zambonin/villedieu/core"
	"github.com/zambonin/villedieu/matrix"
	"github.com/zambonin/villedieu/tariff"
)

var square4 = [][]float64{
	{0, 10, 5, 0},
	{10, 0, 0, 20},
	{5, 0, 0, 30},
	{0, 20, 30, 0},
}

func mustGraph(t *testing.T, rows [][]float64) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(rows)
	require.NoError(t, err)

	return g
}

func TestParams_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		p       tariff.Params
		wantErr []error
	}{
		{"ok", tariff.Params{UnitPrice: 2, Efficiency: 5}, nil},
		{"zero efficiency", tariff.Params{UnitPrice: 2}, []error{tariff.ErrZeroEfficiency, tariff.ErrBadParams}},
		{"negative efficiency", tariff.Params{UnitPrice: 2, Efficiency: -1}, []error{tariff.ErrBadParams}},
		{"nan efficiency", tariff.Params{UnitPrice: 2, Efficiency: math.NaN()}, []error{tariff.ErrBadParams}},
		{"zero price", tariff.Params{Efficiency: 5}, []error{tariff.ErrBadParams}},
		{"inf price", tariff.Params{UnitPrice: math.Inf(1), Efficiency: 5}, []error{tariff.ErrBadParams}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.p.Validate()
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			for _, want := range tc.wantErr {
				require.ErrorIs(t, err, want)
			}
		})
	}

	require.NotErrorIs(t, tariff.Params{UnitPrice: 2, Efficiency: -1}.Validate(), tariff.ErrZeroEfficiency)
}

func TestTransform_Departure(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, square4)
	out, err := tariff.Transform(g, []float64{10, 20, 5, 5}, tariff.Params{UnitPrice: 5, Efficiency: 2})
	require.NoError(t, err)

	// w*5/2 + toll[row]
	want := [][]float64{
		{0, 35, 22.5, 0},
		{45, 0, 0, 70},
		{17.5, 0, 0, 80},
		{0, 55, 80, 0},
	}
	require.Equal(t, want, out.Matrix().ToRows())
	require.Equal(t, g.Size(), out.Size(), "no synthetic edges")

	// Input untouched.
	require.Equal(t, square4, g.Matrix().ToRows())
}

func TestTransform_Arrival(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, square4)
	out, err := tariff.Transform(g, []float64{10, 20, 5, 5}, tariff.Params{UnitPrice: 5, Efficiency: 2},
		tariff.WithTollMode(tariff.TollOnArrival))
	require.NoError(t, err)

	// w*5/2 + toll[col]
	want := [][]float64{
		{0, 45, 17.5, 0},
		{35, 0, 0, 55},
		{22.5, 0, 0, 80},
		{0, 70, 80, 0},
	}
	require.Equal(t, want, out.Matrix().ToRows())
}

func TestTransform_ZeroTollKeepsAbsence(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, [][]float64{{0, 4}, {0, 0}})
	out, err := tariff.Transform(g, []float64{0, 0}, tariff.Params{UnitPrice: 1, Efficiency: 1})
	require.NoError(t, err)
	require.True(t, out.HasEdge(0, 1))
	require.False(t, out.HasEdge(1, 0))
	require.False(t, out.HasEdge(0, 0))
}

func TestTransform_DropsOverflowingEdges(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, [][]float64{
		{0, math.MaxFloat64, 1},
		{0, 0, 0},
		{0, 1, 0},
	})
	out, err := tariff.Transform(g, []float64{0, 0, 0}, tariff.Params{UnitPrice: 10, Efficiency: 1})
	require.NoError(t, err)
	require.False(t, out.HasEdge(0, 1))
	require.True(t, out.HasEdge(0, 2))
	require.Equal(t, 2, out.Size())
}

func TestTransform_MatchesEdgeCost(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, [][]float64{
		{0, 4, 0, 2, 7},
		{0, 0, 0, 0, 2},
		{0, 0, 0, 0, 4},
		{0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0},
	})
	tolls := []float64{1, 2, 3, 4, 5}
	p := tariff.Params{UnitPrice: 2, Efficiency: 5}

	out, err := tariff.Transform(g, tolls, p)
	require.NoError(t, err)

	for _, e := range g.Edges() {
		w, err := out.Weight(e.From, e.To)
		require.NoError(t, err)
		require.Equal(t, tariff.EdgeCost(e.Weight, tolls[e.From], p), w.UnwrapOr(-1))
		require.Equal(t, p.Fuel(e.Weight)+tolls[e.From], w.UnwrapOr(-1))
	}
}

func TestTransform_Errors(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, square4)
	p := tariff.Params{UnitPrice: 5, Efficiency: 2}

	_, err := tariff.Transform(nil, []float64{1, 2, 3, 4}, p)
	require.ErrorIs(t, err, tariff.ErrNilGraph)

	_, err = tariff.Transform(g, []float64{1, 2, 3, 4}, tariff.Params{UnitPrice: 5})
	require.ErrorIs(t, err, tariff.ErrZeroEfficiency)

	_, err = tariff.Transform(g, []float64{1, 2, 3}, p)
	require.ErrorIs(t, err, tariff.ErrBadTolls)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = tariff.Transform(g, []float64{1, 2, -3, 4}, p)
	require.ErrorIs(t, err, tariff.ErrBadTolls)
	require.ErrorIs(t, err, matrix.ErrNegativeValue)

	_, err = tariff.Transform(g, nil, p)
	require.ErrorIs(t, err, tariff.ErrBadTolls)
}

func TestTollMode(t *testing.T) {
	t.Parallel()

	require.Equal(t, "departure", tariff.TollOnDeparture.String())
	require.Equal(t, "arrival", tariff.TollOnArrival.String())
	require.Equal(t, "TollMode(7)", tariff.TollMode(7).String())

	for _, s := range []string{"", "departure"} {
		m, err := tariff.ParseTollMode(s)
		require.NoError(t, err)
		require.Equal(t, tariff.TollOnDeparture, m)
	}
	m, err := tariff.ParseTollMode("arrival")
	require.NoError(t, err)
	require.Equal(t, tariff.TollOnArrival, m)
	_, err = tariff.ParseTollMode("both")
	require.Error(t, err)

	o := tariff.DefaultOptions()
	require.Equal(t, 1, o.TollIndex(1, 2))
	tariff.WithTollMode(tariff.TollOnArrival)(&o)
	require.Equal(t, 2, o.TollIndex(1, 2))
}
