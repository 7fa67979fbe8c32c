package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zambonin/villedieu/core"
	"github.com/zambonin/villedieu/matrix"
)

// square4 is a small undirected-looking table stored as a directed one.
var square4 = [][]float64{
	{0, 10, 5, 0},
	{10, 0, 0, 20},
	{5, 0, 0, 30},
	{0, 20, 30, 0},
}

func TestNewGraph_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rows    [][]float64
		wantErr error
	}{
		{"empty", nil, core.ErrEmptyGraph},
		{"non-square 2x3", [][]float64{{0, 1, 2}, {1, 0, 2}}, core.ErrNonSquare},
		{"ragged", [][]float64{{0, 1}, {1}}, core.ErrNonSquare},
		{"negative", [][]float64{{0, -1}, {1, 0}}, core.ErrInvalidWeight},
		{"nan", [][]float64{{0, math.NaN()}, {1, 0}}, core.ErrInvalidWeight},
		{"inf", [][]float64{{0, math.Inf(1)}, {1, 0}}, core.ErrInvalidWeight},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := core.NewGraph(tc.rows)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestNewGraph_NonSquareKeepsMatrixCause(t *testing.T) {
	t.Parallel()

	_, err := core.NewGraph([][]float64{{0, 1, 2}, {1, 0, 2}})
	require.ErrorIs(t, err, core.ErrNonSquare)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestGraph_Basics(t *testing.T) {
	t.Parallel()

	g, err := core.NewGraph(square4)
	require.NoError(t, err)
	require.Equal(t, 4, g.Order())
	require.Equal(t, 8, g.Size())
	require.Equal(t, "Graph(n=4, m=8)", g.String())

	w, err := g.Weight(2, 3)
	require.NoError(t, err)
	require.True(t, w.IsSome())
	require.Equal(t, 30.0, w.UnwrapOr(0))

	w, err = g.Weight(0, 3)
	require.NoError(t, err)
	require.True(t, w.IsNone(), "zero cell must be absent, not a zero-cost edge")

	_, err = g.Weight(4, 0)
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
	_, err = g.Weight(0, -1)
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)

	require.True(t, g.HasEdge(0, 1))
	require.False(t, g.HasEdge(0, 3))
	require.False(t, g.HasEdge(9, 9))
}

func TestGraph_NilReceiver(t *testing.T) {
	t.Parallel()

	var g *core.Graph
	_, err := g.Weight(0, 0)
	require.ErrorIs(t, err, core.ErrNilGraph)
	_, err = g.Neighbors(0)
	require.ErrorIs(t, err, core.ErrNilGraph)
	require.False(t, g.HasEdge(0, 0))
}

func TestGraph_NeighborsAreCopies(t *testing.T) {
	t.Parallel()

	g, err := core.NewGraph(square4)
	require.NoError(t, err)

	nb, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Equal(t, []core.Edge{{From: 0, To: 1, Weight: 10}, {From: 0, To: 2, Weight: 5}}, nb)

	nb[0].Weight = 1000
	again, _ := g.Neighbors(0)
	require.Equal(t, 10.0, again[0].Weight)

	_, err = g.Neighbors(4)
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

func TestGraph_IsImmutable(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{0, 1}, {2, 0}}
	g, err := core.NewGraph(rows)
	require.NoError(t, err)

	rows[0][1] = 0
	require.True(t, g.HasEdge(0, 1), "input rows must be copied")

	m := g.Matrix()
	require.NoError(t, m.Set(1, 0, 0))
	require.True(t, g.HasEdge(1, 0), "Matrix must return a copy")
}

func TestGraph_EdgesSorted(t *testing.T) {
	t.Parallel()

	g, err := core.NewGraph(square4)
	require.NoError(t, err)

	edges := g.Edges()
	require.Len(t, edges, 8)
	require.Equal(t, core.Edge{From: 0, To: 2, Weight: 5}, edges[0])
	require.Equal(t, core.Edge{From: 2, To: 0, Weight: 5}, edges[1])
	require.Equal(t, core.Edge{From: 3, To: 2, Weight: 30}, edges[7])
	for i := 1; i < len(edges); i++ {
		require.False(t, edges[i].Less(edges[i-1]), "edges out of order at %d", i)
	}
}

func TestEdge_LessIsTotal(t *testing.T) {
	t.Parallel()

	a := core.Edge{From: 0, To: 1, Weight: 1}
	b := core.Edge{From: 0, To: 2, Weight: 1}
	c := core.Edge{From: 1, To: 0, Weight: 1}
	d := core.Edge{From: 0, To: 0, Weight: 2}

	require.True(t, a.Less(b))
	require.True(t, b.Less(c))
	require.True(t, c.Less(d))
	require.False(t, a.Less(a))

	es := []core.Edge{d, c, b, a}
	core.SortEdges(es)
	require.Equal(t, []core.Edge{a, b, c, d}, es)
}

func TestFromDense(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseFromRows(square4)
	require.NoError(t, err)
	g, err := core.FromDense(m)
	require.NoError(t, err)
	require.Equal(t, 8, g.Size())

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = core.FromDense(rect)
	require.ErrorIs(t, err, core.ErrNonSquare)

	_, err = core.FromDense(nil)
	require.ErrorIs(t, err, core.ErrEmptyGraph)
}
