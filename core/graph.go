package core

import (
	"fmt"

	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/zambonin/villedieu/matrix"
)

// NewGraph builds a Graph from an N×N weight table. rows[i][j] == 0 means
// "no edge from i to j"; any positive value is a traversable distance.
// The table is copied, so later writes to rows have no effect.
//
// Preconditions and validation (in order):
//  1. rows must be non-empty (ErrEmptyGraph).
//  2. every row must have N entries (ErrNonSquare).
//  3. every weight must be finite and ≥ 0 (ErrInvalidWeight).
//
// Complexity: O(N²) time and memory.
func NewGraph(rows [][]float64) (*Graph, error) {
	// 1) Shape.
	if len(rows) == 0 {
		return nil, ErrEmptyGraph
	}
	if _, err := matrix.ValidateSquareRows(rows); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNonSquare, err)
	}

	// 2) Numeric policy.
	if err := matrix.ValidateNonNegativeRows(rows); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWeight, err)
	}

	// 3) Copy into dense storage and index the present edges.
	w, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}

	return fromValidDense(w), nil
}

// FromDense builds a Graph from an existing square Dense matrix, applying
// the same checks as NewGraph. The matrix is cloned.
func FromDense(m *matrix.Dense) (*Graph, error) {
	if m == nil {
		return nil, ErrEmptyGraph
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNonSquare, err)
	}

	return NewGraph(m.ToRows())
}

// fromValidDense indexes w, which must already be square and non-negative.
func fromValidDense(w *matrix.Dense) *Graph {
	n := w.Rows()
	g := &Graph{n: n, w: w, adj: make([][]Edge, n)}

	for u := 0; u < n; u++ {
		row, _ := w.Row(u) // in range by construction
		for v, x := range row {
			if x == 0 {
				continue
			}
			g.adj[u] = append(g.adj[u], Edge{From: u, To: v, Weight: x})
			g.m++
		}
	}

	return g
}

// Order returns the number of vertices N.
func (g *Graph) Order() int { return g.n }

// Size returns the number of present edges.
func (g *Graph) Size() int { return g.m }

// checkVertex returns ErrNilGraph for a nil receiver and
// ErrVertexOutOfRange unless 0 ≤ v < N.
func (g *Graph) checkVertex(v int) error {
	if g == nil {
		return ErrNilGraph
	}
	if v < 0 || v >= g.n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, g.n)
	}

	return nil
}

// Weight returns the weight of edge from→to, or None if the edge is absent.
// Complexity: O(1).
func (g *Graph) Weight(from, to int) (fn.Option[float64], error) {
	if err := g.checkVertex(from); err != nil {
		return fn.None[float64](), err
	}
	if err := g.checkVertex(to); err != nil {
		return fn.None[float64](), err
	}
	x, _ := g.w.At(from, to)
	if x == 0 {
		return fn.None[float64](), nil
	}

	return fn.Some(x), nil
}

// HasEdge reports whether the edge from→to is present. Out-of-range
// indices report false.
func (g *Graph) HasEdge(from, to int) bool {
	w, err := g.Weight(from, to)

	return err == nil && w.IsSome()
}

// Neighbors returns a copy of the outgoing edges of u in ascending To order.
// Complexity: O(deg(u)).
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	if err := g.checkVertex(u); err != nil {
		return nil, err
	}
	out := make([]Edge, len(g.adj[u]))
	copy(out, g.adj[u])

	return out, nil
}

// Edges returns every present edge sorted by SortEdges.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.m)
	for u := 0; u < g.n; u++ {
		out = append(out, g.adj[u]...)
	}
	SortEdges(out)

	return out
}

// Matrix returns a deep copy of the weight table (0 = absent).
func (g *Graph) Matrix() *matrix.Dense {
	return g.w.Clone().(*matrix.Dense)
}

// String implements fmt.Stringer.
func (g *Graph) String() string {
	return fmt.Sprintf("Graph(n=%d, m=%d)", g.n, g.m)
}
