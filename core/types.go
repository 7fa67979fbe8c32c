// Package core defines the immutable Graph and Edge types shared by the
// cost, solver and routing packages.
//
// This file declares Edge, Graph, the sentinel errors and the ordering used
// for deterministic edge listings.
//
// Errors:
//
//	ErrNilGraph          - graph pointer is nil.
//	ErrEmptyGraph        - the weight table has no rows.
//	ErrNonSquare         - the weight table is not N×N.
//	ErrInvalidWeight     - a weight is NaN, ±Inf or negative.
//	ErrVertexOutOfRange  - a vertex index is outside 0..N-1.
package core

import (
	"errors"
	"sort"

	"github.com/zambonin/villedieu/matrix"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates that a nil *Graph was passed.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrEmptyGraph indicates a weight table with zero vertices.
	ErrEmptyGraph = errors.New("core: graph has no vertices")

	// ErrNonSquare indicates the weight table is not N×N.
	ErrNonSquare = errors.New("core: weight table is not square")

	// ErrInvalidWeight indicates a NaN, infinite or negative weight.
	ErrInvalidWeight = errors.New("core: weight must be finite and non-negative")

	// ErrVertexOutOfRange indicates a vertex index outside 0..N-1.
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")
)

// Edge is a directed, weighted connection between two dense vertex indices.
// It is a small value type; copies are cheap and never alias graph storage.
type Edge struct {
	// From is the index of the vertex the edge leaves.
	From int

	// To is the index of the vertex the edge enters.
	To int

	// Weight is the strictly positive cost of traversing the edge.
	Weight float64
}

// Less reports whether e sorts before o: by Weight, then From, then To.
// This is a total order on edges of one graph (at most one edge per pair).
func (e Edge) Less(o Edge) bool {
	if e.Weight != o.Weight {
		return e.Weight < o.Weight
	}
	if e.From != o.From {
		return e.From < o.From
	}

	return e.To < o.To
}

// SortEdges sorts edges in place by Edge.Less.
// Complexity: O(E log E).
func SortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool { return edges[i].Less(edges[j]) })
}

// Graph is an immutable directed weighted graph over vertices 0..N-1.
//
// The weight table keeps the external convention (0 = no edge), while the
// adjacency lists hold only present edges, so "absent" and "zero cost" are
// never confused inside algorithms. A Graph is never mutated after
// construction and may be shared by concurrent readers without locking.
type Graph struct {
	n   int           // number of vertices
	w   *matrix.Dense // N×N weights, 0 = absent
	adj [][]Edge      // adj[u] = outgoing edges of u, ascending To
	m   int           // number of edges
}
