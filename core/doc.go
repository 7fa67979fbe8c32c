// Package core provides the immutable, index-based Graph used by the
// routing pipeline.
//
// The Graph G = (V,E) is built once from an N×N weight table:
//
//   - Vertices are dense indices 0..N-1.
//   - rows[i][j] == 0 means "no edge i→j"; any positive value is a distance.
//   - Edges are directed; self-loops are kept as ordinary edges.
//
// Why an immutable graph?
//
//	A routing query transforms the base graph into a priced graph and runs a
//	solver over it. Neither step may change the base graph, and several
//	queries may share it. Making Graph read-only after NewGraph removes the
//	need for locks entirely.
//
// Absent vs. zero:
//
//	Weight(i, j) answers with fn.Option[float64]: None for an absent edge,
//	Some(w) for a present one. Neighbors(u) only lists present edges. The
//	zero-as-absent convention therefore stays at the input boundary.
//
// Core Methods:
//
//	NewGraph(rows [][]float64) (*Graph, error)      // O(N²)
//	FromDense(m *matrix.Dense) (*Graph, error)      // O(N²)
//	Order() int                                     // O(1)
//	Size() int                                      // O(1)
//	Weight(from, to int) (fn.Option[float64], error) // O(1)
//	HasEdge(from, to int) bool                      // O(1)
//	Neighbors(u int) ([]Edge, error)                // O(deg(u))
//	Edges() []Edge                                  // O(E log E)
//	Matrix() *matrix.Dense                          // O(N²)
//
// Edge ordering:
//
//	Edge.Less orders by Weight, then From, then To; SortEdges applies it.
package core
