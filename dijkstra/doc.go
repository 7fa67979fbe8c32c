// Package dijkstra provides a deterministic implementation of Dijkstra's
// shortest-path algorithm on immutable core.Graph values with non-negative
// float64 edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time.
//   - It relies on a min-heap (container/heap) keyed by (distance, insertion
//     order), so equal distances are extracted in arrival order.
//   - Stale heap entries (lazy decrease-key) are skipped on extraction.
//   - Relaxation is a strict "<" comparison with no epsilon; distances are
//     accumulated in path order, so the distance of a vertex equals the
//     left-to-right float64 sum of the edge weights along its path.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - MaxDistance: stops exploring beyond a specified distance.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable.
//   - OnRelax: hook observing every strict distance improvement.
//   - Stats: pops, stale skips, settled vertices and relaxations per run.
//
// Error handling (sentinel errors):
//
//   - ErrNoSource:        no Source option given.
//   - ErrNilGraph:        nil *core.Graph.
//   - ErrVertexNotFound:  source index outside 0..N-1.
//   - ErrBadMaxDistance:  (panic) negative or NaN MaxDistance.
//   - ErrBadInfThreshold: (panic) non-positive or NaN InfEdgeThreshold.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (*Result, error)
//
//	  - Result.Dist[v]: minimal distance from Source to v, or +Inf if unreachable.
//	  - Result.Prev[v]: fn.Some(u) if u precedes v on one cheapest path,
//	    fn.None for the source and for unreachable vertices.
//
// Thread safety:
//
//   - Each call owns its distance, predecessor and frontier storage.
//   - core.Graph is immutable, so concurrent calls on one graph are safe.
//
// Logging:
//
//	The package logs through btclog under the "DJKS" subsystem. Logging is
//	disabled until UseLogger is called.
package dijkstra
