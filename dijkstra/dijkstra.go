// Package dijkstra implements Dijkstra's shortest-path algorithm on priced graphs.
//
// Notes on implementation choices:
//
//   - Distances are float64 sums accumulated in path order; relaxation uses a
//     strict "<" with no epsilon, so results are reproducible bit for bit.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and skipping stale entries on extraction.
//   - Heap entries carry an insertion sequence number; equal distances pop in
//     arrival order, which makes tie-breaks deterministic.
//   - core.Graph guarantees finite non-negative weights, so no negative-weight
//     scan is needed here.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/zambonin/villedieu/core"
)

// Dijkstra computes cheapest distances from Options.Source to every vertex
// of g.
//
// Preconditions and validation (in order):
//  1. A Source must be set (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. Source must be a vertex of g (ErrVertexNotFound).
//
// Every call allocates its own distance, predecessor and frontier storage;
// concurrent calls on the same graph are safe because g is read-only.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate.
	if cfg.Source == noSource {
		return nil, ErrNoSource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.Order()
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrVertexNotFound, cfg.Source, n)
	}

	// 3) Fresh per-run state.
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float64, n),
		prev:    make([]fn.Option[int], n),
		settled: make([]bool, n),
		pq:      make(frontier, 0, n),
	}

	// 4) Initialize and run.
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	log.Debugf("Dijkstra from %d: settled=%d pops=%d stale=%d relaxations=%d",
		cfg.Source, r.stats.Settled, r.stats.Pops, r.stats.Stale, r.stats.Relaxations)

	return &Result{
		Source: cfg.Source,
		Dist:   r.dist,
		Prev:   r.prev,
		Stats:  r.stats,
	}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph      // The input graph; read-only within Dijkstra.
	options Options          // Configuration options.
	dist    []float64        // dist[v] = current best distance from Source.
	prev    []fn.Option[int] // prev[v] = predecessor on the current best path.
	settled []bool           // settled[v] = distance of v is final.
	pq      frontier         // Min-heap of frontier entries.
	seq     uint64           // Next insertion sequence number.
	stats   Stats
}

// init sets dist[v] = +Inf and prev[v] = None for all v, then seeds the
// frontier with (0, Source).
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = math.Inf(1)
		r.prev[v] = fn.None[int]()
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	r.push(r.options.Source, 0)
}

// push inserts (d, v) stamped with the next sequence number.
func (r *runner) push(v int, d float64) {
	heap.Push(&r.pq, frontierItem{node: v, dist: d, seq: r.seq})
	r.seq++
}

// process is the core loop. It repeatedly extracts the cheapest frontier
// entry and relaxes its outgoing edges until the frontier is empty or the
// cheapest entry exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(frontierItem)
		r.stats.Pops++
		u, d := item.node, item.dist

		// 2) Skip stale entries: already settled, or superseded by a
		//    cheaper push for the same vertex.
		if r.settled[u] || d > r.dist[u] {
			r.stats.Stale++
			continue
		}

		// 3) Nothing cheaper remains beyond the cap.
		if d > r.options.MaxDistance {
			break
		}

		// 4) d is final for u.
		r.settled[u] = true
		r.stats.Settled++
		log.Tracef("settled %d at %v", u, d)

		// 5) Relax all outgoing edges from u.
		if err := r.relax(u, d); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each present edge u→v and records a strictly shorter
// distance for v when one is found.
func (r *runner) relax(u int, du float64) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	var newDist float64
	for _, e := range neighbors {
		// Impassable edges.
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		newDist = du + e.Weight

		// Beyond the exploration cap.
		if newDist > r.options.MaxDistance {
			continue
		}

		// Strict improvement only; equal distances keep the first
		// predecessor found.
		if !(newDist < r.dist[e.To]) {
			continue
		}

		old := r.dist[e.To]
		r.dist[e.To] = newDist
		r.prev[e.To] = fn.Some(u)
		r.stats.Relaxations++
		if r.options.OnRelax != nil {
			r.options.OnRelax(e.To, old, newDist, u)
		}

		// Lazy decrease-key: the old entry stays and is skipped on pop.
		r.push(e.To, newDist)
	}

	return nil
}

// frontierItem is one (distance, vertex) entry of the frontier.
type frontierItem struct {
	node int     // vertex index
	dist float64 // tentative distance when pushed
	seq  uint64  // insertion order, secondary key
}

// frontier is a min-heap of frontierItem ordered by (dist, seq).
type frontier []frontierItem

// Len returns the number of items in the heap.
//
// NOTE: This is part of the heap.Interface implementation.
func (pq frontier) Len() int { return len(pq) }

// Less orders by distance, then by insertion order.
//
// NOTE: This is part of the heap.Interface implementation.
func (pq frontier) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
//
// NOTE: This is part of the heap.Interface implementation.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
//
// NOTE: This is part of the heap.Interface implementation.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(frontierItem)) }

// Pop removes and returns the last element of the backing slice.
//
// NOTE: This is part of the heap.Interface implementation.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
