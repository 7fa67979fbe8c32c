package route

import (
	"fmt"
	"slices"

	"github.com/zambonin/villedieu/dijkstra"
)

// Reconstruct walks res.Prev backward from destination and returns the
// nodes from source to destination, inclusive.
//
// Errors:
//   - ErrInvalidInput if res is nil or an index is outside the result.
//   - ErrUnreachable if destination has an infinite distance.
//   - ErrCorruptPredecessors if the walk does not end at source, or visits
//     more nodes than the graph has (a cycle).
//
// source == destination always yields [source].
//
// Complexity: O(path length).
func Reconstruct(res *dijkstra.Result, source, destination int) ([]int, error) {
	if res == nil {
		return nil, fmt.Errorf("%w: nil solver result", ErrInvalidInput)
	}
	n := len(res.Prev)
	if err := checkIndex("source", source, n); err != nil {
		return nil, err
	}
	if err := checkIndex("destination", destination, n); err != nil {
		return nil, err
	}

	if source == destination {
		return []int{source}, nil
	}
	if !res.Reachable(destination) {
		return nil, fmt.Errorf("%w: %d from %d", ErrUnreachable, destination, source)
	}

	// Walk destination → source, then reverse.
	path := make([]int, 0, 8)
	cur := destination
	for {
		path = append(path, cur)
		if len(path) > n {
			return nil, fmt.Errorf("%w: cycle through %d", ErrCorruptPredecessors, cur)
		}
		next := res.Prev[cur]
		if next.IsNone() {
			break
		}
		cur = next.UnwrapOr(-1)
		if cur < 0 || cur >= n {
			return nil, fmt.Errorf("%w: predecessor %d out of range", ErrCorruptPredecessors, cur)
		}
	}
	if cur != source {
		return nil, fmt.Errorf("%w: walk ended at %d, want %d", ErrCorruptPredecessors, cur, source)
	}
	slices.Reverse(path)

	return path, nil
}
