// Package villedieu finds the cheapest route through a road network where
// every leg costs the fuel spent on its distance plus a per-node toll.
//
// Packages:
//
//	matrix/    dense float64 tables, validators and the masked affine kernel
//	core/      immutable weighted directed graph over dense indices
//	tariff/    cost model: fuel price, efficiency and toll modes
//	dijkstra/  single-source cheapest distances with deterministic ties
//	route/     validation, the Cheapest pipeline and path reconstruction
//	config/    YAML problem files
//	metrics/   Prometheus counters for route queries
//	cmd/cheaproute  command line front end
//
// Quick start:
//
//	rt, err := route.Cheapest(route.Request{
//		Distances:   distances,
//		Tolls:       tolls,
//		Source:      0,
//		Destination: 5,
//		UnitPrice:   2,
//		Efficiency:  5,
//	})
//	fmt.Println(rt) // 0 -> 4 -> 5 (cost 9.6)
package villedieu
