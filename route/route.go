// Package route computes the cheapest route between two nodes of a
// distance graph priced by fuel and tolls.
//
// Pipeline:
//
//	Validate → tariff.Transform → dijkstra.Dijkstra → Reconstruct → (*Route)
package route

import (
	"fmt"

	"github.com/zambonin/villedieu/core"
	"github.com/zambonin/villedieu/dijkstra"
	"github.com/zambonin/villedieu/tariff"
)

// Cheapest returns the minimum-cost route from req.Source to
// req.Destination, where traversing edge i→j of distance w costs
//
//	w * UnitPrice / Efficiency + toll
//
// and the toll is charged per the configured tariff.TollMode.
//
// All failures surface immediately; nothing is retried. Each call builds
// its own priced graph and solver state, so the inputs are never modified.
func Cheapest(req Request, opts ...Option) (rt *Route, err error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	defer func() {
		for _, obs := range cfg.Observers {
			obs.ObserveRoute(rt, err)
		}
	}()

	// 1) Preconditions.
	if err := Validate(req); err != nil {
		log.Debugf("Rejected query %d -> %d: %v", req.Source, req.Destination, err)
		return nil, err
	}

	// 2) Base graph and priced graph.
	base, err := core.NewGraph(req.Distances)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	params := req.Params()
	priced, err := tariff.Transform(base, req.Tolls, params, tariff.WithTollMode(cfg.TollMode))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	// 3) Solve.
	res, err := dijkstra.Dijkstra(priced, dijkstra.Source(req.Source))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	// 4) Reconstruct.
	nodes, err := Reconstruct(res, req.Source, req.Destination)
	if err != nil {
		log.Debugf("Query %d -> %d failed: %v", req.Source, req.Destination, err)
		return nil, err
	}

	rt = &Route{
		Nodes: nodes,
		Cost:  res.Dist[req.Destination],
		Legs:  buildLegs(base, priced, req.Tolls, params, cfg.TollMode, nodes),
		Stats: res.Stats,
	}
	log.Infof("Cheapest route %v", rt)

	return rt, nil
}

// buildLegs breaks the route down hop by hop. nodes comes from Reconstruct,
// so every consecutive pair is a present edge of both graphs.
func buildLegs(base, priced *core.Graph, tolls []float64, p tariff.Params,
	mode tariff.TollMode, nodes []int) []Leg {

	topts := tariff.Options{TollMode: mode}
	legs := make([]Leg, 0, len(nodes)-1)
	for i := 1; i < len(nodes); i++ {
		from, to := nodes[i-1], nodes[i]
		dist, _ := base.Weight(from, to)
		cost, _ := priced.Weight(from, to)
		d := dist.UnwrapOr(0)
		legs = append(legs, Leg{
			From:     from,
			To:       to,
			Distance: d,
			Fuel:     p.Fuel(d),
			Toll:     tolls[topts.TollIndex(from, to)],
			Cost:     cost.UnwrapOr(0),
		})
	}

	return legs
}
