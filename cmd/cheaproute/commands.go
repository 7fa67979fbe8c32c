package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli"
	"github.com/zambonin/villedieu/config"
	"github.com/zambonin/villedieu/metrics"
	"github.com/zambonin/villedieu/route"
	"github.com/zambonin/villedieu/tariff"
)

var jsonFlag = cli.BoolFlag{
	Name:  "json",
	Usage: "Print the route as JSON.",
}

var routeCommand = cli.Command{
	Name:      "route",
	Usage:     "Compute the cheapest route described by a problem file.",
	ArgsUsage: "problem.yaml",
	Description: `
	Load a YAML problem (graph, tolls, source, destination, unit_price,
	efficiency and optional toll_mode) and print the cheapest route.

	The source, destination, price, efficiency and toll mode given on the
	command line override the values of the file.
	`,
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:      "file",
			Usage:     "The path to the problem file.",
			TakesFile: true,
		},
		cli.IntFlag{
			Name:  "source",
			Usage: "Override the source node.",
		},
		cli.IntFlag{
			Name:  "dest",
			Usage: "Override the destination node.",
		},
		cli.Float64Flag{
			Name:  "price",
			Usage: "Override the unit fuel price.",
		},
		cli.Float64Flag{
			Name:  "efficiency",
			Usage: "Override the distance covered per unit of fuel.",
		},
		cli.StringFlag{
			Name:  "tollmode",
			Usage: "Which node pays the toll of an edge {departure, arrival}.",
		},
		jsonFlag,
	},
	Action: runRoute,
}

func runRoute(ctx *cli.Context) error {
	path := ctx.String("file")
	if path == "" && ctx.NArg() > 0 {
		path = ctx.Args().First()
	}
	if path == "" {
		return errors.New("problem file required")
	}

	problem, err := config.LoadProblem(path)
	if err != nil {
		return err
	}
	req, opts, err := problem.Request()
	if err != nil {
		return err
	}

	if ctx.IsSet("source") {
		req.Source = ctx.Int("source")
	}
	if ctx.IsSet("dest") {
		req.Destination = ctx.Int("dest")
	}
	if ctx.IsSet("price") {
		req.UnitPrice = ctx.Float64("price")
	}
	if ctx.IsSet("efficiency") {
		req.Efficiency = ctx.Float64("efficiency")
	}
	if ctx.IsSet("tollmode") {
		mode, err := tariff.ParseTollMode(ctx.String("tollmode"))
		if err != nil {
			return err
		}
		opts = append(opts, route.WithTollMode(mode))
	}

	return solve(os.Stdout, req, opts, ctx.Bool("json"),
		ctx.GlobalString("metricsfile"))
}

var exampleCommand = cli.Command{
	Name:  "example",
	Usage: "Solve the built-in 8-node reference problem.",
	Description: `
	Route from node 0 to node 5 of the 8-node reference network with
	tolls 1..8, a unit price of 2 and an efficiency of 5. The expected
	answer is 0 -> 4 -> 5 at a cost of 9.6.
	`,
	Flags:  []cli.Flag{jsonFlag},
	Action: runExample,
}

func runExample(ctx *cli.Context) error {
	return solve(os.Stdout, exampleRequest(), nil, ctx.Bool("json"),
		ctx.GlobalString("metricsfile"))
}

// exampleRequest is the 8-node reference problem.
func exampleRequest() route.Request {
	return route.Request{
		Distances: [][]float64{
			{0, 4, 0, 2, 7, 0, 0, 0},
			{0, 0, 0, 0, 2, 0, 0, 0},
			{0, 0, 0, 0, 4, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 1, 4},
			{0, 0, 0, 0, 0, 2, 0, 0},
			{0, 0, 1, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 2},
			{0, 0, 0, 0, 5, 1, 0, 0},
		},
		Tolls:       []float64{1, 2, 3, 4, 5, 6, 7, 8},
		Source:      0,
		Destination: 5,
		UnitPrice:   2,
		Efficiency:  5,
	}
}

// solve runs one query, prints the result to w and, if metricsFile is set,
// writes the query metrics there. The metrics are written even when the
// query fails.
func solve(w io.Writer, req route.Request, opts []route.Option,
	asJSON bool, metricsFile string) error {

	var reg *prometheus.Registry
	if metricsFile != "" {
		reg = prometheus.NewRegistry()
		collector, err := metrics.NewCollector(reg)
		if err != nil {
			return err
		}
		opts = append(opts, route.WithObserver(collector))
	}

	rt, routeErr := route.Cheapest(req, opts...)

	if reg != nil {
		if err := prometheus.WriteToTextfile(metricsFile, reg); err != nil {
			return fmt.Errorf("unable to write metrics: %w", err)
		}
	}
	if routeErr != nil {
		return routeErr
	}

	if asJSON {
		return printJSON(w, newJSONRoute(rt))
	}
	printRoute(w, rt)

	return nil
}

// jsonLeg and jsonRoute are the JSON output shapes.
type jsonLeg struct {
	From     int     `json:"from"`
	To       int     `json:"to"`
	Distance float64 `json:"distance"`
	Fuel     float64 `json:"fuel"`
	Toll     float64 `json:"toll"`
	Cost     float64 `json:"cost"`
}

type jsonRoute struct {
	Nodes []int     `json:"nodes"`
	Cost  float64   `json:"cost"`
	Legs  []jsonLeg `json:"legs"`
}

func newJSONRoute(rt *route.Route) jsonRoute {
	legs := make([]jsonLeg, len(rt.Legs))
	for i, l := range rt.Legs {
		legs[i] = jsonLeg(l)
	}

	return jsonRoute{Nodes: rt.Nodes, Cost: rt.Cost, Legs: legs}
}

func printJSON(w io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)

	return err
}

func printRoute(w io.Writer, rt *route.Route) {
	fmt.Fprintln(w, rt)
	for _, l := range rt.Legs {
		fmt.Fprintf(w, "  %d -> %d  distance=%g fuel=%g toll=%g cost=%g\n",
			l.From, l.To, l.Distance, l.Fuel, l.Toll, l.Cost)
	}
}
