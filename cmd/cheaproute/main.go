package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

const defaultDebugLevel = "info"

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[cheaproute] %v\n", err)
	os.Exit(1)
}

// newApp builds the command line application.
func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "cheaproute"
	app.Usage = "find the cheapest route through a tolled road network"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "debuglevel",
			Value: defaultDebugLevel,
			Usage: "Logging level for all subsystems " +
				"{trace, debug, info, warn, error, critical, off}.",
		},
		cli.BoolFlag{
			Name:  "nologtimestamps",
			Usage: "Omit timestamps from log lines.",
		},
		cli.StringFlag{
			Name: "metricsfile",
			Usage: "If set, write Prometheus metrics for the " +
				"query to this file in text format.",
			TakesFile: true,
		},
	}
	app.Before = func(ctx *cli.Context) error {
		setupLoggers(os.Stderr, ctx.GlobalBool("nologtimestamps"))
		setLogLevels(ctx.GlobalString("debuglevel"))

		return nil
	}
	app.Commands = []cli.Command{
		routeCommand,
		exampleCommand,
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fatal(err)
	}
}
