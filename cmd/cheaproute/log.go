package main

import (
	"io"

	"github.com/btcsuite/btclog/v2"
	"github.com/zambonin/villedieu/dijkstra"
	"github.com/zambonin/villedieu/route"
	"github.com/zambonin/villedieu/tariff"
)

// subsystemLoggers maps each subsystem identifier to its associated logger.
var subsystemLoggers = map[string]btclog.Logger{}

// addSubLogger creates a logger for the subsystem on handler, records it and
// hands it to the package through useLogger.
func addSubLogger(handler btclog.Handler, subsystem string,
	useLogger func(btclog.Logger)) {

	logger := btclog.NewSLogger(handler.SubSystem(subsystem))
	subsystemLoggers[subsystem] = logger
	useLogger(logger)
}

// setupLoggers wires every library package to a handler writing to w.
func setupLoggers(w io.Writer, noTimestamps bool) {
	var opts []btclog.HandlerOption
	if noTimestamps {
		opts = append(opts, btclog.WithNoTimestamp())
	}
	handler := btclog.NewDefaultHandler(w, opts...)

	addSubLogger(handler, route.Subsystem, route.UseLogger)
	addSubLogger(handler, tariff.Subsystem, tariff.UseLogger)
	addSubLogger(handler, dijkstra.Subsystem, dijkstra.UseLogger)
}

// setLogLevels sets the log level for all subsystem loggers to the passed
// level. Invalid levels default to info.
func setLogLevels(logLevel string) {
	level, _ := btclog.LevelFromString(logLevel)
	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}
}
