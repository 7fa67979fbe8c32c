package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zambonin/villedieu/route"
)

func TestSolve_Example(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, solve(&buf, exampleRequest(), nil, false, ""))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "0 -> 4 -> 5 (cost 9.6)", lines[0])
	require.Contains(t, lines[1], "0 -> 4")
	require.Contains(t, lines[2], "toll=5")
}

func TestSolve_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, solve(&buf, exampleRequest(), nil, true, ""))

	var got jsonRoute
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, []int{0, 4, 5}, got.Nodes)
	require.Equal(t, 9.6, got.Cost)
	require.Len(t, got.Legs, 2)
	require.Equal(t, 4, got.Legs[0].To)
}

func TestSolve_MetricsFileOnFailure(t *testing.T) {
	req := exampleRequest()
	req.Source, req.Destination = 5, 0

	path := filepath.Join(t.TempDir(), "metrics.prom")
	var buf bytes.Buffer
	err := solve(&buf, req, nil, false, path)
	require.ErrorIs(t, err, route.ErrUnreachable)
	require.Empty(t, buf.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `cheaproute_queries_total{outcome="unreachable"} 1`)
}

func TestRunRoute_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "square.yaml")
	doc := `
graph:
  - [0, 10, 5, 0]
  - [10, 0, 0, 20]
  - [5, 0, 0, 30]
  - [0, 20, 30, 0]
tolls: [10, 20, 5, 5]
source: 0
destination: 3
unit_price: 5
efficiency: 2
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	metricsPath := filepath.Join(dir, "out.prom")
	require.NoError(t, newApp().Run([]string{
		"cheaproute", "--debuglevel=off", "--metricsfile", metricsPath,
		"route", "--file", path, "--tollmode", "arrival",
	}))

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	require.Contains(t, string(data), `cheaproute_queries_total{outcome="ok"} 1`)

	err = newApp().Run([]string{"cheaproute", "route"})
	require.ErrorContains(t, err, "problem file required")

	err = newApp().Run([]string{"cheaproute", "route", "--dest", "9", path})
	require.ErrorIs(t, err, route.ErrInvalidInput)
}
