// Package config loads routing problems from YAML files.
//
// A problem file looks like:
//
//	graph:
//	  - [0, 10, 5, 0]
//	  - [10, 0, 0, 20]
//	  - [5, 0, 0, 30]
//	  - [0, 20, 30, 0]
//	tolls: [10, 20, 5, 5]
//	source: 0
//	destination: 3
//	unit_price: 5
//	efficiency: 2
//	toll_mode: departure
//
// Unknown keys are rejected. Structural checks beyond YAML typing are left
// to route.Validate.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/zambonin/villedieu/route"
	"github.com/zambonin/villedieu/tariff"
	"gopkg.in/yaml.v3"
)

// ErrMissingField indicates that a required key is absent from the file.
var ErrMissingField = errors.New("config: missing required field")

// Problem is the on-disk form of one routing query.
type Problem struct {
	Graph       [][]float64 `yaml:"graph"`
	Tolls       []float64   `yaml:"tolls"`
	Source      *int        `yaml:"source"`
	Destination *int        `yaml:"destination"`
	UnitPrice   *float64    `yaml:"unit_price"`
	Efficiency  *float64    `yaml:"efficiency"`
	TollMode    string      `yaml:"toll_mode,omitempty"`
}

// LoadProblem reads and parses the problem file at path.
func LoadProblem(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	p, err := ParseProblem(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// ParseProblem decodes a single YAML document into a Problem.
func ParseProblem(data []byte) (*Problem, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Problem
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrMissingField)
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := p.checkRequired(); err != nil {
		return nil, err
	}

	return &p, nil
}

func (p *Problem) checkRequired() error {
	switch {
	case p.Graph == nil:
		return fmt.Errorf("%w: graph", ErrMissingField)
	case p.Tolls == nil:
		return fmt.Errorf("%w: tolls", ErrMissingField)
	case p.Source == nil:
		return fmt.Errorf("%w: source", ErrMissingField)
	case p.Destination == nil:
		return fmt.Errorf("%w: destination", ErrMissingField)
	case p.UnitPrice == nil:
		return fmt.Errorf("%w: unit_price", ErrMissingField)
	case p.Efficiency == nil:
		return fmt.Errorf("%w: efficiency", ErrMissingField)
	}

	return nil
}

// Request converts p into a route query and the route options it implies.
func (p *Problem) Request() (route.Request, []route.Option, error) {
	if err := p.checkRequired(); err != nil {
		return route.Request{}, nil, err
	}
	mode, err := tariff.ParseTollMode(p.TollMode)
	if err != nil {
		return route.Request{}, nil, fmt.Errorf("config: %w", err)
	}

	req := route.Request{
		Distances:   p.Graph,
		Tolls:       p.Tolls,
		Source:      *p.Source,
		Destination: *p.Destination,
		UnitPrice:   *p.UnitPrice,
		Efficiency:  *p.Efficiency,
	}

	return req, []route.Option{route.WithTollMode(mode)}, nil
}
