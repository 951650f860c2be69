// SPDX-License-Identifier: MIT
// Package: chromatic/builder
//
// api.go — Constructor type and BuildGraph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/chromatic/core"
)

// Constructor mutates g according to cfg.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph from gopts and applies each constructor in
// order with the configuration resolved from bopts.
//
// Steps:
//  1. g := core.NewGraph(gopts...).
//  2. cfg := newBuilderConfig(bopts...).
//  3. Apply constructors; a nil one yields ErrConstructFailed, the first
//     error aborts.
//
// Errors are wrapped as "BuildGraph: ...".
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)
	for i, c := range cons {
		if c == nil {
			return nil, fmt.Errorf("%s: constructor %d is nil: %w", methodBuildGraph, i, ErrConstructFailed)
		}
		if err := c(g, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuildGraph, err)
		}
	}

	return g, nil
}
