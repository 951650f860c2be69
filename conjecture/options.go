// SPDX-License-Identifier: MIT
// Package: chromatic/conjecture
//
// options.go — functional options for the matrix builders.

package conjecture

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/chromatic/setcomposition"
)

// Option configures a matrix builder.
type Option func(*config)

// config defaults: DefaultGenerator and a discarding logger.
type config struct {
	generator *setcomposition.Generator
	logger    *slog.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		generator: setcomposition.DefaultGenerator,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithGenerator sets the set composition cache. Panics on nil.
func WithGenerator(g *setcomposition.Generator) Option {
	if g == nil {
		panic("conjecture: WithGenerator(nil)")
	}

	return func(c *config) { c.generator = g }
}

// WithLogger routes progress records to l at Debug level. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("conjecture: WithLogger(nil)")
	}

	return func(c *config) { c.logger = l }
}
