// SPDX-License-Identifier: MIT
// Package: chromatic/chromatic
//
// options.go — functional options resolved into a per-call config.

package chromatic

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/chromatic/setcomposition"
)

// Option configures a computation.
type Option func(*config)

// config is resolved once per call.
//
// Defaults:
//   - validate        = true
//   - requireNonEmpty = false
//   - generator       = setcomposition.DefaultGenerator
//   - logger          = discards everything
type config struct {
	validate        bool
	requireNonEmpty bool
	generator       *setcomposition.Generator
	logger          *slog.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		validate:  true,
		generator: setcomposition.DefaultGenerator,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRequireNonEmpty rejects the empty matroid with ErrEmptyGroundSet.
func WithRequireNonEmpty() Option {
	return func(c *config) { c.requireNonEmpty = true }
}

// WithoutValidation skips the exhaustive rank-axiom check. The caller
// vouches for the oracle.
func WithoutValidation() Option {
	return func(c *config) { c.validate = false }
}

// WithGenerator sets the cache that enumerates set compositions. Panics on nil.
func WithGenerator(g *setcomposition.Generator) Option {
	if g == nil {
		panic("chromatic: WithGenerator(nil)")
	}

	return func(c *config) { c.generator = g }
}

// WithLogger routes debug records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("chromatic: WithLogger(nil)")
	}

	return func(c *config) { c.logger = l }
}
