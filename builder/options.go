// SPDX-License-Identifier: MIT
// Package: chromatic/builder
//
// options.go — functional options for BuildGraph.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme names vertex i as fn(i). Panics on nil fn.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand installs an explicit RNG. Panics on nil r.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed installs rand.New(rand.NewSource(seed)).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}
