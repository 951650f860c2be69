// SPDX-License-Identifier: MIT
// Package: chromatic/families
//
// config.go — resolved constructor configuration.

package families

import "github.com/katalvlaran/chromatic/setcomposition"

// config aggregates the knobs shared by all constructors. It is passed by
// value once resolved.
//
// Defaults:
//   - labelFn   = i ↦ i+1
//   - generator = setcomposition.DefaultGenerator
type config struct {
	labelFn   LabelFn
	generator *setcomposition.Generator
}

// newConfig applies opts over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		labelFn:   oneBased,
		generator: setcomposition.DefaultGenerator,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func oneBased(i int) int { return i + 1 }

// labels returns labelFn(0..n−1).
func (c config) labels(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = c.labelFn(i)
	}

	return out
}
