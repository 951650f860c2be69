// SPDX-License-Identifier: MIT
// Package: chromatic/families
//
// options.go — functional options.

package families

import "github.com/katalvlaran/chromatic/setcomposition"

// Option customizes a constructor by mutating its config before the
// matroid is built. Options apply in order; the last one wins.
type Option func(*config)

// LabelFn maps a zero-based element position to its label. It must be
// injective on the positions used.
type LabelFn func(idx int) int

// WithLabelFn sets the element labelling. Panics on nil.
func WithLabelFn(fn LabelFn) Option {
	if fn == nil {
		panic("families: WithLabelFn(nil)")
	}

	return func(c *config) { c.labelFn = fn }
}

// WithOffset labels position i as offset+i.
func WithOffset(offset int) Option {
	return WithLabelFn(func(i int) int { return offset + i })
}

// WithGenerator sets the set composition cache used by NestedDoubleChains.
// Panics on nil.
func WithGenerator(g *setcomposition.Generator) Option {
	if g == nil {
		panic("families: WithGenerator(nil)")
	}

	return func(c *config) { c.generator = g }
}
