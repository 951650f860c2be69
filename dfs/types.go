// SPDX-License-Identifier: MIT
// Package: chromatic/dfs
//
// types.go — sentinel errors, traversal options and the result type.

package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/chromatic/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of a traversal.
type Option func(*Options)

// Options holds the configurable parameters of a traversal.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered.
	// Returning an error aborts the traversal with that error.
	OnVisit func(id string) error

	// FilterEdge, if non-nil, decides which edges may be followed.
	FilterEdge func(e *core.Edge) bool

	// FullTraversal restarts the search from every unvisited vertex in
	// sorted order, covering disconnected components.
	FullTraversal bool
}

// DefaultOptions returns a background context, no hooks, no filter and
// single-source mode.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the context. A nil context leaves Background in place.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithEdgeFilter restricts the traversal to the edges accepted by fn.
func WithEdgeFilter(fn func(e *core.Edge) bool) Option {
	return func(o *Options) { o.FilterEdge = fn }
}

// WithFullTraversal enables forest traversal.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []string

	// Depth maps each visited vertex to its tree depth.
	Depth map[string]int

	// Parent maps each visited vertex to the vertex it was discovered
	// from. Roots are absent.
	Parent map[string]string

	// Visited flags the vertices reached.
	Visited map[string]bool

	// Roots lists the root of every DFS tree in discovery order; in full
	// traversal mode there is one root per connected component.
	Roots []string
}
