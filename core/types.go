// SPDX-License-Identifier: MIT
// Package: chromatic/core
//
// types.go — Vertex, Edge, Graph, GraphOption, sentinel errors and the
// NewGraph constructor.
//
// Invariants:
//   - adjacency[u][v] holds the IDs of every edge joining u and v; an edge
//     between distinct vertices is registered under both adjacency[u][v]
//     and adjacency[v][u], a self-loop only under adjacency[u][u].
//   - edges and adjacency agree at all times (both change under mu).
//   - Edge.seq is strictly increasing in creation order.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an undirected edge between From and To.
//
// Edges handed out by a Graph are shared with its catalog and must be
// treated as read-only.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From is the first endpoint as given to AddEdge.
	From string

	// To is the second endpoint as given to AddEdge.
	To string

	// seq is the creation rank behind ID; it orders enumerations.
	seq uint64
}

// IsLoop reports From == To.
func (e *Edge) IsLoop() bool { return e.From == e.To }

// Other returns the endpoint of e opposite to id. For a self-loop it
// returns id itself.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is an undirected multigraph with optional self-loops.
type Graph struct {
	mu sync.RWMutex // guards every field below

	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	lastSeq    uint64              // last issued edge sequence number
	vertices   map[string]struct{} // vertex catalog
	edges      map[string]*Edge    // edge ID → Edge

	// adjacency[u][v][edgeID] = struct{}{}
	adjacency map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph. By default it rejects self-loops and
// parallel edges.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool { return g.allowMulti }
