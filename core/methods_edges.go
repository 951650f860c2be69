// SPDX-License-Identifier: MIT
// Package: chromatic/core
//
// methods_edges.go — edge lifecycle and queries, plus nextEdgeID.
//
// Determinism:
//   - Edges() returns edges in creation order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).

package core

import (
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix of edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge joins from and to with a new undirected edge and returns its ID.
// Missing endpoints are created.
//
// Steps:
//  1. Validate IDs and the loop policy.
//  2. Under the write lock, ensure both endpoints exist.
//  3. Check the multi-edge policy against adjacency[from][to].
//  4. Issue the next edge ID and store the edge.
//  5. Register the edge under adjacency[from][to] and, for distinct
//     endpoints, under the mirror adjacency[to][from].
//
// Errors: ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	eid, seq := g.nextEdgeID()
	e := &Edge{ID: eid, From: from, To: to, seq: seq}
	g.edges[eid] = e

	g.link(from, to, eid)
	if from != to {
		g.link(to, from, eid)
	}

	return eid, nil
}

// link registers eid under adjacency[u][v]; the caller holds the write lock.
func (g *Graph) link(u, v, eid string) {
	bucket := g.adjacency[u][v]
	if bucket == nil {
		bucket = make(map[string]struct{})
		g.adjacency[u][v] = bucket
	}
	bucket[eid] = struct{}{}
}

// HasEdge reports whether at least one edge joins u and v.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	if u == "" || v == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[u][v]) > 0
}

// Edges returns all edges in creation order.
// Complexity: O(E·log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortBySeq(out)

	return out
}

// EdgeCount returns |E|.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// nextEdgeID issues the next sequence number and its ID; the caller holds
// the write lock.
func (g *Graph) nextEdgeID() (string, uint64) {
	g.lastSeq++
	buf := make([]byte, 0, 8)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.lastSeq, 10)

	return string(buf), g.lastSeq
}

// sortBySeq orders edges by creation.
func sortBySeq(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].seq < es[j].seq })
}
