// SPDX-License-Identifier: MIT
// Package: chromatic/dfs
//
// dfs.go — recursive depth-first search over core.Graph.

package dfs

import (
	"fmt"

	"github.com/katalvlaran/chromatic/core"
)

// walker encapsulates the state of one traversal.
type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
}

// DFS performs depth-first search on g from startID, or over the whole
// forest when WithFullTraversal is given (startID is then ignored).
//
// Steps:
//  1. Reject a nil graph (ErrGraphNil) and resolve options.
//  2. In single-source mode, require startID to exist.
//  3. Traverse from startID, or from every unvisited vertex in sorted
//     order, recording one root per tree.
//
// On error the partial result is returned alongside it.
// Complexity: O(V + E·log E).
func DFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !o.FullTraversal && !g.HasVertex(startID) {
		return nil, fmt.Errorf("dfs: %q: %w", startID, ErrStartVertexNotFound)
	}

	vertices := g.Vertices()
	res := &Result{
		Order:   make([]string, 0, len(vertices)),
		Depth:   make(map[string]int, len(vertices)),
		Parent:  make(map[string]string, len(vertices)),
		Visited: make(map[string]bool, len(vertices)),
	}
	w := &walker{graph: g, opts: o, res: res}

	roots := []string{startID}
	if o.FullTraversal {
		roots = vertices
	}
	for _, v := range roots {
		if res.Visited[v] {
			continue
		}
		res.Roots = append(res.Roots, v)
		if err := w.traverse(v, 0); err != nil {
			return res, err
		}
	}

	return res, nil
}

// traverse visits id at the given depth and recurses into unvisited
// neighbors across the accepted edges. Self-loops never lead anywhere new.
func (w *walker) traverse(id string, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%q): %w", id, err)
	}
	for _, e := range nbs {
		if e.IsLoop() {
			continue
		}
		if w.opts.FilterEdge != nil && !w.opts.FilterEdge(e) {
			continue
		}
		next := e.Other(id)
		if w.res.Visited[next] {
			continue
		}
		w.res.Parent[next] = id
		if err := w.traverse(next, depth+1); err != nil {
			return err
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
