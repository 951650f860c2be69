// SPDX-License-Identifier: MIT
// Package: chromatic/dfs
//
// Package dfs implements depth-first search (single-source and forest) on
// core.Graph and the connected-component count built on it.
//
// Key features:
//   - DFS(g, startID, opts...): traverse from a root, or the whole forest
//     via WithFullTraversal.
//   - Components(g, opts...): vertex sets of the connected components.
//   - ComponentCount(g, opts...): their number, the quantity behind the
//     rank of a graphic matroid, r(S) = |V| − c(V, S).
//   - WithEdgeFilter restricts the traversal to a subset of the edges
//     without copying the graph.
//
// Complexity:
//
//   - Time:   O(V + E·log E) per traversal (neighbor lists are sorted).
//   - Memory: O(V) for the recursion stack and the result maps.
//
// Options:
//
//   - WithContext(ctx)       cancellation via context.Context.
//   - WithOnVisit(fn)        pre-order hook; an error aborts the traversal.
//   - WithEdgeFilter(fn)     follow only edges with fn(e) == true.
//   - WithFullTraversal()    restart from every unvisited vertex.
//
// Errors:
//
//   - ErrGraphNil             if g is nil.
//   - ErrStartVertexNotFound  if startID is missing in single-source mode.
//   - context.Canceled        if ctx is done.
//   - any error returned by OnVisit.
package dfs
