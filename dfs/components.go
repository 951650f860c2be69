// SPDX-License-Identifier: MIT
// Package: chromatic/dfs
//
// components.go — connected components through a full traversal.

package dfs

import (
	"sort"

	"github.com/katalvlaran/chromatic/core"
)

// Components returns the vertex sets of the connected components of g,
// each sorted, ordered by their smallest vertex. Options apply as in DFS;
// WithFullTraversal is implied.
//
// Steps:
//  1. Run DFS in full traversal mode.
//  2. Walk each visited vertex up its Parent chain to the tree root.
//  3. Group by root.
//
// Complexity: O(V·h + E·log E), h = height of the DFS forest.
func Components(g *core.Graph, opts ...Option) ([][]string, error) {
	res, err := DFS(g, "", append(opts, WithFullTraversal())...)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(res.Roots))
	out := make([][]string, len(res.Roots))
	for i, r := range res.Roots {
		index[r] = i
	}
	for v := range res.Visited {
		root := v
		for {
			p, ok := res.Parent[root]
			if !ok {
				break
			}
			root = p
		}
		i := index[root]
		out[i] = append(out[i], v)
	}
	for _, c := range out {
		sort.Strings(c)
	}

	return out, nil
}

// ComponentCount returns the number of connected components of g. Isolated
// vertices count as components of their own.
// Complexity: O(V + E·log E).
func ComponentCount(g *core.Graph, opts ...Option) (int, error) {
	res, err := DFS(g, "", append(opts, WithFullTraversal())...)
	if err != nil {
		return 0, err
	}

	return len(res.Roots), nil
}
