// SPDX-License-Identifier: MIT
// Package: chromatic/setcomposition
//
// generator.go — memoized enumeration of all set compositions of [n].

package setcomposition

import (
	"sync"

	"github.com/katalvlaran/chromatic/internal/combin"
)

// Generator enumerates all set compositions of {1,…,n} and memoizes them
// per n. Safe for concurrent use; each entry is committed once.
type Generator struct {
	mu    sync.RWMutex
	cache map[int][]SetComposition
}

// NewGenerator returns an empty, isolated cache.
func NewGenerator() *Generator {
	return &Generator{cache: make(map[int][]SetComposition)}
}

// DefaultGenerator is the process-lifetime cache behind the package-level All.
var DefaultGenerator = NewGenerator()

// All returns every set composition of {1,…,n} using DefaultGenerator.
func All(n int) []SetComposition { return DefaultGenerator.All(n) }

// All returns every set composition of {1,…,n}: none for n < 0, the empty
// one for n = 0, Fubini(n) of them otherwise.
//
// Order: the single block first; then for each size s = 1..n−1 of the
// remainder, each s-subset R of {1,…,n} in lexicographic order, each set
// composition of {1,…,s} relabeled onto R and prefixed by the complement.
func (g *Generator) All(n int) []SetComposition {
	if n < 0 {
		return nil
	}
	list := g.all(n)
	out := make([]SetComposition, len(list))
	copy(out, list)

	return out
}

// Len reports how many sizes are cached.
func (g *Generator) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.cache)
}

// all returns the cached list for n, building it on a miss.
//
// Steps:
//  1. Serve from the cache under the read lock.
//  2. n = 0: the empty set composition.
//  3. Otherwise start with the single block [n]. For each remainder size
//     s = 1..n−1 and each s-subset R of [n] (lexicographic), prefix the
//     complement of R to every set composition of [s] (recursively cached)
//     relabelled onto R.
//  4. Commit; a concurrent builder that committed first wins.
//
// The count satisfies Fubini(n) = Σ_{s<n} C(n, s)·Fubini(s).
// Complexity: O(Fubini(n)·n) time and space.
func (g *Generator) all(n int) []SetComposition {
	// 1. Cached?
	g.mu.RLock()
	list, ok := g.cache[n]
	g.mu.RUnlock()
	if ok {
		return list
	}

	// 2-3. Build.
	if n == 0 {
		list = []SetComposition{Empty()}
	} else {
		ground := make([]int, n)
		for i := range ground {
			ground[i] = i + 1
		}
		list = []SetComposition{{blocks: [][]int{cloneInts(ground)}, ground: ground}}
		for size := 1; size < n; size++ {
			smaller := g.all(size)
			combin.ForEach(n, size, func(rest []int) {
				first := complement(n, rest)
				for _, sc := range smaller {
					moved := sc.apply(func(x int) int { return rest[x-1] })
					list = append(list, moved.prepend(cloneInts(first)))
				}
			})
		}
	}

	// 4. Commit.
	g.mu.Lock()
	defer g.mu.Unlock()
	if prev, ok := g.cache[n]; ok {
		return prev
	}
	g.cache[n] = list

	return list
}

// complement returns {1,…,n} \ sub for a sorted sub.
func complement(n int, sub []int) []int {
	out := make([]int, 0, n-len(sub))
	j := 0
	for x := 1; x <= n; x++ {
		if j < len(sub) && sub[j] == x {
			j++
			continue
		}
		out = append(out, x)
	}

	return out
}
