// SPDX-License-Identifier: MIT
// Package: chromatic/composition
//
// generator.go — enumeration of the compositions of n.

package composition

import "sync"

// Generator enumerates all compositions of n and memoizes them per n.
// Cached slices are never handed out; All returns a fresh copy of the
// slice header list (the compositions themselves are immutable values).
//
// A Generator is safe for concurrent use. Entries are inserted under the
// write lock once and read under the read lock afterwards.
type Generator struct {
	mu    sync.RWMutex
	cache map[int][]Composition
}

// NewGenerator returns an empty, isolated cache.
func NewGenerator() *Generator {
	return &Generator{cache: make(map[int][]Composition)}
}

// DefaultGenerator is the process-lifetime cache used by the package-level
// All. It is never cleared.
var DefaultGenerator = NewGenerator()

// All returns every composition of n using DefaultGenerator.
func All(n int) []Composition { return DefaultGenerator.All(n) }

// All returns every composition of n:
//   - n < 0: none;
//   - n = 0: exactly one, the empty composition;
//   - n ≥ 1: 2^(n−1) compositions.
//
// Order: (n) first, then for k = 1..n−1 every composition of k with n−k
// prepended, so All(3) = (3), (2,1), (1,2), (1,1,1).
func (g *Generator) All(n int) []Composition {
	if n < 0 {
		return nil
	}

	return cloneList(g.all(n))
}

// Len reports how many sizes are currently cached.
func (g *Generator) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.cache)
}

// all returns the cached slice for n, computing and committing it on miss.
// Callers must not mutate the result.
//
// Steps:
//  1. Serve from the cache under the read lock.
//  2. Otherwise list (n) first, then for k = 1..n−1 every composition of k
//     with n−k prepended, recursing into the cache for k.
//  3. Commit; the first committed entry wins.
//
// This yields 2^(n−1) compositions for n ≥ 1.
// Complexity: O(2^n) time and space.
func (g *Generator) all(n int) []Composition {
	g.mu.RLock()
	list, ok := g.cache[n]
	g.mu.RUnlock()
	if ok {
		return list
	}

	// Compute outside the lock; recursion re-enters all() for k < n.
	if n == 0 {
		list = []Composition{Empty()}
	} else {
		list = make([]Composition, 0, 1<<(n-1))
		list = append(list, Composition{parts: []int{n}, size: n})
		for k := 1; k < n; k++ {
			for _, alpha := range g.all(k) {
				list = append(list, alpha.prepend(n-k))
			}
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	// Another goroutine may have committed first; keep the first entry.
	if prev, ok := g.cache[n]; ok {
		return prev
	}
	g.cache[n] = list

	return list
}

func cloneList(in []Composition) []Composition {
	out := make([]Composition, len(in))
	copy(out, in)

	return out
}
