// SPDX-License-Identifier: MIT
// Package: chromatic/composition
//
// shuffle.go — memoized shuffle and quasi-shuffle (stuffle) products.

package composition

import (
	"sort"
	"sync"
)

// Term pairs a composition with a positive multiplicity.
type Term struct {
	Composition  Composition
	Multiplicity int64
}

// Shuffler memoizes quasi-shuffle products of compositions keyed by the
// ordered operand pair. It is safe for concurrent use.
type Shuffler struct {
	mu    sync.RWMutex
	cache map[string][]Term
}

// NewShuffler returns an empty, isolated memo cache.
func NewShuffler() *Shuffler {
	return &Shuffler{cache: make(map[string][]Term)}
}

// DefaultShuffler backs the package-level QuasiShuffles and Shuffles.
var DefaultShuffler = NewShuffler()

// QuasiShuffles returns the stuffle of a and b using DefaultShuffler.
func QuasiShuffles(a, b Composition) []Term { return DefaultShuffler.QuasiShuffles(a, b) }

// Shuffles returns the merge-free shuffle of a and b using DefaultShuffler.
func Shuffles(a, b Composition) []Term { return DefaultShuffler.Shuffles(a, b) }

// QuasiShuffles computes
//
//	qs(∅, t) = t,  qs(q, ∅) = q,
//	qs(x·q, y·t) = x·qs(q, y·t) + y·qs(x·q, t) + (x+y)·qs(q, t)
//
// and returns the distinct resulting compositions with summed
// multiplicities, sorted by Compare. The returned slice is a copy; the
// cached one is shared.
func (s *Shuffler) QuasiShuffles(a, b Composition) []Term {
	return cloneTerms(s.compute(a, b, true))
}

// Shuffles is QuasiShuffles without the merge branch: the ordinary
// shuffle product. Σ multiplicities = C(|a|+|b|, |a|).
func (s *Shuffler) Shuffles(a, b Composition) []Term {
	return cloneTerms(s.compute(a, b, false))
}

// compute evaluates the recurrence with memoization.
//
// Steps:
//  1. An empty operand is the unit: return the other one, multiplicity 1.
//  2. Look the ordered pair (a, b, merge) up under the read lock.
//  3. Otherwise split off the first parts x of a and y of b and recurse:
//     x before qs(rest(a), b), y before qs(a, rest(b)) and, when merging,
//     x+y before qs(rest(a), rest(b)).
//  4. Sum equal compositions, sort, and publish under the write lock.
//     A concurrent writer that got there first wins, so every caller
//     sees one shared slice per key.
//
// Complexity: O(P·T) over the P = (|a|+1)(|b|+1) suffix pairs, T terms per
// pair; each pair is computed once per Shuffler.
func (s *Shuffler) compute(a, b Composition, merge bool) []Term {
	// 1. Base cases: the empty composition is the unit.
	if a.IsEmpty() {
		return []Term{{Composition: b, Multiplicity: 1}}
	}
	if b.IsEmpty() {
		return []Term{{Composition: a, Multiplicity: 1}}
	}

	// 2. Cached?
	key := pairKey(a, b, merge)
	s.mu.RLock()
	cached, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return cached
	}

	// 3. Three-way split on the leading parts.
	x, y := a.parts[0], b.parts[0]
	aRest, bRest := a.Rest(), b.Rest()
	acc := newAccumulator()
	for _, t := range s.compute(aRest, b, merge) {
		acc.add(t.Composition.prepend(x), t.Multiplicity)
	}
	for _, t := range s.compute(a, bRest, merge) {
		acc.add(t.Composition.prepend(y), t.Multiplicity)
	}
	if merge {
		for _, t := range s.compute(aRest, bRest, merge) {
			acc.add(t.Composition.prepend(x+y), t.Multiplicity)
		}
	}
	// 4. Publish; first writer wins.
	result := acc.terms()

	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.cache[key]; ok {
		return prev
	}
	s.cache[key] = result

	return result
}

// pairKey separates the operands with "*" for the stuffle and "#" for the
// shuffle, so both products share one cache.
func pairKey(a, b Composition, merge bool) string {
	sep := "*"
	if !merge {
		sep = "#"
	}

	return a.Key() + sep + b.Key()
}

// accumulator sums multiplicities of equal compositions.
type accumulator struct {
	index map[string]int
	list  []Term
}

func newAccumulator() *accumulator {
	return &accumulator{index: make(map[string]int)}
}

func (acc *accumulator) add(c Composition, m int64) {
	k := c.Key()
	if i, ok := acc.index[k]; ok {
		acc.list[i].Multiplicity += m
		return
	}
	acc.index[k] = len(acc.list)
	acc.list = append(acc.list, Term{Composition: c, Multiplicity: m})
}

func (acc *accumulator) terms() []Term {
	sort.Slice(acc.list, func(i, j int) bool {
		return Compare(acc.list[i].Composition, acc.list[j].Composition) < 0
	})

	return acc.list
}

func cloneTerms(in []Term) []Term {
	out := make([]Term, len(in))
	copy(out, in)

	return out
}
