// SPDX-License-Identifier: MIT
// Package: chromatic/setcomposition
//
// shuffle.go — memoized quasi-shuffles of set compositions on disjoint
// ground sets.

package setcomposition

import (
	"fmt"
	"sort"
	"sync"
)

const methodQuasiShuffles = "QuasiShuffles"

// Term pairs a set composition with a positive multiplicity.
type Term struct {
	SetComposition SetComposition
	Multiplicity   int64
}

// Shuffler memoizes quasi-shuffle products of standardized operand pairs.
// It is safe for concurrent use.
type Shuffler struct {
	mu    sync.RWMutex
	cache map[string][]Term
}

// NewShuffler returns an empty, isolated memo cache.
func NewShuffler() *Shuffler {
	return &Shuffler{cache: make(map[string][]Term)}
}

// DefaultShuffler backs the package-level QuasiShuffles and Shuffles. It
// lives for the whole process and is never cleared.
var DefaultShuffler = NewShuffler()

// QuasiShuffles returns the quasi-shuffle of q and t using DefaultShuffler.
func QuasiShuffles(q, t SetComposition) ([]Term, error) {
	return DefaultShuffler.QuasiShuffles(q, t)
}

// Shuffles returns the merge-free shuffle of q and t using DefaultShuffler.
func Shuffles(q, t SetComposition) ([]Term, error) {
	return DefaultShuffler.Shuffles(q, t)
}

// QuasiShuffles returns every set composition obtained by interleaving the
// blocks of q and t, where a front block of each may also be merged into
// their union. Ground sets must be disjoint. Results carry summed
// multiplicities and are sorted by Compare.
func (s *Shuffler) QuasiShuffles(q, t SetComposition) ([]Term, error) {
	if err := checkDisjoint(q, t); err != nil {
		return nil, fmt.Errorf("%s: %w", methodQuasiShuffles, err)
	}

	return s.product(q, t, true), nil
}

// Shuffles is QuasiShuffles without merging: C(|q|+|t|, |q|) terms, each of
// multiplicity one.
func (s *Shuffler) Shuffles(q, t SetComposition) ([]Term, error) {
	if err := checkDisjoint(q, t); err != nil {
		return nil, fmt.Errorf("Shuffles: %w", err)
	}

	return s.product(q, t, false), nil
}

// Len reports how many standardized pairs are cached.
func (s *Shuffler) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.cache)
}

// checkDisjoint merges the two sorted ground sets looking for a common label.
func checkDisjoint(q, t SetComposition) error {
	i, j := 0, 0
	for i < len(q.ground) && j < len(t.ground) {
		switch {
		case q.ground[i] < t.ground[j]:
			i++
		case q.ground[i] > t.ground[j]:
			j++
		default:
			return fmt.Errorf("label %d in both operands: %w", q.ground[i], ErrOverlappingGroundSets)
		}
	}

	return nil
}

// product standardizes the operands, looks the pair up and relabels the
// cached terms back onto the caller's labels. The returned slice is fresh.
//
// Steps:
//  1. An empty operand is the unit.
//  2. Standardize q onto 1..m and t onto m+1..m+k; back[x−1] is the
//     caller's label of standardized x.
//  3. Fetch the canonical product of the standardized pair.
//  4. Relabel every term through back and sort by Compare.
//
// Standardizing first means (1|2)·(3) and (5|7)·(9) share one cache entry.
func (s *Shuffler) product(q, t SetComposition, merge bool) []Term {
	if q.IsEmpty() {
		return []Term{{SetComposition: t, Multiplicity: 1}}
	}
	if t.IsEmpty() {
		return []Term{{SetComposition: q, Multiplicity: 1}}
	}

	// 2. Standardize both operands.
	m := len(q.ground)
	sq, st := q.standardize(1), t.standardize(m+1)
	back := make([]int, 0, m+len(t.ground))
	back = append(back, q.ground...)
	back = append(back, t.ground...)

	// 3-4. Canonical product, relabelled back.
	canonical := s.canonical(sq, st, merge)
	out := make([]Term, len(canonical))
	for i, term := range canonical {
		out[i] = Term{
			SetComposition: term.SetComposition.apply(func(x int) int { return back[x-1] }),
			Multiplicity:   term.Multiplicity,
		}
	}
	sortTerms(out)

	return out
}

// canonical computes the product of a standardized pair: q on 1..m and t
// on m+1..m+k. Cached slices must not be mutated.
//
// Steps:
//  1. Look the pair up under the read lock.
//  2. With A = first(q) and B = first(t), recurse through product so the
//     suffixes are standardized again:
//     A before qs(rest(q), t), B before qs(q, rest(t)) and, when merging,
//     A∪B before qs(rest(q), rest(t)).
//  3. Sum equal set compositions, sort, and publish; first writer wins.
//
// Complexity: each standardized suffix pair is computed once per
// Shuffler; the number of terms grows like the Delannoy numbers in the
// block counts.
func (s *Shuffler) canonical(q, t SetComposition, merge bool) []Term {
	key := q.Key() + "*" + t.Key()
	if !merge {
		key = q.Key() + "#" + t.Key()
	}
	s.mu.RLock()
	cached, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return cached
	}

	// 2. Split on the front blocks.
	a, b := q.blocks[0], t.blocks[0]
	qRest, tRest := q.Rest(), t.Rest()
	acc := newAccumulator()
	for _, term := range s.product(qRest, t, merge) {
		acc.add(term.SetComposition.prepend(a), term.Multiplicity)
	}
	for _, term := range s.product(q, tRest, merge) {
		acc.add(term.SetComposition.prepend(b), term.Multiplicity)
	}
	if merge {
		union := mergeSorted(a, b)
		for _, term := range s.product(qRest, tRest, merge) {
			acc.add(term.SetComposition.prepend(union), term.Multiplicity)
		}
	}
	// 3. Publish.
	result := acc.terms()

	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.cache[key]; ok {
		return prev
	}
	s.cache[key] = result

	return result
}

// accumulator sums multiplicities of equal set compositions.
type accumulator struct {
	index map[string]int
	list  []Term
}

func newAccumulator() *accumulator {
	return &accumulator{index: make(map[string]int)}
}

func (acc *accumulator) add(sc SetComposition, m int64) {
	k := sc.Key()
	if i, ok := acc.index[k]; ok {
		acc.list[i].Multiplicity += m
		return
	}
	acc.index[k] = len(acc.list)
	acc.list = append(acc.list, Term{SetComposition: sc, Multiplicity: m})
}

func (acc *accumulator) terms() []Term {
	sortTerms(acc.list)

	return acc.list
}

func sortTerms(list []Term) {
	sort.Slice(list, func(i, j int) bool {
		return Compare(list[i].SetComposition, list[j].SetComposition) < 0
	})
}
