// SPDX-License-Identifier: MIT
// Package: chromatic/matroid
//
// subset.go — bitmask subsets of the ground set.

package matroid

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/katalvlaran/chromatic/internal/combin"
)

// MaxGroundSet is the largest ground set a Subset can address.
const MaxGroundSet = 64

// Subset is a set of ground-set positions encoded as a bitmask.
type Subset uint64

// Full returns the subset {0,…,n−1}.
func Full(n int) Subset {
	if n >= MaxGroundSet {
		return ^Subset(0)
	}

	return Subset(1)<<uint(n) - 1
}

// Singleton returns {i}.
func Singleton(i int) Subset { return Subset(1) << uint(i) }

// Has reports whether position i is in s.
func (s Subset) Has(i int) bool { return s&(Subset(1)<<uint(i)) != 0 }

// With returns s ∪ {i}.
func (s Subset) With(i int) Subset { return s | Subset(1)<<uint(i) }

// Without returns s \ {i}.
func (s Subset) Without(i int) Subset { return s &^ (Subset(1) << uint(i)) }

// Len returns |s|.
func (s Subset) Len() int { return bits.OnesCount64(uint64(s)) }

// IsSubsetOf reports s ⊆ t.
func (s Subset) IsSubsetOf(t Subset) bool { return s&^t == 0 }

// Positions returns the members of s in increasing order.
func (s Subset) Positions() []int {
	out := make([]int, 0, s.Len())
	for v := uint64(s); v != 0; v &= v - 1 {
		out = append(out, bits.TrailingZeros64(v))
	}

	return out
}

// String renders s as "{0,2,5}" (positions, not labels).
func (s Subset) String() string {
	pos := s.Positions()
	parts := make([]string, len(pos))
	for i, p := range pos {
		parts[i] = strconv.Itoa(p)
	}

	return "{" + strings.Join(parts, ",") + "}"
}

// ForEachOfSize calls fn with every k-subset of {0,…,n−1} in increasing
// numeric order. Nothing is called when k < 0 or k > n.
// Complexity: O(1) per subset, C(n, k) subsets.
func ForEachOfSize(n, k int, fn func(Subset)) {
	combin.ForEachMask(n, k, func(v uint64) { fn(Subset(v)) })
}
