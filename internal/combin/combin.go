// SPDX-License-Identifier: MIT
// Package: chromatic/internal/combin
//
// Package combin enumerates the k-subsets of an n-set, the one
// combinatorial loop shared by the matroid, family, set composition and
// conjecture packages.
//
// Two encodings are offered:
//
//   - ForEach yields sorted index slices over {1,…,n} in lexicographic
//     order, the order the family and matrix listings are defined in.
//   - ForEachMask yields uint64 bitmasks over {0,…,n−1} in increasing
//     numeric order (Gosper's hack), the order of matroid.Subset listings.
//
// Both call nothing when k < 0 or k > n and call fn once, with the empty
// subset, when k = 0.
package combin

// MaxMaskWidth is the largest n ForEachMask accepts.
const MaxMaskWidth = 64

// ForEach calls fn with every k-subset of {1,…,n} as an increasing slice,
// in lexicographic order. The slice is reused between calls: fn must not
// retain it.
//
// Steps:
//  1. Start from [1, 2, …, k].
//  2. Find the rightmost position i that has not reached its maximum
//     n−k+i+1; stop when there is none.
//  3. Increment it and reset every later position to its predecessor + 1.
//
// Complexity: O(k) amortized per subset, C(n, k) subsets.
func ForEach(n, k int, fn func([]int)) {
	if k < 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i + 1
	}
	for {
		fn(idx)
		i := k - 1
		for i >= 0 && idx[i] == n-k+i+1 {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// ForEachMask calls fn with every k-subset of {0,…,n−1} as a bitmask, in
// increasing numeric order. n must not exceed MaxMaskWidth.
//
// Steps:
//  1. Start from the k lowest bits.
//  2. Gosper's hack: c = v & −v isolates the lowest set bit, r = v + c
//     carries the lowest run of ones one step left, and the ones shed by
//     the carry are re-packed at the bottom as ((r ^ v) >> 2) / c.
//  3. Stop past the top mask or when r wraps to 0 at n = 64.
//
// Complexity: O(1) per subset, C(n, k) subsets.
func ForEachMask(n, k int, fn func(uint64)) {
	if k < 0 || k > n || n > MaxMaskWidth {
		return
	}
	if k == 0 {
		fn(0)
		return
	}
	last := low(n)
	for v := low(k); v <= last; {
		fn(v)
		c := v & -v
		r := v + c
		if r == 0 {
			return
		}
		v = (((r ^ v) >> 2) / c) | r
	}
}

// low returns the mask of the n lowest bits.
func low(n int) uint64 {
	if n >= MaxMaskWidth {
		return ^uint64(0)
	}

	return uint64(1)<<uint(n) - 1
}
