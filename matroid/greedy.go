// SPDX-License-Identifier: MIT
// Package: chromatic/matroid
//
// greedy.go — maximum-weight bases and their uniqueness.

package matroid

import "sort"

// Greedy returns a maximum-weight basis of o, where weight[i] is the weight
// of position i. Positions are scanned by decreasing weight, ties broken by
// position, and kept when they raise the rank, the same way Kruskal grows a
// spanning forest.
//
// Steps:
//  1. Order positions by decreasing weight (stable, so ties keep position
//     order).
//  2. Walk the order and keep e whenever r(B + e) = |B| + 1.
//
// The result is a basis for any weights; it has maximum weight because
// matroids are exactly the set systems on which greedy is optimal.
// Complexity: O(n·log n) plus n rank queries.
func Greedy(o Oracle, weight []int) Subset {
	// 1. Decreasing weight, stable on position.
	order := make([]int, len(weight))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return weight[order[i]] > weight[order[j]] })

	// 2. Grow an independent set.
	var b Subset
	size := 0
	for _, e := range order {
		if o.Rank(b.With(e)) == size+1 {
			b = b.With(e)
			size++
		}
	}

	return b
}

// UniqueMaxWeightBasis returns the greedy basis B and whether it is the only
// basis of maximum weight. B is unique exactly when every single exchange
// B − f + e that is again a basis strictly loses weight, w(f) > w(e).
//
// Steps:
//  1. B = Greedy(o, weight).
//  2. For each f ∈ B and e ∉ B with w(e) ≥ w(f), test whether B − f + e
//     is a basis; any such exchange ties or beats B, so B is not unique.
//  3. Otherwise B is the unique maximum.
//
// Checking single exchanges suffices: by basis exchange, any other basis
// B′ can be reached from B through a sequence of exchanges, and one of the
// first ones out of B must not lose weight if w(B′) ≥ w(B).
// Complexity: O(r·n) rank queries after Greedy.
func UniqueMaxWeightBasis(o Oracle, weight []int) (Subset, bool) {
	b := Greedy(o, weight)
	r := b.Len()
	n := len(weight)
	for _, f := range b.Positions() {
		rest := b.Without(f)
		for e := 0; e < n; e++ {
			if b.Has(e) || weight[f] > weight[e] {
				continue
			}
			if o.Rank(rest.With(e)) == r {
				return b, false
			}
		}
	}

	return b, true
}
