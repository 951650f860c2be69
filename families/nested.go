// SPDX-License-Identifier: MIT
// Package: chromatic/families
//
// nested.go — nested matroids and balanced double chains.

package families

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/chromatic/matroid"
)

const (
	methodNested             = "Nested"
	methodNestedDoubleChains = "NestedDoubleChains"
	methodLooplessNested     = "LooplessNested"
)

// DoubleChain describes a nested matroid ne(N, Rank, X, R): a strictly
// increasing chain of subsets X₁ ⊂ … ⊂ X_k = [N] of element numbers and
// strictly increasing ranks R₁ < … < R_k = Rank.
type DoubleChain struct {
	N    int
	Rank int
	X    [][]int
	R    []int
}

// String renders the chain as "ne(4,2,{1,2}⊂{1,2,3,4},(1,2))".
func (dc DoubleChain) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "ne(%d,%d,", dc.N, dc.Rank)
	for i, x := range dc.X {
		if i > 0 {
			sb.WriteString("⊂")
		}
		sb.WriteString("{" + joinInts(x) + "}")
	}
	sb.WriteString(",(" + joinInts(dc.R) + "))")

	return sb.String()
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, ",")
}

// Nested returns ne(n, r, X, R). The chain must satisfy:
//
//   - X is non-empty, X₁ ≠ ∅, X_k = [n], each Xᵢ ⊂ Xᵢ₊₁ strictly;
//   - len(R) = len(X), R strictly increasing within [0, n], R_k = r;
//   - |X₁| − r₁ > 0 when k > 1, the gaps |Xᵢ| − rᵢ strictly increase up
//     to level k−1 and do not decrease at the last step.
//
// Violations return ErrInvalidChain (or ErrInvalidParameter for n and r).
func Nested(n, r int, x [][]int, ranks []int, opts ...Option) (*matroid.BasisMatroid, error) {
	chain, err := validateChain(n, r, x, ranks)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNested, err)
	}

	return fromPredicate(methodNested, newConfig(opts...), n, r, func(s matroid.Subset) bool {
		for i, xi := range chain {
			if (s & xi).Len() > ranks[i] {
				return false
			}
		}
		return true
	})
}

// NestedFromChain is Nested(dc.N, dc.Rank, dc.X, dc.R).
func NestedFromChain(dc DoubleChain, opts ...Option) (*matroid.BasisMatroid, error) {
	return Nested(dc.N, dc.Rank, dc.X, dc.R, opts...)
}

// validateChain checks the chain conditions and returns X as Subsets.
//
// Steps:
//  1. Bounds on n and r, then shape: X non-empty, X₁ ≠ ∅, len(R) = len(X),
//     R_k = r.
//  2. Encode each Xᵢ; it must lie in [n] and strictly contain Xᵢ₋₁.
//  3. X_k = [n] and R strictly increasing in [0, n].
//  4. Gap conditions on gᵢ = |Xᵢ| − rᵢ: g₁ > 0 when k > 1, g strictly
//     increasing up to k−1, and g_{k−1} ≤ g_k.
func validateChain(n, r int, x [][]int, ranks []int) ([]matroid.Subset, error) {
	if n < 0 || r < 0 || r > n {
		return nil, fmt.Errorf("n=%d r=%d: %w", n, r, ErrInvalidParameter)
	}
	if n > matroid.MaxGroundSet {
		return nil, fmt.Errorf("n=%d: %w", n, matroid.ErrGroundSetTooLarge)
	}
	k := len(x)
	if k == 0 || len(x[0]) == 0 {
		return nil, fmt.Errorf("empty first set: %w", ErrInvalidChain)
	}
	if len(ranks) != k {
		return nil, fmt.Errorf("%d sets but %d ranks: %w", k, len(ranks), ErrInvalidChain)
	}
	if ranks[k-1] != r {
		return nil, fmt.Errorf("last rank %d != %d: %w", ranks[k-1], r, ErrInvalidChain)
	}

	chain := make([]matroid.Subset, k)
	for i, xi := range x {
		s, ok := positionsOf(n, xi)
		if !ok {
			return nil, fmt.Errorf("X%d=%v not a subset of [%d]: %w", i+1, xi, n, ErrInvalidChain)
		}
		chain[i] = s
		if i > 0 && (!chain[i-1].IsSubsetOf(s) || chain[i-1] == s) {
			return nil, fmt.Errorf("X%d ⊄ X%d strictly: %w", i, i+1, ErrInvalidChain)
		}
	}
	if chain[k-1] != matroid.Full(n) {
		return nil, fmt.Errorf("last set is not [%d]: %w", n, ErrInvalidChain)
	}
	for i, ri := range ranks {
		if ri < 0 || ri > n || (i > 0 && ri <= ranks[i-1]) {
			return nil, fmt.Errorf("rank chain %v: %w", ranks, ErrInvalidChain)
		}
	}

	gap := func(i int) int { return chain[i].Len() - ranks[i] }
	if k > 1 && gap(0) <= 0 {
		return nil, fmt.Errorf("level 1 has no room: %w", ErrInvalidChain)
	}
	for i := 0; i+1 < k-1; i++ {
		if gap(i) >= gap(i+1) {
			return nil, fmt.Errorf("level %d incompatible: %w", i+2, ErrInvalidChain)
		}
	}
	if k >= 2 && gap(k-2) > gap(k-1) {
		return nil, fmt.Errorf("last level incompatible: %w", ErrInvalidChain)
	}

	return chain, nil
}

// NestedDoubleChains lists the balanced double chains of [d], the data of
// every loopless nested matroid on d elements. For each set composition
// (P₁|…|P_k) of [d] whose blocks other than the last have at least two
// elements, Xᵢ = P₁ ∪ … ∪ Pᵢ and the rank increments rᵢ − rᵢ₋₁ range over
// [1, |Pᵢ|−1], except that the last increment may also equal |P_k|.
// Set compositions come from the configured generator in its order.
//
// Steps:
//  1. For every set composition (P₁|…|P_k) of [d], skip it when a block
//     before the last is a singleton (that level could not gain rank
//     without making its elements coloops).
//  2. Build the set chain Xᵢ = P₁ ∪ … ∪ Pᵢ, each sorted.
//  3. Grow rank chains level by level from a leading 0: at level i append
//     every r in (top, top+|Pᵢ|). Keep the chains one level short too.
//  4. Complete the short chains with the extra last increment |P_k|.
//  5. Emit one DoubleChain per rank chain, dropping the leading 0.
//
// Complexity: O(Fubini(d)·Π|Pᵢ|) chains in the worst case.
func NestedDoubleChains(d int, opts ...Option) ([]DoubleChain, error) {
	if d < 1 {
		return nil, fmt.Errorf("%s: d=%d: %w", methodNestedDoubleChains, d, ErrInvalidParameter)
	}
	cfg := newConfig(opts...)

	var out []DoubleChain
	for _, sc := range cfg.generator.All(d) {
		// 1. Only the last block may be a singleton.
		blocks := sc.Blocks()
		k := len(blocks)
		valid := true
		for _, b := range blocks[:k-1] {
			if len(b) == 1 {
				valid = false
				break
			}
		}
		if !valid {
			continue
		}

		// 2. Set chain.
		x := make([][]int, k)
		var acc []int
		for i, b := range blocks {
			acc = append(acc, b...)
			x[i] = sortedCopy(acc)
		}

		// 3. Rank chains with a leading 0, grown level by level.
		partial := [][]int{{0}}
		var beforeLast [][]int
		for i := 0; i < k; i++ {
			beforeLast = partial
			partial = nil
			for _, rs := range beforeLast {
				top := rs[len(rs)-1]
				for r := top + 1; r < top+len(blocks[i]); r++ {
					partial = append(partial, appendCopy(rs, r))
				}
			}
		}
		// 4. Full last increment.
		for _, rs := range beforeLast {
			partial = append(partial, appendCopy(rs, rs[len(rs)-1]+len(blocks[k-1])))
		}

		// 5. Emit.
		for _, rs := range partial {
			out = append(out, DoubleChain{N: d, Rank: rs[len(rs)-1], X: x, R: rs[1:]})
		}
	}

	return out, nil
}

// LooplessNested builds the matroid of every chain from NestedDoubleChains(d).
func LooplessNested(d int, opts ...Option) ([]*matroid.BasisMatroid, error) {
	chains, err := NestedDoubleChains(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodLooplessNested, err)
	}
	out := make([]*matroid.BasisMatroid, 0, len(chains))
	for _, dc := range chains {
		m, err := NestedFromChain(dc, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", methodLooplessNested, dc, err)
		}
		out = append(out, m)
	}

	return out, nil
}

func appendCopy(rs []int, r int) []int {
	out := make([]int, len(rs)+1)
	copy(out, rs)
	out[len(rs)] = r

	return out
}

func sortedCopy(in []int) []int {
	out := append([]int(nil), in...)
	sort.Ints(out)

	return out
}
