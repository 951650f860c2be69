// SPDX-License-Identifier: MIT
// Package: chromatic/conjecture
//
// sets.go — the index sets: valid subsets, permutations and their set compositions.

package conjecture

import (
	"fmt"

	"github.com/katalvlaran/chromatic/internal/combin"
	"github.com/katalvlaran/chromatic/setcomposition"
)

// MaxDimension bounds d for the matrix builders: 9! columns is the
// practical ceiling for permutation-indexed matrices.
const MaxDimension = 9

func checkDimension(method string, d int) error {
	if d < 1 || d > MaxDimension {
		return fmt.Errorf("%s: d=%d not in [1,%d]: %w", method, d, MaxDimension, ErrInvalidDimension)
	}

	return nil
}

// FromSetToSetComposition maps S = {s₁ < … < s_k} ⊆ [d] with complement
// {t₁ < … < t_j} to the set composition
//
//	(t_j | … | t₂ | t₁,s_k | s_{k−1} | … | s₁).
//
// An empty complement gives (s_k|…|s₁); an empty S gives (t_j|…|t₁).
func FromSetToSetComposition(s []int, d int) (setcomposition.SetComposition, error) {
	if err := checkDimension(opFromSet, d); err != nil {
		return setcomposition.SetComposition{}, err
	}
	in := make([]bool, d+1)
	for _, x := range s {
		if x < 1 || x > d || in[x] {
			return setcomposition.SetComposition{}, fmt.Errorf("%s: %v in [%d]: %w", opFromSet, s, d, ErrInvalidSubset)
		}
		in[x] = true
	}

	var inside, outside []int // both descending
	for x := d; x >= 1; x-- {
		if in[x] {
			inside = append(inside, x)
		} else {
			outside = append(outside, x)
		}
	}

	var blocks [][]int
	switch {
	case len(outside) == 0:
		blocks = singletons(inside)
	case len(inside) == 0:
		blocks = singletons(outside)
	default:
		last := len(outside) - 1
		blocks = singletons(outside[:last])
		blocks = append(blocks, []int{outside[last], inside[0]})
		blocks = append(blocks, singletons(inside[1:])...)
	}

	return setcomposition.New(blocks...)
}

func singletons(xs []int) [][]int {
	out := make([][]int, len(xs))
	for i, x := range xs {
		out[i] = []int{x}
	}

	return out
}

// ValidSubsets returns the subsets A of [d] that index loopless Schubert
// matroids in the lower-bound matrix: [d] itself and every proper
// non-empty A whose maximum exceeds the minimum of its complement. They
// are ordered by size, then lexicographically.
func ValidSubsets(d int) ([][]int, error) {
	if err := checkDimension(opValidSubsets, d); err != nil {
		return nil, err
	}
	var out [][]int
	for k := 1; k <= d; k++ {
		combin.ForEach(d, k, func(a []int) {
			if k < d && a[k-1] < minMissing(a) {
				return
			}
			out = append(out, append([]int(nil), a...))
		})
	}

	return out, nil
}

// minMissing returns the least positive integer not in the sorted a.
func minMissing(a []int) int {
	m := 1
	for _, x := range a {
		if x != m {
			break
		}
		m++
	}

	return m
}

// Permutations returns the permutations of [d] in lexicographic order.
func Permutations(d int) ([][]int, error) {
	if err := checkDimension(opPermutations, d); err != nil {
		return nil, err
	}
	p := make([]int, d)
	for i := range p {
		p[i] = i + 1
	}
	var out [][]int
	for {
		out = append(out, append([]int(nil), p...))
		// next permutation
		i := d - 2
		for i >= 0 && p[i] > p[i+1] {
			i--
		}
		if i < 0 {
			return out, nil
		}
		j := d - 1
		for p[j] < p[i] {
			j--
		}
		p[i], p[j] = p[j], p[i]
		for l, r := i+1, d-1; l < r; l, r = l+1, r-1 {
			p[l], p[r] = p[r], p[l]
		}
	}
}

func checkPermutation(method string, perm []int) error {
	if len(perm) == 0 {
		return fmt.Errorf("%s: empty: %w", method, ErrInvalidPermutation)
	}
	seen := make([]bool, len(perm)+1)
	for _, x := range perm {
		if x < 1 || x > len(perm) || seen[x] {
			return fmt.Errorf("%s: %v: %w", method, perm, ErrInvalidPermutation)
		}
		seen[x] = true
	}

	return nil
}

// MinMaxSetComposition splits perm at its descents; each ascending run
// becomes a block: (2,3,1) → (2,3|1).
func MinMaxSetComposition(perm []int) (setcomposition.SetComposition, error) {
	if err := checkPermutation(opMinMax, perm); err != nil {
		return setcomposition.SetComposition{}, err
	}
	blocks := [][]int{{perm[0]}}
	for i := 1; i < len(perm); i++ {
		if perm[i] > perm[i-1] {
			blocks[len(blocks)-1] = append(blocks[len(blocks)-1], perm[i])
			continue
		}
		blocks = append(blocks, []int{perm[i]})
	}

	return setcomposition.New(blocks...)
}

// Signed is a set composition with its number of blocks, the exponent of
// its sign in AlternatingSum.
type Signed struct {
	SetComposition setcomposition.SetComposition
	Blocks         int
}

// SetCompositionsFromPermutation returns the 2^(d−1) set compositions
// obtained by cutting perm into consecutive blocks, in any position. For
// each cut pattern, cutting before an element is listed ahead of gluing
// it to the previous block.
func SetCompositionsFromPermutation(perm []int) ([]Signed, error) {
	if err := checkPermutation(opFromPermutation, perm); err != nil {
		return nil, err
	}
	patterns := [][][]int{{{perm[0]}}}
	for _, x := range perm[1:] {
		next := make([][][]int, 0, 2*len(patterns))
		for _, blocks := range patterns {
			cut := append(cloneBlocks(blocks), []int{x})
			glued := cloneBlocks(blocks)
			glued[len(glued)-1] = append(glued[len(glued)-1], x)
			next = append(next, cut, glued)
		}
		patterns = next
	}

	out := make([]Signed, len(patterns))
	for i, blocks := range patterns {
		sc, err := setcomposition.New(blocks...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opFromPermutation, err)
		}
		out[i] = Signed{SetComposition: sc, Blocks: len(blocks)}
	}

	return out, nil
}

func cloneBlocks(blocks [][]int) [][]int {
	out := make([][]int, len(blocks))
	for i, b := range blocks {
		out[i] = append([]int(nil), b...)
	}

	return out
}
