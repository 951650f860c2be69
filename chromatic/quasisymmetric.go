// SPDX-License-Identifier: MIT
// Package: chromatic/chromatic
//
// quasisymmetric.go — chromatic (non-commutative) quasisymmetric functions
// and stability.

package chromatic

import (
	"fmt"

	"github.com/katalvlaran/chromatic/matroid"
	"github.com/katalvlaran/chromatic/ncqsym"
	"github.com/katalvlaran/chromatic/qsym"
	"github.com/katalvlaran/chromatic/setcomposition"
)

// NonCommutativeQuasisymmetric returns Σ M_Φ over the stable set
// compositions Φ of the ground set of o.
//
// Steps:
//  1. prepare: validate and tabulate.
//  2. For every set composition Φ of [n] from the generator, weigh each
//     position by the 0-based index of its block.
//  3. Keep Φ when the weighting has a unique maximum-weight basis, and
//     relabel it onto the ground set.
//  4. Sum the kept monomials with coefficient 1.
//
// Complexity: Fubini(n) uniqueness tests of O(r·n) rank queries each.
func NonCommutativeQuasisymmetric(o matroid.Oracle, opts ...Option) (ncqsym.Function, error) {
	cfg := newConfig(opts...)
	t, err := prepare(methodNCQSym, o, cfg)
	if err != nil {
		return ncqsym.Zero(), err
	}
	ground := t.GroundSet()
	n := len(ground)

	var terms []ncqsym.Term
	weights := make([]int, n)
	all := cfg.generator.All(n)
	for _, phi := range all {
		// 2. phi lives on 1..n, so label x sits at position x−1.
		for i, block := range phi.Blocks() {
			for _, x := range block {
				weights[x-1] = i
			}
		}
		// 3. Stable?
		if _, unique := matroid.UniqueMaxWeightBasis(t, weights); !unique {
			continue
		}
		labelled, err := phi.RelabelOnto(ground)
		if err != nil {
			return ncqsym.Zero(), fmt.Errorf("%s: %w", methodNCQSym, err)
		}
		terms = append(terms, ncqsym.Term{SetComposition: labelled, Coefficient: 1})
	}
	cfg.logger.Debug("chromatic ncqsym computed",
		"elements", n,
		"set_compositions", len(all),
		"stable", len(terms),
	)

	return ncqsym.New(terms...), nil
}

// Quasisymmetric returns NonCommutativeQuasisymmetric(o).Commutative().
func Quasisymmetric(o matroid.Oracle, opts ...Option) (qsym.Function, error) {
	nc, err := NonCommutativeQuasisymmetric(o, opts...)
	if err != nil {
		return qsym.Zero(), fmt.Errorf("%s: %w", methodQSym, err)
	}

	return nc.Commutative(), nil
}

// IsStable reports whether phi, a set composition of the ground set of o,
// has a unique maximum-weight basis when block i weighs i.
func IsStable(o matroid.Oracle, phi setcomposition.SetComposition) (bool, error) {
	ground := o.GroundSet()
	if !equalInts(ground, phi.GroundSet()) {
		return false, fmt.Errorf("%s: %s on %v: %w", methodIsStable, phi, ground, ErrGroundSetMismatch)
	}
	weights := make([]int, len(ground))
	for p, x := range ground {
		i, _ := phi.BlockOf(x)
		weights[p] = i
	}
	_, unique := matroid.UniqueMaxWeightBasis(o, weights)

	return unique, nil
}

// IsGenericColoring reports whether the coloring (label → color) has a
// unique maximum-weight basis. Every element must be colored.
func IsGenericColoring(o matroid.Oracle, coloring map[int]int) (bool, error) {
	ground := o.GroundSet()
	weights := make([]int, len(ground))
	for p, x := range ground {
		c, ok := coloring[x]
		if !ok {
			return false, fmt.Errorf("%s: element %d uncolored: %w", methodStableColors, x, ErrGroundSetMismatch)
		}
		weights[p] = c
	}
	_, unique := matroid.UniqueMaxWeightBasis(o, weights)

	return unique, nil
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
