// SPDX-License-Identifier: MIT
// Package: chromatic/chromatic
//
// polynomial.go — χ_M through flats and through the Whitney expansion.

package chromatic

import (
	"fmt"

	"github.com/katalvlaran/chromatic/matroid"
	"github.com/katalvlaran/chromatic/polynomial"
)

// Polynomial returns the chromatic polynomial Σ_F μ(0̂, F)·x^(r(E)−r(F))
// summed over the flats of o. It is the zero polynomial when o has a loop.
//
// Steps:
//  1. prepare: validate and, for small ground sets, tabulate.
//  2. Return Zero when cl(∅) ≠ ∅.
//  3. Compute μ(0̂, F) for every flat (mobius), which also checks that
//     every flat rank lies in 0..r(E).
//  4. Accumulate μ(0̂, F) into the coefficient of x^(r(E)−r(F)).
//
// Complexity: O(L²) over the L flats after preparation.
func Polynomial(o matroid.Oracle, opts ...Option) (polynomial.Polynomial, error) {
	cfg := newConfig(opts...)
	t, err := prepare(methodPolynomial, o, cfg)
	if err != nil {
		return polynomial.Zero(), err
	}
	if loops := matroid.Loops(t); loops != 0 {
		cfg.logger.Debug("matroid has loops", "loops", loops.Len())
		return polynomial.Zero(), nil
	}

	flats, err := mobius(t)
	if err != nil {
		return polynomial.Zero(), fmt.Errorf("%s: %w", methodPolynomial, err)
	}
	full := matroid.FullRank(t)
	coeffs := make([]int64, full+1)
	for _, f := range flats {
		coeffs[full-f.Rank] += f.Mobius
	}
	p := polynomial.New(coeffs...)
	cfg.logger.Debug("chromatic polynomial computed", "flats", len(flats), "polynomial", p.String())

	return p, nil
}

// WhitneyPolynomial computes the same polynomial as Polynomial through the
// subset expansion Σ_{S⊆E} (−1)^|S|·x^(r(E)−r(S)). It visits all 2^|E|
// subsets. A rank outside 0..r(E) is reported as ErrInvalidMatroid, even
// under WithoutValidation.
// Complexity: O(2^n) rank queries.
func WhitneyPolynomial(o matroid.Oracle, opts ...Option) (polynomial.Polynomial, error) {
	cfg := newConfig(opts...)
	t, err := prepare(methodWhitney, o, cfg)
	if err != nil {
		return polynomial.Zero(), err
	}
	n := matroid.Size(t)
	full := matroid.FullRank(t)
	coeffs := make([]int64, full+1)
	last := matroid.Full(n)
	for s := matroid.Subset(0); ; s++ {
		sign := int64(1)
		if s.Len()%2 == 1 {
			sign = -1
		}
		r := t.Rank(s)
		if r < 0 || r > full {
			return polynomial.Zero(), fmt.Errorf("%s: r(%s) = %d outside 0..%d: %w", methodWhitney, s, r, full, ErrInvalidMatroid)
		}
		coeffs[full-r] += sign
		if s == last {
			break
		}
	}

	return polynomial.New(coeffs...), nil
}
