// SPDX-License-Identifier: MIT
// Package: chromatic/chromatic

// Package chromatic computes chromatic invariants of matroids: the Möbius
// function of the lattice of flats, the chromatic (characteristic)
// polynomial, and the chromatic quasisymmetric and non-commutative
// quasisymmetric functions.
//
// What:
//
//   - MobiusFunction(o): μ(0̂, F) for every flat F, where 0̂ = cl(∅).
//   - Polynomial(o): χ(x) = Σ_F μ(0̂, F)·x^(r(E)−r(F)). A matroid with a loop
//     has χ = 0; the empty matroid has χ = 1.
//   - WhitneyPolynomial(o): the same polynomial by the subset expansion
//     Σ_S (−1)^|S|·x^(r(E)−r(S)), kept as an independent cross-check.
//   - NonCommutativeQuasisymmetric(o): Σ M_Φ over the stable set
//     compositions Φ of E. Block i of Φ gives its elements weight i; Φ is
//     stable when exactly one basis has maximum total weight.
//   - Quasisymmetric(o): the image of the above under Φ ↦ α(Φ).
//
// Coloring convention:
//
//	A coloring c: E → {1,…,k} is generic when it admits a unique
//	maximum-weight basis. Grouping elements by color in increasing order
//	gives a stable set composition, so Quasisymmetric(o).Evaluate(k)
//	counts generic colorings with k colors.
//
// Validation:
//
//	Unless WithoutValidation is given, the rank function is checked
//	exhaustively (matroid.ValidateRank) and a violation is reported as
//	ErrInvalidMatroid. Oracles on at most matroid.MaxTabulated elements
//	are tabulated once before any enumeration.
//
// Complexity:
//
//   - Polynomial: O(#flats² + #flats·|E|) rank look-ups.
//   - NonCommutativeQuasisymmetric: Fubini(|E|) set compositions, each
//     checked with O(|E|·r) rank look-ups.
//
// Errors:
//
//   - ErrInvalidMatroid: rank axioms fail.
//   - ErrEmptyGroundSet: empty ground set under WithRequireNonEmpty.
//   - ErrGroundSetMismatch: IsStable on a set composition of another set.
//   - matroid.ErrGroundSetTooLarge: validation or tabulation out of range.
package chromatic
