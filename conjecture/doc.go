// SPDX-License-Identifier: MIT
// Package: chromatic/conjecture

// Package conjecture builds the stability matrices used to bound the
// dimension of the span of chromatic quasisymmetric functions of matroids,
// and computes their exact ranks.
//
// Every matrix has one row per matroid and one column per test object; an
// entry records whether the matroid is stable with respect to the set
// composition attached to the column:
//
//   - LowerBound: loopless Schubert matroids sh([d], A) against the set
//     compositions FromSetToSetComposition(B, d), A and B ranging over
//     ValidSubsets(d). The matrix is square and of full rank.
//   - Conjecture: loopless nested matroids against the min-max set
//     compositions of the d! permutations.
//   - Big: loopless nested matroids against all set compositions of [d].
//   - AlternatingSum: loopless nested matroids against permutations; the
//     entry is Σ (−1)^ℓ(Φ) over the stable Φ refining the permutation.
//
// Study(d) computes the ranks of the QSym and NCQSym images of the loopless
// nested matroids on d elements, next to the bounds 2^(d−1) and d!.
//
// Ranks are exact: Dense holds int64 entries and Rank runs fraction-free
// Gaussian elimination over math/big integers.
//
// Complexity: every builder performs rows × cols stability checks, each
// linear in the number of bases. The column count grows like d! or the
// Fubini number of d, so d is capped at MaxDimension.
package conjecture
