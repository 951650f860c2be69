// SPDX-License-Identifier: MIT
// Package: chromatic/setcomposition

// Package setcomposition implements set compositions (ordered set
// partitions) and the quasi-shuffle engine behind the non-commutative
// quasisymmetric functions.
//
// What:
//
//   - SetComposition is an immutable ordered sequence of non-empty,
//     pairwise-disjoint blocks of integer labels, e.g. (2,4|1|3,5,6) is a
//     set composition of {1,…,6}. Labels are arbitrary integers; blocks are
//     sets and are kept sorted internally.
//   - Alpha forgets labels and returns the composition of block sizes.
//   - QuasiShuffles merges two set compositions on disjoint ground sets:
//
//     qs(∅, t) = t,  qs(q, ∅) = q,
//     qs(A·q, B·t) = A·qs(q, B·t) + B·qs(A·q, t) + (A∪B)·qs(q, t)
//
//   - Generator enumerates all set compositions of {1,…,n} (the Fubini
//     numbers 1, 1, 3, 13, 75, 541, …) and memoizes them per n.
//
// Memoization:
//
//	The Shuffler caches products of *standardized* operands: the left
//	operand relabeled onto 1..|q| and the right onto |q|+1..|q|+|t|,
//	both order-preserving. Any pair with the same relative shape hits the
//	same entry; results are relabeled back to the caller's labels.
//
// Complexity:
//
//   - QuasiShuffles(q, t): Delannoy number D(|q|, |t|) result terms.
//   - Generator.All(n): Fubini(n) set compositions, O(n) each.
//
// Errors:
//
//   - ErrEmptyStructure: First on the empty set composition.
//   - ErrInvalidBlock: empty or overlapping block.
//   - ErrInvalidRelabeling: mapping not injective or missing a label.
//   - ErrOverlappingGroundSets: QuasiShuffles on intersecting ground sets.
//   - ErrParse: malformed "(1,2|3)" text.
package setcomposition
