// SPDX-License-Identifier: MIT
// Package: chromatic/composition

// Package composition implements integer compositions and their
// quasi-shuffle (stuffle) product.
//
// What:
//
//   - Composition is an immutable ordered sequence of positive parts
//     (c₁,…,cₖ) with size n = Σcᵢ. The empty composition is the unique
//     composition of 0.
//   - Generator enumerates all 2^(n−1) compositions of n and memoizes the
//     result per n.
//   - QuasiShuffles computes the stuffle of two compositions with
//     multiplicities: at every step take the front part of the left
//     operand, the front part of the right operand, or their sum.
//
// Why:
//
//   - The monomial basis of the commutative quasisymmetric functions (see
//     package qsym) is indexed by compositions, and its product is the
//     stuffle implemented here.
//
// Complexity:
//
//   - Rest/Prepend: O(k) (values are copied, never shared).
//   - Generator.All(n): O(n·2^n) on first call, O(2^(n−1)) copy afterwards.
//   - QuasiShuffles(a, b): bounded by the Delannoy number D(|a|, |b|);
//     memoized per (a, b) pair.
//
// Concurrency:
//
//	Compositions are values and may be shared freely. Generator and
//	Shuffler guard their caches with a sync.RWMutex; entries are
//	committed once and never evicted.
//
// Errors:
//
//   - ErrInvalidPart: a part is ≤ 0.
//   - ErrEmptyStructure: First on the empty composition.
//   - ErrParse: malformed "(2,1,3)" text.
package composition
