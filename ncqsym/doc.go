// SPDX-License-Identifier: MIT
// Package: chromatic/ncqsym

// Package ncqsym implements non-commutative quasisymmetric functions in the
// monomial basis indexed by set compositions.
//
// What:
//
//   - Function is a finite integer combination Σ c_Φ·M_Φ over set
//     compositions Φ.
//   - Mul multiplies term by term: the right set composition is translated
//     so that its smallest label sits just above the largest label of the
//     left one, then the two are quasi-shuffled. On set compositions of
//     {1..n} and {1..m} this is the usual shift by n.
//   - Commutative forgets labels (Φ ↦ α(Φ)) and lands in package qsym.
//
// Invariants:
//
//   - Zero coefficients are never stored.
//   - Mul is associative with unit M_∅ and is not commutative:
//     M_(1)·M_(1|2) ≠ M_(1|2)·M_(1).
//   - Commutative is a ring map: (fg).Commutative() = f.Commutative()·g.Commutative().
//
// Errors:
//
//   - FromCoefficients wraps setcomposition.ErrParse for malformed keys.
//   - Mul and MulWith return ErrOverflow when a coefficient would leave
//     the int64 range.
package ncqsym
