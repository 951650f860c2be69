// SPDX-License-Identifier: MIT
// Package: chromatic/qsym

// Package qsym implements quasisymmetric functions in the monomial basis.
//
// What:
//
//   - Function is a finite integer combination Σ c_α·M_α of monomial
//     quasisymmetric functions indexed by compositions α.
//   - Add, Sub and Scale act coefficient-wise; Mul expands bilinearly
//     through the stuffle product M_α·M_β = Σ_γ mult(γ)·M_γ of package
//     composition.
//   - Evaluate(k) is the principal specialization at k ones:
//     M_α(1,…,1) = C(k, ℓ(α)).
//
// Invariants:
//
//   - Zero coefficients are never stored, so Equal compares exactly the
//     non-zero support.
//   - Functions are immutable; every operation returns a new value.
//   - Mul is commutative and associative.
//
// Errors:
//
//   - FromCoefficients wraps composition.ErrParse for malformed keys.
//   - Mul and MulWith return ErrOverflow when a coefficient would leave
//     the int64 range. Add, Sub and Scale wrap like plain int64 arithmetic.
package qsym
