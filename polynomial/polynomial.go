// SPDX-License-Identifier: MIT
// Package: chromatic/polynomial
//
// polynomial.go — integer polynomials.

// Package polynomial provides exact univariate polynomials with int64
// coefficients, sized for chromatic and characteristic polynomials.
//
// A Polynomial stores coefficients in ascending degree order with trailing
// zeros trimmed, so the zero polynomial has no coefficients and Degree −1.
// Values are immutable; every operation returns a fresh Polynomial.
// Arithmetic is plain int64 and wraps on overflow; chromatic polynomials
// of matroids within the 64-element ground set limit stay far below it.
package polynomial

import (
	"strconv"
	"strings"
)

// Polynomial is Σ cᵢ xⁱ with exact integer coefficients.
type Polynomial struct {
	coeffs []int64 // ascending; last entry non-zero
}

// New builds Σ coeffs[i]·xⁱ. Trailing zeros are dropped.
func New(coeffs ...int64) Polynomial {
	return Polynomial{coeffs: trim(append([]int64(nil), coeffs...))}
}

// Zero returns the zero polynomial.
func Zero() Polynomial { return Polynomial{} }

// Constant returns the constant polynomial c.
func Constant(c int64) Polynomial { return New(c) }

// Monomial returns c·x^d. It panics on negative d.
func Monomial(c int64, d int) Polynomial {
	if d < 0 {
		panic("polynomial: negative degree")
	}
	coeffs := make([]int64, d+1)
	coeffs[d] = c

	return Polynomial{coeffs: trim(coeffs)}
}

// Degree returns the degree, or −1 for the zero polynomial.
func (p Polynomial) Degree() int { return len(p.coeffs) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool { return len(p.coeffs) == 0 }

// Coefficient returns the coefficient of x^d (zero outside the support).
func (p Polynomial) Coefficient(d int) int64 {
	if d < 0 || d >= len(p.coeffs) {
		return 0
	}

	return p.coeffs[d]
}

// Coefficients returns a copy of the ascending coefficient slice.
func (p Polynomial) Coefficients() []int64 {
	return append([]int64(nil), p.coeffs...)
}

// Eval evaluates p at x with Horner's rule.
func (p Polynomial) Eval(x int64) int64 {
	var acc int64
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = acc*x + p.coeffs[i]
	}

	return acc
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	out := make([]int64, n)
	copy(out, p.coeffs)
	for i, c := range q.coeffs {
		out[i] += c
	}

	return Polynomial{coeffs: trim(out)}
}

// Scale returns c·p.
func (p Polynomial) Scale(c int64) Polynomial {
	if c == 0 {
		return Zero()
	}
	out := make([]int64, len(p.coeffs))
	for i, v := range p.coeffs {
		out[i] = c * v
	}

	return Polynomial{coeffs: out}
}

// Mul returns p·q.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if p.IsZero() || q.IsZero() {
		return Zero()
	}
	out := make([]int64, len(p.coeffs)+len(q.coeffs)-1)
	for i, a := range p.coeffs {
		for j, b := range q.coeffs {
			out[i+j] += a * b
		}
	}

	return Polynomial{coeffs: trim(out)}
}

// Equal reports coefficient-wise equality.
func (p Polynomial) Equal(q Polynomial) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if p.coeffs[i] != q.coeffs[i] {
			return false
		}
	}

	return true
}

// String renders p from the highest degree down, e.g. "x^2 - 3x + 2".
// The zero polynomial renders as "0".
func (p Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	for d := len(p.coeffs) - 1; d >= 0; d-- {
		c := p.coeffs[d]
		if c == 0 {
			continue
		}
		abs := c
		switch {
		case sb.Len() == 0 && c < 0:
			sb.WriteByte('-')
			abs = -c
		case sb.Len() > 0 && c < 0:
			sb.WriteString(" - ")
			abs = -c
		case sb.Len() > 0:
			sb.WriteString(" + ")
		}
		if abs != 1 || d == 0 {
			sb.WriteString(strconv.FormatInt(abs, 10))
		}
		switch {
		case d == 1:
			sb.WriteByte('x')
		case d > 1:
			sb.WriteString("x^")
			sb.WriteString(strconv.Itoa(d))
		}
	}

	return sb.String()
}

// MarshalText implements encoding.TextMarshaler with the String form.
func (p Polynomial) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func trim(c []int64) []int64 {
	n := len(c)
	for n > 0 && c[n-1] == 0 {
		n--
	}
	if n == 0 {
		return nil
	}

	return c[:n]
}
