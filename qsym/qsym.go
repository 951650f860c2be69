// SPDX-License-Identifier: MIT
// Package: chromatic/qsym
//
// qsym.go — the Function type and its algebra.

package qsym

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/chromatic/internal/checked"
	"github.com/katalvlaran/chromatic/composition"
)

// ErrOverflow indicates a product coefficient outside the int64 range.
var ErrOverflow = errors.New("qsym: coefficient overflows int64")

const methodMul = "MulWith"

// Term is one coefficient of a Function.
type Term struct {
	Composition composition.Composition
	Coefficient int64
}

// Function is Σ c_α·M_α with exact int64 coefficients.
type Function struct {
	coeffs map[string]int64
	comps  map[string]composition.Composition
}

// Zero returns the zero function.
func Zero() Function { return Function{} }

// Monomial returns M_α.
func Monomial(alpha composition.Composition) Function { return FromTerm(alpha, 1) }

// FromTerm returns c·M_α.
func FromTerm(alpha composition.Composition, c int64) Function {
	f := newFunction(1)
	f.add(alpha, c)

	return f
}

// New sums the given terms; repeated compositions accumulate.
func New(terms ...Term) Function {
	f := newFunction(len(terms))
	for _, t := range terms {
		f.add(t.Composition, t.Coefficient)
	}

	return f
}

// FromCoefficients parses keys such as "(2,1)" and sums their coefficients.
func FromCoefficients(m map[string]int64) (Function, error) {
	f := newFunction(len(m))
	for k, c := range m {
		alpha, err := composition.Parse(k)
		if err != nil {
			return Function{}, fmt.Errorf("FromCoefficients: %w", err)
		}
		f.add(alpha, c)
	}

	return f, nil
}

func newFunction(hint int) Function {
	return Function{
		coeffs: make(map[string]int64, hint),
		comps:  make(map[string]composition.Composition, hint),
	}
}

// add mutates f in place; only for values under construction.
func (f Function) add(alpha composition.Composition, c int64) {
	if c == 0 {
		return
	}
	k := alpha.Key()
	v := f.coeffs[k] + c
	if v == 0 {
		delete(f.coeffs, k)
		delete(f.comps, k)
		return
	}
	f.coeffs[k] = v
	f.comps[k] = alpha
}

// Len returns the number of non-zero coefficients.
func (f Function) Len() int { return len(f.coeffs) }

// IsZero reports whether f has no non-zero coefficient.
func (f Function) IsZero() bool { return len(f.coeffs) == 0 }

// Coefficient returns the coefficient of M_α.
func (f Function) Coefficient(alpha composition.Composition) int64 { return f.coeffs[alpha.Key()] }

// Terms returns the non-zero terms sorted by composition.Compare.
func (f Function) Terms() []Term {
	out := make([]Term, 0, len(f.coeffs))
	for k, c := range f.coeffs {
		out = append(out, Term{Composition: f.comps[k], Coefficient: c})
	}
	sort.Slice(out, func(i, j int) bool {
		return composition.Compare(out[i].Composition, out[j].Composition) < 0
	})

	return out
}

// Add returns f + g.
func (f Function) Add(g Function) Function {
	out := newFunction(len(f.coeffs) + len(g.coeffs))
	for k, c := range f.coeffs {
		out.add(f.comps[k], c)
	}
	for k, c := range g.coeffs {
		out.add(g.comps[k], c)
	}

	return out
}

// Sub returns f − g.
func (f Function) Sub(g Function) Function { return f.Add(g.Scale(-1)) }

// Scale returns c·f.
func (f Function) Scale(c int64) Function {
	out := newFunction(len(f.coeffs))
	for k, v := range f.coeffs {
		out.add(f.comps[k], c*v)
	}

	return out
}

// Mul returns f·g through the stuffle product of composition.DefaultShuffler.
func (f Function) Mul(g Function) (Function, error) {
	return f.MulWith(composition.DefaultShuffler, g)
}

// MulWith is Mul backed by an explicit shuffle cache.
//
// Steps:
//  1. For every pair of terms c_α·M_α, c_β·M_β, look up the cached
//     quasi-shuffles of α and β.
//  2. Add c_α·c_β·mult(γ) to the coefficient of M_γ.
//
// Every product and running sum is checked; leaving the int64 range
// yields ErrOverflow instead of a wrapped coefficient.
// Complexity: O(|f|·|g|·q), q = number of quasi-shuffles per pair.
func (f Function) MulWith(s *composition.Shuffler, g Function) (Function, error) {
	out := newFunction(len(f.coeffs) * len(g.coeffs))
	for _, a := range f.Terms() {
		for _, b := range g.Terms() {
			for _, t := range s.QuasiShuffles(a.Composition, b.Composition) {
				c, ok := checked.Mul3(a.Coefficient, b.Coefficient, t.Multiplicity)
				if !ok || !out.addChecked(t.Composition, c) {
					return Function{}, fmt.Errorf("%s: %s·%s at %s: %w", methodMul, a.Composition, b.Composition, t.Composition, ErrOverflow)
				}
			}
		}
	}

	return out, nil
}

// addChecked is add that refuses to overflow; false leaves f unchanged.
func (f Function) addChecked(alpha composition.Composition, c int64) bool {
	if _, ok := checked.Add(f.coeffs[alpha.Key()], c); !ok {
		return false
	}
	f.add(alpha, c)

	return true
}

// Equal reports whether f and g have the same non-zero coefficients.
func (f Function) Equal(g Function) bool {
	if len(f.coeffs) != len(g.coeffs) {
		return false
	}
	for k, c := range f.coeffs {
		if g.coeffs[k] != c {
			return false
		}
	}

	return true
}

// Evaluate returns f(1,…,1) with k ones: Σ c_α·C(k, ℓ(α)).
func (f Function) Evaluate(k int) int64 {
	var sum int64
	for key, c := range f.coeffs {
		sum += c * Binomial(k, f.comps[key].Len())
	}

	return sum
}

// Binomial returns C(n, r), zero when r < 0 or r > n.
func Binomial(n, r int) int64 {
	if r < 0 || n < 0 || r > n {
		return 0
	}
	if r > n-r {
		r = n - r
	}
	var b int64 = 1
	for i := 1; i <= r; i++ {
		b = b * int64(n-r+i) / int64(i)
	}

	return b
}

// String renders f as "M(2) + 2·M(1,1)"; the zero function is "0".
func (f Function) String() string {
	terms := f.Terms()
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = formatTerm("M"+t.Composition.Key(), t.Coefficient)
	}

	return joinTerms(parts)
}

func formatTerm(basis string, c int64) string {
	switch c {
	case 1:
		return basis
	case -1:
		return "-" + basis
	}

	return strconv.FormatInt(c, 10) + "·" + basis
}

func joinTerms(parts []string) string {
	if len(parts) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, p := range parts {
		switch {
		case i == 0:
			sb.WriteString(p)
		case strings.HasPrefix(p, "-"):
			sb.WriteString(" - ")
			sb.WriteString(p[1:])
		default:
			sb.WriteString(" + ")
			sb.WriteString(p)
		}
	}

	return sb.String()
}
