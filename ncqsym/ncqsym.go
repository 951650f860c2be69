// SPDX-License-Identifier: MIT
// Package: chromatic/ncqsym
//
// ncqsym.go — the Function type and its algebra.

package ncqsym

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/chromatic/internal/checked"
	"github.com/katalvlaran/chromatic/qsym"
	"github.com/katalvlaran/chromatic/setcomposition"
)

// ErrOverflow indicates a product coefficient outside the int64 range.
var ErrOverflow = errors.New("ncqsym: coefficient overflows int64")

const methodMul = "MulWith"

// Term is one coefficient of a Function.
type Term struct {
	SetComposition setcomposition.SetComposition
	Coefficient    int64
}

// Function is Σ c_Φ·M_Φ with exact int64 coefficients.
type Function struct {
	coeffs map[string]int64
	sets   map[string]setcomposition.SetComposition
}

// Zero returns the zero function.
func Zero() Function { return Function{} }

// Monomial returns M_Φ.
func Monomial(phi setcomposition.SetComposition) Function { return FromTerm(phi, 1) }

// FromTerm returns c·M_Φ.
func FromTerm(phi setcomposition.SetComposition, c int64) Function {
	f := newFunction(1)
	f.add(phi, c)

	return f
}

// New sums the given terms.
func New(terms ...Term) Function {
	f := newFunction(len(terms))
	for _, t := range terms {
		f.add(t.SetComposition, t.Coefficient)
	}

	return f
}

// FromCoefficients parses keys such as "(1,3|2)" and sums their coefficients.
func FromCoefficients(m map[string]int64) (Function, error) {
	f := newFunction(len(m))
	for k, c := range m {
		phi, err := setcomposition.Parse(k)
		if err != nil {
			return Function{}, fmt.Errorf("FromCoefficients: %w", err)
		}
		f.add(phi, c)
	}

	return f, nil
}

func newFunction(hint int) Function {
	return Function{
		coeffs: make(map[string]int64, hint),
		sets:   make(map[string]setcomposition.SetComposition, hint),
	}
}

func (f Function) add(phi setcomposition.SetComposition, c int64) {
	if c == 0 {
		return
	}
	k := phi.Key()
	v := f.coeffs[k] + c
	if v == 0 {
		delete(f.coeffs, k)
		delete(f.sets, k)
		return
	}
	f.coeffs[k] = v
	f.sets[k] = phi
}

// Len returns the number of non-zero coefficients.
func (f Function) Len() int { return len(f.coeffs) }

// IsZero reports whether f is zero.
func (f Function) IsZero() bool { return len(f.coeffs) == 0 }

// Coefficient returns the coefficient of M_Φ.
func (f Function) Coefficient(phi setcomposition.SetComposition) int64 {
	return f.coeffs[phi.Key()]
}

// Terms returns the non-zero terms sorted by setcomposition.Compare.
func (f Function) Terms() []Term {
	out := make([]Term, 0, len(f.coeffs))
	for k, c := range f.coeffs {
		out = append(out, Term{SetComposition: f.sets[k], Coefficient: c})
	}
	sort.Slice(out, func(i, j int) bool {
		return setcomposition.Compare(out[i].SetComposition, out[j].SetComposition) < 0
	})

	return out
}

// Add returns f + g.
func (f Function) Add(g Function) Function {
	out := newFunction(len(f.coeffs) + len(g.coeffs))
	for k, c := range f.coeffs {
		out.add(f.sets[k], c)
	}
	for k, c := range g.coeffs {
		out.add(g.sets[k], c)
	}

	return out
}

// Sub returns f − g.
func (f Function) Sub(g Function) Function { return f.Add(g.Scale(-1)) }

// Scale returns c·f.
func (f Function) Scale(c int64) Function {
	out := newFunction(len(f.coeffs))
	for k, v := range f.coeffs {
		out.add(f.sets[k], c*v)
	}

	return out
}

// Mul returns f·g using setcomposition.DefaultShuffler.
func (f Function) Mul(g Function) (Function, error) {
	return f.MulWith(setcomposition.DefaultShuffler, g)
}

// MulWith is Mul backed by an explicit shuffle cache.
//
// Steps:
//  1. For every pair of terms c_Φ·M_Φ, c_Ψ·M_Ψ, shift Ψ above max(Φ) so
//     the ground sets are disjoint.
//  2. Look up the cached quasi-shuffles of Φ and the shifted Ψ.
//  3. Add c_Φ·c_Ψ·mult(Χ) to the coefficient of M_Χ.
//
// Every product and running sum is checked; leaving the int64 range
// yields ErrOverflow instead of a wrapped coefficient.
// Complexity: O(|f|·|g|·q), q = number of quasi-shuffles per pair.
func (f Function) MulWith(s *setcomposition.Shuffler, g Function) (Function, error) {
	out := newFunction(len(f.coeffs) * len(g.coeffs))
	for _, a := range f.Terms() {
		for _, b := range g.Terms() {
			right := shiftAbove(a.SetComposition, b.SetComposition)
			terms, err := s.QuasiShuffles(a.SetComposition, right)
			if err != nil {
				return Function{}, fmt.Errorf("%s: %w", methodMul, err)
			}
			for _, t := range terms {
				c, ok := checked.Mul3(a.Coefficient, b.Coefficient, t.Multiplicity)
				if !ok || !out.addChecked(t.SetComposition, c) {
					return Function{}, fmt.Errorf("%s: %s·%s at %s: %w", methodMul, a.SetComposition, right, t.SetComposition, ErrOverflow)
				}
			}
		}
	}

	return out, nil
}

// addChecked is add that refuses to overflow; false leaves f unchanged.
func (f Function) addChecked(phi setcomposition.SetComposition, c int64) bool {
	if _, ok := checked.Add(f.coeffs[phi.Key()], c); !ok {
		return false
	}
	f.add(phi, c)

	return true
}

// shiftAbove translates right so that its smallest label is max(left)+1.
// An empty left operand leaves right untouched.
func shiftAbove(left, right setcomposition.SetComposition) setcomposition.SetComposition {
	hi, ok := left.MaxLabel()
	if !ok {
		return right
	}
	lo, ok := right.MinLabel()
	if !ok {
		return right
	}

	return right.Shift(hi + 1 - lo)
}

// Commutative maps M_Φ to M_α(Φ).
func (f Function) Commutative() qsym.Function {
	terms := make([]qsym.Term, 0, len(f.coeffs))
	for k, c := range f.coeffs {
		terms = append(terms, qsym.Term{Composition: f.sets[k].Alpha(), Coefficient: c})
	}

	return qsym.New(terms...)
}

// Evaluate is Commutative().Evaluate(k).
func (f Function) Evaluate(k int) int64 { return f.Commutative().Evaluate(k) }

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

// String renders f as "M(1|2) + 2·M(1,2)"; the zero function is "0".
func (f Function) String() string {
	terms := f.Terms()
	if len(terms) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, t := range terms {
		c := t.Coefficient
		switch {
		case i == 0 && c < 0:
			sb.WriteByte('-')
			c = -c
		case c < 0:
			sb.WriteString(" - ")
			c = -c
		case i > 0:
			sb.WriteString(" + ")
		}
		if c != 1 {
			sb.WriteString(strconv.FormatInt(c, 10))
			sb.WriteString("·")
		}
		sb.WriteString("M")
		sb.WriteString(t.SetComposition.Key())
	}

	return sb.String()
}
