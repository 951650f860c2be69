// SPDX-License-Identifier: MIT
// Package: chromatic/polynomial

package polynomial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/chromatic/polynomial"
)

func TestString(t *testing.T) {
	tests := []struct {
		p    polynomial.Polynomial
		want string
	}{
		{polynomial.Zero(), "0"},
		{polynomial.New(2, -3, 1), "x^2 - 3x + 2"},
		{polynomial.New(-1, 1), "x - 1"},
		{polynomial.New(0, 0, -1), "-x^2"},
		{polynomial.New(5, 0, 0, 0), "5"},
		{polynomial.Monomial(3, 4), "3x^4"},
		{polynomial.New(0, -2, 0, 1), "x^3 - 2x"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.p.String())
	}
}

func TestDegreeAndCoefficients(t *testing.T) {
	p := polynomial.New(2, -3, 1, 0, 0)
	assert.Equal(t, 2, p.Degree())
	assert.Equal(t, int64(-3), p.Coefficient(1))
	assert.Equal(t, int64(0), p.Coefficient(7))
	assert.Equal(t, int64(0), p.Coefficient(-1))
	assert.Equal(t, []int64{2, -3, 1}, p.Coefficients())
	assert.Equal(t, -1, polynomial.Zero().Degree())
	assert.True(t, polynomial.New(0, 0).IsZero())
	assert.True(t, polynomial.Monomial(0, 3).IsZero())
}

func TestArithmetic(t *testing.T) {
	xMinus1 := polynomial.New(-1, 1)
	xMinus2 := polynomial.New(-2, 1)
	prod := xMinus1.Mul(xMinus2)
	assert.True(t, prod.Equal(polynomial.New(2, -3, 1)), prod.String())

	sum := prod.Add(polynomial.New(-2, 3, -1))
	assert.True(t, sum.IsZero())

	assert.Equal(t, "2x - 2", xMinus1.Scale(2).String())
	assert.True(t, xMinus1.Scale(0).IsZero())
	assert.True(t, xMinus1.Mul(polynomial.Zero()).IsZero())
	assert.False(t, xMinus1.Equal(xMinus2))
}

func TestEval(t *testing.T) {
	p := polynomial.New(2, -3, 1)
	for k, want := range []int64{2, 0, 0, 2, 6} {
		assert.Equal(t, want, p.Eval(int64(k)), "k=%d", k)
	}
	assert.Equal(t, int64(0), polynomial.Zero().Eval(9))
}

func TestMarshalText(t *testing.T) {
	b, err := polynomial.New(-1, 1).MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "x - 1", string(b))
}
