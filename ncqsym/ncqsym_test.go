// SPDX-License-Identifier: MIT
// Package: chromatic/ncqsym

package ncqsym_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chromatic/ncqsym"
	"github.com/katalvlaran/chromatic/setcomposition"
)

func m(s string) ncqsym.Function {
	phi, err := setcomposition.Parse(s)
	if err != nil {
		panic(err)
	}

	return ncqsym.Monomial(phi)
}

func mul(t *testing.T, a, b ncqsym.Function) ncqsym.Function {
	t.Helper()
	p, err := a.Mul(b)
	require.NoError(t, err)

	return p
}

func TestMul_ShiftsRightOperand(t *testing.T) {
	got := mul(t, m("(1)"), m("(1|2)"))
	want, err := ncqsym.FromCoefficients(map[string]int64{
		"(1|2|3)": 1,
		"(2|1|3)": 1,
		"(2|3|1)": 1,
		"(1,2|3)": 1,
		"(2|1,3)": 1,
	})
	require.NoError(t, err)
	assert.True(t, got.Equal(want), got.String())
}

func TestMul_NotCommutative(t *testing.T) {
	a, b := m("(1)"), m("(1|2)")
	assert.False(t, mul(t, a, b).Equal(mul(t, b, a)))
	// Both sides agree once labels are forgotten.
	assert.True(t, mul(t, a, b).Commutative().Equal(mul(t, b, a).Commutative()))
}

func TestMul_Associative(t *testing.T) {
	s := setcomposition.NewShuffler()
	fs := []ncqsym.Function{
		m("(1)"),
		m("(1|2)").Add(m("(1,2)").Scale(-2)),
		m("(2|1)"),
		m("(5,9)"),
	}
	for _, a := range fs {
		for _, b := range fs {
			for _, c := range fs {
				ab, err := a.MulWith(s, b)
				require.NoError(t, err)
				left, err := ab.MulWith(s, c)
				require.NoError(t, err)
				bc, err := b.MulWith(s, c)
				require.NoError(t, err)
				right, err := a.MulWith(s, bc)
				require.NoError(t, err)
				assert.True(t, left.Equal(right), "(%s)(%s)(%s)", a, b, c)
			}
		}
	}
}

func TestMul_Overflow(t *testing.T) {
	big := ncqsym.FromTerm(setcomposition.MustNew([]int{1}), 1<<32)
	_, err := big.Mul(big)
	assert.ErrorIs(t, err, ncqsym.ErrOverflow)

	fits := ncqsym.FromTerm(setcomposition.MustNew([]int{1}), 1<<31)
	sq := mul(t, fits, fits)
	assert.Equal(t, int64(1)<<62, sq.Coefficient(setcomposition.MustNew([]int{1}, []int{2})))
}

func TestMul_Unit(t *testing.T) {
	one := ncqsym.Monomial(setcomposition.Empty())
	f := m("(2|1,3)").Add(m("(1)"))
	assert.True(t, mul(t, one, f).Equal(f))
	assert.True(t, mul(t, f, one).Equal(f))
	assert.True(t, mul(t, f, ncqsym.Zero()).IsZero())
}

func TestCommutative(t *testing.T) {
	f := m("(1,2|3)").Add(m("(3|1,2)")).Sub(m("(1|2)"))
	q := f.Commutative()
	assert.Equal(t, "-M(1,1) + M(1,2) + M(2,1)", q.String())
	assert.Equal(t, int64(0), f.Evaluate(1))

	// Ring map property on a small product.
	a, b := m("(1|2)"), m("(1)")
	q, err := a.Commutative().Mul(b.Commutative())
	require.NoError(t, err)
	assert.True(t, mul(t, a, b).Commutative().Equal(q))
}

func TestString(t *testing.T) {
	f := m("(1|2)").Scale(2).Sub(m("(1,2)"))
	assert.Equal(t, "-M(1,2) + 2·M(1|2)", f.String())
	assert.Equal(t, "0", ncqsym.Zero().String())
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, int64(2), f.Coefficient(setcomposition.MustNew([]int{1}, []int{2})))
}

func TestFromCoefficients_Invalid(t *testing.T) {
	_, err := ncqsym.FromCoefficients(map[string]int64{"(1|1)": 1})
	assert.ErrorIs(t, err, setcomposition.ErrInvalidBlock)
}
