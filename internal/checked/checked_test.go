// SPDX-License-Identifier: MIT
// Package: chromatic/internal/checked

package checked_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/chromatic/internal/checked"
)

func TestMul(t *testing.T) {
	tests := []struct {
		a, b int64
		want int64
		ok   bool
	}{
		{0, math.MinInt64, 0, true},
		{-3, 7, -21, true},
		{-3, -7, 21, true},
		{math.MaxInt64, 1, math.MaxInt64, true},
		{math.MinInt64, 1, math.MinInt64, true},
		{1 << 62, -2, math.MinInt64, true},
		{1 << 62, 2, 0, false},
		{math.MinInt64, -1, 0, false},
		{1 << 32, 1 << 32, 0, false},
		{math.MaxInt64, -2, 0, false},
	}
	for _, tc := range tests {
		got, ok := checked.Mul(tc.a, tc.b)
		assert.Equal(t, tc.ok, ok, "%d*%d", tc.a, tc.b)
		if tc.ok {
			assert.Equal(t, tc.want, got, "%d*%d", tc.a, tc.b)
		}
	}

	_, ok := checked.Mul3(1<<21, 1<<21, 1<<21)
	assert.False(t, ok)
	got, ok := checked.Mul3(2, -3, 5)
	assert.True(t, ok)
	assert.Equal(t, int64(-30), got)
}

func TestAdd(t *testing.T) {
	_, ok := checked.Add(math.MaxInt64, 1)
	assert.False(t, ok)
	_, ok = checked.Add(math.MinInt64, -1)
	assert.False(t, ok)
	got, ok := checked.Add(math.MaxInt64, math.MinInt64)
	assert.True(t, ok)
	assert.Equal(t, int64(-1), got)
}
