// SPDX-License-Identifier: MIT
// Package: chromatic/internal/checked
//
// Package checked provides int64 arithmetic that reports overflow instead
// of wrapping. The coefficient algebras use it where products of
// coefficients and shuffle multiplicities can leave the int64 range.
package checked

import (
	"math"
	"math/bits"
)

// Mul returns a·b and false when the product does not fit in int64.
// The magnitudes are multiplied as 128-bit values with bits.Mul64.
func Mul(a, b int64) (int64, bool) {
	neg := (a < 0) != (b < 0)
	hi, lo := bits.Mul64(magnitude(a), magnitude(b))
	if hi != 0 {
		return 0, false
	}
	if neg {
		if lo > 1<<63 {
			return 0, false
		}
		return int64(-lo), true
	}
	if lo > math.MaxInt64 {
		return 0, false
	}

	return int64(lo), true
}

// Mul3 is Mul(Mul(a, b), c).
func Mul3(a, b, c int64) (int64, bool) {
	ab, ok := Mul(a, b)
	if !ok {
		return 0, false
	}

	return Mul(ab, c)
}

// Add returns a+b and false on overflow.
func Add(a, b int64) (int64, bool) {
	c := a + b
	if (a > 0 && b > 0 && c < 0) || (a < 0 && b < 0 && c >= 0) {
		return 0, false
	}

	return c, true
}

// magnitude is |x| as uint64; math.MinInt64 maps to 1<<63.
func magnitude(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}

	return uint64(x)
}
