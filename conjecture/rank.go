// SPDX-License-Identifier: MIT
// Package: chromatic/conjecture
//
// rank.go — exact matrix rank by fraction-free (Bareiss) elimination.

package conjecture

import "math/big"

// Rank returns the exact rank of m.
//
// Implementation: Bareiss fraction-free elimination over big.Int. After
// each pivot every remaining entry is a minor of the original matrix, so
// the division by the previous pivot is exact and no entry ever leaves ℤ.
// Columns without a pivot are skipped; rows are swapped to find one.
//
// Steps:
//  1. Copy m into big.Int cells.
//  2. For each column, find a non-zero pivot at or below row `rank`; skip
//     the column if there is none, else swap it up.
//  3. Eliminate below the pivot with the Bareiss update and remember the
//     pivot as the next divisor.
//  4. The number of pivots is the rank.
//
// Complexity: O(r·c·min(r,c)) big-integer operations.
func (m *Dense) Rank() int {
	a := make([][]*big.Int, m.r)
	for i := range a {
		a[i] = make([]*big.Int, m.c)
		for j := range a[i] {
			a[i][j] = big.NewInt(m.data[i*m.c+j])
		}
	}

	// 2-3. Fraction-free elimination.
	rank := 0
	prev := big.NewInt(1)
	t := new(big.Int)
	for col := 0; col < m.c && rank < m.r; col++ {
		pivot := -1
		for i := rank; i < m.r; i++ {
			if a[i][col].Sign() != 0 {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		a[rank], a[pivot] = a[pivot], a[rank]

		p := a[rank][col]
		for i := rank + 1; i < m.r; i++ {
			for j := col + 1; j < m.c; j++ {
				// a[i][j] = (p·a[i][j] − a[i][col]·a[rank][j]) / prev
				a[i][j].Mul(a[i][j], p)
				t.Mul(a[i][col], a[rank][j])
				a[i][j].Sub(a[i][j], t)
				a[i][j].Quo(a[i][j], prev)
			}
			a[i][col].SetInt64(0)
		}
		prev = p
		rank++
	}

	return rank
}
