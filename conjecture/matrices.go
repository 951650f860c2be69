// SPDX-License-Identifier: MIT
// Package: chromatic/conjecture
//
// matrices.go — the lower-bound, conjecture, big and alternating-sum matrices.

package conjecture

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/chromatic/chromatic"
	"github.com/katalvlaran/chromatic/families"
	"github.com/katalvlaran/chromatic/matroid"
	"github.com/katalvlaran/chromatic/setcomposition"
)

// Table is a stability matrix with its row and column labels. Rows are
// matroids; columns are set compositions, subsets or permutations.
type Table struct {
	Matrix *Dense
	Rows   []string
	Cols   []string
}

// Rank is Matrix.Rank().
func (t *Table) Rank() int { return t.Matrix.Rank() }

// LowerBound builds the square matrix indexed by ValidSubsets(d): entry
// (A, B) is 1 when sh([d], A) is stable for FromSetToSetComposition(B, d).
//
// Steps:
//  1. Columns: the set composition of every valid subset B.
//  2. Rows: the Schubert matroid sh([d], A) of every valid subset A.
//  3. Entries: stability indicators.
func LowerBound(d int, opts ...Option) (*Table, error) {
	cfg := newConfig(opts...)
	subsets, err := ValidSubsets(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLowerBound, err)
	}

	cols := make([]setcomposition.SetComposition, len(subsets))
	colLabels := make([]string, len(subsets))
	for j, b := range subsets {
		if cols[j], err = FromSetToSetComposition(b, d); err != nil {
			return nil, fmt.Errorf("%s: %w", opLowerBound, err)
		}
		colLabels[j] = cols[j].String()
	}

	rows := make([]matroid.Oracle, len(subsets))
	rowLabels := make([]string, len(subsets))
	for i, a := range subsets {
		m, err := families.Schubert(d, a)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opLowerBound, err)
		}
		rows[i] = m
		rowLabels[i] = fmt.Sprintf("sh(%d,{%s})", d, joinInts(a))
	}

	return build(opLowerBound, cfg, rows, rowLabels, colLabels, func(o matroid.Oracle, j int) (int64, error) {
		return indicator(o, cols[j])
	})
}

// Conjecture builds the matrix of loopless nested matroids on [d] against
// the min-max set compositions of the permutations of [d], listed in
// lexicographic order of the permutations. It is square.
func Conjecture(d int, opts ...Option) (*Table, error) {
	cfg := newConfig(opts...)
	perms, err := Permutations(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opConjecture, err)
	}
	cols := make([]setcomposition.SetComposition, len(perms))
	colLabels := make([]string, len(perms))
	for j, p := range perms {
		if cols[j], err = MinMaxSetComposition(p); err != nil {
			return nil, fmt.Errorf("%s: %w", opConjecture, err)
		}
		colLabels[j] = cols[j].String()
	}

	rows, rowLabels, err := nestedRows(d, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opConjecture, err)
	}

	return build(opConjecture, cfg, rows, rowLabels, colLabels, func(o matroid.Oracle, j int) (int64, error) {
		return indicator(o, cols[j])
	})
}

// Big builds the matrix of loopless nested matroids on [d] against every
// set composition of [d], in generator order.
func Big(d int, opts ...Option) (*Table, error) {
	cfg := newConfig(opts...)
	if err := checkDimension(opBig, d); err != nil {
		return nil, err
	}
	cols := cfg.generator.All(d)
	colLabels := make([]string, len(cols))
	for j, sc := range cols {
		colLabels[j] = sc.String()
	}

	rows, rowLabels, err := nestedRows(d, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBig, err)
	}

	return build(opBig, cfg, rows, rowLabels, colLabels, func(o matroid.Oracle, j int) (int64, error) {
		return indicator(o, cols[j])
	})
}

// AlternatingSum builds the matrix of loopless nested matroids on [d]
// against the permutations of [d]: entry (M, π) is Σ (−1)^ℓ(Φ) over the
// set compositions Φ of SetCompositionsFromPermutation(π) for which M is
// stable.
func AlternatingSum(d int, opts ...Option) (*Table, error) {
	cfg := newConfig(opts...)
	perms, err := Permutations(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opAlternatingSum, err)
	}
	cols := make([][]Signed, len(perms))
	colLabels := make([]string, len(perms))
	for j, p := range perms {
		if cols[j], err = SetCompositionsFromPermutation(p); err != nil {
			return nil, fmt.Errorf("%s: %w", opAlternatingSum, err)
		}
		colLabels[j] = "[" + joinInts(p) + "]"
	}

	rows, rowLabels, err := nestedRows(d, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opAlternatingSum, err)
	}

	return build(opAlternatingSum, cfg, rows, rowLabels, colLabels, func(o matroid.Oracle, j int) (int64, error) {
		// Even block counts add, odd ones subtract.
		var sum int64
		for _, s := range cols[j] {
			stable, err := chromatic.IsStable(o, s.SetComposition)
			if err != nil {
				return 0, err
			}
			if !stable {
				continue
			}
			if s.Blocks%2 == 0 {
				sum++
			} else {
				sum--
			}
		}
		return sum, nil
	})
}

// nestedRows returns the loopless nested matroids on [d] with their
// double chains as labels.
func nestedRows(d int, cfg config) ([]matroid.Oracle, []string, error) {
	chains, err := families.NestedDoubleChains(d, families.WithGenerator(cfg.generator))
	if err != nil {
		return nil, nil, err
	}
	rows := make([]matroid.Oracle, len(chains))
	labels := make([]string, len(chains))
	for i, dc := range chains {
		m, err := families.NestedFromChain(dc)
		if err != nil {
			return nil, nil, err
		}
		rows[i] = m
		labels[i] = dc.String()
	}

	return rows, labels, nil
}

// indicator is 1 when o is stable for phi, else 0.
func indicator(o matroid.Oracle, phi setcomposition.SetComposition) (int64, error) {
	stable, err := chromatic.IsStable(o, phi)
	if err != nil || !stable {
		return 0, err
	}

	return 1, nil
}

// build fills the len(rows)×len(colLabels) matrix with entry(row, j),
// querying a tabulated copy of each row matroid.
//
// Steps:
//  1. Allocate the dense matrix.
//  2. Tabulate each row matroid once, so the column loop hits a table.
//  3. Fill the row; the first failing entry aborts with its coordinates.
func build(
	method string,
	cfg config,
	rows []matroid.Oracle,
	rowLabels, colLabels []string,
	entry func(o matroid.Oracle, j int) (int64, error),
) (*Table, error) {
	m, err := NewDense(len(rows), len(colLabels))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	for i, o := range rows {
		// 2. One tabulation per row.
		t, err := matroid.Tabulate(o)
		if err != nil {
			return nil, fmt.Errorf("%s: row %s: %w", method, rowLabels[i], err)
		}
		for j := range colLabels {
			v, err := entry(t, j)
			if err != nil {
				return nil, fmt.Errorf("%s: row %s, column %s: %w", method, rowLabels[i], colLabels[j], err)
			}
			m.data[i*m.c+j] = v
		}
	}
	cfg.logger.Debug("stability matrix built", "kind", method, "rows", m.r, "cols", m.c)

	return &Table{Matrix: m, Rows: rowLabels, Cols: colLabels}, nil
}

func joinInts(xs []int) string {
	var out []byte
	for i, x := range xs {
		if i > 0 {
			out = append(out, ',')
		}
		out = strconv.AppendInt(out, int64(x), 10)
	}

	return string(out)
}
