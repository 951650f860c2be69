// SPDX-License-Identifier: MIT
// Package: chromatic/conjecture
//
// study.go — the dimension study across Schubert and nested matroids.

package conjecture

import (
	"fmt"

	"github.com/katalvlaran/chromatic/chromatic"
	"github.com/katalvlaran/chromatic/families"
	"github.com/katalvlaran/chromatic/ncqsym"
	"github.com/katalvlaran/chromatic/qsym"
)

// Dimension reports the ranks of the chromatic QSym and NCQSym images of
// the loopless nested matroids on d elements. The bounds are the numbers
// of compositions and of permutations of d.
type Dimension struct {
	D               int   `json:"d"`
	Matroids        int   `json:"matroids"`
	SetCompositions int   `json:"set_compositions"`
	QSymRank        int   `json:"qsym_rank"`
	QSymBound       int64 `json:"qsym_bound"`
	NCQSymRank      int   `json:"ncqsym_rank"`
	NCQSymBound     int64 `json:"ncqsym_bound"`
}

// Study computes Dimension for d.
//
// Stage 1: build the loopless nested matroids on [d].
// Stage 2: compute each chromatic NCQSym function and its commutative image.
// Stage 3: lay the coefficients out as two integer matrices (one row per
// matroid, one column per monomial seen) and take exact ranks.
func Study(d int, opts ...Option) (Dimension, error) {
	cfg := newConfig(opts...)
	if err := checkDimension(opStudy, d); err != nil {
		return Dimension{}, err
	}
	matroids, err := families.LooplessNested(d, families.WithGenerator(cfg.generator))
	if err != nil {
		return Dimension{}, fmt.Errorf("%s: %w", opStudy, err)
	}

	ncs := make([]ncqsym.Function, len(matroids))
	qs := make([]qsym.Function, len(matroids))
	for i, m := range matroids {
		nc, err := chromatic.NonCommutativeQuasisymmetric(m,
			chromatic.WithoutValidation(),
			chromatic.WithGenerator(cfg.generator),
			chromatic.WithLogger(cfg.logger),
		)
		if err != nil {
			return Dimension{}, fmt.Errorf("%s: %w", opStudy, err)
		}
		ncs[i] = nc
		qs[i] = nc.Commutative()
	}

	ncRows := coefficientRows(len(ncs), func(i int, emit func(string, int64)) {
		for _, t := range ncs[i].Terms() {
			emit(t.SetComposition.Key(), t.Coefficient)
		}
	})
	qRows := coefficientRows(len(qs), func(i int, emit func(string, int64)) {
		for _, t := range qs[i].Terms() {
			emit(t.Composition.Key(), t.Coefficient)
		}
	})
	ncMatrix, err := FromRows(ncRows)
	if err != nil {
		return Dimension{}, fmt.Errorf("%s: %w", opStudy, err)
	}
	qMatrix, err := FromRows(qRows)
	if err != nil {
		return Dimension{}, fmt.Errorf("%s: %w", opStudy, err)
	}

	res := Dimension{
		D:               d,
		Matroids:        len(matroids),
		SetCompositions: len(cfg.generator.All(d)),
		QSymRank:        qMatrix.Rank(),
		QSymBound:       int64(1) << (d - 1),
		NCQSymRank:      ncMatrix.Rank(),
		NCQSymBound:     factorial(d),
	}
	cfg.logger.Debug("dimension study done",
		"d", d,
		"matroids", res.Matroids,
		"qsym_rank", res.QSymRank,
		"ncqsym_rank", res.NCQSymRank,
	)

	return res, nil
}

// coefficientRows turns n sparse rows into dense ones over the union of
// their keys, with columns in first-seen order.
func coefficientRows(n int, each func(i int, emit func(key string, c int64))) [][]int64 {
	index := make(map[string]int)
	sparse := make([]map[int]int64, n)
	for i := range sparse {
		sparse[i] = make(map[int]int64)
		each(i, func(key string, c int64) {
			j, ok := index[key]
			if !ok {
				j = len(index)
				index[key] = j
			}
			sparse[i][j] = c
		})
	}

	rows := make([][]int64, n)
	for i, row := range sparse {
		rows[i] = make([]int64, len(index))
		for j, c := range row {
			rows[i][j] = c
		}
	}

	return rows
}

func factorial(n int) int64 {
	f := int64(1)
	for i := 2; i <= n; i++ {
		f *= int64(i)
	}

	return f
}
