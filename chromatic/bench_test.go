// SPDX-License-Identifier: MIT
// Package: chromatic/chromatic

package chromatic_test

import (
	"testing"

	"github.com/katalvlaran/chromatic/builder"
	"github.com/katalvlaran/chromatic/chromatic"
	"github.com/katalvlaran/chromatic/families"
	"github.com/katalvlaran/chromatic/setcomposition"
)

// BenchmarkNonCommutativeQuasisymmetric_U36 enumerates the 4683 set
// compositions of a 6-element uniform matroid.
func BenchmarkNonCommutativeQuasisymmetric_U36(b *testing.B) {
	m, err := families.Uniform(6, 3)
	if err != nil {
		b.Fatal(err)
	}
	g := setcomposition.NewGenerator()
	_ = g.All(6)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := chromatic.NonCommutativeQuasisymmetric(m, chromatic.WithGenerator(g)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPolynomial_K5 computes χ for the cycle matroid of K5.
func BenchmarkPolynomial_K5(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(5))
	if err != nil {
		b.Fatal(err)
	}
	m, err := families.Graphic(g)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := chromatic.Polynomial(m); err != nil {
			b.Fatal(err)
		}
	}
}
