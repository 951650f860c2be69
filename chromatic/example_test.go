// SPDX-License-Identifier: MIT
// Package: chromatic/chromatic

package chromatic_test

import (
	"fmt"

	"github.com/katalvlaran/chromatic/chromatic"
	"github.com/katalvlaran/chromatic/families"
)

// ExamplePolynomial computes χ for U(2,3), the cycle matroid of a triangle.
func ExamplePolynomial() {
	m, _ := families.Uniform(3, 2)
	p, err := chromatic.Polynomial(m)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p)
	// Output: x^2 - 3x + 2
}

// ExampleQuasisymmetric shows the chromatic quasisymmetric function of U(1,2).
func ExampleQuasisymmetric() {
	m, _ := families.Uniform(2, 1)
	q, err := chromatic.Quasisymmetric(m)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(q)
	// Output: 2·M(1,1)
}
