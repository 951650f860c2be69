// SPDX-License-Identifier: MIT
// Package: chromatic/families
//
// uniform.go — uniform matroids.

package families

import (
	"fmt"

	"github.com/katalvlaran/chromatic/matroid"
)

const methodUniform = "Uniform"

// Uniform returns U(r, n): n elements, every r-subset a basis. Requires
// 0 ≤ r ≤ n.
func Uniform(n, r int, opts ...Option) (*matroid.BasisMatroid, error) {
	if n < 0 || r < 0 || r > n {
		return nil, fmt.Errorf("%s: n=%d r=%d: %w", methodUniform, n, r, ErrInvalidParameter)
	}

	return fromPredicate(methodUniform, newConfig(opts...), n, r, func(matroid.Subset) bool { return true })
}
