// SPDX-License-Identifier: MIT
// Package: chromatic/families
//
// errors.go — sentinel errors.

package families

import "errors"

// ErrInvalidParameter indicates a size or rank outside the constructor's domain.
var ErrInvalidParameter = errors.New("families: parameter out of range")

// ErrInvalidChain indicates a set chain or rank chain that does not define a
// nested matroid.
var ErrInvalidChain = errors.New("families: invalid nested chain")

