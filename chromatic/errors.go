// SPDX-License-Identifier: MIT
// Package: chromatic/chromatic
//
// errors.go — sentinel errors and method names.

package chromatic

import (
	"errors"

	"github.com/katalvlaran/chromatic/matroid"
)

// ErrInvalidMatroid is matroid.ErrInvalidMatroid, re-exported for callers
// that only import this package.
var ErrInvalidMatroid = matroid.ErrInvalidMatroid

// ErrEmptyGroundSet indicates an empty matroid under WithRequireNonEmpty.
var ErrEmptyGroundSet = errors.New("chromatic: empty ground set")

// ErrGroundSetMismatch indicates a set composition whose ground set differs
// from the matroid's.
var ErrGroundSetMismatch = errors.New("chromatic: set composition does not match the ground set")

const (
	methodMobius       = "MobiusFunction"
	methodPolynomial   = "Polynomial"
	methodWhitney      = "WhitneyPolynomial"
	methodNCQSym       = "NonCommutativeQuasisymmetric"
	methodQSym         = "Quasisymmetric"
	methodIsStable     = "IsStable"
	methodStableColors = "IsGenericColoring"
)
