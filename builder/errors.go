// SPDX-License-Identifier: MIT
// Package: chromatic/builder
//
// errors.go — sentinel errors.

package builder

import "errors"

var (
	// ErrTooFewVertices indicates n is below the constructor's minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrInvalidProbability indicates p ∉ [0, 1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without RNG.
	ErrNeedRandSource = errors.New("builder: random source required")

	// ErrInvalidEdge indicates a malformed edge specification.
	ErrInvalidEdge = errors.New("builder: invalid edge")

	// ErrConstructFailed wraps a failure to apply a constructor.
	ErrConstructFailed = errors.New("builder: construction failed")
)

const (
	methodComplete     = "Complete"
	methodCycle        = "Cycle"
	methodRandomSparse = "RandomSparse"
	methodEdgeList     = "EdgeList"
	methodBuildGraph   = "BuildGraph"
)
