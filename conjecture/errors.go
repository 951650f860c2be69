// SPDX-License-Identifier: MIT
// Package: chromatic/conjecture
//
// errors.go — sentinel errors and operation names.

package conjecture

import "errors"

// Sentinel errors. Wrapped with a method tag; match with errors.Is.
var (
	// ErrBadShape is returned when requested shape is invalid (rows<=0 or cols<=0).
	ErrBadShape = errors.New("conjecture: invalid shape")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("conjecture: index out of range")

	// ErrRaggedRows indicates rows of different lengths passed to FromRows.
	ErrRaggedRows = errors.New("conjecture: rows have different lengths")

	// ErrInvalidDimension indicates d outside [1, MaxDimension].
	ErrInvalidDimension = errors.New("conjecture: invalid dimension")

	// ErrInvalidSubset indicates a subset that is not a set of elements of [d].
	ErrInvalidSubset = errors.New("conjecture: invalid subset")

	// ErrInvalidPermutation indicates a sequence that is not a permutation of [n].
	ErrInvalidPermutation = errors.New("conjecture: invalid permutation")
)

// Method tags for error wrapping.
const (
	opNewDense        = "NewDense"
	opFromRows        = "FromRows"
	opAt              = "Dense.At"
	opSet             = "Dense.Set"
	opFromSet         = "FromSetToSetComposition"
	opValidSubsets    = "ValidSubsets"
	opMinMax          = "MinMaxSetComposition"
	opPermutations    = "Permutations"
	opFromPermutation = "SetCompositionsFromPermutation"
	opLowerBound      = "LowerBound"
	opConjecture      = "Conjecture"
	opBig             = "Big"
	opAlternatingSum  = "AlternatingSum"
	opStudy           = "Study"
)
