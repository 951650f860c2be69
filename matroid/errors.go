// SPDX-License-Identifier: MIT
// Package: chromatic/matroid
//
// errors.go — sentinel errors and method names.

package matroid

import "errors"

// Sentinel errors returned (wrapped) by this package.
var (
	// ErrInvalidMatroid indicates a basis family or rank function that
	// violates the matroid axioms.
	ErrInvalidMatroid = errors.New("matroid: matroid axioms not satisfied")

	// ErrEmptyBasisFamily indicates a basis family with no member.
	ErrEmptyBasisFamily = errors.New("matroid: at least one basis is required")

	// ErrGroundSetTooLarge indicates a ground set beyond the bitmask width.
	ErrGroundSetTooLarge = errors.New("matroid: ground set too large")

	// ErrUnknownElement indicates a label that is not in the ground set.
	ErrUnknownElement = errors.New("matroid: element not in ground set")

	// ErrDuplicateElement indicates a label listed twice.
	ErrDuplicateElement = errors.New("matroid: duplicate element")
)

const (
	methodNewBasisMatroid = "NewBasisMatroid"
	methodNewRankMatroid  = "NewRankMatroid"
	methodRelabel         = "Relabel"
	methodExtend          = "Extend"
	methodSubsetOf        = "SubsetOf"
	methodValidateRank    = "ValidateRank"
	methodTabulate        = "Tabulate"
	methodSpotCheckRank   = "SpotCheckRank"
)
