// SPDX-License-Identifier: MIT
// Package: chromatic/matroid

// Package matroid provides finite matroids behind a rank oracle, plus the
// lattice-of-flats and basis utilities the chromatic invariants are built on.
//
// What:
//
//   - Oracle is the only contract the rest of the module relies on: a
//     sorted list of integer labels (the ground set E) and a rank function
//     on subsets of E.
//   - Subset is a bitmask over positions of GroundSet(): bit i set means
//     the i-th smallest label belongs to the subset. Ground sets are
//     therefore limited to 64 elements (ErrGroundSetTooLarge).
//   - BasisMatroid stores the family of bases and checks the basis exchange
//     axiom on construction; RankMatroid wraps a rank function.
//   - Closure, Flats, Bases, Circuits, Loops and Greedy work on any Oracle.
//   - Table precomputes all 2^|E| ranks for oracles that are queried
//     exhaustively.
//
// Why:
//
//   - Enumerating flats and testing stability of colorings call the rank
//     function millions of times; a bitmask keeps each call allocation-free.
//
// Complexity:
//
//   - BasisMatroid.Rank: O(#bases).
//   - Flats: O(#flats · |E|) rank calls.
//   - ValidateRank: O(2^|E| · |E|²) rank calls.
//
// Errors:
//
//   - ErrInvalidMatroid: the bases or the rank function violate the axioms.
//   - ErrEmptyBasisFamily: no basis given.
//   - ErrGroundSetTooLarge: more than MaxGroundSet elements (or MaxTabulated
//     for Table).
//   - ErrUnknownElement: a label outside the ground set.
//   - ErrDuplicateElement: a label repeated where a set is expected.
package matroid
