// SPDX-License-Identifier: MIT
// Package: chromatic/builder
//
// Package builder provides deterministic constructors for the graphs whose
// cycle matroids feed the chromatic pipeline.
//
// Every constructor is a Constructor closure applied to a *core.Graph by
// BuildGraph; vertices are named through the ID scheme (decimal by default)
// and edges receive core's creation-order IDs, so the same inputs always
// produce the same edge order and, downstream, the same ground set.
//
// Constructors:
//
//   - Complete(n)           K_n, pairs i<j in lexicographic order; n ≥ 1.
//   - Cycle(n)              C_n, edges i–(i+1) mod n; n ≥ 3.
//   - RandomSparse(n, p)    Erdős–Rényi G(n, p); RNG needed for 0 < p < 1.
//   - EdgeList(pairs)       explicit index pairs, loops and repeats allowed
//                           when the graph permits them.
//
// Options:
//
//   - WithIDScheme(fn)  vertex naming, fn(i) → ID.
//   - WithRand(r)       explicit RNG.
//   - WithSeed(seed)    RNG from a seed.
//
// Errors:
//
//   - ErrTooFewVertices      n below the constructor minimum.
//   - ErrInvalidProbability  p outside [0, 1].
//   - ErrNeedRandSource      0 < p < 1 without an RNG.
//   - ErrInvalidEdge         negative vertex index in EdgeList.
//   - ErrConstructFailed     nil constructor passed to BuildGraph.
package builder
