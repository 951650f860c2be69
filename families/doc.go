// SPDX-License-Identifier: MIT
// Package: chromatic/families

// Package families constructs the standard families of matroids used to
// study chromatic invariants: uniform, Schubert, nested and graphic
// matroids.
//
// What:
//
//   - Uniform(n, r): all r-subsets of an n-set are bases.
//   - Schubert(n, A): B = {b₁<…<b_r} is a basis iff bᵢ ≤ aᵢ for A = {a₁<…<a_r}.
//     AllSchubert and LooplessSchubert enumerate the whole family on [n].
//   - Nested(n, r, X, R): for a chain X₁ ⊂ … ⊂ X_k = [n] and ranks
//     r₁ < … < r_k = r, B is a basis iff |B ∩ Xᵢ| ≤ rᵢ for every i.
//     NestedDoubleChains lists the balanced double chains (X, R) of [d]
//     and LooplessNested builds their matroids.
//   - Graphic(g): the cycle matroid of a core.Graph multigraph, with
//     r(S) = |V| − c(V, S) counted by dfs.ComponentCount over the edges of
//     S. The builder package supplies K_n, C_n, G(n, p) and edge lists.
//
// Labels:
//
//	Elements are positions 0..n−1 mapped through the label function of
//	the resolved config. The default maps i to i+1, so every family lives
//	on {1,…,n} unless WithLabelFn or WithOffset says otherwise.
//
// Determinism:
//
//	Every constructor is pure given its options and inputs. Graphic
//	follows the edge creation order of the graph, which core keeps stable.
//
// Errors:
//
//   - ErrInvalidParameter: n, r or d outside their domain, or a nil graph.
//   - ErrInvalidChain: X or R do not form a valid nested chain pair.
//   - matroid errors (for example ErrGroundSetTooLarge) are wrapped as is.
package families
