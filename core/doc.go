// SPDX-License-Identifier: MIT
// Package: chromatic/core
//
// Package core provides the in-memory undirected multigraph behind graphic
// matroids. A graph G = (V, E) is built once, then read by the traversal
// package (dfs) and by families.Graphic, which turns every edge into one
// element of the cycle matroid M(G).
//
// Model:
//
//   - Vertices are identified by non-empty strings.
//   - Edges are undirected; Edge.From and Edge.To only record the order in
//     which the endpoints were given.
//   - Self-loops (WithLoops) become loops of M(G).
//   - Parallel edges (WithMultiEdges) become parallel elements of M(G).
//   - Edge IDs are "e1", "e2", … in creation order, and every enumeration
//     of edges (Edges, Neighbors) follows that order.
//
// Graph options:
//
//	– WithLoops()       permit from == to; otherwise ErrLoopNotAllowed.
//	– WithMultiEdges()  permit a second edge between the same endpoints;
//	                    otherwise ErrMultiEdgeNotAllowed.
//
// Core methods:
//
//	AddVertex(id string) error                         // O(1)
//	HasVertex(id string) bool                          // O(1)
//	Vertices() []string                                // O(V·log V), sorted
//	VertexCount() int                                  // O(1)
//	AddEdge(from, to string) (edgeID string, err error) // O(1) amortized
//	HasEdge(u, v string) bool                          // O(1)
//	Edges() []*Edge                                    // O(E·log E), creation order
//	EdgeCount() int                                    // O(1)
//	Neighbors(id string) ([]*Edge, error)              // O(d·log d), creation order
//
// Concurrency:
//
//	One sync.RWMutex guards the vertex catalog, the edge catalog and the
//	adjacency buckets. Reads may run in parallel with each other; mutation
//	is serialized.
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrLoopNotAllowed      – self-loop when loops are disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges are disabled
package core
