// Package core defines the fundamental Graph type used by every chroma
// solver: an undirected simple graph over a fixed vertex set 0..V-1.
//
// The representation is dense and integer-indexed on purpose — coloring
// engines index adjacency millions of times per solve, so vertex ids are
// array offsets, adjacency is a sorted neighbor slice per vertex, and
// membership checks run on a per-vertex bitmap.
//
// Contracts:
//
//   - Vertices are created once by NewGraph(v); the vertex set never
//     changes afterwards.
//   - AddEdge rejects out-of-range endpoints, self-loops and duplicate
//     edges with sentinel errors (simple graph, by definition).
//   - All mutations acquire a write lock; queries acquire a read lock.
//     Solvers call Clone() once and work on a private copy, so the lock
//     never appears on a search hot path.
//
// Errors:
//
//	ErrNonPositiveOrder - NewGraph called with v < 1.
//	ErrVertexRange      - vertex id outside [0, V).
//	ErrSelfLoop         - edge with equal endpoints.
//	ErrDuplicateEdge    - edge already present.
//
// Complexity: AddEdge O(d) ordered insert, HasEdge O(1), Neighbors O(d)
// copy, Clone O(V + E).
package core
