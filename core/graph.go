package core

import (
	"errors"
	"sort"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNonPositiveOrder indicates NewGraph was asked for fewer than one vertex.
	ErrNonPositiveOrder = errors.New("core: graph order must be positive")

	// ErrVertexRange indicates a vertex id outside [0, V).
	ErrVertexRange = errors.New("core: vertex id out of range")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates an edge that is already present.
	ErrDuplicateEdge = errors.New("core: duplicate edge not allowed")
)

// wordBits is the width of one adjacency-bitmap word.
const wordBits = 64

// Graph is an undirected simple graph over the fixed vertex set 0..V-1.
//
// Adjacency is kept twice: an ascending neighbor slice per vertex (cheap
// ordered iteration) and a bitmap per vertex (O(1) HasEdge). Both views
// are maintained by AddEdge and never diverge.
type Graph struct {
	mu sync.RWMutex

	v    int        // number of vertices, fixed at construction
	e    int        // number of edges added so far
	adj  [][]int    // adj[u] = neighbor ids of u, ascending
	bits [][]uint64 // bits[u] = adjacency bitmap of u
}

// NewGraph returns an empty simple graph with v vertices 0..v-1.
// Returns ErrNonPositiveOrder when v < 1.
//
// Complexity: O(v).
func NewGraph(v int) (*Graph, error) {
	if v < 1 {
		return nil, ErrNonPositiveOrder
	}
	words := (v + wordBits - 1) / wordBits
	g := &Graph{
		v:    v,
		adj:  make([][]int, v),
		bits: make([][]uint64, v),
	}
	for i := 0; i < v; i++ {
		g.bits[i] = make([]uint64, words)
	}

	return g, nil
}

// V returns the number of vertices.
func (g *Graph) V() int { return g.v }

// E returns the number of edges added so far.
// Thread-safe: acquires a read lock.
func (g *Graph) E() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.e
}

// AddEdge inserts the undirected edge {u, w}, keeping both neighbor
// slices in ascending order regardless of insertion order.
// Rejects out-of-range ids (ErrVertexRange), u == w (ErrSelfLoop) and an
// already-present edge (ErrDuplicateEdge).
// Thread-safe: acquires a write lock.
//
// Complexity: O(d) per endpoint for the ordered insert.
func (g *Graph) AddEdge(u, w int) error {
	if u < 0 || u >= g.v || w < 0 || w >= g.v {
		return ErrVertexRange
	}
	if u == w {
		return ErrSelfLoop
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.bits[u][w/wordBits]&(1<<uint(w%wordBits)) != 0 {
		return ErrDuplicateEdge
	}
	g.adj[u] = insertSorted(g.adj[u], w)
	g.adj[w] = insertSorted(g.adj[w], u)
	g.bits[u][w/wordBits] |= 1 << uint(w%wordBits)
	g.bits[w][u/wordBits] |= 1 << uint(u%wordBits)
	g.e++

	return nil
}

// insertSorted inserts x into the ascending slice s. The caller has
// already ruled out duplicates via the bitmap.
func insertSorted(s []int, x int) []int {
	i := sort.SearchInts(s, x)
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = x

	return s
}

// HasEdge reports whether the edge {u, w} is present.
// Out-of-range ids report false (queries never error).
// Thread-safe: acquires a read lock.
//
// Complexity: O(1).
func (g *Graph) HasEdge(u, w int) bool {
	if u < 0 || u >= g.v || w < 0 || w >= g.v {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.bits[u][w/wordBits]&(1<<uint(w%wordBits)) != 0
}

// Degree returns the number of neighbors of u, or 0 for out-of-range ids.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1).
func (g *Graph) Degree(u int) int {
	if u < 0 || u >= g.v {
		return 0
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj[u])
}

// Neighbors returns a copy of u's neighbor ids in ascending order.
// Returns nil for out-of-range ids.
// Thread-safe: acquires a read lock.
//
// Complexity: O(d) where d = Degree(u).
func (g *Graph) Neighbors(u int) []int {
	if u < 0 || u >= g.v {
		return nil
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, len(g.adj[u]))
	copy(out, g.adj[u])

	return out
}

// Clone returns an independent deep copy of the graph.
// Solvers take a Clone once and never touch the caller's instance again.
// Thread-safe: acquires a read lock on the source.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		v:    g.v,
		e:    g.e,
		adj:  make([][]int, g.v),
		bits: make([][]uint64, g.v),
	}
	for i := 0; i < g.v; i++ {
		out.adj[i] = make([]int, len(g.adj[i]))
		copy(out.adj[i], g.adj[i])
		out.bits[i] = make([]uint64, len(g.bits[i]))
		copy(out.bits[i], g.bits[i])
	}

	return out
}
