package color

import (
	"sort"

	"github.com/katalvlaran/chroma/core"
)

// degreeView relabels a graph's vertices so that internal id 0 is the
// highest-degree vertex and degrees never increase with internal id
// (ties broken by ascending original id, so the mapping is deterministic).
//
// Searching in this order front-loads the most constrained vertices and
// anchors the symmetry break: internal vertex 0 always takes color 0.
// The view is built once per solve and read-only afterwards.
type degreeView struct {
	order []int   // order[internal] = original id
	index []int   // index[original] = internal id
	adj   [][]int // adjacency over internal ids, ascending per row
}

// newDegreeView builds the relabeling and the internal adjacency in
// O(V log V + E log E) (one sort for the permutation, one per row).
func newDegreeView(g *core.Graph) *degreeView {
	v := g.V()
	order := make([]int, v)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		da, db := g.Degree(order[a]), g.Degree(order[b])
		if da != db {
			return da > db
		}

		return order[a] < order[b]
	})

	index := make([]int, v)
	for i, orig := range order {
		index[orig] = i
	}

	adj := make([][]int, v)
	for i, orig := range order {
		nbrs := g.Neighbors(orig)
		row := make([]int, len(nbrs))
		for j, w := range nbrs {
			row[j] = index[w]
		}
		sort.Ints(row)
		adj[i] = row
	}

	return &degreeView{order: order, index: index, adj: adj}
}

// v returns the vertex count.
func (dv *degreeView) v() int { return len(dv.order) }

// toInternal maps an original vertex id to its internal id.
// Out-of-range ids are a contract violation, not a runtime condition.
func (dv *degreeView) toInternal(orig int) int { return dv.index[orig] }

// toOriginal maps an internal vertex id back to the caller's id.
func (dv *degreeView) toOriginal(internal int) int { return dv.order[internal] }

// neighbors returns the internal-id adjacency row of v. The slice is
// shared and must not be mutated.
func (dv *degreeView) neighbors(v int) []int { return dv.adj[v] }
