// Package color - validation utilities shared by the solvers and tests.
//
// ValidateColoring checks the three externally observable properties of
// any returned coloring: adjacency feasibility, color range, and the
// no-gap property guaranteed by the symmetry break. Deterministic,
// side-effect free, only sentinel errors (wrapped with context).

package color

import (
	"fmt"

	"github.com/katalvlaran/chroma/core"
)

// ValidateColoring verifies that assignment is a proper coloring of g
// whose used colors form the contiguous range 0..max.
//
// Errors: ErrNilGraph, ErrAssignmentLength, ErrColorRange,
// ErrAdjacentSameColor, ErrColorGap — each wrapped with the offending
// vertex or color for context; branch with errors.Is.
//
// Complexity: O(V + E) time, O(V) extra space.
func ValidateColoring(g *core.Graph, assignment []int) error {
	if g == nil {
		return ErrNilGraph
	}
	v := g.V()
	if len(assignment) != v {
		return fmt.Errorf("got %d colors for %d vertices: %w", len(assignment), v, ErrAssignmentLength)
	}

	// Range first; the gap scan below indexes by color.
	maxC := -1
	for u, c := range assignment {
		if c < 0 || c >= v {
			return fmt.Errorf("vertex %d has color %d: %w", u, c, ErrColorRange)
		}
		if c > maxC {
			maxC = c
		}
	}

	// No gaps: every color 0..maxC must be used by some vertex.
	used := make([]bool, maxC+1)
	for _, c := range assignment {
		used[c] = true
	}
	for c := 0; c <= maxC; c++ {
		if !used[c] {
			return fmt.Errorf("color %d unused below max %d: %w", c, maxC, ErrColorGap)
		}
	}

	// Adjacency: each undirected edge is visited twice; checking u < w
	// once would also do, but the double check costs the same O(E) pass.
	for u := 0; u < v; u++ {
		for _, w := range g.Neighbors(u) {
			if assignment[u] == assignment[w] {
				return fmt.Errorf("vertices %d and %d both have color %d: %w", u, w, assignment[u], ErrAdjacentSameColor)
			}
		}
	}

	return nil
}
