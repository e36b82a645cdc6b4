// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// impl_families.go — deterministic factories for the fixed families.
//
// Contract:
//   • Validate the order first (fail fast, no allocation on invalid input).
//   • Emit edges in the documented ascending order.
//   • Wrap sentinel errors with the factory name for context, keep %w for errors.Is.
//
// Complexity:
//   • Complete: O(n²) edges. Cycle/Path/Star: O(n). CompleteBipartite: O(n1·n2).

package builder

import (
	"fmt"

	"github.com/katalvlaran/chroma/core"
)

// File-local constants (no magic numbers; stable method tags for context).
const (
	methodComplete  = "Complete"
	methodCycle     = "Cycle"
	methodPath      = "Path"
	methodStar      = "Star"
	methodBipartite = "CompleteBipartite"

	minCompleteNodes  = 1
	minCycleNodes     = 3
	minPathNodes      = 2
	minStarNodes      = 2
	minPartitionNodes = 1
)

// Complete builds the complete simple graph K_n (n ≥ 1).
// Edges are emitted in ascending (u, w) order, u < w.
func Complete(n int) (*core.Graph, error) {
	// Validate parameter domain early.
	if n < minCompleteNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodComplete, err)
	}

	// Emit every unordered pair once, smallest endpoints first.
	for u := 0; u < n; u++ {
		for w := u + 1; w < n; w++ {
			if err = g.AddEdge(u, w); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodComplete, u, w, err)
			}
		}
	}

	return g, nil
}

// Cycle builds an n-vertex simple cycle C_n (n ≥ 3).
// Edges are emitted as i—(i+1)%n for i = 0..n-1.
func Cycle(n int) (*core.Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCycle, err)
	}

	// Close the ring on the last step (i = n-1 connects back to 0).
	for i := 0; i < n; i++ {
		if err = g.AddEdge(i, (i+1)%n); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodCycle, i, (i+1)%n, err)
		}
	}

	return g, nil
}

// Path builds a simple path P_n (n ≥ 2).
// Edges are emitted as i—(i+1) for i = 0..n-2.
func Path(n int) (*core.Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodPath, err)
	}

	for i := 0; i+1 < n; i++ {
		if err = g.AddEdge(i, i+1); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodPath, i, i+1, err)
		}
	}

	return g, nil
}

// Star builds the star K_{1,n-1}: vertex 0 is the center, 1..n-1 the leaves
// (n ≥ 2). Edges are emitted as 0—i for i = 1..n-1.
func Star(n int) (*core.Graph, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodStar, err)
	}

	for i := 1; i < n; i++ {
		if err = g.AddEdge(0, i); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(0,%d): %w", methodStar, i, err)
		}
	}

	return g, nil
}

// CompleteBipartite builds K_{n1,n2}: vertices 0..n1-1 form the left
// partition, n1..n1+n2-1 the right one (n1, n2 ≥ 1).
// Edges are emitted left-major: u—(n1+w) for u = 0..n1-1, w = 0..n2-1.
func CompleteBipartite(n1, n2 int) (*core.Graph, error) {
	if n1 < minPartitionNodes || n2 < minPartitionNodes {
		return nil, fmt.Errorf("%s: n1=%d, n2=%d < min=%d: %w", methodBipartite, n1, n2, minPartitionNodes, ErrTooFewVertices)
	}

	g, err := core.NewGraph(n1 + n2)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBipartite, err)
	}

	for u := 0; u < n1; u++ {
		for w := 0; w < n2; w++ {
			if err = g.AddEdge(u, n1+w); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodBipartite, u, n1+w, err)
			}
		}
	}

	return g, nil
}
