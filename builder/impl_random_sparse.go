// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// impl_random_sparse.go — Erdős–Rényi G(n, p) generator.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • One Float64 draw per unordered pair, pairs visited in ascending
//     (u, w) order, so a fixed seed fully determines the graph.
//
// Complexity: O(n²) pair draws, O(1) extra space.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/chroma/core"
)

const (
	methodRandomSparse = "RandomSparse"
	minRandomNodes     = 1
)

// RandomSparse builds a G(n, p) random simple graph: each unordered pair
// becomes an edge independently with probability p, drawn from a local
// rand.Rand seeded with seed.
func RandomSparse(n int, p float64, seed int64) (*core.Graph, error) {
	if n < minRandomNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomNodes, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, err)
	}

	// Local source: never the global RNG, so concurrent builds stay deterministic.
	rng := rand.New(rand.NewSource(seed))

	for u := 0; u < n; u++ {
		for w := u + 1; w < n; w++ {
			// Draw unconditionally: the stream position must not depend on p.
			if rng.Float64() < p {
				if err = g.AddEdge(u, w); err != nil {
					return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodRandomSparse, u, w, err)
				}
			}
		}
	}

	return g, nil
}
