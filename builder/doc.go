// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// Package builder provides deterministic topology generators for
// core.Graph: the classic families every coloring test and example
// reaches for.
//
// Design contract (strict):
//   - Each factory validates its parameters early and returns sentinel
//     errors (ErrTooFewVertices, ErrInvalidProbability); never panics.
//   - Determinism: identical parameters (and seed, for RandomSparse)
//     produce identical graphs, edge-by-edge, on every run.
//   - Emission order is documented per factory and stable.
//
// Factories:
//
//	Complete(n)              - K_n, chromatic number n.
//	Cycle(n)                 - C_n, chromatic number 2 (even) / 3 (odd).
//	Path(n)                  - P_n, chromatic number 2 (n ≥ 2).
//	Star(n)                  - K_{1,n-1} with center 0.
//	CompleteBipartite(n1,n2) - K_{n1,n2}, chromatic number 2.
//	RandomSparse(n, p, seed) - Erdős–Rényi G(n, p), seeded.
//
// The known chromatic numbers above make these graphs self-checking
// fixtures for the color package.
package builder
