// Package chroma is an exact graph-coloring toolkit: given an undirected
// simple graph, assign non-negative integer colors to vertices so that no
// edge joins two vertices of the same color, using as few colors as
// possible — and prove that the count is minimal.
//
// 🚀 What is chroma?
//
//	A small, deterministic solver stack built from four layers:
//		• core    — dense undirected simple graphs over vertices 0..V-1
//		• builder — deterministic topology generators (K_n, C_n, P_n, …)
//		• color   — the constraint-propagation Branch-and-Bound engine,
//		            a Welsh–Powell greedy colorer, and a bounded-k variant
//		• dimacs  — edge-list / DIMACS parsing and serialization
//
// ✨ Why choose chroma?
//
//   - Exact – the search is complete: it either proves the chromatic
//     number or, for the bounded-k variant, proves infeasibility
//   - Deterministic – identical inputs and options yield identical results
//   - Pure Go solver core – the engine itself has no third-party deps
//   - Scriptable – a cobra-based CLI (cmd/chroma) with DOT/SVG rendering
//
// Quick ASCII example:
//
//	    0───1
//	    │ ╲ │
//	    3───2
//
//	a 4-cycle with one chord needs exactly 3 colors; chroma proves it.
//
// Start with color.Solve for the library API, or `chroma solve` on the
// command line. See each package's doc.go for contracts and complexity.
//
//	go get github.com/katalvlaran/chroma
package chroma
