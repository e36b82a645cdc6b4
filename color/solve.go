// Package color - unified dispatcher for the coloring solvers.
//
// Solve is the canonical entry point: it validates Options against the
// graph, takes a private clone (the caller's instance is never touched
// after this point), builds the degree-ordered view, and routes to the
// requested algorithm. All returned colorings are validated against the
// graph before they leave the package.

package color

import (
	"fmt"

	"github.com/katalvlaran/chroma/core"
)

// Solve validates inputs and routes to the chosen algorithm.
//
// Contracts:
//   - g must be non-nil (ErrNilGraph).
//   - Exact / GreedyOnly require MaxColors == 0; ExactBounded requires
//     1 ≤ MaxColors ≤ V (ErrBadMaxColors).
//   - The unbounded exact search always returns Optimal == true; the
//     bounded variant reports infeasibility as a Result (all colors
//     Unassigned), never as an error.
//
// Complexity: view construction O(V log V + E log E); then per algorithm
// (GreedyOnly O(V + E), exact searches exponential worst case).
func Solve(g *core.Graph, opts Options) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if err := validateOptions(g, opts); err != nil {
		return Result{}, err
	}

	// Private, never-mutated copy: the engine indexes it lock-free.
	pg := g.Clone()
	view := newDegreeView(pg)

	var (
		best    *incumbent
		optimal bool
	)
	switch opts.Algo {
	case GreedyOnly:
		best = &incumbent{colors: greedyOnView(view)}

	case Exact:
		e := &bbEngine{view: view, width: pg.V()}
		var seed *incumbent
		if opts.SeedGreedy {
			colors := greedyOnView(view)
			seed = &incumbent{colors: colors, max: maxOf(colors)}
		}
		best = e.search(seed)
		optimal = best != nil

	case ExactBounded:
		e := &bbEngine{view: view, width: opts.MaxColors, feas: true}
		best = e.search(nil)
	}

	if best == nil {
		// No coloring within the budget: a first-class result.
		return infeasibleResult(pg.V()), nil
	}

	res := newResult(view, best.colors, optimal)
	if err := ValidateColoring(pg, res.Assignment); err != nil {
		// Engine self-check; any hit here is a solver bug, not bad input.
		return Result{}, fmt.Errorf("color: internal validation failed: %w", err)
	}

	return res, nil
}

// validateOptions enforces the Options↔graph contract before any work.
func validateOptions(g *core.Graph, opts Options) error {
	switch opts.Algo {
	case Exact, GreedyOnly:
		if opts.MaxColors != 0 {
			return ErrBadMaxColors
		}
	case ExactBounded:
		if opts.MaxColors < 1 || opts.MaxColors > g.V() {
			return ErrBadMaxColors
		}
	default:
		return ErrUnsupportedAlgorithm
	}

	return nil
}

// newResult translates an internal-id coloring back through the view.
func newResult(view *degreeView, internal []int, optimal bool) Result {
	assignment := make([]int, len(internal))
	maxC := -1
	for i, c := range internal {
		assignment[view.toOriginal(i)] = c
		if c > maxC {
			maxC = c
		}
	}

	return Result{
		Colors:     maxC + 1,
		Optimal:    optimal,
		Assignment: assignment,
	}
}

// infeasibleResult reports "no coloring exists under these bounds".
func infeasibleResult(v int) Result {
	assignment := make([]int, v)
	for i := range assignment {
		assignment[i] = Unassigned
	}

	return Result{Colors: 0, Optimal: false, Assignment: assignment}
}

// maxOf returns the maximum of a non-empty int slice.
func maxOf(xs []int) int {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}

	return m
}
