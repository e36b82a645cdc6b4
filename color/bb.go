// Package color — Branch-and-Bound driver (exact search over searchNodes).
//
// The driver explores color commitments depth-first: each branch clones
// the parent node, commits one (vertex, color) pair, lets propagation run
// to quiescence, and recurses on the first still-undecided vertex. The
// incumbent — the best complete feasible coloring found so far — is
// threaded through the call/return chain by value, never shared mutable
// state, so sibling branches exchange bounds left-to-right and the search
// stays trivially race-free.
//
// Pruning: a node whose relaxed lower bound (maximum already-forced
// color) is no better than the incumbent's maximum cannot yield a strict
// improvement and is abandoned. The bound ignores the symmetry
// constraint, so it never overestimates the best completion.
//
// Branching order is fully deterministic: vertices ascending from the
// branching point (the degree order did the prioritizing up front),
// colors ascending with reuse before introduction (nextColors).

package color

// incumbent is the best complete feasible coloring seen so far, kept in
// internal-id space until the final translation.
type incumbent struct {
	colors []int // internal id → color
	max    int   // highest color used
}

// bbEngine holds the per-solve search configuration.
type bbEngine struct {
	view  *degreeView
	width int  // domain width: V for Exact, k for ExactBounded
	feas  bool // feasibility mode: stop at the first complete solution
	done  bool // set once feas found a solution; unwinds the recursion
}

// search runs the exact search from a fresh root: vertex 0 (the
// highest-degree vertex) is always committed to color 0 first — the
// global symmetry anchor. Returns nil when no coloring exists within
// width colors (for Exact width == V, that is a defensive path only).
func (e *bbEngine) search(seed *incumbent) *incumbent {
	root := newSearchNode(e.view, e.width)

	return e.explore(root, 0, 0, seed)
}

// explore attempts the single commitment v=c on a fresh copy of parent
// and returns the best incumbent discovered in that subtree.
func (e *bbEngine) explore(parent *searchNode, v, c int, best *incumbent) *incumbent {
	node := parent.clone()
	if !node.setColor(v, c) {
		// Contradiction: abandon this branch only; pruning is not failure.
		return best
	}
	if best != nil && node.bound() >= best.max {
		// Even the best completion cannot strictly beat the incumbent.
		return best
	}
	if node.solved() {
		if e.feas {
			e.done = true
		}
		if best == nil || node.maxColor() < best.max {
			return &incumbent{colors: node.solution(), max: node.maxColor()}
		}

		return best
	}

	next := node.firstUndecided(v + 1)
	if next < 0 {
		// Unsolved yet nothing undecided: unreachable, kept defensive.
		return best
	}
	for _, nc := range node.nextColors(next, node.bound()) {
		best = e.explore(node, next, nc, best)
		if e.done {
			return best
		}
	}

	return best
}
