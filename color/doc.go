// Package color solves the exact graph-coloring problem: assign
// non-negative integer colors to the vertices of an undirected simple
// graph so that no edge joins two equal colors, minimizing the number of
// distinct colors — and prove minimality when the search completes.
//
// It includes three operations on a core.Graph, routed through Solve:
//
//   - Exact — constraint-propagation Branch-and-Bound (the default).
//
//   - Maintains, per vertex, a bitset domain of admissible colors under
//     three simultaneous constraints: color range [0, V), adjacency
//     inequality, and a lexicographic symmetry break (a vertex may never
//     use a color more than one above the running maximum of its
//     predecessors in degree order).
//
//   - Complexity: exponential worst case (the problem is NP-hard);
//     propagation is O(V + E) bitset work per committed color, and
//     pruning uses an admissible lower bound (the maximum already-forced
//     color), so practical instances collapse far below the worst case.
//
//   - GreedyOnly — Welsh–Powell first-fit in descending-degree order.
//     O(V + E); feasible, never proven optimal.
//
//   - ExactBounded — the same engine with domain width k (Options.
//     MaxColors): a feasibility search answering "does a k-coloring
//     exist?". Infeasibility is a first-class Result, not an error.
//
// Vertices are relabeled internally by non-increasing degree (ties by
// ascending id) before the search; results are translated back to the
// caller's vertex ids. The search is single-threaded, depth-first and
// deterministic: identical inputs and options yield identical colorings.
//
// Errors (sentinel):
//
//	– ErrNilGraph            if the provided graph pointer is nil.
//	– ErrBadMaxColors        if MaxColors is outside the algorithm's range.
//	– ErrUnsupportedAlgorithm if Options.Algo is unknown.
//	– ErrAssignmentLength, ErrColorRange, ErrAdjacentSameColor,
//	  ErrColorGap from ValidateColoring.
//
// Example usage:
//
//	g, _ := builder.Cycle(5)
//	res, err := color.Solve(g, color.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("colors=%d optimal=%v\n", res.Colors, res.Optimal)
package color
