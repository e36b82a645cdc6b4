package color

import "github.com/katalvlaran/chroma/core"

// greedyOnView colors vertices in internal (degree-descending) order,
// giving each the smallest color absent among its already-colored
// neighbors — Welsh–Powell, since the view pre-sorted by degree.
// Always feasible, never proven optimal.
//
// Complexity: O(V + E) with a reusable scratch mark array.
func greedyOnView(view *degreeView) []int {
	v := view.v()
	colors := make([]int, v)
	for i := range colors {
		colors[i] = Unassigned
	}

	// taken[c] marks colors used by the current vertex's colored
	// neighbors; reset after each vertex to keep the pass linear.
	taken := make([]bool, v)
	for i := 0; i < v; i++ {
		for _, w := range view.neighbors(i) {
			if colors[w] != Unassigned {
				taken[colors[w]] = true
			}
		}
		c := 0
		for taken[c] {
			c++
		}
		colors[i] = c
		for _, w := range view.neighbors(i) {
			if colors[w] != Unassigned {
				taken[colors[w]] = false
			}
		}
	}

	return colors
}

// Greedy runs the Welsh–Powell heuristic alone: a feasible coloring in
// O(V + E), usable as a fast upper bound when the exact search would be
// too expensive. Equivalent to Solve with WithAlgo(GreedyOnly).
func Greedy(g *core.Graph) (Result, error) {
	return Solve(g, NewOptions(WithAlgo(GreedyOnly)))
}
