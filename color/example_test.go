package color_test

import (
	"fmt"

	"github.com/katalvlaran/chroma/builder"
	"github.com/katalvlaran/chroma/color"
)

// ExampleSolve demonstrates the exact solver on the smallest graph that
// defeats every 2-coloring attempt: the odd cycle C5.
func ExampleSolve() {
	// 1) Build the 5-cycle 0-1-2-3-4-0.
	g, err := builder.Cycle(5)
	if err != nil {
		fmt.Println("build error:", err)

		return
	}

	// 2) Run the exact search with default options.
	res, err := color.Solve(g, color.DefaultOptions())
	if err != nil {
		fmt.Println("solve error:", err)

		return
	}

	// 3) The odd cycle needs exactly three colors, and the solver proves it.
	fmt.Println("colors:", res.Colors)
	fmt.Println("optimal:", res.Optimal)
	// Output:
	// colors: 3
	// optimal: true
}

// ExampleSolve_bounded asks a feasibility question: can a triangle be
// colored with just two colors? (It cannot.)
func ExampleSolve_bounded() {
	g, err := builder.Cycle(3)
	if err != nil {
		fmt.Println("build error:", err)

		return
	}

	res, err := color.Solve(g, color.NewOptions(color.WithMaxColors(2)))
	if err != nil {
		fmt.Println("solve error:", err)

		return
	}

	fmt.Println("feasible:", res.Feasible())
	// Output:
	// feasible: false
}

// ExampleGreedy shows the heuristic on a complete bipartite graph, where
// the degree-descending order happens to land on the optimum.
func ExampleGreedy() {
	g, err := builder.CompleteBipartite(3, 3)
	if err != nil {
		fmt.Println("build error:", err)

		return
	}

	res, err := color.Greedy(g)
	if err != nil {
		fmt.Println("solve error:", err)

		return
	}

	fmt.Println("colors:", res.Colors)
	fmt.Println("optimal:", res.Optimal)
	// Output:
	// colors: 2
	// optimal: false
}
