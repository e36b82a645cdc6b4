package color_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chroma/builder"
	"github.com/katalvlaran/chroma/color"
	"github.com/katalvlaran/chroma/core"
)

// bruteChromatic computes the chromatic number by plain backtracking over
// k = 1..V. Exponential, reference-only; keep V small.
func bruteChromatic(g *core.Graph) int {
	v := g.V()
	colors := make([]int, v)
	var fits func(u, k int) bool
	fits = func(u, k int) bool {
		if u == v {
			return true
		}
		for c := 0; c < k; c++ {
			ok := true
			for _, w := range g.Neighbors(u) {
				if w < u && colors[w] == c {
					ok = false

					break
				}
			}
			if !ok {
				continue
			}
			colors[u] = c
			if fits(u+1, k) {
				return true
			}
		}

		return false
	}
	for k := 1; k <= v; k++ {
		if fits(0, k) {
			return k
		}
	}

	return v
}

// mustGraph unwraps a builder result; generation only fails on bad
// parameters, which is a bug in the test itself.
func mustGraph(g *core.Graph, err error) *core.Graph {
	if err != nil {
		panic(err)
	}

	return g
}

// TestSolve_KnownChromaticNumbers covers the classic families with known
// closed-form chromatic numbers.
func TestSolve_KnownChromaticNumbers(t *testing.T) {
	cases := []struct {
		name string
		g    *core.Graph
		want int
	}{
		{"edgeless V=5", mustGraph(core.NewGraph(5)), 1},
		{"K1", mustGraph(builder.Complete(1)), 1},
		{"K4", mustGraph(builder.Complete(4)), 4},
		{"K7", mustGraph(builder.Complete(7)), 7},
		{"P2", mustGraph(builder.Path(2)), 2},
		{"P4", mustGraph(builder.Path(4)), 2},
		{"C4 even cycle", mustGraph(builder.Cycle(4)), 2},
		{"C5 odd cycle", mustGraph(builder.Cycle(5)), 3},
		{"C9 odd cycle", mustGraph(builder.Cycle(9)), 3},
		{"K3,3 bipartite", mustGraph(builder.CompleteBipartite(3, 3)), 2},
		{"star S7", mustGraph(builder.Star(8)), 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := color.Solve(tc.g, color.DefaultOptions())
			require.NoError(t, err)

			assert.Equal(t, tc.want, res.Colors)
			assert.True(t, res.Optimal)
			assert.True(t, res.Feasible())
			assert.NoError(t, color.ValidateColoring(tc.g, res.Assignment))
		})
	}
}

// TestSolve_MatchesBruteForce cross-checks the exact solver against plain
// backtracking on every random instance a small seed grid produces.
func TestSolve_MatchesBruteForce(t *testing.T) {
	for n := 4; n <= 8; n++ {
		for _, p := range []float64{0.2, 0.5, 0.8} {
			for seed := int64(1); seed <= 4; seed++ {
				g, err := builder.RandomSparse(n, p, seed)
				require.NoError(t, err)

				name := fmt.Sprintf("n=%d p=%.1f seed=%d", n, p, seed)
				t.Run(name, func(t *testing.T) {
					res, err := color.Solve(g, color.DefaultOptions())
					require.NoError(t, err)

					assert.Equal(t, bruteChromatic(g), res.Colors)
					assert.True(t, res.Optimal)
					assert.NoError(t, color.ValidateColoring(g, res.Assignment))
				})
			}
		}
	}
}

// TestSolve_SeedIndependence verifies the greedy warm start changes only
// the work, never the answer.
func TestSolve_SeedIndependence(t *testing.T) {
	g, err := builder.RandomSparse(8, 0.5, 11)
	require.NoError(t, err)

	seeded, err := color.Solve(g, color.DefaultOptions())
	require.NoError(t, err)
	bare, err := color.Solve(g, color.NewOptions(color.WithoutSeed()))
	require.NoError(t, err)

	assert.Equal(t, seeded.Colors, bare.Colors)
	assert.True(t, seeded.Optimal)
	assert.True(t, bare.Optimal)
}

// TestSolve_Deterministic runs the same instance twice and expects the
// identical assignment, not merely the same color count.
func TestSolve_Deterministic(t *testing.T) {
	g, err := builder.RandomSparse(8, 0.5, 7)
	require.NoError(t, err)

	a, err := color.Solve(g, color.DefaultOptions())
	require.NoError(t, err)
	b, err := color.Solve(g, color.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, a.Assignment, b.Assignment)
}

// TestSolve_ExactBounded covers both sides of the feasibility question.
func TestSolve_ExactBounded(t *testing.T) {
	t.Run("triangle within 3", func(t *testing.T) {
		g := mustGraph(builder.Cycle(3))
		res, err := color.Solve(g, color.NewOptions(color.WithMaxColors(3)))
		require.NoError(t, err)

		assert.True(t, res.Feasible())
		assert.False(t, res.Optimal, "feasibility search makes no optimality claim")
		assert.NoError(t, color.ValidateColoring(g, res.Assignment))
	})

	t.Run("triangle refuses 2", func(t *testing.T) {
		g := mustGraph(builder.Cycle(3))
		res, err := color.Solve(g, color.NewOptions(color.WithMaxColors(2)))
		require.NoError(t, err, "infeasibility is a result, not an error")

		assert.False(t, res.Feasible())
		assert.Equal(t, 0, res.Colors)
		for _, c := range res.Assignment {
			assert.Equal(t, color.Unassigned, c)
		}
	})

	t.Run("K5 refuses 4", func(t *testing.T) {
		g := mustGraph(builder.Complete(5))
		res, err := color.Solve(g, color.NewOptions(color.WithMaxColors(4)))
		require.NoError(t, err)

		assert.False(t, res.Feasible())
	})

	t.Run("C5 within 3", func(t *testing.T) {
		g := mustGraph(builder.Cycle(5))
		res, err := color.Solve(g, color.NewOptions(color.WithMaxColors(3)))
		require.NoError(t, err)

		assert.True(t, res.Feasible())
	})
}

// TestGreedy_FeasibleNotAlwaysOptimal checks the heuristic contract: a
// valid gap-free coloring, flagged non-optimal even when it happens to
// hit the chromatic number.
func TestGreedy_FeasibleNotAlwaysOptimal(t *testing.T) {
	for _, build := range []func() (*core.Graph, error){
		func() (*core.Graph, error) { return builder.Cycle(5) },
		func() (*core.Graph, error) { return builder.CompleteBipartite(4, 4) },
		func() (*core.Graph, error) { return builder.RandomSparse(10, 0.4, 2) },
	} {
		g, err := build()
		require.NoError(t, err)

		res, err := color.Greedy(g)
		require.NoError(t, err)

		assert.False(t, res.Optimal)
		assert.True(t, res.Feasible())
		assert.NoError(t, color.ValidateColoring(g, res.Assignment))

		exact, err := color.Solve(g, color.DefaultOptions())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.Colors, exact.Colors, "heuristic is an upper bound")
	}
}

// TestSolve_OptionValidation walks the Options contract violations.
func TestSolve_OptionValidation(t *testing.T) {
	g := mustGraph(builder.Cycle(4))

	_, err := color.Solve(nil, color.DefaultOptions())
	assert.ErrorIs(t, err, color.ErrNilGraph)

	_, err = color.Solve(g, color.Options{Algo: color.Exact, MaxColors: 3})
	assert.ErrorIs(t, err, color.ErrBadMaxColors)

	_, err = color.Solve(g, color.Options{Algo: color.ExactBounded, MaxColors: 0})
	assert.ErrorIs(t, err, color.ErrBadMaxColors)

	_, err = color.Solve(g, color.Options{Algo: color.ExactBounded, MaxColors: 5})
	assert.ErrorIs(t, err, color.ErrBadMaxColors, "k above V is rejected")

	_, err = color.Solve(g, color.Options{Algo: color.Algorithm(99)})
	assert.ErrorIs(t, err, color.ErrUnsupportedAlgorithm)
}

// TestSolve_InputUntouched makes sure the solver works on its own clone.
func TestSolve_InputUntouched(t *testing.T) {
	g := mustGraph(builder.Cycle(5))
	before := g.E()

	_, err := color.Solve(g, color.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, before, g.E())
	assert.Equal(t, 5, g.V())
}

// TestValidateColoring covers each rejection class separately.
func TestValidateColoring(t *testing.T) {
	g := mustGraph(builder.Path(3)) // 0-1-2

	assert.NoError(t, color.ValidateColoring(g, []int{0, 1, 0}))

	assert.ErrorIs(t, color.ValidateColoring(nil, nil), color.ErrNilGraph)
	assert.ErrorIs(t, color.ValidateColoring(g, []int{0, 1}), color.ErrAssignmentLength)
	assert.ErrorIs(t, color.ValidateColoring(g, []int{0, -1, 0}), color.ErrColorRange)
	assert.ErrorIs(t, color.ValidateColoring(g, []int{0, 3, 0}), color.ErrColorRange)
	assert.ErrorIs(t, color.ValidateColoring(g, []int{0, 0, 1}), color.ErrAdjacentSameColor)
	assert.ErrorIs(t, color.ValidateColoring(g, []int{0, 2, 0}), color.ErrColorGap)
}

// TestResult_String checks the two-line solution format.
func TestResult_String(t *testing.T) {
	res := color.Result{Colors: 3, Optimal: true, Assignment: []int{0, 1, 2, 0}}
	assert.Equal(t, "3 1\n0 1 2 0", res.String())

	res = color.Result{Colors: 2, Optimal: false, Assignment: []int{0, 1}}
	assert.Equal(t, "2 0\n0 1", res.String())
}

// TestAlgorithm_String pins the names used in logs and CLI flags.
func TestAlgorithm_String(t *testing.T) {
	assert.Equal(t, "exact", color.Exact.String())
	assert.Equal(t, "greedy", color.GreedyOnly.String())
	assert.Equal(t, "bounded", color.ExactBounded.String())
}

// TestSentinelsAreDistinct guards against accidental aliasing when errors
// get rewrapped.
func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		color.ErrNilGraph,
		color.ErrBadMaxColors,
		color.ErrUnsupportedAlgorithm,
		color.ErrAssignmentLength,
		color.ErrColorRange,
		color.ErrAdjacentSameColor,
		color.ErrColorGap,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.False(t, errors.Is(a, b))
			}
		}
	}
}
