package color_test

import (
	"testing"

	"github.com/katalvlaran/chroma/builder"
	"github.com/katalvlaran/chroma/color"
	"github.com/katalvlaran/chroma/core"
)

func benchGraph(b *testing.B, n int, p float64) *core.Graph {
	b.Helper()
	g, err := builder.RandomSparse(n, p, 42)
	if err != nil {
		b.Fatalf("build: %v", err)
	}

	return g
}

func BenchmarkSolve_Exact(b *testing.B) {
	g := benchGraph(b, 18, 0.3)
	opts := color.DefaultOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := color.Solve(g, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_ExactUnseeded(b *testing.B) {
	g := benchGraph(b, 18, 0.3)
	opts := color.NewOptions(color.WithoutSeed())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := color.Solve(g, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_Bounded(b *testing.B) {
	g := benchGraph(b, 18, 0.3)
	opts := color.NewOptions(color.WithMaxColors(6))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := color.Solve(g, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGreedy(b *testing.B) {
	g := benchGraph(b, 200, 0.1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := color.Greedy(g); err != nil {
			b.Fatal(err)
		}
	}
}
