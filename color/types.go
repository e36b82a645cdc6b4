package color

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors returned by the color package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to a solver.
	ErrNilGraph = errors.New("color: graph is nil")

	// ErrBadMaxColors indicates a MaxColors value outside the algorithm's
	// admissible range (Exact/GreedyOnly require 0; ExactBounded requires
	// 1 ≤ MaxColors ≤ V).
	ErrBadMaxColors = errors.New("color: MaxColors out of range")

	// ErrUnsupportedAlgorithm indicates an unknown Options.Algo value.
	ErrUnsupportedAlgorithm = errors.New("color: unsupported algorithm")

	// ErrAssignmentLength indicates an assignment whose length differs from V.
	ErrAssignmentLength = errors.New("color: assignment length mismatch")

	// ErrColorRange indicates a color outside [0, V).
	ErrColorRange = errors.New("color: color out of range")

	// ErrAdjacentSameColor indicates an edge whose endpoints share a color.
	ErrAdjacentSameColor = errors.New("color: adjacent vertices share a color")

	// ErrColorGap indicates a used color c > 0 while some color below c is
	// never used (the symmetry break guarantees a contiguous range 0..max).
	ErrColorGap = errors.New("color: color range has a gap")
)

// Unassigned marks a vertex without a color; a Result whose assignment is
// all Unassigned reports that no coloring exists under the given bounds.
const Unassigned = -1

// Algorithm selects the solver routed by Solve.
type Algorithm int

const (
	// Exact runs the complete Branch-and-Bound search and proves the
	// chromatic number. MaxColors must be 0.
	Exact Algorithm = iota

	// GreedyOnly runs the Welsh–Powell heuristic: fast, feasible, no
	// optimality claim. MaxColors must be 0.
	GreedyOnly

	// ExactBounded answers feasibility for a fixed color budget:
	// MaxColors = k ∈ [1, V].
	ExactBounded
)

// String returns the canonical CLI name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case Exact:
		return "exact"
	case GreedyOnly:
		return "greedy"
	case ExactBounded:
		return "bounded"
	default:
		return "unknown"
	}
}

// Options configures the behavior of Solve.
//
// Algo       – which solver to run (default Exact).
// MaxColors  – color budget for ExactBounded; must be 0 otherwise.
// SeedGreedy – seed the exact search's incumbent with the greedy coloring
//
//	before branching (default true). Correctness never depends
//	on the seed; it only strengthens early pruning.
type Options struct {
	Algo       Algorithm // solver selection
	MaxColors  int       // color budget (ExactBounded only)
	SeedGreedy bool      // greedy incumbent seeding for Exact
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithAlgo selects the solver algorithm.
func WithAlgo(a Algorithm) Option {
	return func(o *Options) { o.Algo = a }
}

// WithMaxColors sets the color budget k and switches to ExactBounded.
func WithMaxColors(k int) Option {
	return func(o *Options) {
		o.Algo = ExactBounded
		o.MaxColors = k
	}
}

// WithoutSeed disables greedy incumbent seeding in the exact search.
// Useful for benchmarking the raw engine; never changes the answer.
func WithoutSeed() Option {
	return func(o *Options) { o.SeedGreedy = false }
}

// DefaultOptions returns the canonical configuration: the exact solver,
// no color budget, greedy seeding enabled.
func DefaultOptions() Options {
	return Options{
		Algo:       Exact,
		MaxColors:  0,
		SeedGreedy: true,
	}
}

// NewOptions resolves functional options over DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Result holds the outcome of a coloring solver.
type Result struct {
	// Colors is the number of distinct colors used (max color + 1),
	// or 0 when no coloring exists under the given bounds.
	Colors int

	// Optimal reports whether the search proved Colors minimal: true for
	// a completed Exact run, false for GreedyOnly, ExactBounded and
	// infeasible results.
	Optimal bool

	// Assignment maps each original vertex id to its color, or all
	// Unassigned when no coloring exists.
	Assignment []int
}

// Feasible reports whether the result carries a usable coloring.
func (r Result) Feasible() bool {
	return len(r.Assignment) > 0 && r.Assignment[0] != Unassigned
}

// String renders the classic two-line solver format: the number of colors
// and a 0/1 optimality flag, then the space-separated assignment.
func (r Result) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(r.Colors))
	sb.WriteByte(' ')
	if r.Optimal {
		sb.WriteByte('1')
	} else {
		sb.WriteByte('0')
	}
	sb.WriteByte('\n')
	for i, c := range r.Assignment {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(c))
	}

	return sb.String()
}
