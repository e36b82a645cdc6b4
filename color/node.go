package color

// infeasibleCount is the count sentinel marking a node whose constraints
// admit no coloring (some domain emptied during propagation).
const infeasibleCount = -1

// searchNode is the propagation engine: per-vertex color domains
// maintained under three simultaneous constraints — range [0, width),
// adjacency inequality, and the lexicographic symmetry break
// color[v] ≤ cumm[v-1] + 1 over the degree order.
//
// The running-maximum cache obeys, for every v,
//
//	cumm[v] = max(cumm[v-1], max(D[v]))   (cumm[-1] taken as -1)
//
// and is re-derived from that invariant whenever D[v] or cumm[v-1]
// shrinks — never decremented in place.
//
// Nodes branch by clone(): parent and child share only the read-only
// view, so backtracking needs no undo log.
type searchNode struct {
	view  *degreeView // shared, read-only adjacency over internal ids
	v     int         // vertex count
	width int         // number of colors available (V, or k when bounded)

	domains []colorSet // domains[v] = colors still admissible for v
	cumm    []int      // running maximum cache, see invariant above
	partial []int      // decided color per vertex, Unassigned otherwise
	count   int        // decided vertices, or infeasibleCount
	maxUsed int        // max decided color so far, -1 before any decision
}

// newSearchNode returns the root node: full domains, cumm saturated at
// width-1, nothing decided.
func newSearchNode(view *degreeView, width int) *searchNode {
	v := view.v()
	n := &searchNode{
		view:    view,
		v:       v,
		width:   width,
		domains: make([]colorSet, v),
		cumm:    make([]int, v),
		partial: make([]int, v),
		maxUsed: -1,
	}
	for i := 0; i < v; i++ {
		n.domains[i] = newColorSet(width)
		n.cumm[i] = width - 1
		n.partial[i] = Unassigned
	}

	return n
}

// clone returns an independently owned copy for branching; domains are
// deep-copied so sibling branches never alias mutable state.
func (n *searchNode) clone() *searchNode {
	out := &searchNode{
		view:    n.view,
		v:       n.v,
		width:   n.width,
		domains: make([]colorSet, n.v),
		cumm:    make([]int, n.v),
		partial: make([]int, n.v),
		count:   n.count,
		maxUsed: n.maxUsed,
	}
	for i := 0; i < n.v; i++ {
		out.domains[i] = n.domains[i].clone()
	}
	copy(out.cumm, n.cumm)
	copy(out.partial, n.partial)

	return out
}

// solved reports whether every vertex is decided.
func (n *searchNode) solved() bool { return n.count == n.v }

// infeasible reports whether some domain emptied.
func (n *searchNode) infeasible() bool { return n.count == infeasibleCount }

// bound returns a relaxed lower bound on the eventual maximum color: the
// maximum already-decided color, ignoring the symmetry constraint. It is
// admissible — no completion of this node can use a smaller maximum.
func (n *searchNode) bound() int { return n.maxUsed }

// maxColor returns the cached maximum color in use, cumm[V-1].
func (n *searchNode) maxColor() int { return n.cumm[n.v-1] }

// solution returns a copy of the decided colors; well-defined only when
// solved() holds.
func (n *searchNode) solution() []int {
	out := make([]int, n.v)
	copy(out, n.partial)

	return out
}

// cummBefore returns cumm[v-1], or -1 for the first vertex.
func (n *searchNode) cummBefore(v int) int {
	if v == 0 {
		return -1
	}

	return n.cumm[v-1]
}

// firstUndecided returns the smallest undecided vertex ≥ from, or -1.
// The driver branches in ascending order, so vertices below from are
// always decided already.
func (n *searchNode) firstUndecided(from int) int {
	for v := from; v < n.v; v++ {
		if n.partial[v] == Unassigned {
			return v
		}
	}

	return -1
}

// setColor commits vertex v to color c by ruling out every alternative.
// Preconditions (driver-enforced, checked defensively): c ∈ D[v], c does
// not clash with a decided neighbor, and c ≤ cumm[v-1]+1. Returns false
// when the commitment collapses some domain to empty.
func (n *searchNode) setColor(v, c int) bool {
	if v < 0 || v >= n.v || c < 0 || c >= n.width {
		return false
	}
	if !n.domains[v].has(c) {
		return false
	}
	for _, w := range n.view.neighbors(v) {
		if n.partial[w] == c {
			return false
		}
	}
	if c > n.cummBefore(v)+1 {
		return false
	}

	if c > 0 && !n.ruleOut(v, 0, c) {
		return false
	}

	// Even when c is the top color this call must run: the decide check
	// and cache re-derivation live in ruleOut, not here.
	return n.ruleOut(v, c+1, n.width)
}

// ruleOut removes colors [lo, hi) from v's domain and propagates every
// consequence: a domain newly collapsed to a singleton excludes that
// color from all neighbors, and a drop of cumm[v] tightens the symmetry
// bound on v+1 (colors ≥ cumm[v]+2 become impossible there). Returns
// false the instant any domain empties; the failure short-circuits all
// pending propagation on this branch.
//
// The range may be empty or exceed the width; it is clamped, and the
// decide/cache logic below still runs, because a cumm drop upstream must
// re-derive caches downstream even when nothing is cleared here.
func (n *searchNode) ruleOut(v, lo, hi int) bool {
	if v < 0 || v >= n.v {
		return false
	}
	if lo < 0 {
		lo = 0
	}
	if hi > n.width {
		hi = n.width
	}
	d := n.domains[v]
	d.clearRange(lo, hi)

	newMax := d.max()
	if newMax < 0 {
		// Empty domain: infeasible, nothing further to examine.
		n.count = infeasibleCount

		return false
	}

	// Newly decided: record the color once and enforce the adjacency
	// constraint on every neighbor. The partial guard keeps decided
	// vertices from re-propagating on later no-op calls.
	if n.partial[v] == Unassigned && d.count() == 1 {
		n.partial[v] = newMax
		n.count++
		if newMax > n.maxUsed {
			n.maxUsed = newMax
		}
		for _, w := range n.view.neighbors(v) {
			if !n.ruleOut(w, newMax, newMax+1) {
				return false
			}
		}
	}

	// Re-derive the cache from cumm[v] = max(cumm[v-1], max(D[v])).
	// Adjacency propagation above may have shrunk other domains and
	// lowered cumm[v-1], so read both inputs fresh.
	newCumm := n.cummBefore(v)
	if m := n.domains[v].max(); m > newCumm {
		newCumm = m
	}
	if newCumm < n.cumm[v] {
		n.cumm[v] = newCumm
		if v+1 < n.v {
			return n.ruleOut(v+1, newCumm+2, n.width)
		}
	}

	return true
}

// nextColors enumerates the colors the driver may branch on for an
// undecided vertex v: every domain color already in use (≤ ceiling, so
// reuse is tried first), then the single smallest unused one — a vertex
// may introduce the next new color but never skip ahead, which is what
// keeps used colors a contiguous range.
func (n *searchNode) nextColors(v, ceiling int) []int {
	d := n.domains[v]
	out := make([]int, 0, d.count())
	for c := d.nextSet(0); c >= 0 && c <= ceiling; c = d.nextSet(c + 1) {
		out = append(out, c)
	}
	if c := d.nextSet(ceiling + 1); c >= 0 {
		out = append(out, c)
	}

	return out
}
