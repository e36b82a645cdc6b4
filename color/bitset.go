package color

import "math/bits"

// csWordBits is the width of one colorSet word.
const csWordBits = 64

// colorSet is a fixed-width bitset over colors 0..width-1. The width is
// fixed at construction; bits above it are never set, so max and nextSet
// need no explicit width bound.
type colorSet []uint64

// newColorSet returns a set with every color in [0, width) present.
func newColorSet(width int) colorSet {
	words := (width + csWordBits - 1) / csWordBits
	s := make(colorSet, words)
	for i := range s {
		s[i] = ^uint64(0)
	}
	if rem := width % csWordBits; rem != 0 {
		s[words-1] = (1 << uint(rem)) - 1
	}

	return s
}

// clone returns an independent copy.
func (s colorSet) clone() colorSet {
	out := make(colorSet, len(s))
	copy(out, s)

	return out
}

// has reports whether color c is present.
func (s colorSet) has(c int) bool {
	if c < 0 || c/csWordBits >= len(s) {
		return false
	}

	return s[c/csWordBits]&(1<<uint(c%csWordBits)) != 0
}

// clearRange removes every color in [lo, hi); a no-op when lo >= hi.
// The caller clamps the range to [0, width).
func (s colorSet) clearRange(lo, hi int) {
	if lo >= hi {
		return
	}
	loWord, hiWord := lo/csWordBits, (hi-1)/csWordBits
	loMask := ^uint64(0) << uint(lo%csWordBits)                  // bits ≥ lo
	hiMask := ^uint64(0) >> uint(csWordBits-1-(hi-1)%csWordBits) // bits ≤ hi-1
	if loWord == hiWord {
		s[loWord] &^= loMask & hiMask

		return
	}
	s[loWord] &^= loMask
	for w := loWord + 1; w < hiWord; w++ {
		s[w] = 0
	}
	s[hiWord] &^= hiMask
}

// count returns the number of colors present.
func (s colorSet) count() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}

	return n
}

// max returns the largest color present, or -1 when the set is empty.
func (s colorSet) max() int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] != 0 {
			return i*csWordBits + csWordBits - 1 - bits.LeadingZeros64(s[i])
		}
	}

	return -1
}

// nextSet returns the smallest color ≥ from present, or -1 when none is.
func (s colorSet) nextSet(from int) int {
	if from < 0 {
		from = 0
	}
	word := from / csWordBits
	if word >= len(s) {
		return -1
	}
	if w := s[word] & (^uint64(0) << uint(from%csWordBits)); w != 0 {
		return word*csWordBits + bits.TrailingZeros64(w)
	}
	for i := word + 1; i < len(s); i++ {
		if s[i] != 0 {
			return i*csWordBits + bits.TrailingZeros64(s[i])
		}
	}

	return -1
}
