// Package motif locates exact occurrences of a repeat unit in a sequence.
package motif

// ShiftAndMaxLen is the longest motif handled by the bit-parallel matcher;
// longer motifs go through the automaton. Results do not depend on it.
const ShiftAndMaxLen = 64

// Matcher finds every (possibly overlapping) occurrence of one fixed motif.
type Matcher interface {
	FindAll(text []byte) []int
}

type emptyMatcher struct{}

func (emptyMatcher) FindAll([]byte) []int { return nil }

// NewMatcher compiles motif once for repeated use across windows.
func NewMatcher(motif []byte) Matcher {
	switch {
	case len(motif) == 0:
		return emptyMatcher{}
	case len(motif) <= ShiftAndMaxLen:
		return newShiftAnd(motif)
	default:
		return newAutomaton(motif)
	}
}

// Locate returns all 0-based offsets where motif occurs verbatim in text,
// in increasing order. Matching is case-sensitive.
func Locate(motif, text []byte) []int {
	return NewMatcher(motif).FindAll(text)
}

// RemoveOverlapping scans offsets left to right and keeps one only when it
// starts at least motifLen past the last kept offset.
func RemoveOverlapping(offsets []int, motifLen int) []int {
	if len(offsets) == 0 {
		return nil
	}
	out := make([]int, 0, len(offsets))
	out = append(out, offsets[0])
	last := offsets[0]
	for _, o := range offsets[1:] {
		if o-last >= motifLen {
			out = append(out, o)
			last = o
		}
	}
	return out
}

// Count is the number of non-overlapping occurrences of m in text.
func Count(m Matcher, motifLen int, text []byte) int {
	return len(RemoveOverlapping(m.FindAll(text), motifLen))
}
