package dna

import "strings"

// IsRotation reports whether b is a cyclic rotation of a. Strings of
// different lengths are never rotations of each other.
func IsRotation(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return strings.Contains(a+a, b)
}

// MinRotation returns the lexicographically least rotation of s (Booth).
func MinRotation(s string) string {
	n := len(s)
	if n < 2 {
		return s
	}
	ss := s + s
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		sj := ss[j]
		i := f[j-k-1]
		for i != -1 && sj != ss[k+i+1] {
			if sj < ss[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if sj != ss[k+i+1] { // i == -1
			if sj < ss[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}
	return ss[k : k+n]
}

// Canonical is the strand- and rotation-independent form of a motif: the
// least rotation of either the motif or its reverse complement.
func Canonical(s string) string {
	fwd := MinRotation(s)
	rev := MinRotation(RevCompString(s))
	if rev < fwd {
		return rev
	}
	return fwd
}

// Equivalent reports whether two motifs denote the same tandem repeat: a
// direct rotation, or a rotation of either one's reverse complement.
func Equivalent(a, b string) bool {
	return IsRotation(a, b) ||
		IsRotation(RevCompString(a), b) ||
		IsRotation(RevCompString(b), a)
}
