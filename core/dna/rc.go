// Package dna holds the pure sequence primitives shared by discovery and search.
package dna

var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = 'N'
	}
	complement['A'] = 'T'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['T'] = 'A'
}

// RevComp returns the reverse complement of seq. Anything other than an
// uppercase A/C/G/T complements to N.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[seq[n-1-i]]
	}
	return out
}

// RevCompString is RevComp for strings.
func RevCompString(s string) string {
	return string(RevComp([]byte(s)))
}

// HasN reports whether seq contains the ambiguity code N, in either case.
func HasN(seq []byte) bool {
	for _, b := range seq {
		if b == 'N' || b == 'n' {
			return true
		}
	}
	return false
}
