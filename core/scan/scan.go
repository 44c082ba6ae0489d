// Package scan counts exact occurrences of a known motif and its reverse
// complement across fixed-size windows of a record.
package scan

import (
	"bytes"
	"errors"
	"fmt"

	"telofind-core/dna"
	"telofind-core/fasta"
	"telofind-core/motif"
)

// ErrBadMotif reports a motif that is empty or has bases outside A, C, G, T.
var ErrBadMotif = errors.New("invalid motif")

// Window is the per-strand count for one window of one record. End is
// exclusive and never exceeds the record length.
type Window struct {
	ID      string
	Start   int
	End     int
	Forward int
	Reverse int
	Motif   string
}

// Total is the count over both strands.
func (w Window) Total() int { return w.Forward + w.Reverse }

// Counter holds the compiled matchers for one motif and window size. It is
// safe for concurrent use.
type Counter struct {
	motif string
	size  int
	fwd   motif.Matcher
	rev   motif.Matcher
}

// NewCounter validates m (case-insensitive) and size and compiles both strands.
func NewCounter(m string, size int) (*Counter, error) {
	up := bytes.ToUpper([]byte(m))
	if err := ValidateMotif(up); err != nil {
		return nil, err
	}
	if size <= 0 {
		return nil, fmt.Errorf("window size must be > 0 (got %d)", size)
	}
	return &Counter{
		motif: string(up),
		size:  size,
		fwd:   motif.NewMatcher(up),
		rev:   motif.NewMatcher(dna.RevComp(up)),
	}, nil
}

// ValidateMotif checks that m is non-empty uppercase A/C/G/T.
func ValidateMotif(m []byte) error {
	if len(m) == 0 {
		return fmt.Errorf("%w: empty", ErrBadMotif)
	}
	for i, b := range m {
		switch b {
		case 'A', 'C', 'G', 'T':
		default:
			return fmt.Errorf("%w: %q has %q at position %d", ErrBadMotif, m, b, i+1)
		}
	}
	return nil
}

// Windows splits rec into [i*size, min((i+1)*size, len)) windows and counts
// non-overlapping hits of each strand in each. Hits spanning a window
// boundary belong to neither window.
func (c *Counter) Windows(rec fasta.Record) []Window {
	n := len(rec.Seq)
	if n == 0 {
		return nil
	}
	k := len(c.motif)
	out := make([]Window, 0, (n+c.size-1)/c.size)
	for start := 0; start < n; start += c.size {
		end := start + c.size
		if end > n {
			end = n
		}
		win := bytes.ToUpper(rec.Seq[start:end])
		out = append(out, Window{
			ID:      rec.ID,
			Start:   start,
			End:     end,
			Forward: motif.Count(c.fwd, k, win),
			Reverse: motif.Count(c.rev, k, win),
			Motif:   c.motif,
		})
	}
	return out
}
