// internal/output/rows.go
package output

import (
	"fmt"

	"telofind-core/canon"
	"telofind-core/explore"
	"telofind-core/scan"
)

// FormatLocation is one interval report row (no trailing newline).
func FormatLocation(iv explore.Interval) string {
	return fmt.Sprintf("%s\t%d\t%d\t%d\t%s\t%d",
		iv.ID, iv.Start, iv.End, iv.Count, iv.Seq, iv.Length)
}

// FormatEstimate is one estimate report row.
func FormatEstimate(c canon.Class) string {
	return fmt.Sprintf("%s\t%s\t%d", c.Key, c.RevComp, c.Count)
}

// FormatWindowTSV reports the window by its end coordinate, with both strand
// counts and the motif.
func FormatWindowTSV(w scan.Window) string {
	return fmt.Sprintf("%s\t%d\t%d\t%d\t%s", w.ID, w.End, w.Forward, w.Reverse, w.Motif)
}

// FormatWindowBedgraph is the four-column form: id, start, end, summed count.
func FormatWindowBedgraph(w scan.Window) string {
	return fmt.Sprintf("%s\t%d\t%d\t%d", w.ID, w.Start, w.End, w.Total())
}
