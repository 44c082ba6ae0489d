package explore

import (
	"telofind-core/canon"
	"telofind-core/dna"
)

// Interval is one retained group of runs, destined for the location report.
type Interval struct {
	ID     string
	Start  int
	End    int
	Count  int
	Seq    string
	Length int
}

// Retention decides which merged groups survive the local pass.
type Retention struct {
	Threshold int // aggregate count must exceed this
	Distance  int // group must start or end within this many bases of a terminus
}

// Keep reports whether a group spanning [start,end) with count units in a
// record of seqLen bases is retained.
func (r Retention) Keep(start, end, count, seqLen int) bool {
	if count <= r.Threshold {
		return false
	}
	return start < r.Distance || end > seqLen-r.Distance
}

// MergeRotated walks runs in position order, folding consecutive runs whose
// sequences are rotations of one another into one group with summed counts.
// Retained groups are returned both as positional intervals and as candidate
// motifs for the global pass. A group is reported under the sequence of its
// highest-count run, the earliest one on ties, not under its last run.
func MergeRotated(id string, seqLen int, runs []Run, keep Retention) ([]Interval, []canon.Candidate) {
	var (
		ivs   []Interval
		cands []canon.Candidate
	)
	for i := 0; i < len(runs); {
		j := i
		count := runs[i].Count
		best := i
		for j+1 < len(runs) && dna.IsRotation(runs[j].Seq, runs[j+1].Seq) {
			j++
			count += runs[j].Count
			if runs[j].Count > runs[best].Count {
				best = j
			}
		}
		start, end := runs[i].Start, runs[j].End
		if keep.Keep(start, end, count, seqLen) {
			rep := runs[best]
			ivs = append(ivs, Interval{ID: id, Start: start, End: end, Count: count, Seq: rep.Seq, Length: rep.Length})
			cands = append(cands, canon.Candidate{Seq: rep.Seq, Count: count, Length: rep.Length})
		}
		i = j + 1
	}
	return ivs, cands
}
