// Package explore finds tandem repeat runs of a fixed unit length in one
// record and reduces them to candidate telomeric motifs.
package explore

import (
	"telofind-core/canon"
	"telofind-core/fasta"
)

// Config is fixed for one discovery pass over one chunk length.
type Config struct {
	Length    int
	Threshold int
	Distance  int
}

// Result is the owned output of exploring one record at one length.
type Result struct {
	RecordID   string
	Length     int
	Runs       int // raw runs before merging; 0 means nothing repeated at all
	Intervals  []Interval
	Candidates []canon.Candidate
}

// Detector explores records. It holds no mutable state and is safe for
// concurrent use.
type Detector struct {
	cfg Config
}

// New creates a Detector.
func New(c Config) *Detector { return &Detector{cfg: c} }

// Explore runs chunk comparison, run extraction and the local merge on rec.
func (d *Detector) Explore(rec fasta.Record) Result {
	k := d.cfg.Length
	runs := Runs(ChunkMatches(rec.Seq, k), k)
	res := Result{RecordID: rec.ID, Length: k, Runs: len(runs)}
	if len(runs) == 0 {
		return res
	}
	res.Intervals, res.Candidates = MergeRotated(rec.ID, len(rec.Seq), runs, Retention{
		Threshold: d.cfg.Threshold,
		Distance:  d.cfg.Distance,
	})
	return res
}
