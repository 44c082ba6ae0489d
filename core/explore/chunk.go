package explore

import (
	"bytes"

	"telofind-core/dna"
)

// Chunk is a k-length window at Pos whose content equals the window one
// period ahead.
type Chunk struct {
	Pos int
	Seq string
}

// ChunkMatches partitions seq into non-overlapping k-length chunks and
// returns every chunk equal to its successor. seq must already be uppercase,
// as fasta records are; bytes compare verbatim. Pairs containing N (either
// case) are skipped and a trailing partial chunk is never compared.
func ChunkMatches(seq []byte, k int) []Chunk {
	if k <= 0 {
		return nil
	}
	var out []Chunk
	for pos := 0; pos+2*k <= len(seq); pos += k {
		a := seq[pos : pos+k]
		b := seq[pos+k : pos+2*k]
		if dna.HasN(a) || dna.HasN(b) {
			continue
		}
		if bytes.Equal(a, b) {
			out = append(out, Chunk{Pos: pos, Seq: string(a)})
		}
	}
	return out
}

// Run is a stretch of position-aligned identical chunks.
// Count is the number of equal adjacent pairs, so a run spans Count+1 units;
// End is exclusive.
type Run struct {
	Start  int
	End    int
	Count  int
	Seq    string
	Length int
}

// Runs groups chunks whose positions are exactly k apart. The run still open
// at the last position is emitted like any other.
func Runs(chunks []Chunk, k int) []Run {
	var runs []Run
	for i := 0; i < len(chunks); {
		j := i
		for j+1 < len(chunks) && chunks[j+1].Pos-chunks[j].Pos == k {
			j++
		}
		runs = append(runs, Run{
			Start:  chunks[i].Pos,
			End:    chunks[j].Pos + 2*k,
			Count:  j - i + 1,
			Seq:    chunks[i].Seq,
			Length: k,
		})
		i = j + 1
	}
	return runs
}
