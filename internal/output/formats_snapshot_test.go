package output

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"telofind-core/canon"
	"telofind-core/explore"
	"telofind-core/scan"
)

func TestRowFormats(t *testing.T) {
	iv := explore.Interval{ID: "chr1", Start: 0, End: 60, Count: 9, Seq: "AACCCT", Length: 6}
	assert.Equal(t, "chr1\t0\t60\t9\tAACCCT\t6", FormatLocation(iv))

	c := canon.Class{Key: "AACCCT", RevComp: "AGGGTT", Count: 17}
	assert.Equal(t, "AACCCT\tAGGGTT\t17", FormatEstimate(c))

	w := scan.Window{ID: "chr2", Start: 25, End: 50, Forward: 3, Reverse: 1, Motif: "TTAGGG"}
	assert.Equal(t, "chr2\t50\t3\t1\tTTAGGG", FormatWindowTSV(w))
	assert.Equal(t, "chr2\t25\t50\t4", FormatWindowBedgraph(w))
}

func TestPaths(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "run_telomeric_locations.tsv"), LocationsPath("out", "run", "tsv"))
	assert.Equal(t, filepath.Join("out", "run.txt"), EstimatesPath("out", "run"))
	assert.Equal(t, filepath.Join("out", "run_telomeric_repeat_windows.bedgraph"), WindowsPath("out", "run", "bedgraph"))
}
