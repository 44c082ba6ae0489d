// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telofind/internal/app"
)

const filler = "GATTACAGCATGCCGTAGCTAGGCTTACGATCGGATCCGTAGCATCGTAC"

func write(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))
	return fn
}

// genome builds records with the vertebrate repeat at both ends on opposite
// strands and unrelated sequence in between.
func genome(records int) string {
	var b strings.Builder
	for i := 0; i < records; i++ {
		fmt.Fprintf(&b, ">chr%d description text\n", i+1)
		b.WriteString(strings.Repeat("CCCTAA", 20+i))
		b.WriteString(strings.Repeat(filler, 10))
		b.WriteString(strings.Repeat("TTAGGG", 15+i))
		b.WriteString("\n")
	}
	return b.String()
}

func run(t *testing.T, argv ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := app.Run(argv, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestExploreEndToEnd(t *testing.T) {
	fa := write(t, "g.fa", genome(3))
	dir := filepath.Join(t.TempDir(), "res")

	code, out, errs := run(t, "explore", "-l", "6", "-t", "5", "--distance", "200", "-d", dir, "-o", "g", fa)
	require.Equal(t, 0, code, errs)
	assert.Contains(t, out, "the likely telomeric repeat is: AACCCT")
	assert.Contains(t, out, "known in clades:")
	assert.Contains(t, errs, "exploring genome")

	locs, err := os.ReadFile(filepath.Join(dir, "g_telomeric_locations.tsv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(locs)), "\n")
	assert.Equal(t, "id\tstart_pos\tend_pos\trepeat_number\trepeat_sequence\tsequence_length", lines[0])
	assert.Len(t, lines, 1+2*3, "one interval per chromosome end")
	assert.True(t, strings.HasPrefix(lines[1], "chr1\t0\t"))

	est, err := os.ReadFile(filepath.Join(dir, "g.txt"))
	require.NoError(t, err)
	estLines := strings.Split(strings.TrimSpace(string(est)), "\n")
	require.Len(t, estLines, 2)
	assert.True(t, strings.HasPrefix(estLines[1], "AACCCT\tAGGGTT\t"))
}

func TestExploreQuietAndNoMatchCode(t *testing.T) {
	fa := write(t, "u.fa", ">u\n"+filler+"\n")
	code, out, errs := run(t, "explore", "-q", "-l", "6", "-t", "0", "--no-match-exit-code", "1",
		"-d", t.TempDir(), "-o", "u", fa)
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.NotContains(t, errs, "exploring genome")
	assert.Contains(t, errs, "no telomeric repeat found")
}

func TestParallelMatchesEqualSerial(t *testing.T) {
	fa := write(t, "par.fa", genome(8))

	runWith := func(threads int) (string, string, string) {
		dir := t.TempDir()
		code, out, errs := run(t, "explore", "-m", "5", "-x", "8", "-t", "2", "--distance", "300",
			"--threads", fmt.Sprint(threads), "-q", "-d", dir, "-o", "p", fa)
		require.Equal(t, 0, code, errs)
		locs, err := os.ReadFile(filepath.Join(dir, "p_telomeric_locations.tsv"))
		require.NoError(t, err)
		est, err := os.ReadFile(filepath.Join(dir, "p.txt"))
		require.NoError(t, err)
		return out, string(locs), string(est)
	}

	o1, l1, e1 := runWith(1)
	o8, l8, e8 := runWith(8)
	assert.Equal(t, o1, o8)
	assert.Equal(t, l1, l8, "interval report differs between serial and parallel runs")
	assert.Equal(t, e1, e8, "estimate report differs between serial and parallel runs")
}

func TestSearchEndToEnd(t *testing.T) {
	fa := write(t, "s.fa", genome(2))
	dir := t.TempDir()

	code, _, errs := run(t, "search", "-s", "ttaggg", "-w", "100", "-d", dir, "-o", "s", fa)
	require.Equal(t, 0, code, errs)
	tsv, err := os.ReadFile(filepath.Join(dir, "s_telomeric_repeat_windows.tsv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(tsv)), "\n")
	assert.Equal(t, "id\twindow\tforward_repeat_number\treverse_repeat_number\ttelomeric_repeat", lines[0])
	assert.Equal(t, "chr1\t100\t0\t16\tTTAGGG", lines[1])

	code, _, errs = run(t, "search", "-c", "Lepidoptera", "-e", "bedgraph", "-w", "100", "-d", dir, "-o", "s", fa)
	require.Equal(t, 0, code, errs)
	bg, err := os.ReadFile(filepath.Join(dir, "s_telomeric_repeat_windows.bedgraph"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(bg), "chr1\t0\t100\t"))
}

func TestSearchMultiMotifCladeNeedsTSV(t *testing.T) {
	fa := write(t, "s.fa", genome(1))
	code, _, errs := run(t, "search", "-c", "Hemiptera", "-e", "bedgraph", "-d", t.TempDir(), "-o", "s", fa)
	assert.Equal(t, 2, code)
	assert.Contains(t, errs, "--extension tsv")

	dir := t.TempDir()
	code, _, errs = run(t, "search", "-c", "Hemiptera", "-w", "1000", "-d", dir, "-o", "s", fa)
	require.Equal(t, 0, code, errs)
	tsv, err := os.ReadFile(filepath.Join(dir, "s_telomeric_repeat_windows.tsv"))
	require.NoError(t, err)
	assert.Contains(t, string(tsv), "\tAAACCACCCT\n")
	assert.Contains(t, string(tsv), "\tAACCATCCCT\n")
}

func TestExploreGreedyMergeAgreesOnPairedMotifs(t *testing.T) {
	fa := write(t, "g.fa", genome(3))
	args := []string{"explore", "-l", "6", "-t", "5", "--distance", "200", "-q", "-o", "g"}

	code, closure, errs := run(t, append(args, "-d", t.TempDir(), fa)...)
	require.Equal(t, 0, code, errs)
	code, greedy, errs := run(t, append(args, "--merge", "greedy", "-d", t.TempDir(), fa)...)
	require.Equal(t, 0, code, errs)
	assert.Equal(t, closure, greedy)
	assert.Contains(t, greedy, "the likely telomeric repeat is: AACCCT")
}

func TestUsageErrors(t *testing.T) {
	fa := write(t, "g.fa", genome(1))
	cases := map[string][]string{
		"missing dir":    {"explore", "-o", "x", fa},
		"bad range":      {"explore", "-m", "9", "-x", "3", "-d", "d", "-o", "x", fa},
		"unknown flag":   {"explore", "--nope", fa},
		"no input":       {"search", "-s", "TTAGGG", "-d", "d", "-o", "x"},
		"unknown clade":  {"clades", "--clade", "Squamata"},
		"unknown merge":  {"explore", "--merge", "pairs", "-d", "d", "-o", "x", fa},
		"unknown subcmd": {"frobnicate"},
	}
	for name, argv := range cases {
		t.Run(name, func(t *testing.T) {
			code, _, errs := run(t, argv...)
			assert.Equal(t, 2, code)
			assert.Contains(t, errs, "error:")
		})
	}
}

func TestMissingInputIsIOError(t *testing.T) {
	code, _, errs := run(t, "explore", "-l", "6", "-d", t.TempDir(), "-o", "x", filepath.Join(t.TempDir(), "absent.fa"))
	assert.Equal(t, 3, code)
	assert.Contains(t, errs, "run failed")
}

func TestVersionHelpAndClades(t *testing.T) {
	code, out, _ := run(t, "--version")
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "telofind version "))

	code, out, _ = run(t)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "explore")

	code, out, _ = run(t, "clades")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Hymenoptera")
	assert.Contains(t, out, "curated.csv")

	code, out, _ = run(t, "clades", "-c", "solanales")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "AACCCTG")
	assert.NotContains(t, out, "Hymenoptera")
}
