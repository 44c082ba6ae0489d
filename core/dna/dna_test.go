package dna

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomSeq(r *rand.Rand, n int, alphabet string) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(b)
}

func TestRevComp(t *testing.T) {
	assert.Equal(t, "GACT", string(RevComp([]byte("AGTC"))))
	assert.Equal(t, "AGGGTT", RevCompString("AACCCT"))
	assert.Equal(t, "NNA", RevCompString("TRX"), "unknown bases complement to N")
	assert.Nil(t, RevComp(nil))
	assert.Empty(t, RevCompString(""))
}

func TestRevCompInvolution(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		s := randomSeq(r, 1+r.Intn(40), "ACGTN")
		require.Equal(t, s, RevCompString(RevCompString(s)), "seq %s", s)
	}
}

func TestIsRotation(t *testing.T) {
	assert.True(t, IsRotation("AACCCT", "CCTAAC"))
	assert.True(t, IsRotation("AACCCT", "AACCCT"))
	assert.False(t, IsRotation("AACCCT", "AACCTC"))
	assert.False(t, IsRotation("AACCCT", "AACCC"), "length mismatch is never a rotation")
	assert.False(t, IsRotation("AAC", "AACAAC"))

	r := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		s := randomSeq(r, 1+r.Intn(20), "ACGT")
		require.True(t, IsRotation(s, s))
		k := r.Intn(len(s))
		require.True(t, IsRotation(s, s[k:]+s[:k]))
	}
}

func TestMinRotation(t *testing.T) {
	cases := map[string]string{
		"":        "",
		"A":       "A",
		"TTAGGG":  "AGGGTT",
		"CCCTAA":  "AACCCT",
		"BCA":     "ABC",
		"ABAB":    "ABAB",
		"CAAACAA": "AAACAAC",
	}
	for in, want := range cases {
		assert.Equal(t, want, MinRotation(in), "MinRotation(%q)", in)
	}
}

func TestMinRotationAgreesWithBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 300; i++ {
		s := randomSeq(r, 1+r.Intn(15), "ACG")
		best := s
		for k := 1; k < len(s); k++ {
			if rot := s[k:] + s[:k]; rot < best {
				best = rot
			}
		}
		require.Equal(t, best, MinRotation(s), "seq %s", s)
	}
}

func TestCanonicalAndEquivalent(t *testing.T) {
	for _, s := range []string{"TTAGGG", "CCCTAA", "AACCCT", "AGGGTT", "GGTTAG"} {
		assert.Equal(t, "AACCCT", Canonical(s), s)
	}
	assert.True(t, Equivalent("AACCCT", "CCTAAC"))
	assert.True(t, Equivalent("AACCCT", "AGGGTT"))
	assert.True(t, Equivalent("TTAGGG", "AACCCT"))
	assert.False(t, Equivalent("AACCCT", "AACCT"))
	assert.False(t, Equivalent("AACCCT", "AAACCC"))
}

func TestHasN(t *testing.T) {
	assert.True(t, HasN([]byte("ACNT")))
	assert.True(t, HasN([]byte("acnt")))
	assert.False(t, HasN([]byte("ACGT")))
}
