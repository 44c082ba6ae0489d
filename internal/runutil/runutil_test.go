package runutil

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveThreads(t *testing.T) {
	assert.Equal(t, 3, EffectiveThreads(3))
	assert.Equal(t, runtime.NumCPU(), EffectiveThreads(0))
	assert.Equal(t, runtime.NumCPU(), EffectiveThreads(-1))
}

func TestChunkLengths(t *testing.T) {
	cases := []struct {
		name           string
		length, lo, hi int
		want           []int
	}{
		{"fixed wins", 7, 5, 12, []int{7}},
		{"range", 0, 5, 8, []int{5, 6, 7, 8}},
		{"single", 0, 6, 6, []int{6}},
		{"inverted", 0, 9, 4, nil},
		{"zero minimum", 0, 0, 4, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ChunkLengths(c.length, c.lo, c.hi))
		})
	}
}

func TestBufferSize(t *testing.T) {
	assert.Equal(t, 16, BufferSize(4))
	assert.Equal(t, 4, BufferSize(0))
}
