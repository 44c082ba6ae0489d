package motif

// shiftAnd is a bit-parallel exact matcher for patterns of at most 64 bytes.
type shiftAnd struct {
	masks  [256]uint64
	accept uint64
	n      int
}

func newShiftAnd(pat []byte) *shiftAnd {
	sa := &shiftAnd{n: len(pat), accept: 1 << (len(pat) - 1)}
	for i, c := range pat {
		sa.masks[c] |= 1 << i
	}
	return sa
}

func (sa *shiftAnd) FindAll(text []byte) []int {
	var (
		d   uint64
		out []int
	)
	for i, c := range text {
		d = ((d << 1) | 1) & sa.masks[c]
		if d&sa.accept != 0 {
			out = append(out, i-sa.n+1)
		}
	}
	return out
}
