// internal/runutil/runutil.go
package runutil

import "runtime"

// EffectiveThreads returns n when positive, otherwise the CPU count.
func EffectiveThreads(n int) int {
	if n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// ChunkLengths expands the length options into the chunk lengths to explore.
// A positive length wins; otherwise [minimum, maximum] inclusive. An empty or
// inverted range yields nil.
func ChunkLengths(length, minimum, maximum int) []int {
	if length > 0 {
		return []int{length}
	}
	if minimum < 1 || maximum < minimum {
		return nil
	}
	out := make([]int, 0, maximum-minimum+1)
	for k := minimum; k <= maximum; k++ {
		out = append(out, k)
	}
	return out
}

// BufferSize sizes the channels between pipeline stages.
func BufferSize(threads int) int {
	if threads < 1 {
		threads = 1
	}
	return threads * 4
}
