package motif

/*
Aho–Corasick automaton used for long motifs.

- newAutomaton(pats) builds a trie with failure links (BFS).
- scan walks text once and reports (start, pattern) for every occurrence,
  overlapping ones included.
*/

// node is one state in the automaton.
type node struct {
	next [256]int // 0 => absent (root is state 0)
	fail int
	out  []int // pattern indexes that end at this state
}

type automaton struct {
	nodes []node
	lens  []int
}

func newAutomaton(pats ...[]byte) *automaton {
	nodes := make([]node, 1) // state 0 = root
	lens := make([]int, len(pats))

	// 1) trie edges
	for i, p := range pats {
		lens[i] = len(p)
		cur := 0
		for _, b := range p {
			if nodes[cur].next[b] == 0 {
				nodes = append(nodes, node{})
				nodes[cur].next[b] = len(nodes) - 1
			}
			cur = nodes[cur].next[b]
		}
		nodes[cur].out = append(nodes[cur].out, i)
	}

	// 2) BFS to set fail links and propagate outputs
	queue := make([]int, 0, len(nodes))
	for c := 0; c < 256; c++ {
		if child := nodes[0].next[c]; child != 0 {
			nodes[child].fail = 0
			queue = append(queue, child)
		}
	}
	for qh := 0; qh < len(queue); qh++ {
		r := queue[qh]
		for c := 0; c < 256; c++ {
			s := nodes[r].next[c]
			if s == 0 {
				continue
			}
			queue = append(queue, s)
			f := nodes[r].fail
			for f > 0 && nodes[f].next[c] == 0 {
				f = nodes[f].fail
			}
			if t := nodes[f].next[c]; t != 0 && t != s {
				f = t
			}
			nodes[s].fail = f
			if len(nodes[f].out) > 0 {
				nodes[s].out = append(nodes[s].out, nodes[f].out...)
			}
		}
	}
	return &automaton{nodes: nodes, lens: lens}
}

// scan calls hit for every occurrence with its 0-based start offset.
func (a *automaton) scan(text []byte, hit func(start, pat int)) {
	state := 0
	for i, b := range text {
		for state > 0 && a.nodes[state].next[b] == 0 {
			state = a.nodes[state].fail
		}
		state = a.nodes[state].next[b]
		for _, idx := range a.nodes[state].out {
			hit(i-a.lens[idx]+1, idx)
		}
	}
}

// FindAll reports the starts of pattern 0; the single-motif Matcher view.
func (a *automaton) FindAll(text []byte) []int {
	var out []int
	a.scan(text, func(start, pat int) {
		if pat == 0 {
			out = append(out, start)
		}
	})
	return out
}
