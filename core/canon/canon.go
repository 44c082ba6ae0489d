// Package canon folds candidate motifs from many records and chunk lengths
// into classes of rotation and reverse-complement equivalent motifs.
package canon

import (
	"fmt"
	"sort"
	"strings"

	"telofind-core/dna"
)

// Candidate is a motif retained by the local merge, with its supporting
// unit count.
type Candidate struct {
	Seq    string
	Count  int
	Length int
}

// Class is one equivalence class. Key is the least rotation over the motif
// and its reverse complement, so every member of a class maps to the same
// Key regardless of which member was seen first.
type Class struct {
	Key     string
	RevComp string
	Count   int
	Members []string // distinct member sequences, sorted
}

// Strategy selects how candidates are grouped.
type Strategy int

const (
	// Closure unions every equivalent pair and sums each resulting set.
	// Candidates without a partner still form a class of their own.
	Closure Strategy = iota
	// Greedy examines pairs once in input order; a candidate is claimed by
	// the first equivalent partner it meets and never reconsidered.
	// Candidates that never pair produce no class.
	Greedy
)

func (s Strategy) String() string {
	switch s {
	case Closure:
		return "closure"
	case Greedy:
		return "greedy"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps a strategy name to its value.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "closure":
		return Closure, nil
	case "greedy":
		return Greedy, nil
	}
	return 0, fmt.Errorf("unknown merge strategy %q (want closure or greedy)", name)
}

// Equivalent reports whether two candidates denote the same repeat: equal
// length and related by rotation, possibly after reverse complementing
// either one.
func Equivalent(a, b Candidate) bool {
	return len(a.Seq) == len(b.Seq) && dna.Equivalent(a.Seq, b.Seq)
}

// Classify groups cands under s and returns the classes ranked by
// descending count, ties by ascending key.
func Classify(cands []Candidate, s Strategy) []Class {
	var classes []Class
	switch s {
	case Greedy:
		classes = greedy(cands)
	default:
		classes = closure(cands)
	}
	sort.Slice(classes, func(i, j int) bool {
		if classes[i].Count != classes[j].Count {
			return classes[i].Count > classes[j].Count
		}
		return classes[i].Key < classes[j].Key
	})
	return classes
}

// Top returns the best ranked class, if any.
func Top(classes []Class) (Class, bool) {
	if len(classes) == 0 {
		return Class{}, false
	}
	return classes[0], true
}

func closure(cands []Candidate) []Class {
	ds := newDisjointSet(len(cands))
	for i := 0; i < len(cands); i++ {
		for j := i + 1; j < len(cands); j++ {
			if Equivalent(cands[i], cands[j]) {
				ds.union(i, j)
			}
		}
	}
	acc := newAccumulator()
	for i, c := range cands {
		root := ds.find(i)
		acc.add(dna.Canonical(cands[root].Seq), c.Seq, c.Count)
	}
	return acc.classes()
}

func greedy(cands []Candidate) []Class {
	used := make([]bool, len(cands))
	acc := newAccumulator()
	for i := 0; i < len(cands); i++ {
		for j := i + 1; j < len(cands); j++ {
			if used[i] || used[j] {
				continue
			}
			if !Equivalent(cands[i], cands[j]) {
				continue
			}
			key := dna.Canonical(cands[i].Seq)
			acc.add(key, cands[i].Seq, cands[i].Count)
			acc.add(key, cands[j].Seq, cands[j].Count)
			used[i], used[j] = true, true
		}
	}
	return acc.classes()
}

type accumulator struct {
	order   []string
	byKey   map[string]*Class
	members map[string]map[string]struct{}
}

func newAccumulator() *accumulator {
	return &accumulator{
		byKey:   make(map[string]*Class),
		members: make(map[string]map[string]struct{}),
	}
}

func (a *accumulator) add(key, seq string, count int) {
	c, ok := a.byKey[key]
	if !ok {
		c = &Class{Key: key, RevComp: dna.RevCompString(key)}
		a.byKey[key] = c
		a.members[key] = make(map[string]struct{})
		a.order = append(a.order, key)
	}
	c.Count += count
	a.members[key][seq] = struct{}{}
}

func (a *accumulator) classes() []Class {
	out := make([]Class, 0, len(a.order))
	for _, k := range a.order {
		c := *a.byKey[k]
		for m := range a.members[k] {
			c.Members = append(c.Members, m)
		}
		sort.Strings(c.Members)
		out = append(out, c)
	}
	return out
}
