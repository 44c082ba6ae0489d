package cli

import (
	"path/filepath"
	"strings"
)

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ResolveInput takes the positional arguments and returns the single FASTA
// path. "-" means stdin; a glob must match exactly one file.
func ResolveInput(args []string) (string, error) {
	if len(args) != 1 {
		return "", usagef("expected exactly one FASTA input, got %d", len(args))
	}
	a := args[0]
	if a == "-" || !hasGlobMeta(a) {
		return a, nil
	}
	m, err := filepath.Glob(a)
	if err != nil {
		return "", usagef("bad glob %q: %v", a, err)
	}
	switch len(m) {
	case 0:
		return "", usagef("no input matched %q", a)
	case 1:
		return m[0], nil
	}
	return "", usagef("%q matched %d files; give one FASTA", a, len(m))
}
