// Package clades is the curated reference of known telomeric repeat units
// per taxonomic clade. It is read-only and informational.
package clades

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"telofind-core/dna"
)

// Clade is one row of the reference table.
type Clade struct {
	Name   string
	Motifs []string
}

// All returns a copy of every clade, sorted by name.
func All() []Clade {
	out := make([]Clade, len(table))
	for i, c := range table {
		out[i] = Clade{Name: c.Name, Motifs: append([]string(nil), c.Motifs...)}
	}
	return out
}

// Names lists the clade names in table order.
func Names() []string {
	out := make([]string, len(table))
	for i, c := range table {
		out[i] = c.Name
	}
	return out
}

// Lookup finds a clade by name, ignoring case.
func Lookup(name string) (Clade, bool) {
	for _, c := range table {
		if strings.EqualFold(c.Name, strings.TrimSpace(name)) {
			return Clade{Name: c.Name, Motifs: append([]string(nil), c.Motifs...)}, true
		}
	}
	return Clade{}, false
}

// Matching returns the clades carrying a motif equivalent to m under
// rotation or reverse complement.
func Matching(m string) []string {
	m = strings.ToUpper(m)
	var out []string
	for _, c := range table {
		for _, cm := range c.Motifs {
			if len(cm) == len(m) && dna.Equivalent(cm, m) {
				out = append(out, c.Name)
				break
			}
		}
	}
	return out
}

// WriteTable renders clades as aligned columns followed by the source footer.
func WriteTable(w io.Writer, cs []Clade) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "Clade\tTelomeric repeat units")
	fmt.Fprintln(tw, "-----\t----------------------")
	for _, c := range cs {
		fmt.Fprintf(tw, "%s\t%s\n", c.Name, strings.Join(c.Motifs, ", "))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nCurated from %s\n", SourceURL)
	return err
}
