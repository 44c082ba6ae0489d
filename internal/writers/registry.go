// internal/writers/registry.go
package writers

import (
	"telofind-core/scan"
	"telofind/internal/output"
)

// WindowFormat renders search windows for one report extension.
type WindowFormat struct {
	Header string // empty means no header line
	Row    func(scan.Window) string
}

// WindowFormats maps an extension to its renderer; LookupWindowFormat falls
// back to "bedgraph" for anything unregistered.
var WindowFormats = map[string]WindowFormat{}

// RegisterWindowFormat adds or replaces (last wins) the renderer for ext.
func RegisterWindowFormat(ext string, f WindowFormat) { WindowFormats[ext] = f }

func init() {
	RegisterWindowFormat(output.ExtTSV, WindowFormat{Header: output.WindowsTSVHeader, Row: output.FormatWindowTSV})
	RegisterWindowFormat("bedgraph", WindowFormat{Row: output.FormatWindowBedgraph})
}

// LookupWindowFormat returns the renderer for ext.
func LookupWindowFormat(ext string) WindowFormat {
	if f, ok := WindowFormats[ext]; ok {
		return f
	}
	return WindowFormats["bedgraph"]
}

// CarriesMotif reports whether rows of ext name the motif they count.
func CarriesMotif(ext string) bool { return ext == output.ExtTSV }
