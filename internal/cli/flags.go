package cli

import "github.com/spf13/pflag"

// Defaults for the discovery and search flags.
const (
	DefaultMinimum   = 5
	DefaultMaximum   = 12
	DefaultThreshold = 100
	DefaultDistance  = 150000
	DefaultWindow    = 10000
	DefaultExtension = "tsv"
	DefaultMerge     = "closure"
)

func registerCommon(fs *pflag.FlagSet) {
	fs.StringP("dir", "d", "", "output directory, created if missing [*]")
	fs.StringP("output", "o", "", "output file base name [*]")
	fs.StringP("extension", "e", DefaultExtension, "report extension (tsv, or bedgraph for search)")
	fs.Int("threads", 0, "worker goroutines (0 = all CPUs)")
	fs.Bool("progress", false, "show a progress bar on stderr")
	fs.BoolP("quiet", "q", false, "only log warnings and errors")
	fs.BoolP("verbose", "v", false, "log per-record diagnostics")
}

// RegisterExploreFlags adds the explore flags to fs.
func RegisterExploreFlags(fs *pflag.FlagSet) {
	fs.IntP("length", "l", 0, "fixed chunk length (0 = use --minimum..--maximum)")
	fs.IntP("minimum", "m", DefaultMinimum, "smallest chunk length in range mode")
	fs.IntP("maximum", "x", DefaultMaximum, "largest chunk length in range mode")
	fs.IntP("threshold", "t", DefaultThreshold, "keep intervals with more repeat units than this")
	fs.Int("distance", DefaultDistance, "keep intervals within this many bases of a sequence end")
	fs.String("merge", DefaultMerge, "how equivalent motifs are grouped: closure or greedy (single-use pairs)")
	fs.Int("no-match-exit-code", 0, "exit code when no repeat is found")
	registerCommon(fs)
}

// RegisterSearchFlags adds the search flags to fs.
func RegisterSearchFlags(fs *pflag.FlagSet) {
	fs.StringP("string", "s", "", "telomeric repeat to count, e.g. TTAGGG")
	fs.StringP("clade", "c", "", "count the known repeat(s) of a clade (see 'telofind clades')")
	fs.IntP("window", "w", DefaultWindow, "window size in bases")
	registerCommon(fs)
}

// RegisterGlobalFlags adds the flags inherited by every subcommand.
func RegisterGlobalFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (yaml, toml or json) supplying flag values")
}
