// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"strings"

	"telofind-core/canon"
	"telofind-core/scan"
)

// ErrUsage wraps every configuration error; callers map it to exit code 2.
var ErrUsage = errors.New("usage")

func usagef(format string, a ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrUsage}, a...)...)
}

// Common holds the flags shared by explore and search.
type Common struct {
	Dir       string `mapstructure:"dir"`
	Output    string `mapstructure:"output"`
	Extension string `mapstructure:"extension"`

	Threads  int  `mapstructure:"threads"`
	Progress bool `mapstructure:"progress"`
	Quiet    bool `mapstructure:"quiet"`
	Verbose  bool `mapstructure:"verbose"`

	// Input is the positional FASTA path ("-" for stdin).
	Input string `mapstructure:"-"`
}

// ExploreOptions configures repeat discovery.
type ExploreOptions struct {
	Common `mapstructure:",squash"`

	Length    int    `mapstructure:"length"` // 0 selects range mode
	Minimum   int    `mapstructure:"minimum"`
	Maximum   int    `mapstructure:"maximum"`
	Threshold int    `mapstructure:"threshold"`
	Distance  int    `mapstructure:"distance"`
	Merge     string `mapstructure:"merge"` // closure or greedy

	NoMatchExitCode int `mapstructure:"no-match-exit-code"`
}

// SearchOptions configures windowed counting of a known motif.
type SearchOptions struct {
	Common `mapstructure:",squash"`

	String string `mapstructure:"string"`
	Clade  string `mapstructure:"clade"`
	Window int    `mapstructure:"window"`
}

// Validate checks the shared output and performance flags.
func (c Common) Validate() error {
	if strings.TrimSpace(c.Dir) == "" {
		return usagef("--dir is required")
	}
	if strings.TrimSpace(c.Output) == "" {
		return usagef("--output is required")
	}
	if strings.ContainsAny(c.Output, `/\`) {
		return usagef("--output %q must be a base name, not a path", c.Output)
	}
	if c.Extension == "" || strings.ContainsAny(c.Extension, `/\`) || strings.HasPrefix(c.Extension, ".") {
		return usagef("invalid --extension %q", c.Extension)
	}
	if c.Threads < 0 {
		return usagef("--threads must be >= 0")
	}
	if c.Quiet && c.Verbose {
		return usagef("--quiet conflicts with --verbose")
	}
	return nil
}

// Validate checks discovery flags; the length/range pair is exclusive.
func (o ExploreOptions) Validate() error {
	if err := o.Common.Validate(); err != nil {
		return err
	}
	switch {
	case o.Length < 0:
		return usagef("--length must be >= 0")
	case o.Length == 0 && o.Minimum < 1:
		return usagef("--minimum must be >= 1")
	case o.Length == 0 && o.Maximum < o.Minimum:
		return usagef("--minimum (%d) exceeds --maximum (%d)", o.Minimum, o.Maximum)
	case o.Threshold < 0:
		return usagef("--threshold must be >= 0")
	case o.Distance < 0:
		return usagef("--distance must be >= 0")
	}
	if _, err := o.Strategy(); err != nil {
		return err
	}
	return nil
}

// Strategy is the classification strategy named by --merge.
func (o ExploreOptions) Strategy() (canon.Strategy, error) {
	s, err := canon.ParseStrategy(o.Merge)
	if err != nil {
		return 0, usagef("--merge: %v", err)
	}
	return s, nil
}

// Validate checks search flags. The motif is uppercased in place.
func (o *SearchOptions) Validate() error {
	if err := o.Common.Validate(); err != nil {
		return err
	}
	hasString := strings.TrimSpace(o.String) != ""
	hasClade := strings.TrimSpace(o.Clade) != ""
	switch {
	case hasString && hasClade:
		return usagef("--string conflicts with --clade")
	case !hasString && !hasClade:
		return usagef("provide --string or --clade")
	}
	if hasString {
		o.String = strings.ToUpper(strings.TrimSpace(o.String))
		if err := scan.ValidateMotif([]byte(o.String)); err != nil {
			return usagef("--string: %v", err)
		}
	}
	if o.Window <= 0 {
		return usagef("--window must be > 0")
	}
	return nil
}
