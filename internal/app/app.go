// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"telofind/internal/appcore"
	"telofind/internal/clades"
	"telofind/internal/cli"
	"telofind/internal/cmdutil"
	"telofind/internal/runutil"
	"telofind/internal/version"
	"telofind/internal/writers"
)

// RunContext executes one telofind invocation and returns its exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	code := appcore.ExitOK
	root := newRootCmd(outw, stderr, &code)
	if argv == nil {
		argv = []string{} // nil makes cobra fall back to os.Args
	}
	root.SetArgs(argv)
	root.SetOut(outw)
	root.SetErr(stderr)

	if cmd, err := root.ExecuteContextC(parent); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		_, _ = fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.CommandPath())
		code = appcore.ExitUsage
	}

	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return appcore.ExitOK
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return appcore.ExitIO
	}
	return code
}

// Run is RunContext without cancellation.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func newRootCmd(stdout, stderr io.Writer, code *int) *cobra.Command {
	root := &cobra.Command{
		Use:   "telofind",
		Short: "Find, count and report telomeric repeats in genome assemblies",
		Long: `telofind finds tandem telomeric repeats near the ends of assembled sequences.

  explore   discover the likely repeat unit with no prior knowledge
  search    count a known repeat in fixed windows on both strands
  clades    list the curated repeats of known clades`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("telofind version {{.Version}}\n")
	root.CompletionOptions.DisableDefaultCmd = true
	cli.RegisterGlobalFlags(root.PersistentFlags())

	root.AddCommand(
		newExploreCmd(stdout, stderr, code),
		newSearchCmd(stdout, stderr, code),
		newCladesCmd(stdout, code),
	)
	return root
}

func newExploreCmd(stdout, stderr io.Writer, code *int) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore [flags] <fasta>",
		Short: "Discover candidate telomeric repeats",
		Example: `  telofind explore --length 6 -d out -o genome genome.fa
  telofind explore --minimum 5 --maximum 12 -t 50 -d out -o genome genome.fa.gz`,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := cli.LoadExplore(cmd.Flags(), args)
			if err != nil {
				return err
			}
			strategy, err := o.Strategy()
			if err != nil {
				return err
			}
			log := cmdutil.NewLogger(stderr, o.Quiet, o.Verbose)
			log.Debugf("options: %s", o)
			*code = appcore.RunExplore(cmd.Context(), appcore.Env{Stdout: stdout, Stderr: stderr, Log: log}, appcore.ExploreConfig{
				Input:           o.Input,
				Dir:             o.Dir,
				Output:          o.Output,
				Extension:       o.Extension,
				Lengths:         runutil.ChunkLengths(o.Length, o.Minimum, o.Maximum),
				Threshold:       o.Threshold,
				Distance:        o.Distance,
				Strategy:        strategy,
				Runtime:         appcore.Runtime{Threads: o.Threads, Progress: o.Progress},
				NoMatchExitCode: o.NoMatchExitCode,
			})
			return nil
		},
	}
	cli.RegisterExploreFlags(cmd.Flags())
	return cmd
}

func newSearchCmd(stdout, stderr io.Writer, code *int) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [flags] <fasta>",
		Short: "Count a known telomeric repeat in windows",
		Example: `  telofind search -s TTAGGG -w 10000 -d out -o genome genome.fa
  telofind search -c Lepidoptera -e bedgraph -d out -o genome genome.fa`,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := cli.LoadSearch(cmd.Flags(), args)
			if err != nil {
				return err
			}
			motifs, err := searchMotifs(o)
			if err != nil {
				return err
			}
			log := cmdutil.NewLogger(stderr, o.Quiet, o.Verbose)
			*code = appcore.RunSearch(cmd.Context(), appcore.Env{Stdout: stdout, Stderr: stderr, Log: log}, appcore.SearchConfig{
				Input:     o.Input,
				Dir:       o.Dir,
				Output:    o.Output,
				Extension: o.Extension,
				Motifs:    motifs,
				Window:    o.Window,
				Runtime:   appcore.Runtime{Threads: o.Threads, Progress: o.Progress},
			})
			return nil
		},
	}
	cli.RegisterSearchFlags(cmd.Flags())
	return cmd
}

// searchMotifs picks the explicit motif or the clade's motifs. Several motifs
// need a report format that names the motif on each row.
func searchMotifs(o cli.SearchOptions) ([]string, error) {
	if o.Clade == "" {
		return []string{o.String}, nil
	}
	c, ok := clades.Lookup(o.Clade)
	if !ok {
		return nil, unknownClade(o.Clade)
	}
	if len(c.Motifs) > 1 && !writers.CarriesMotif(o.Extension) {
		return nil, fmt.Errorf("%w: clade %s has %d repeats; use --extension tsv to tell them apart",
			cli.ErrUsage, c.Name, len(c.Motifs))
	}
	return c.Motifs, nil
}

func unknownClade(name string) error {
	return fmt.Errorf("%w: unknown clade %q; known clades: %s",
		cli.ErrUsage, name, strings.Join(clades.Names(), ", "))
}

func newCladesCmd(stdout io.Writer, code *int) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "clades",
		Short: "Print the curated table of known telomeric repeats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := clades.All()
			if name != "" {
				c, ok := clades.Lookup(name)
				if !ok {
					return unknownClade(name)
				}
				rows = []clades.Clade{c}
			}
			if err := clades.WriteTable(stdout, rows); err != nil && !writers.IsBrokenPipe(err) {
				*code = appcore.ExitIO
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "clade", "c", "", "print only this clade")
	return cmd
}
