package appcore

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"telofind-core/fasta"
	"telofind-core/scan"
	"telofind/internal/output"
	"telofind/internal/pipeline"
	"telofind/internal/writers"
)

// SearchConfig is a fully validated targeted search.
type SearchConfig struct {
	Input     string
	Dir       string
	Output    string
	Extension string

	Motifs []string
	Window int

	Runtime
}

// RunSearch counts each motif and its reverse complement in fixed windows of
// every record and writes the window report.
func RunSearch(ctx context.Context, env Env, cfg SearchConfig) int {
	log := env.Log.WithField("cmd", "search")

	counters := make([]*scan.Counter, 0, len(cfg.Motifs))
	for _, m := range cfg.Motifs {
		c, err := scan.NewCounter(m, cfg.Window)
		if err != nil {
			log.WithError(err).Error("invalid search")
			return ExitUsage
		}
		counters = append(counters, c)
	}
	if len(counters) == 0 {
		log.Error("no motif to search for")
		return ExitUsage
	}

	bar := startProgress(cfg.Progress, env.Stderr)
	pcfg := pipelineConfig(cfg.Runtime, log, bar)
	log.WithFields(logrus.Fields{
		"input":   cfg.Input,
		"motifs":  strings.Join(cfg.Motifs, ","),
		"window":  cfg.Window,
		"threads": pcfg.Threads,
	}).Info("searching genome for telomeric repeat")

	f := writers.LookupWindowFormat(cfg.Extension)
	wins, err := openSink[scan.Window](
		output.WindowsPath(cfg.Dir, cfg.Output, cfg.Extension),
		f.Header, f.Row, pcfg.Buffer, log)
	if err != nil {
		bar.finish()
		return failCode(log, err)
	}
	defer wins.abort()

	perr := pipeline.Run[*scan.Counter, []scan.Window](ctx, pcfg, cfg.Input, counters,
		func(_ context.Context, rec fasta.Record, c *scan.Counter) ([]scan.Window, error) {
			return c.Windows(rec), nil
		},
		func(ws []scan.Window) error {
			bar.done()
			for _, w := range ws {
				if err := wins.send(ctx, w); err != nil {
					return err
				}
			}
			return nil
		})
	werr := wins.close()
	bar.finish()
	if perr != nil {
		return failCode(log, perr)
	}
	if werr != nil {
		return failCode(log, werr)
	}
	if err := wins.commit(); err != nil {
		return failCode(log, err)
	}
	log.WithFields(logrus.Fields{
		"windows": wins.sent,
		"report":  wins.path(),
	}).Info("finished searching genome")
	return ExitOK
}
