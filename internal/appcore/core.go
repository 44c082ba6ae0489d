// internal/appcore/core.go
package appcore

import (
	"context"
	"errors"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"telofind-core/fasta"
	"telofind/internal/pipeline"
	"telofind/internal/runutil"
	"telofind/internal/writers"
)

// Exit codes shared by every subcommand.
const (
	ExitOK        = 0
	ExitUsage     = 2
	ExitIO        = 3
	ExitCancelled = 130
)

// Env is what a run needs from the process.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer
	Log    *logrus.Logger
}

// Runtime holds the performance knobs common to explore and search.
type Runtime struct {
	Threads  int
	Progress bool
}

// failCode logs err once and maps it to an exit code.
func failCode(log logrus.FieldLogger, err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		log.Warn("cancelled")
		return ExitCancelled
	case writers.IsBrokenPipe(err):
		return ExitOK
	default:
		log.WithError(err).Error("run failed")
		return ExitIO
	}
}

// pipelineConfig builds the ordered fan-out config and wires the per-record
// log line and progress bar.
func pipelineConfig(rt Runtime, log logrus.FieldLogger, bar *progress) pipeline.Config {
	thr := runutil.EffectiveThreads(rt.Threads)
	return pipeline.Config{
		Threads: thr,
		Buffer:  runutil.BufferSize(thr),
		Ordered: true,
		OnRecord: func(rec fasta.Record, tasks int) {
			bar.add(tasks)
			log.WithFields(logrus.Fields{
				"record": rec.ID,
				"bases":  humanize.Comma(int64(rec.Len())),
			}).Info("record read")
		},
	}
}
