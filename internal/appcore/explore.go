package appcore

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"telofind-core/canon"
	"telofind-core/explore"
	"telofind-core/fasta"
	"telofind/internal/clades"
	"telofind/internal/output"
	"telofind/internal/pipeline"
)

// ExploreConfig is a fully validated discovery run.
type ExploreConfig struct {
	Input     string
	Dir       string
	Output    string
	Extension string

	Lengths   []int
	Threshold int
	Distance  int
	Strategy  canon.Strategy

	Runtime
	NoMatchExitCode int
}

// RunExplore discovers candidate repeats in every (record, length) pair,
// writes the interval and estimate reports and echoes the top class.
func RunExplore(ctx context.Context, env Env, cfg ExploreConfig) int {
	log := env.Log.WithField("cmd", "explore")
	if len(cfg.Lengths) == 0 {
		log.Error("no chunk lengths to explore")
		return ExitUsage
	}

	dets := make([]*explore.Detector, len(cfg.Lengths))
	for i, k := range cfg.Lengths {
		dets[i] = explore.New(explore.Config{Length: k, Threshold: cfg.Threshold, Distance: cfg.Distance})
	}

	bar := startProgress(cfg.Progress, env.Stderr)
	pcfg := pipelineConfig(cfg.Runtime, log, bar)
	log.WithFields(logrus.Fields{
		"input":    cfg.Input,
		"lengths":  lengthsLabel(cfg.Lengths),
		"strategy": cfg.Strategy,
		"threads":  pcfg.Threads,
	}).Info("exploring genome")

	locs, err := openSink[explore.Interval](
		output.LocationsPath(cfg.Dir, cfg.Output, cfg.Extension),
		output.LocationsHeader, output.FormatLocation, pcfg.Buffer, log)
	if err != nil {
		bar.finish()
		return failCode(log, err)
	}
	defer locs.abort()

	var (
		cands []canon.Candidate
		bases int
	)
	pcfg.OnRecord = countBases(pcfg.OnRecord, &bases)
	perr := pipeline.Run[*explore.Detector, explore.Result](ctx, pcfg, cfg.Input, dets,
		func(_ context.Context, rec fasta.Record, d *explore.Detector) (explore.Result, error) {
			return d.Explore(rec), nil
		},
		func(r explore.Result) error {
			bar.done()
			if r.Runs == 0 {
				log.WithFields(logrus.Fields{"record": r.RecordID, "length": r.Length}).
					Debug("no consecutive repeats")
			}
			for _, iv := range r.Intervals {
				if err := locs.send(ctx, iv); err != nil {
					return err
				}
			}
			cands = append(cands, r.Candidates...)
			return nil
		})
	werr := locs.close()
	bar.finish()
	if perr != nil {
		return failCode(log, perr)
	}
	if werr != nil {
		return failCode(log, werr)
	}

	classes := canon.Classify(cands, cfg.Strategy)
	ests, err := openSink[canon.Class](
		output.EstimatesPath(cfg.Dir, cfg.Output),
		output.EstimatesHeader, output.FormatEstimate, pcfg.Buffer, log)
	if err != nil {
		return failCode(log, err)
	}
	defer ests.abort()
	for _, c := range classes {
		if err := ests.send(ctx, c); err != nil {
			_ = ests.close()
			return failCode(log, err)
		}
	}
	if err := ests.close(); err != nil {
		return failCode(log, err)
	}

	if err := locs.commit(); err != nil {
		return failCode(log, err)
	}
	if err := ests.commit(); err != nil {
		return failCode(log, err)
	}
	log.WithFields(logrus.Fields{
		"bases":      humanize.Comma(int64(bases)),
		"intervals":  locs.sent,
		"candidates": len(cands),
		"classes":    len(classes),
		"locations":  locs.path(),
		"estimates":  ests.path(),
	}).Info("finished exploring genome")

	top, ok := canon.Top(classes)
	if !ok {
		log.Warn("no telomeric repeat found; try a lower --threshold or a larger --distance")
		return cfg.NoMatchExitCode
	}
	fmt.Fprintf(env.Stdout, "the likely telomeric repeat is: %s, found %d times\n", top.Key, top.Count)
	if known := clades.Matching(top.Key); len(known) > 0 {
		fmt.Fprintf(env.Stdout, "known in clades: %s\n", strings.Join(known, ", "))
	}
	return ExitOK
}

func lengthsLabel(ls []int) string {
	if len(ls) == 1 {
		return fmt.Sprint(ls[0])
	}
	return fmt.Sprintf("%d..%d", ls[0], ls[len(ls)-1])
}

// countBases wraps an OnRecord hook to total the bases read.
func countBases(next func(fasta.Record, int), total *int) func(fasta.Record, int) {
	return func(rec fasta.Record, tasks int) {
		*total += rec.Len()
		if next != nil {
			next(rec, tasks)
		}
	}
}
