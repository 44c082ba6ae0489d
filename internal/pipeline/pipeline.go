// internal/pipeline/pipeline.go
package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"telofind-core/fasta"
)

// Config controls the fan-out.
type Config struct {
	Threads int  // concurrent tasks (>=1)
	Buffer  int  // result channel capacity; 0 picks 2*Threads
	Ordered bool // deliver results in submission order

	// OnRecord, when set, is called from the reading goroutine as each
	// record is read, before its tasks are submitted.
	OnRecord func(rec fasta.Record, tasks int)
}

// WorkFunc computes one (record, param) task. It must not retain rec.Seq
// beyond the call or mutate it; rec is shared by every param of a record.
type WorkFunc[P, R any] func(ctx context.Context, rec fasta.Record, p P) (R, error)

type item[R any] struct {
	seq int
	val R
}

// Run streams the records of path, runs work once per (record, param) pair
// on up to cfg.Threads goroutines, and hands every result to collect on a
// single goroutine. collect runs only on the collector, so it may touch
// state without locking.
//
// Submission order is record order, then param order. Without cfg.Ordered
// results arrive as they finish.
//
// The first error from reading, work or collect cancels the remaining tasks
// and is returned; cancellation of ctx wins over all of them.
func Run[P, R any](
	ctx context.Context,
	cfg Config,
	path string,
	params []P,
	work WorkFunc[P, R],
	collect func(R) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	if cfg.Buffer <= 0 {
		cfg.Buffer = cfg.Threads * 2
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(runCtx)
	g.SetLimit(cfg.Threads)

	results := make(chan item[R], cfg.Buffer)

	// Collector
	var cerr error
	collected := make(chan struct{})
	go func() {
		defer close(collected)
		deliver := func(v R) {
			if cerr != nil {
				return
			}
			if err := collect(v); err != nil {
				cerr = err
				cancel()
			}
		}
		if !cfg.Ordered {
			for it := range results {
				deliver(it.val)
			}
			return
		}
		pending := make(map[int]R)
		next := 0
		for it := range results {
			pending[it.seq] = it.val
			for {
				v, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				deliver(v)
			}
		}
	}()

	// Feed work
	seq := 0
	rerr := fasta.StreamPathCtx(gctx, path, func(rec fasta.Record) error {
		if cfg.OnRecord != nil {
			cfg.OnRecord(rec, len(params))
		}
		for _, p := range params {
			n, p := seq, p
			seq++
			g.Go(func() error {
				r, err := work(gctx, rec, p)
				if err != nil {
					return err
				}
				select {
				case results <- item[R]{seq: n, val: r}:
					return nil
				case <-gctx.Done():
					return gctx.Err()
				}
			})
		}
		return gctx.Err()
	})

	werr := g.Wait()
	close(results)
	<-collected

	switch {
	case ctx.Err() != nil:
		return ctx.Err()
	case cerr != nil:
		return cerr
	case werr != nil:
		return werr
	default:
		return rerr
	}
}
