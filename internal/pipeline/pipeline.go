// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"nussifold-core/fasta"

	"nussifold/internal/engine"
)

// Analyzer folds one record. *engine.Engine satisfies it.
type Analyzer interface {
	Analyze(id, raw string) (engine.Result, error)
}

// Config controls the worker pool.
type Config struct {
	Threads int // number of worker goroutines (>=1)
}

// Input lists the records to fold: inline records first, then every file
// in order ("-" is stdin).
type Input struct {
	Inline []fasta.Record
	Files  []string
}

type job struct {
	idx int
	rec fasta.Record
}

type outcome struct {
	job
	res engine.Result
	err error
}

// ForEachResult analyzes every record and calls visit for each success or
// fail for each per-record error, strictly in input order. A non-nil
// return from visit or fail stops the run and is returned.
// File and scan errors abort the run; context cancellation returns ctx.Err().
func ForEachResult(
	ctx context.Context,
	cfg Config,
	in Input,
	an Analyzer,
	visit func(engine.Result) error,
	fail func(fasta.Record, error) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan outcome, cfg.Threads*2)

	// Feed work
	g.Go(func() error {
		defer close(jobs)
		idx := 0
		send := func(r fasta.Record) error {
			select {
			case jobs <- job{idx: idx, rec: r}:
				idx++
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		for _, r := range in.Inline {
			if err := send(r); err != nil {
				return err
			}
		}
		for _, fn := range in.Files {
			recs, errc, err := fasta.StreamCtx(gctx, fn)
			if err != nil {
				return fmt.Errorf("%s: %w", fn, err)
			}
			for r := range recs {
				if err := send(r); err != nil {
					// the reader stops on the same context
					return err
				}
			}
			if err := <-errc; err != nil {
				return fmt.Errorf("%s: %w", fn, err)
			}
		}
		return nil
	})

	// Workers
	var wg sync.WaitGroup
	for w := 0; w < cfg.Threads; w++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			for j := range jobs {
				res, err := an.Analyze(j.rec.ID, string(j.rec.Seq))
				select {
				case results <- outcome{job: j, res: res, err: err}:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// Collector: reorder by input index
	var (
		cerr    error
		next    int
		pending = make(map[int]outcome)
	)
	for o := range results {
		if cerr != nil {
			continue
		}
		pending[o.idx] = o
		for {
			p, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			var err error
			if p.err != nil {
				err = fail(p.rec, p.err)
			} else {
				err = visit(p.res)
			}
			if err != nil {
				cerr = err
				cancel()
				break
			}
		}
	}

	gerr := g.Wait()
	if cerr != nil {
		return cerr
	}
	if ctx.Err() != nil && gerr == nil {
		return ctx.Err()
	}
	return gerr
}
