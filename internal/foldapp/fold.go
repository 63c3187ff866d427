package foldapp

import (
	"bufio"
	"context"
	"errors"
	"runtime"

	"github.com/spf13/cobra"

	"nussifold-core/fasta"

	"nussifold/internal/appshell"
	"nussifold/internal/engine"
	"nussifold/internal/pipeline"
	"nussifold/internal/pretty"
	"nussifold/internal/writers"
)

func newFoldCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fold [SEQ...]",
		Short: "Fold sequences and report structure, score and module paths",
		Long: `Fold each sequence with the Nussinov recursion and print its canonical
form, pair count, dot-bracket structure and module folding paths.
With --family every prefix structure is included as well.`,
		Example: `  nussifold fold 'b*ablb'
  nussifold fold --fasta reads.fa.gz -o jsonl
  nussifold fold --pretty --family GGGAAAUCC`,
		SuggestionsMinimumDistance: 2,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.fold(cmd.Context(), args, false)
		},
	}
	addInputFlags(a, cmd)
	return cmd
}

func newPathCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path [SEQ...]",
		Short: "Print the module folding paths only",
		Long: `Split each sequence at the separator, fold every prefix and print, for each
module, the tracked-base projection of the structure at the module boundary.
Text output has one row per module: id, module, boundary, path.`,
		Example: `  nussifold path 'b*ablb'
  nussifold path --separator '|' --tracked a 'a*a|a'`,
		SuggestionsMinimumDistance: 2,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.fold(cmd.Context(), args, true)
		},
	}
	addInputFlags(a, cmd)
	return cmd
}

func (a *app) engine() *engine.Engine {
	return engine.New(engine.Config{
		Fold:      a.cfg.FoldOptions(),
		Module:    a.cfg.ModuleOptions(),
		MaxLength: a.cfg.MaxLength,
	})
}

func (a *app) threads() int {
	if a.cfg.Workers > 0 {
		return a.cfg.Workers
	}
	return runtime.NumCPU()
}

// fold runs every record through the engine and streams results to the
// configured writer. Rejected records are logged and skipped; the exit
// code reports them once all output is written.
func (a *app) fold(ctx context.Context, args []string, paths bool) error {
	in, err := collectInput(args, a.fasta)
	if err != nil {
		return &exitError{code: appshell.ExitUsage, err: err}
	}
	threads := a.threads()
	a.log.Debug("folding", "inline", len(in.Inline), "files", len(in.Files), "workers", threads, "prefix_workers", a.cfg.PrefixWorkers)

	outw := bufio.NewWriter(a.stdout)
	sink, werrc := writers.Start(outw, a.cfg.Output, writers.Options{
		Header: a.cfg.Header,
		Pretty: a.cfg.Pretty,
		Family: a.cfg.Family,
		Paths:  paths,
		Render: pretty.Options{Color: a.color(), LabelWidth: pretty.DefaultOptions.LabelWidth},
	}, threads*4)

	var folded, rejected int
	perr := pipeline.ForEachResult(ctx, pipeline.Config{Threads: threads}, in, a.engine(),
		func(r engine.Result) error {
			folded++
			a.log.Debug("folded", "id", r.ID, "length", r.Length, "score", r.Score)
			select {
			case sink <- r:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
		func(rec fasta.Record, err error) error {
			rejected++
			a.log.Warn("skipping record", "id", rec.ID, "err", err)
			return nil
		},
	)
	close(sink)
	werr := <-werrc
	if werr == nil {
		werr = writers.Flush(outw)
	}

	switch {
	case perr != nil && errors.Is(perr, context.Canceled):
		return perr
	case perr != nil:
		return &exitError{code: appshell.ExitIO, err: perr}
	case werr != nil && !writers.IsBrokenPipe(werr):
		return &exitError{code: appshell.ExitIO, err: werr}
	}

	a.log.Debug("done", "folded", folded, "rejected", rejected)
	if rejected > 0 {
		return exitf(appshell.ExitUsage, "%d record(s) rejected", rejected)
	}
	if folded == 0 && a.failEmpty {
		return &exitError{code: appshell.ExitEmpty}
	}
	return nil
}
