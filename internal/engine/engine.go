// internal/engine/engine.go
package engine

import (
	"errors"
	"fmt"

	"nussifold-core/annot"
	"nussifold-core/module"
	"nussifold-core/nussinov"
)

var ErrSequenceTooLong = errors.New("sequence too long")

// Config carries the core options plus the application bound on N.
type Config struct {
	Fold      nussinov.Options
	Module    module.Options
	MaxLength int // 0 = unbounded
}

type Engine struct{ cfg Config }

func New(c Config) *Engine {
	// separators never pair, whatever the caller passed
	sep := c.Module.Separator
	if sep == 0 {
		sep = annot.DefaultSeparator
	}
	c.Fold.Excluded += string(sep)
	return &Engine{cfg: c}
}

// Analyze folds one annotated sequence and projects it onto its modules.
func (e *Engine) Analyze(id, raw string) (Result, error) {
	mods, c, err := module.Layout(raw, e.cfg.Module)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", id, err)
	}
	if e.cfg.MaxLength > 0 && c.Len() > e.cfg.MaxLength {
		return Result{}, fmt.Errorf("%s: %w: %d > %d", id, ErrSequenceTooLong, c.Len(), e.cfg.MaxLength)
	}

	p := module.FoldCanonical(c, mods, e.cfg.Fold, e.cfg.Module)
	mp := make([]ModulePath, len(mods))
	for k, md := range mods {
		mp[k] = ModulePath{Index: md.Index, Start: md.Start, End: md.End, Boundary: md.Boundary, Path: p.Paths[k]}
	}

	return Result{
		ID:        id,
		Input:     raw,
		Canonical: c.Seq,
		Length:    c.Len(),
		Score:     p.Fold.Score(),
		Pairs:     p.Fold.Pairs,
		Structure: p.Fold.Structure,
		Family:    p.Family,
		Modules:   mp,
	}, nil
}

// Matrix fills the score table for raw without tracing; used for inspection.
func (e *Engine) Matrix(raw string) (*nussinov.Matrix, string, error) {
	_, c, err := module.Layout(raw, e.cfg.Module)
	if err != nil {
		return nil, "", err
	}
	if e.cfg.MaxLength > 0 && c.Len() > e.cfg.MaxLength {
		return nil, "", fmt.Errorf("%w: %d > %d", ErrSequenceTooLong, c.Len(), e.cfg.MaxLength)
	}
	return nussinov.Fill(c.Seq, e.cfg.Fold), c.Seq, nil
}
