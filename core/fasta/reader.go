// core/fasta/reader.go
package fasta

import (
	"context"
	"path/filepath"
)

// Record is one parsed input sequence.
type Record struct {
	ID  string
	Seq []byte
}

// StreamPathCtx opens path and emits its records. Return a non-nil error
// from emit (e.g. ctx.Err()) to stop early.
func StreamPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return ReadCtx(ctx, rc, sourceName(path), emit)
}

// StreamCtx is the channel wrapper around StreamPathCtx.
//   - open errors for non-stdin paths are reported immediately
//   - scan-time errors are delivered on the error channel after the records
func StreamCtx(ctx context.Context, path string) (<-chan Record, <-chan error, error) {
	if path != "-" {
		rc, err := openReader(path)
		if err != nil {
			return nil, nil, err
		}
		_ = rc.Close()
	}

	out := make(chan Record, 8)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		errc <- StreamPathCtx(ctx, path, func(r Record) error {
			select {
			case out <- r:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}()
	return out, errc, nil
}

func sourceName(path string) string {
	if path == "-" {
		return "stdin"
	}
	return filepath.Base(path)
}
