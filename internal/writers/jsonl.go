// internal/writers/jsonl.go
package writers

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	"nussifold/internal/engine"
	"nussifold/internal/output"
)

func init() {
	Register("jsonl", startJSONL)
}

// Reuse a 64 KiB buffered writer across JSONL writers to avoid per-writer mallocs.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// startJSONL streams each result as one JSON line (v1).
func startJSONL(out io.Writer, o Options, bufSize int) (chan<- engine.Result, <-chan error) {
	return run(bufSize, func(in <-chan engine.Result) error {
		bw := bwPool.Get().(*bufio.Writer)
		bw.Reset(out)
		defer func() {
			bw.Reset(io.Discard)
			bwPool.Put(bw)
		}()

		enc := json.NewEncoder(bw)
		for r := range in {
			if err := enc.Encode(output.ToAPI(r, o.Family)); err != nil {
				return err
			}
		}
		return Flush(bw)
	})
}
