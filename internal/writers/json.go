// internal/writers/json.go
package writers

import (
	"io"

	"nussifold/internal/engine"
	"nussifold/internal/output"
)

func init() {
	Register("json", startJSON)
}

// startJSON buffers everything; the array is written once input closes.
func startJSON(out io.Writer, o Options, bufSize int) (chan<- engine.Result, <-chan error) {
	return run(bufSize, func(in <-chan engine.Result) error {
		buf := []engine.Result{}
		for r := range in {
			buf = append(buf, r)
		}
		return output.WriteJSON(out, buf, o.Family)
	})
}
