// internal/writers/text.go
package writers

import (
	"io"

	"nussifold/internal/engine"
	"nussifold/internal/output"
	"nussifold/internal/pretty"
)

func init() {
	Register("text", startText)
}

func startText(out io.Writer, o Options, bufSize int) (chan<- engine.Result, <-chan error) {
	return run(bufSize, func(in <-chan engine.Result) error {
		if o.Paths {
			return output.StreamPaths(out, in, o.Header)
		}
		ro := o.Render
		ro.ShowFamily = ro.ShowFamily || o.Family
		return output.StreamText(out, in, o.Header, o.Pretty,
			func(r engine.Result) string { return pretty.RenderFold(out, r, ro) },
		)
	})
}
