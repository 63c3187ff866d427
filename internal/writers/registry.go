// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"nussifold/internal/engine"
	"nussifold/internal/pretty"
)

// Options shared by every format.
type Options struct {
	Header bool
	Pretty bool
	Family bool // include the prefix family
	Paths  bool // per-module rows instead of per-record (text only)
	Render pretty.Options
}

// Factory starts a writer goroutine. Send results on the returned channel,
// close it, then read exactly one value from the error channel.
type Factory func(out io.Writer, o Options, bufSize int) (chan<- engine.Result, <-chan error)

// Writer registry (format → factory). Register in init() blocks.
var registry = map[string]Factory{}

// Register adds or replaces a format (idempotent last-wins).
func Register(format string, f Factory) { registry[format] = f }

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Has reports whether format is registered.
func Has(format string) bool {
	_, ok := registry[format]
	return ok
}

// Start dispatches to the registered factory. Unknown formats yield a
// writer that drains its input and reports the error.
func Start(out io.Writer, format string, o Options, bufSize int) (chan<- engine.Result, <-chan error) {
	if f, ok := registry[format]; ok {
		return f(out, o, bufSize)
	}
	return run(bufSize, func(<-chan engine.Result) error {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	})
}

// run is the common goroutine scaffold for factories. Input left unread by
// a failing body is drained so senders never block; the error is reported
// once the input is closed.
func run(bufSize int, body func(<-chan engine.Result) error) (chan<- engine.Result, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Result, bufSize)
	errCh := make(chan error, 1)
	go func() {
		err := body(in)
		for range in {
		}
		errCh <- err
	}()
	return in, errCh
}
