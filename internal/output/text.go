// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"nussifold/internal/engine"
)

// StreamText writes one TSV row per result as it arrives. With pretty set,
// each row is followed by render(r) and a blank line.
func StreamText(w io.Writer, in <-chan engine.Result, header, pretty bool, render func(engine.Result) string) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
		if pretty && render != nil {
			if _, err := fmt.Fprintln(w, render(r)); err != nil {
				return err
			}
		}
	}
	return nil
}

// StreamPaths writes "id<TAB>module<TAB>boundary<TAB>path" rows, one per
// module; module is 1-based.
func StreamPaths(w io.Writer, in <-chan engine.Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, "id\tmodule\tboundary\tpath"); err != nil {
			return err
		}
	}
	for r := range in {
		for _, m := range r.Modules {
			if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", r.ID, m.Index+1, m.Boundary, m.Path); err != nil {
				return err
			}
		}
	}
	return nil
}
