// internal/output/rows.go
package output

import (
	"fmt"
	"strings"

	"nussifold/internal/engine"
)

// PathsCSV joins the module folding paths; empty paths stay as empty fields.
func PathsCSV(mods []engine.ModulePath) string {
	ss := make([]string, len(mods))
	for i, m := range mods {
		ss[i] = m.Path
	}
	return strings.Join(ss, ",")
}

// FormatRowTSV returns the base columns (no trailing newline).
func FormatRowTSV(r engine.Result) string {
	return fmt.Sprintf("%s\t%d\t%d\t%s\t%s\t%s",
		r.ID, r.Length, r.Score, r.Canonical, r.Structure, PathsCSV(r.Modules))
}
