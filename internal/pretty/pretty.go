// Package pretty renders folds as human-readable blocks for terminal output.
package pretty

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"

	"nussifold-core/nussinov"

	"nussifold/internal/engine"
)

// Options control the rendering.
type Options struct {
	// Color enables ANSI styling; leave off for files and pipes.
	Color bool

	// Width of the module label column.
	LabelWidth int

	// Print every prefix structure under the full-length one.
	ShowFamily bool
}

// DefaultOptions is plain text with a 16-column label.
var DefaultOptions = Options{LabelWidth: 16}

const linePrefix = "# "

type styles struct {
	header, seq, open, close, unpaired, label lipgloss.Style
	width                                     int
}

func newStyles(w io.Writer, o Options) styles {
	r := lipgloss.NewRenderer(w)
	if o.Color {
		// w is often a buffer in front of the terminal
		r.SetColorProfile(termenv.ANSI256)
	}
	base := r.NewStyle()
	s := styles{header: base, seq: base, open: base, close: base, unpaired: base, label: base}
	if o.Color {
		s.header = base.Bold(true)
		s.seq = base.Foreground(lipgloss.Color("6"))
		s.open = base.Foreground(lipgloss.Color("2"))
		s.close = base.Foreground(lipgloss.Color("3"))
		s.unpaired = base.Faint(true)
		s.label = base.Foreground(lipgloss.Color("5"))
	}
	s.width = o.LabelWidth
	if s.width <= 0 {
		s.width = DefaultOptions.LabelWidth
	}
	return s
}

// labelled pads label to the label column; long labels are never wrapped.
// An empty structure leaves the label unpadded.
func (s styles) labelled(label, dot string) string {
	if dot == "" {
		return s.label.Render(label)
	}
	return s.label.Render(fmt.Sprintf("%-*s", s.width, label)) + " " + s.brackets(dot)
}

func (s styles) brackets(dot string) string {
	var sb strings.Builder
	for i := 0; i < len(dot); i++ {
		c := string(dot[i])
		switch dot[i] {
		case '(':
			sb.WriteString(s.open.Render(c))
		case ')':
			sb.WriteString(s.close.Render(c))
		default:
			sb.WriteString(s.unpaired.Render(c))
		}
	}
	return sb.String()
}

// RenderFold returns a block of "# "-prefixed lines describing r.
// w is only consulted for the color profile.
func RenderFold(w io.Writer, r engine.Result, o Options) string {
	s := newStyles(w, o)
	lines := []string{
		s.header.Render(fmt.Sprintf("%s  length=%d  score=%d", r.ID, r.Length, r.Score)),
		s.seq.Render(r.Canonical),
		s.brackets(r.Structure),
	}
	for _, m := range r.Modules {
		label := fmt.Sprintf("module %d [%d,%d)", m.Index+1, m.Start, m.End)
		lines = append(lines, s.labelled(label, m.Path))
	}
	if o.ShowFamily {
		for x, f := range r.Family {
			lines = append(lines, s.labelled("prefix "+strconv.Itoa(x), f))
		}
	}
	for i := range lines {
		lines[i] = linePrefix + lines[i]
	}
	return strings.Join(lines, "\n") + "\n"
}

// RenderMatrix draws the score table with the sequence on both axes.
// Cells below the sub-diagonal are left blank.
func RenderMatrix(w io.Writer, seq string, m *nussinov.Matrix, o Options) string {
	s := newStyles(w, o)
	headers := make([]string, 0, len(seq)+1)
	headers = append(headers, "")
	for i := 0; i < len(seq); i++ {
		headers = append(headers, string(seq[i]))
	}
	rows := m.Rows()
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 || row == table.HeaderRow {
				return s.header
			}
			return s.seq.UnsetForeground()
		})
	for i, row := range rows {
		cells := make([]string, 0, len(row)+1)
		cells = append(cells, string(seq[i]))
		for _, v := range row {
			if v == nussinov.Undefined {
				cells = append(cells, "")
				continue
			}
			cells = append(cells, strconv.Itoa(v))
		}
		t.Row(cells...)
	}
	return t.String() + "\n"
}
