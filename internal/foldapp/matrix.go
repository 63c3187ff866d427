package foldapp

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"nussifold-core/annot"

	"nussifold/internal/appshell"
	"nussifold/internal/engine"
	"nussifold/internal/pretty"
	"nussifold/internal/writers"
)

func newMatrixCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "matrix SEQ",
		Short: "Print the filled score matrix of one sequence",
		Long: `Fill the Nussinov score table for the canonical form of SEQ and print it
with the sequence on both axes. Cell (i, j) is the maximum pair count of
positions i..j; cells below the sub-diagonal are blank.`,
		Example: `  nussifold matrix GGGAAAUCC`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.matrix(args[0])
		},
	}
}

func (a *app) matrix(raw string) error {
	m, seq, err := a.engine().Matrix(raw)
	if err != nil {
		if errors.Is(err, annot.ErrInvalidSequence) || errors.Is(err, engine.ErrSequenceTooLong) {
			return &exitError{code: appshell.ExitUsage, err: err}
		}
		return err
	}
	a.log.Debug("matrix filled", "length", m.Len(), "score", m.Score())

	outw := bufio.NewWriter(a.stdout)
	o := pretty.Options{Color: a.color(), LabelWidth: pretty.DefaultOptions.LabelWidth}
	if _, err := outw.WriteString(pretty.RenderMatrix(a.stdout, seq, m, o)); err != nil && !writers.IsBrokenPipe(err) {
		return &exitError{code: appshell.ExitIO, err: err}
	}
	if err := writers.Flush(outw); err != nil {
		return &exitError{code: appshell.ExitIO, err: err}
	}
	return nil
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:    "docs",
		Short:  "Write the Markdown command reference",
		Hidden: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return &exitError{code: appshell.ExitIO, err: err}
			}
			root.DisableAutoGenTag = true
			if err := doc.GenMarkdownTree(root, dir); err != nil {
				return &exitError{code: appshell.ExitIO, err: fmt.Errorf("generate docs: %w", err)}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "docs", "output directory")
	return cmd
}
