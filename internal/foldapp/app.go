// internal/foldapp/app.go
package foldapp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"nussifold/internal/appshell"
	"nussifold/internal/cmdutil"
	"nussifold/internal/config"
	"nussifold/internal/version"
	"nussifold/internal/writers"
)

// exitError carries the process exit code chosen by a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func exitf(code int, format string, args ...any) error {
	return &exitError{code: code, err: fmt.Errorf(format, args...)}
}

// app is the per-invocation state shared by every command.
type app struct {
	v      *viper.Viper
	stdout io.Writer
	stderr io.Writer

	cfgFile   string
	fasta     []string
	failEmpty bool

	cfg config.Config
	log *log.Logger
}

// flag name → config key
var boundFlags = map[string]string{
	"min-loop":       "min_loop_length",
	"marker":         "marker",
	"separator":      "separator",
	"tracked":        "tracked",
	"max-length":     "max_length",
	"workers":        "workers",
	"prefix-workers": "prefix_workers",
	"output":         "output",
	"header":         "header",
	"pretty":         "pretty",
	"family":         "family",
	"log-level":      "log_level",
	"quiet":          "quiet",
}

func newRootCmd(a *app) *cobra.Command {
	d := config.Default()
	root := &cobra.Command{
		Use:   "nussifold",
		Short: "nussifold – Nussinov folding and module folding paths",
		Long: `Fold RNA-like sequences by maximum base pairing (Nussinov) and report,
for each separator-delimited module, the folding path of the tracked bases.

Sequences are given inline or read from FASTA/plain-text files (--fasta,
"-" for stdin, .gz accepted). A marker after a base upper-cases it.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}
	root.SetVersionTemplate("nussifold version {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (YAML, TOML or JSON)")
	pf.String("log-level", d.LogLevel, "log level: debug, info, warn or error")
	pf.BoolP("quiet", "q", d.Quiet, "only log errors")
	pf.Int("min-loop", d.MinLoopLength, "minimum j-i for two positions to pair")
	pf.String("marker", d.Marker, "symbol that upper-cases the preceding base")
	pf.String("separator", d.Separator, "module separator symbol (never pairs)")
	pf.String("tracked", d.Tracked, "symbol class projected into folding paths")
	pf.Int("max-length", d.MaxLength, "longest canonical sequence accepted (0 = no limit)")
	pf.IntP("workers", "t", d.Workers, "records folded concurrently (0 = all CPUs)")
	pf.Int("prefix-workers", d.PrefixWorkers, "prefix structures traced concurrently per record")
	pf.StringP("output", "o", d.Output, "output format")
	pf.Bool("header", d.Header, "print a header row (text output)")
	pf.Bool("pretty", d.Pretty, "human-readable blocks (text output)")
	pf.Bool("family", d.Family, "include every prefix structure")
	for name, key := range boundFlags {
		_ = a.v.BindPFlag(key, pf.Lookup(name))
	}

	root.AddCommand(
		newFoldCmd(a),
		newPathCmd(a),
		newMatrixCmd(a),
		newDocsCmd(root),
	)
	return root
}

// addInputFlags registers the record-source flags shared by fold and path.
func addInputFlags(a *app, cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&a.fasta, "fasta", "f", nil, "FASTA or plain-text sequence file (repeatable, globs allowed, - for stdin)")
	cmd.Flags().BoolVar(&a.failEmpty, "fail-empty", false, "exit 1 when no record was folded")
}

// setup resolves configuration and the logger once flags are parsed.
func (a *app) setup() error {
	c, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return &exitError{code: appshell.ExitUsage, err: err}
	}
	if !writers.Has(c.Output) {
		return exitf(appshell.ExitUsage, "%v: unknown output format %q (have %v)", config.ErrInvalidConfig, c.Output, writers.Formats())
	}
	lg, err := cmdutil.NewLogger(a.stderr, c.LogLevel, c.Quiet)
	if err != nil {
		return &exitError{code: appshell.ExitUsage, err: err}
	}
	a.cfg, a.log = c, lg
	lg.Debug("configuration loaded", "file", a.v.ConfigFileUsed(), "output", c.Output, "min_loop_length", c.MinLoopLength)
	return nil
}

// color reports whether styled output should be emitted.
func (a *app) color() bool {
	f, ok := a.stdout.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// RunContext executes the nussifold command line and returns its exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	a := &app{v: viper.New(), stdout: stdout, stderr: stderr}
	root := newRootCmd(a)
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return appshell.ExitOK
	}
	if writers.IsBrokenPipe(err) {
		return appshell.ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return appshell.ExitCanceled
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			_, _ = fmt.Fprintln(stderr, "error:", ee.err)
		}
		return ee.code
	}
	// flag and argument errors from cobra
	_, _ = fmt.Fprintf(stderr, "error: %v\nRun 'nussifold --help' for usage.\n", err)
	return appshell.ExitUsage
}

// Run is RunContext without cancellation.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
