package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Main runs a RunContext-style entry point with signal-aware cancellation
// and exits with its code.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = ExitCanceled
	}

	stop()
	os.Exit(code)
}

// Exit codes shared by all commands.
const (
	ExitOK       = 0
	ExitEmpty    = 1 // no record folded and --fail-empty set
	ExitUsage    = 2 // bad flags, config or input sequence
	ExitIO       = 3 // read/write failures
	ExitCanceled = 130
)
