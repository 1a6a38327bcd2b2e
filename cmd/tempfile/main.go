package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/debtools/tempfile/cmd/tempfile/cmd"
	"github.com/debtools/tempfile/internal/term"
)

const (
	exitCodeError       = 1
	exitCodeInterrupted = 130 // 128 + SIGINT, mirrors shell convention
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cmd.ExecuteContext(ctx); err != nil {
		if isSignalCanceled(err, ctx) {
			return exitCodeInterrupted
		}
		printDiagnostic(err)
		return exitCodeError
	}
	return 0
}

func isSignalCanceled(err error, ctx context.Context) bool {
	return errors.Is(err, context.Canceled) && ctx.Err() == context.Canceled
}

// printDiagnostic writes the failure to stderr with the program name
// attached. Stdout carries nothing but the created path, so scripts that
// capture it see an empty string on failure.
func printDiagnostic(err error) {
	label := term.Red("error", term.ColorEnabled(os.Stderr))
	fmt.Fprintf(os.Stderr, "tempfile: %s: %v\n", label, err)
}
