// Package term decides whether diagnostics may use ANSI color.
package term

import (
	"os"

	"github.com/mattn/go-isatty"
)

const (
	escRed   = "\x1b[31m"
	escReset = "\x1b[0m"
)

// IsTerminal reports whether f is an interactive terminal, including the
// Cygwin and MSYS pseudo terminals that plain isatty misses.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ColorEnabled reports whether output written to f should be colored. It
// honors the NO_COLOR convention: any non-empty value disables color even
// on a terminal.
func ColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return IsTerminal(f)
}

// Red wraps s in red ANSI codes when colored is true and returns it
// unchanged otherwise.
func Red(s string, colored bool) string {
	if !colored {
		return s
	}
	return escRed + s + escReset
}
