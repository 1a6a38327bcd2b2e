// Package tmpdir picks the directory a generated temporary file lands in.
//
// The lookup order follows tempnam(3), which the historical tool was built
// on: $TMPDIR wins when it is usable, then the directory the caller asked
// for, then the system default. One deliberate change from tempnam: an
// unusable requested directory is an error rather than a silent fallback,
// so a typo in --directory cannot scatter files into /tmp.
package tmpdir

import (
	"log/slog"
	"os"

	"github.com/rotisserie/eris"
)

// ErrUnusable reports that a requested directory does not exist, is not a
// directory, or cannot be written to.
var ErrUnusable = eris.New("directory not usable")

// Resolve returns the directory generated names are joined with. requested
// is the --directory value, or empty when the caller expressed no
// preference.
//
// os.TempDir is not consulted for the final fallback: it echoes $TMPDIR
// without checking it, which would hand back the very directory Resolve
// just rejected.
func Resolve(requested string) (string, error) {
	if env := os.Getenv("TMPDIR"); env != "" {
		if usable(env) {
			return env, nil
		}
		slog.Debug("ignoring unusable TMPDIR", "dir", env)
	}
	if requested != "" {
		if !usable(requested) {
			return "", eris.Wrapf(ErrUnusable, "%s", requested)
		}
		return requested, nil
	}
	return fallbackDir(), nil
}

func usable(dir string) bool {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return false
	}
	return writable(dir)
}
