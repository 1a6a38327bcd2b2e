//go:build !windows

// Package fileutil provides the atomic create-exclusive primitive the rest
// of the tool is built on.
//
// On Unix a single open(2) with O_CREAT|O_EXCL is the whole story: the
// kernel refuses the call when the path already exists, with no window for
// another process to slip in between. On Windows the same flags work, and
// owner-only modes additionally get a DACL restricting the file to the
// current user, since Unix permission bits mean little there.
package fileutil

import "os"

// CreateExclusive creates path with the given permissions and opens it for
// reading and writing. If the path already exists, including as a dangling
// symlink, it fails with an error satisfying errors.Is(err, fs.ErrExist).
// Existence check and creation are one kernel operation; callers must not
// pre-check.
func CreateExclusive(path string, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, perm)
}
