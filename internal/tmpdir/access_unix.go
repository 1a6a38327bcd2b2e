//go:build !windows

package tmpdir

import "golang.org/x/sys/unix"

// writable reports whether the process may create entries in dir. Like
// tempnam before it, this is a pre-flight check with the real UID; the
// create-exclusive attempt itself remains the authority.
func writable(dir string) bool {
	return unix.Access(dir, unix.W_OK|unix.X_OK) == nil
}

func fallbackDir() string {
	return "/tmp"
}
