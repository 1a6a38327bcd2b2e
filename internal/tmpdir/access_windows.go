//go:build windows

package tmpdir

import "os"

// writable always answers yes on Windows. There is no faccessat
// equivalent worth consulting; the create attempt reports the real
// permission error with the path attached.
func writable(dir string) bool {
	return true
}

// fallbackDir follows the %TMP%, %TEMP%, %USERPROFILE% chain; TMPDIR plays
// no part in os.TempDir on Windows.
func fallbackDir() string {
	return os.TempDir()
}
