package testutil

import (
	"os"
	"strings"
	"testing"
)

// MustNoErr fails the test immediately if err is non-nil. Use it for setup
// operations where failure means the test cannot proceed.
func MustNoErr(t testing.TB, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: %v", msg, err)
	}
}

// AssertContainsAll asserts that got contains every substring in subs.
func AssertContainsAll(t testing.TB, got string, subs ...string) {
	t.Helper()
	for _, substr := range subs {
		if !strings.Contains(got, substr) {
			t.Errorf("result %q should contain %q", got, substr)
		}
	}
}

// AssertPermNoMoreThan asserts that the file at path grants no permission
// bits beyond want. The process umask may strip bits at creation time, so
// stricter than want passes and extra bits fail.
func AssertPermNoMoreThan(t testing.TB, path string, want os.FileMode) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	got := info.Mode().Perm()
	if got&^want.Perm() != 0 {
		t.Errorf("%s has mode %v, want no more than %v", path, got, want.Perm())
	}
}
