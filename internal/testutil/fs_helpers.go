package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content to name inside dir and returns the full path.
// name must be relative so fixtures stay inside the test directory.
func WriteFile(t testing.TB, dir, name string, content []byte) string {
	t.Helper()
	if filepath.IsAbs(name) {
		t.Fatalf("WriteFile: absolute name %s", name)
	}
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create parent of %s: %v", path, err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// ReadFile reads the file at path and fails the test on error.
func ReadFile(t testing.TB, path string) []byte {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return content
}

// AssertFileContent asserts that the file at path holds exactly want.
func AssertFileContent(t testing.TB, path, want string) {
	t.Helper()
	if got := string(ReadFile(t, path)); got != want {
		t.Errorf("content of %s = %q, want %q", path, got, want)
	}
}

// MustExist fails the test if path does not exist.
func MustExist(t testing.TB, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected %s to exist: %v", path, err)
	}
}

// MustNotExist fails the test if path exists, or if checking it fails for a
// reason other than absence.
func MustNotExist(t testing.TB, path string) {
	t.Helper()
	_, err := os.Stat(path)
	if err == nil {
		t.Fatalf("expected %s to not exist", path)
	}
	if !os.IsNotExist(err) {
		t.Fatalf("check %s: %v", path, err)
	}
}
