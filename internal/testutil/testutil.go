// Package testutil provides shared test helpers for tempfile tests.
//
// The package is organized into focused files:
//   - assert.go: assertion helpers (MustNoErr, AssertPermNoMoreThan, ...)
//   - fs_helpers.go: filesystem fixtures (WriteFile, MustExist, ...)
package testutil
