// Package tbmock intercepts testing.TB failures so that helpers which call
// Fatalf can themselves be tested.
package tbmock

import (
	"fmt"
	"testing"
)

// sentinel is panicked in place of runtime.Goexit when a fatal method is
// called on TB.
type sentinel struct{ msg string }

// TB records failures instead of stopping the test. Methods not overridden
// here delegate to the wrapped testing.TB.
type TB struct {
	testing.TB
	failed bool
	msg    string
}

// Wrap returns a TB delegating to t.
func Wrap(t testing.TB) *TB {
	return &TB{TB: t}
}

// Failed reports whether any Error or Fatal method was called.
func (m *TB) Failed() bool { return m.failed }

// Message returns the most recent failure message.
func (m *TB) Message() string { return m.msg }

func (m *TB) Helper() {}

func (m *TB) Errorf(format string, args ...any) {
	m.failed = true
	m.msg = fmt.Sprintf(format, args...)
}

func (m *TB) Fatalf(format string, args ...any) {
	m.failed = true
	m.msg = fmt.Sprintf(format, args...)
	panic(sentinel{m.msg})
}

func (m *TB) Fatal(args ...any) {
	m.failed = true
	m.msg = fmt.Sprint(args...)
	panic(sentinel{m.msg})
}

func (m *TB) FailNow() {
	m.failed = true
	panic(sentinel{})
}

// Run calls fn, swallowing the panic a TB fatal method raises. Panics from
// any other source propagate.
func Run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(sentinel); !ok {
				panic(r)
			}
		}
	}()
	fn()
}
