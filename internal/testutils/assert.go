package testutils

import (
	"runtime/debug"
	"testing"
)

// Assert(condition) panics if condition is false; Assert(condition, error) panics if condition is false with panic(error).
//
// Unlike a C-style assert, the check is always performed.
func Assert(condition bool, err ...interface{}) {
	if len(err) > 1 {
		panic("ring-xous / testutils: Assert can only handle 1 extra error argument")
	}
	if !condition {
		if len(err) == 0 {
			panic("This is not supposed to be possible")
		} else {
			panic(err[0])
		}
	}
}

// FatalUnless(t, condition, format, args...) aborts the test t with the given message if condition is false.
// The stack is printed, since most of our tests check the same condition inside loops over many samples.
func FatalUnless(t testing.TB, condition bool, formatstring string, args ...any) {
	t.Helper()
	if !condition {
		debug.PrintStack()
		t.Fatalf(formatstring, args...)
	}
}
