package testutils

import "fmt"

// CheckPanic runs fun(), captures all panics and returns whether a panic occurred.
// The panic argument itself is discarded; use [CatchPanic] if the test needs to inspect it.
//
// This function is only used in testing.
func CheckPanic(fun func()) (didPanic bool) {
	didPanic, _ = CatchPanic(fun)
	return
}

// CatchPanic runs fun() and, if it panics, returns true together with a string rendition of the panic argument.
func CatchPanic(fun func()) (didPanic bool, message string) {
	didPanic = true
	defer func() {
		err := recover()
		if !didPanic {
			return
		}
		switch err := err.(type) {
		case string:
			message = err
		case error:
			message = err.Error()
		case fmt.Stringer:
			message = err.String()
		default:
			message = fmt.Sprint(err)
		}
	}()
	fun()
	didPanic = false
	return
}
