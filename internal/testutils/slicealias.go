package testutils

// CheckSliceAlias reports whether x and y are non-nil views with positive capacity into the same backing array.
// The views may start and end anywhere; only reslicing to zero capacity hides the connection.
func CheckSliceAlias[T any](x []T, y []T) bool {
	if x == nil || y == nil {
		return false
	}
	cx := cap(x)
	cy := cap(y)
	if cx == 0 || cy == 0 {
		return false
	}
	// While reslicing may change the start, the end (extended to capacity) is invariant.
	return &(x[0:cx][cx-1]) == &(y[0:cy][cy-1])
}

// IsAllZero reports whether every entry of x is the zero value.
// Used to check that scratch buffers holding secret data were wiped.
func IsAllZero[T comparable](x []T) bool {
	var zero T
	for _, v := range x {
		if v != zero {
			return false
		}
	}
	return true
}
