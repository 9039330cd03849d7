// Package ctbytes compares byte buffers in time that depends only on their length.
//
// This is used to compare secret-dependent values, such as a recomputed signature encoding against the received one,
// without leaking the position of the first difference.
package ctbytes

import (
	"crypto/subtle"
)

// ErrorPrefix is the prefix used by all panic messages originating from this package.
const ErrorPrefix = "ring-xous / ctbytes: "

// Compare returns 0 if the first length bytes of a and b agree and a non-zero value otherwise.
// The magnitude of a non-zero result carries no meaning.
//
// Every one of the length bytes of both buffers is read, regardless of where (or whether) they differ.
// length must be non-negative and both slices must have at least length bytes; otherwise, Compare panics.
func Compare(a, b []byte, length int) byte {
	if length < 0 {
		panic(ErrorPrefix + "Compare called with negative length")
	}
	a = a[:length]
	b = b[:length]
	var acc byte
	for i := range a {
		acc |= a[i] ^ b[i]
	}
	return acc
}

// Equal returns 1 if the first length bytes of a and b agree and 0 otherwise, without branching on the contents.
// The requirements on the arguments are as for [Compare].
func Equal(a, b []byte, length int) int {
	return subtle.ConstantTimeByteEq(Compare(a, b, length), 0)
}
