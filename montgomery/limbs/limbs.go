// Package limbs contains the limb-level constant-time building blocks of the Montgomery arithmetic in package montgomery.
//
// A limb is an unsigned machine word of width W (32 or 64 bits); a limb sequence is a little-endian []L, i.e.
// the least significant limb comes first. All arithmetic on single limbs is modulo 2^W.
//
// Everything in this package is written to run in time independent of the limb values:
// there are no branches on and no memory accesses indexed by limb values. Only lengths, which are public, affect control flow.
// Boolean results are returned as limbs holding 0 or 1 (or as masks that are all-zeros / all-ones), never as bool,
// because converting a bool into an integer is a branch at the source level.
package limbs

import (
	"math/bits"
)

// ErrorPrefix is the prefix used by all panic messages originating from this package.
const ErrorPrefix = "ring-xous / limbs: "

// Limb is the type set of supported limb types.
type Limb interface {
	~uint32 | ~uint64
}

// BitWidth returns the width W of the limb type L in bits.
func BitWidth[L Limb]() int {
	return bits.Len64(uint64(^L(0)))
}

// is64 reports whether L is a 64-bit limb type. This only depends on the type, never on data.
func is64[L Limb]() bool {
	return BitWidth[L]() == 64
}

// Barrier returns x unchanged.
//
// The call cannot be inlined, so the compiler loses all knowledge about the returned value.
// Routing masks through Barrier prevents the optimizer from proving that a mask is all-ones or all-zeros
// and turning a masked combination back into a conditional branch.
//
//go:noinline
func Barrier[L Limb](x L) L {
	return x
}

// Select returns a if mask is all-ones and b if mask is all-zeros.
//
// For other values of mask, the output is the bitwise mix of a and b selected by mask.
// All bits of both inputs are always read and combined.
func Select[L Limb](mask, a, b L) L {
	return Barrier(mask)&a | Barrier(^mask)&b
}

// MaskFromBit turns a bit in {0,1} into a mask in {all-zeros, all-ones}.
func MaskFromBit[L Limb](bit L) L {
	return Barrier(0 - bit)
}

// SubWithBorrow computes a - b - borrowIn modulo 2^W.
// borrowOut is 1 if the subtraction underflowed (when viewed as an operation on integers), 0 otherwise.
//
// borrowIn must be 0 or 1.
func SubWithBorrow[L Limb](a, b, borrowIn L) (result, borrowOut L) {
	if is64[L]() {
		r, c := bits.Sub64(uint64(a), uint64(b), uint64(borrowIn))
		return L(r), L(c)
	}
	r, c := bits.Sub32(uint32(a), uint32(b), uint32(borrowIn))
	return L(r), L(c)
}

// Sub computes a - b modulo 2^W, with borrowOut == 1 iff a < b.
func Sub[L Limb](a, b L) (result, borrowOut L) {
	return SubWithBorrow(a, b, 0)
}

// AddWithCarry computes a + b + carryIn modulo 2^W, with carryOut in {0,1} indicating overflow.
//
// carryIn must be 0 or 1.
func AddWithCarry[L Limb](a, b, carryIn L) (result, carryOut L) {
	if is64[L]() {
		r, c := bits.Add64(uint64(a), uint64(b), uint64(carryIn))
		return L(r), L(c)
	}
	r, c := bits.Add32(uint32(a), uint32(b), uint32(carryIn))
	return L(r), L(c)
}

// MulWide computes the full 2W-bit product x*y, split into the high and low limb.
func MulWide[L Limb](x, y L) (hi, lo L) {
	if is64[L]() {
		h, l := bits.Mul64(uint64(x), uint64(y))
		return L(h), L(l)
	}
	h, l := bits.Mul32(uint32(x), uint32(y))
	return L(h), L(l)
}

// IsNotEqual returns 1 if x != y and 0 if x == y.
func IsNotEqual[L Limb](x, y L) L {
	// At most one of x-y and y-x underflows; both do not iff x == y.
	_, c1 := Sub(x, y)
	_, c2 := Sub(y, x)
	return c1 | c2
}

// IsLessOrEqual returns 1 if x <= y and 0 if x > y.
func IsLessOrEqual[L Limb](x, y L) L {
	_, c := Sub(y, x) // c == 1 iff y < x
	return 1 ^ c
}

// SubLimbs sets r = a - b over the first numLimbs limbs and returns the final borrow,
// which is 1 iff a < b as multi-limb unsigned integers.
//
// numLimbs must be at least 1, and r, a, b must have at least numLimbs limbs; violating this is a bug in the caller and panics.
// r may alias a or b (entry-wise, i.e. r[i] and a[i] may be the same memory location).
// The running time only depends on numLimbs.
func SubLimbs[L Limb](r, a, b []L, numLimbs int) (borrow L) {
	if numLimbs < 1 {
		panic(ErrorPrefix + "SubLimbs called with numLimbs < 1")
	}
	// Eliminate bounds checks in the loop. This also panics if any slice is too short.
	r = r[:numLimbs]
	a = a[:numLimbs]
	b = b[:numLimbs]

	r[0], borrow = Sub(a[0], b[0])
	for i := 1; i < numLimbs; i++ {
		r[i], borrow = SubWithBorrow(a[i], b[i], borrow)
	}
	return
}
