package limbs

// This file is part of the limbs package. See the documentation of limbs.go for general remarks.

// This file contains the single-limb multiply-accumulate primitive and its variants.
// Montgomery reduction and multiplication never call these directly; they receive one of them as a [MulAddFunc],
// so that callers can plug in a reference implementation for testing or a faster (e.g. assembly) one.

// MulAddFunc is the contract of a multiply-accumulate primitive:
//
// f(dst, src, scalar) computes dst[:len(src)] += src * scalar in place, where dst and src are read as little-endian
// multi-limb integers of len(src) limbs, and returns the limb that overflows out of the top of dst.
//
// dst must have at least len(src) limbs; limbs of dst beyond len(src) must not be touched.
// Implementations must run in time independent of the values of dst, src and scalar.
type MulAddFunc[L Limb] func(dst, src []L, scalar L) (carry L)

// mulAddStep computes d + s*scalar + carryIn as a 2-limb value and returns it as (low, high).
// The result always fits: (2^W-1)^2 + 2*(2^W-1) == 2^(2W) - 1.
func mulAddStep[L Limb](d, s, scalar, carryIn L) (low, high L) {
	var c L
	high, low = MulWide(s, scalar)
	low, c = AddWithCarry(low, d, 0)
	high += c
	low, c = AddWithCarry(low, carryIn, 0)
	high += c
	return
}

// MulAddLimb is the reference implementation of [MulAddFunc]: a plain loop over the limbs of src.
func MulAddLimb[L Limb](dst, src []L, scalar L) (carry L) {
	dst = dst[:len(src)] // bounds check hint, and panics if dst is too short.
	for i, s := range src {
		dst[i], carry = mulAddStep(dst[i], s, scalar, carry)
	}
	return
}

// MulAddLimbUnrolled satisfies [MulAddFunc] and agrees with [MulAddLimb] on every input.
//
// It processes 4 limbs per iteration, with the products computed upfront and two separate binary carry chains
// for adding in dst and the high halves of the products. This shortens the dependency chain between iterations,
// which pays off on CPUs that can issue wide multiplications without touching the flags register.
func MulAddLimbUnrolled[L Limb](dst, src []L, scalar L) (carry L) {
	n := len(src)
	dst = dst[:n]
	i := 0
	for ; i+4 <= n; i += 4 {
		d := dst[i : i+4 : i+4]
		s := src[i : i+4 : i+4]

		hi0, lo0 := MulWide(s[0], scalar)
		hi1, lo1 := MulWide(s[1], scalar)
		hi2, lo2 := MulWide(s[2], scalar)
		hi3, lo3 := MulWide(s[3], scalar)

		// carryDst collects the carries from adding dst, carryHigh those from adding the high half of the previous product
		// (or the incoming carry for the first limb). Both are 0 or 1 and go into the next limb.
		var carryDst, carryHigh L
		d[0], carryDst = AddWithCarry(lo0, d[0], 0)
		d[0], carryHigh = AddWithCarry(d[0], carry, 0)

		d[1], carryDst = AddWithCarry(lo1, d[1], carryDst)
		d[1], carryHigh = AddWithCarry(d[1], hi0, carryHigh)

		d[2], carryDst = AddWithCarry(lo2, d[2], carryDst)
		d[2], carryHigh = AddWithCarry(d[2], hi1, carryHigh)

		d[3], carryDst = AddWithCarry(lo3, d[3], carryDst)
		d[3], carryHigh = AddWithCarry(d[3], hi2, carryHigh)

		// Cannot overflow: the 4-limb block plus carry-in is at most 2^(5W) - 1.
		carry = hi3 + carryDst + carryHigh
	}
	for ; i < n; i++ {
		dst[i], carry = mulAddStep(dst[i], src[i], scalar, carry)
	}
	return
}
