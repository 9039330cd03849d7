package testutils

import (
	"math/rand"
	"testing"
)

func TestNegInverseModW(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		x64 := rng.Uint64() | 1
		n0 := NegInverseModW(x64)
		FatalUnless(t, x64*n0 == ^uint64(0), "n0 is not -1/x mod 2^64 for x = %v", x64)

		x32 := rng.Uint32() | 1
		m0 := NegInverseModW(x32)
		FatalUnless(t, x32*m0 == ^uint32(0), "n0 is not -1/x mod 2^32 for x = %v", x32)
	}
	// 7 * 0x49249249 == 0x1_FFFFFFFF == -1 mod 2^32
	FatalUnless(t, NegInverseModW(uint32(7)) == 0x49249249, "wrong n0 for modulus 7")
	FatalUnless(t, CheckPanic(func() { NegInverseModW(uint64(4)) }), "even argument did not panic")
}

func TestRandomOddModulus(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for numLimbs := 1; numLimbs < 6; numLimbs++ {
		for i := 0; i < 100; i++ {
			n := RandomOddModulus[uint32](rng, numLimbs)
			FatalUnless(t, len(n) == numLimbs, "wrong length")
			FatalUnless(t, n[0]&1 == 1, "modulus is even")
			FatalUnless(t, n[numLimbs-1] != 0, "top limb is zero")
		}
	}
}
