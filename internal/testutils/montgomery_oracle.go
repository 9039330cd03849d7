package testutils

import (
	"math/big"
	"math/bits"
	"math/rand"

	"github.com/jasl/ring-xous/internal/utils"
)

// This file contains reference computations that tests use to set up and check Montgomery arithmetic.
// None of this is constant-time and none of it is meant to be; the production code never computes n0 itself.

// limbType mirrors the Limb constraint of the limbs package. We cannot import limbs here, because its own tests use testutils.
type limbType interface {
	~uint32 | ~uint64
}

// NegInverseModW returns -x^{-1} mod 2^W for odd x, where W is the bit width of L.
// This is the Montgomery constant n0 for a modulus whose least significant limb is x.
func NegInverseModW[L limbType](x L) L {
	Assert(x&1 == 1, "ring-xous / testutils: NegInverseModW called with even argument")
	// Newton iteration: y = x^{-1} mod 2^k doubles the number of correct bits k each round.
	// x*x == 1 mod 8, so y = x starts with 3 correct bits; 5 rounds give 96 >= 64.
	y := x
	for i := 0; i < 5; i++ {
		y *= 2 - x*y
	}
	return -y
}

// RadixBigInt returns R = 2^(W*numLimbs) for limbs of width bitWidth.
func RadixBigInt(bitWidth int, numLimbs int) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(bitWidth*numLimbs))
}

// RandomOddModulus samples a random odd modulus of exactly numLimbs limbs (the top limb is non-zero).
// Apart from these constraints, the bit patterns are biased towards edge cases (all-ones and nearly-zero limbs)
// because those are where carry handling tends to go wrong.
func RandomOddModulus[L limbType](rng *rand.Rand, numLimbs int) []L {
	Assert(numLimbs >= 1)
	n := make([]L, numLimbs)
	for i := range n {
		n[i] = randomLimb[L](rng)
	}
	n[0] |= 1
	for n[numLimbs-1] == 0 {
		n[numLimbs-1] = randomLimb[L](rng)
	}
	return n
}

// RandomBelow samples a uniform-ish value in [0, bound) and returns it as numLimbs limbs.
func RandomBelow[L limbType](rng *rand.Rand, bound *big.Int, numLimbs int) []L {
	Assert(bound.Sign() > 0)
	x := new(big.Int).Rand(rng, bound)
	return utils.BigIntToLimbs[L](x, numLimbs)
}

func randomLimb[L limbType](rng *rand.Rand) L {
	var all L = ^L(0)
	switch rng.Intn(8) {
	case 0:
		return all
	case 1:
		return L(rng.Intn(4))
	case 2:
		return all - L(rng.Intn(4))
	default:
		if bits.Len64(uint64(all)) == 64 {
			return L(rng.Uint64())
		}
		return L(rng.Uint32())
	}
}
