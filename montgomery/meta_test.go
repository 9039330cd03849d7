package montgomery

import (
	"math/big"
	"math/rand"

	"github.com/jasl/ring-xous/internal/testutils"
	"github.com/jasl/ring-xous/internal/utils"
	"github.com/jasl/ring-xous/montgomery/limbs"
)

// This file contains the shared setup for the tests and benchmarks of this package.

// maxTestLimbs is the largest number of limbs we test with. This covers both the unrolled part and the tail of MulAddLimbUnrolled.
const maxTestLimbs = 8

// moduliKey identifies the list of sample moduli of a given shape in testModuli.
type moduliKey struct {
	bitWidth int
	numLimbs int
}

// testModuli caches random odd moduli (as big.Int) for each shape. The first entries are fixed edge cases, see init below.
var testModuli = testutils.MakePrecomputedCache[moduliKey, *big.Int](
	func(key moduliKey) *rand.Rand { return testutils.DefaultCreateRandFromSeed(int64(1000*key.bitWidth + key.numLimbs)) },
	func(rng *rand.Rand, key moduliKey) *big.Int {
		if key.bitWidth == 32 {
			return utils.LimbsToBigInt(testutils.RandomOddModulus[uint32](rng, key.numLimbs))
		}
		return utils.LimbsToBigInt(testutils.RandomOddModulus[uint64](rng, key.numLimbs))
	},
	func(x *big.Int) *big.Int { return new(big.Int).Set(x) },
)

func init() {
	for _, bitWidth := range []int{32, 64} {
		for numLimbs := 1; numLimbs <= maxTestLimbs; numLimbs++ {
			R := testutils.RadixBigInt(bitWidth, numLimbs)
			var edgeCases []*big.Int
			if numLimbs == 1 {
				halfR := new(big.Int).Rsh(R, 1)
				edgeCases = []*big.Int{
					new(big.Int).Sub(R, big.NewInt(1)), // largest modulus
					big.NewInt(7),
					big.NewInt(3),
					halfR.Add(halfR, big.NewInt(1)), // 2^(W-1) + 1
				}
			} else {
				lowestTop := testutils.RadixBigInt(bitWidth, numLimbs-1)
				edgeCases = []*big.Int{
					new(big.Int).Sub(R, big.NewInt(1)),         // largest modulus
					new(big.Int).Add(lowestTop, big.NewInt(1)), // smallest modulus with numLimbs limbs
					// all-ones top limb, 0...01 below
					new(big.Int).Add(new(big.Int).Sub(R, lowestTop), big.NewInt(1)),
				}
			}
			testModuli.PrepopulateCache(moduliKey{bitWidth: bitWidth, numLimbs: numLimbs}, edgeCases)
		}
	}
}

// montgomeryTestCase bundles a modulus with everything needed to check results against math/big.
type montgomeryTestCase[L limbs.Limb] struct {
	n       []L
	n0      L
	nBig    *big.Int
	R       *big.Int // 2^(W*N)
	RInv    *big.Int // R^{-1} mod n
	RSquare []L      // R^2 mod n, used to convert into Montgomery form
}

func newMontgomeryTestCase[L limbs.Limb](nBig *big.Int, numLimbs int) montgomeryTestCase[L] {
	var tc montgomeryTestCase[L]
	tc.nBig = new(big.Int).Set(nBig)
	tc.n = utils.BigIntToLimbs[L](nBig, numLimbs)
	tc.n0 = testutils.NegInverseModW(tc.n[0])
	tc.R = testutils.RadixBigInt(limbs.BitWidth[L](), numLimbs)
	tc.RInv = new(big.Int).ModInverse(tc.R, nBig)
	if tc.RInv == nil {
		panic("modulus for test case not coprime to R")
	}
	rSquare := new(big.Int).Mul(tc.R, tc.R)
	tc.RSquare = utils.BigIntToLimbs[L](rSquare.Mod(rSquare, nBig), numLimbs)
	return tc
}

// getTestCases returns amount many test cases for moduli of numLimbs limbs of type L.
func getTestCases[L limbs.Limb](numLimbs int, amount int) []montgomeryTestCase[L] {
	moduli := testModuli.GetElements(moduliKey{bitWidth: limbs.BitWidth[L](), numLimbs: numLimbs}, amount)
	ret := make([]montgomeryTestCase[L], amount)
	for i, nBig := range moduli {
		ret[i] = newMontgomeryTestCase[L](nBig, numLimbs)
	}
	return ret
}

func (tc *montgomeryTestCase[L]) numLimbs() int {
	return len(tc.n)
}

// random returns a random value in [0, n) as big.Int and as limbs.
func (tc *montgomeryTestCase[L]) random(rng *rand.Rand) (*big.Int, []L) {
	x := new(big.Int).Rand(rng, tc.nBig)
	return x, utils.BigIntToLimbs[L](x, tc.numLimbs())
}

// toMontgomery returns x*R mod n as limbs, computed with math/big.
func (tc *montgomeryTestCase[L]) toMontgomery(x *big.Int) []L {
	y := new(big.Int).Mul(x, tc.R)
	return utils.BigIntToLimbs[L](y.Mod(y, tc.nBig), tc.numLimbs())
}

// timesRInv returns x*R^{-1} mod n, computed with math/big.
func (tc *montgomeryTestCase[L]) timesRInv(x *big.Int) *big.Int {
	y := new(big.Int).Mul(x, tc.RInv)
	return y.Mod(y, tc.nBig)
}

// testEngines lists the engines that all tests are run against.
func testEngines[L limbs.Limb]() map[string]*Engine[L] {
	return map[string]*Engine[L]{
		"Reference": NewEngine[L](limbs.MulAddLimb[L]),
		"Unrolled":  NewEngine[L](limbs.MulAddLimbUnrolled[L]),
		"Default":   NewEngine[L](nil),
		"ZeroValue": new(Engine[L]),
		"Nil":       nil,
	}
}

func copyLimbs[L limbs.Limb](x []L) []L {
	return append([]L(nil), x...)
}
