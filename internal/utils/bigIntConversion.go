package utils

import (
	"math/big"
	"math/bits"
)

// ErrorPrefix is the prefix used by all panic messages originating from this package.
const ErrorPrefix = "ring-xous / internal / utils: "

// limbType is the set of limb types we convert from / to. It matches limbs.Limb.
type limbType interface {
	~uint32 | ~uint64
}

func limbBits[L limbType]() uint {
	return uint(bits.Len64(uint64(^L(0))))
}

// LimbsToBigInt converts a little-endian limb slice to a (non-negative) big.Int, without any Montgomery conversions.
// An empty slice converts to 0.
func LimbsToBigInt[L limbType](x []L) *big.Int {
	w := limbBits[L]()
	ret := new(big.Int)
	limb := new(big.Int)
	for i := len(x) - 1; i >= 0; i-- {
		ret.Lsh(ret, w)
		limb.SetUint64(uint64(x[i]))
		ret.Or(ret, limb)
	}
	return ret
}

// BigIntToLimbs converts a big.Int into a little-endian slice of exactly numLimbs limbs, without Montgomery conversions.
// We require 0 <= x < 2^(W*numLimbs).
func BigIntToLimbs[L limbType](x *big.Int, numLimbs int) []L {
	// As this is an internal function, panic is OK for error handling.
	if x.Sign() < 0 {
		panic(ErrorPrefix + "BigIntToLimbs: trying to convert negative big.Int")
	}
	w := limbBits[L]()
	if x.BitLen() > int(w)*numLimbs {
		panic(ErrorPrefix + "BigIntToLimbs: big.Int too large to fit into the requested number of limbs")
	}
	ret := make([]L, numLimbs)
	mask := new(big.Int).SetUint64(uint64(^L(0)))
	rest := new(big.Int).Set(x)
	limb := new(big.Int)
	for i := 0; i < numLimbs; i++ {
		limb.And(rest, mask)
		ret[i] = L(limb.Uint64())
		rest.Rsh(rest, w)
	}
	return ret
}

// InitIntFromString initializes a big.Int from a given string, using big.Int's SetString with base prefix detection.
//
// This function panics on failure, which is appropriate for its use case:
// It is supposed to be used to initialize package-level test vectors from constant string literals.
func InitIntFromString(input string) *big.Int {
	ret, success := new(big.Int).SetString(input, 0)
	if !success {
		panic(ErrorPrefix + "String " + input + " used to initialize a big.Int was not recognized as a valid number")
	}
	return ret
}
