package montgomery

import (
	"github.com/jasl/ring-xous/montgomery/limbs"
)

// This file is part of the montgomery package. See the documentation of montgomery.go for general remarks.

// Reduce sets r = a * R^{-1} mod n, where R = 2^(W*len(n)).
//
// a is the accumulator of length 2*len(n) and must satisfy a < n*R; it is used as scratch space and is all-zero on return.
// r must have length len(n) and must not overlap a; disjoint parts of one array are fine.
// n must be odd and n0 must be -n^{-1} mod 2^W; this is not checked.
//
// On a shape mismatch, Reduce returns an error wrapping [ErrShapeMismatch] (more precisely, [ErrEmptyModulus], [ErrResultLength],
// [ErrAccumulatorLength] or [ErrAliasedBuffers]) and does not touch any buffer.
func (e *Engine[L]) Reduce(r, a, n []L, n0 L) error {
	if err := checkReduceShape(r, a, n); err != nil {
		return err
	}
	IncrementCallCounter("Reduce")
	e.reduce(r, a, n, n0)
	return nil
}

// Reduce is [Engine.Reduce] with the default multiply-accumulate primitive.
func Reduce[L limbs.Limb](r, a, n []L, n0 L) error {
	var e Engine[L]
	return e.Reduce(r, a, n, n0)
}

func checkReduceShape[L limbs.Limb](r, a, n []L) error {
	numLimbs := len(n)
	if numLimbs == 0 {
		return newShapeError(ErrEmptyModulus, "n", 1, 0)
	}
	if len(r) != numLimbs {
		return newShapeError(ErrResultLength, "r", numLimbs, len(r))
	}
	if len(a) != 2*numLimbs {
		return newShapeError(ErrAccumulatorLength, "a", 2*numLimbs, len(a))
	}
	if overlapping(r, a) {
		return newShapeError(ErrAliasedBuffers, "r", len(r), len(r))
	}
	return nil
}

// reduce is the actual REDC algorithm. Shapes have been checked by the caller.
//
// Round i adds u*n*2^(W*i) to a, with u chosen such that limb i of a becomes 0. After N rounds, the low half of a is zero
// and the high half, together with the overflow bit carry, holds a * R^{-1} mod n plus possibly one extra n.
// The final conditional subtraction is done by always subtracting and then selecting.
func (e *Engine[L]) reduce(r, a, n []L, n0 L) {
	mulAdd := e.primitive()
	numLimbs := len(n)
	a = a[:2*numLimbs]
	r = r[:numLimbs]

	var carry L // overflow beyond the top limb of a, in {0,1}
	for i := 0; i < numLimbs; i++ {
		IncrementCallCounter("MulAddLimb")
		u := a[i] * n0
		c1 := mulAdd(a[i:i+numLimbs:i+numLimbs], n, u)

		// a[i+numLimbs] += c1 + carry, with the new carry computed without branching.
		// c1 + carry wraps to 0 exactly if the sum is 2^W, in which case v == old and carry remains 1.
		old := a[i+numLimbs]
		v := old + c1 + carry
		carry |= limbs.IsNotEqual(v, old)
		carry &= limbs.IsLessOrEqual(v, old)
		a[i+numLimbs] = v
	}

	// r = a_high - n; if this underflowed and there was no overflow bit, the result was already < n and we keep a_high.
	borrow := limbs.SubLimbs(r, a[numLimbs:], n, numLimbs)
	mask := limbs.MaskFromBit(borrow - carry)
	for i := range r {
		r[i] = limbs.Select(mask, a[numLimbs+i], r[i])
	}

	for i := range a {
		a[i] = 0
	}
}
