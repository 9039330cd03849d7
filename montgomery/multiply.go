package montgomery

import (
	"github.com/jasl/ring-xous/montgomery/limbs"
)

// This file is part of the montgomery package. See the documentation of montgomery.go for general remarks.

// Multiply sets r = a * b * R^{-1} mod n, where R = 2^(W*len(n)).
//
// a, b and r must all have length len(n), and a, b must be < n. r may alias a or b.
// n must be odd and n0 must be -n^{-1} mod 2^W; this is not checked.
//
// On a shape mismatch, Multiply returns an error wrapping [ErrShapeMismatch] (more precisely, [ErrEmptyModulus],
// [ErrOperandLength] or [ErrResultLength]) and does not touch any buffer.
func (e *Engine[L]) Multiply(r, a, b, n []L, n0 L) error {
	numLimbs := len(n)
	if numLimbs == 0 {
		return newShapeError(ErrEmptyModulus, "n", 1, 0)
	}
	if len(a) != numLimbs {
		return newShapeError(ErrOperandLength, "a", numLimbs, len(a))
	}
	if len(b) != numLimbs {
		return newShapeError(ErrOperandLength, "b", numLimbs, len(b))
	}
	if len(r) != numLimbs {
		return newShapeError(ErrResultLength, "r", numLimbs, len(r))
	}
	IncrementCallCounter("Multiply")

	mulAdd := e.primitive()
	// Schoolbook multiplication into a fresh accumulator; its final content is wiped by reduce.
	tmp := make([]L, 2*numLimbs)
	for i := 0; i < numLimbs; i++ {
		IncrementCallCounter("MulAddLimb")
		tmp[numLimbs+i] = mulAdd(tmp[i:i+numLimbs:i+numLimbs], a, b[i])
	}
	e.reduce(r, tmp, n, n0)
	return nil
}

// Multiply is [Engine.Multiply] with the default multiply-accumulate primitive.
func Multiply[L limbs.Limb](r, a, b, n []L, n0 L) error {
	var e Engine[L]
	return e.Multiply(r, a, b, n, n0)
}

// FromMontgomery sets r = a * R^{-1} mod n for a < n of length len(n), i.e. converts a out of Montgomery form.
// r may alias a. Errors are as for [Engine.Multiply], with a reported as operand.
func (e *Engine[L]) FromMontgomery(r, a, n []L, n0 L) error {
	numLimbs := len(n)
	if numLimbs == 0 {
		return newShapeError(ErrEmptyModulus, "n", 1, 0)
	}
	if len(a) != numLimbs {
		return newShapeError(ErrOperandLength, "a", numLimbs, len(a))
	}
	if len(r) != numLimbs {
		return newShapeError(ErrResultLength, "r", numLimbs, len(r))
	}
	IncrementCallCounter("FromMontgomery")
	tmp := make([]L, 2*numLimbs)
	copy(tmp, a)
	e.reduce(r, tmp, n, n0)
	return nil
}

// FromMontgomery is [Engine.FromMontgomery] with the default multiply-accumulate primitive.
func FromMontgomery[L limbs.Limb](r, a, n []L, n0 L) error {
	var e Engine[L]
	return e.FromMontgomery(r, a, n, n0)
}
