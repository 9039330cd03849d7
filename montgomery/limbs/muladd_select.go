package limbs

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// This file is part of the limbs package. See the documentation of limbs.go for general remarks.

// unrolledPreferred is true if the current CPU can issue 64x64->128 bit multiplications that neither read nor write
// the flags (BMI2's MULX) and has separate carry chains (ADX), or is an arm64 CPU, whose UMULH/MUL never touch flags.
// These are the CPUs where the two interleaved carry chains of MulAddLimbUnrolled can run in parallel.
var unrolledPreferred = runtime.GOARCH == "arm64" || (cpu.X86.HasBMI2 && cpu.X86.HasADX)

// DefaultMulAdd returns the multiply-accumulate primitive used when the caller does not provide one.
//
// The choice depends on the limb width and on CPU features detected at startup, never on any data.
// Both candidates compute identical results.
func DefaultMulAdd[L Limb]() MulAddFunc[L] {
	if is64[L]() && unrolledPreferred {
		return MulAddLimbUnrolled[L]
	}
	return MulAddLimb[L]
}

// UnrolledMulAddPreferred reports whether [DefaultMulAdd] picks [MulAddLimbUnrolled] for 64-bit limbs on this machine.
func UnrolledMulAddPreferred() bool {
	return unrolledPreferred
}
