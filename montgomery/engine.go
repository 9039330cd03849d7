package montgomery

import (
	"github.com/jasl/ring-xous/montgomery/limbs"
)

// This file is part of the montgomery package. See the documentation of montgomery.go for general remarks.

// Engine binds the Montgomery algorithms to a multiply-accumulate primitive.
//
// An Engine is immutable after creation and may be used concurrently, as long as concurrent calls do not share
// mutable buffers. The zero value (and a nil *Engine) is ready to use and behaves like NewEngine(nil).
type Engine[L limbs.Limb] struct {
	mulAdd limbs.MulAddFunc[L]
}

// NewEngine creates an Engine that uses mulAdd for all multiply-accumulate steps.
// mulAdd == nil selects [limbs.DefaultMulAdd].
//
// mulAdd must satisfy the contract of [limbs.MulAddFunc]; in particular, it must be constant-time,
// otherwise all guarantees of this package are void.
func NewEngine[L limbs.Limb](mulAdd limbs.MulAddFunc[L]) *Engine[L] {
	if mulAdd == nil {
		mulAdd = limbs.DefaultMulAdd[L]()
	}
	return &Engine[L]{mulAdd: mulAdd}
}

func (e *Engine[L]) primitive() limbs.MulAddFunc[L] {
	if e == nil || e.mulAdd == nil {
		return limbs.DefaultMulAdd[L]()
	}
	return e.mulAdd
}

// overlapping reports whether x and y have a memory location in common.
// Disjoint views into the same array do not overlap. Only addresses are compared, never the contents.
func overlapping[L limbs.Limb](x, y []L) bool {
	if len(x) == 0 || len(y) == 0 {
		return false
	}
	// Two contiguous ranges intersect iff one of them contains the start of the other.
	for j := range y {
		if &x[0] == &y[j] {
			return true
		}
	}
	for j := range x {
		if &y[0] == &x[j] {
			return true
		}
	}
	return false
}
