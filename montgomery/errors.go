package montgomery

import (
	"errors"
	"fmt"

	"github.com/jasl/ring-xous/montgomery/errorsWithData"
)

// This file is part of the montgomery package. See the documentation of montgomery.go for general remarks.

// This file collects all errors that can be returned by functions in this package.
//
// IMPORTANT: We always return errors wrapping the ones given here. Never compare errors for equality. Use [errors.Is]

// ErrorPrefix is the prefix used by all error message strings originating from this package.
const ErrorPrefix = "ring-xous / montgomery: "

// ErrShapeMismatch is the common base of all errors caused by slices of wrong length or bad overlap.
var ErrShapeMismatch = errors.New(ErrorPrefix + "limb slices do not have the required shape")

var (
	ErrEmptyModulus      = fmt.Errorf("%w: the modulus has no limbs", ErrShapeMismatch)
	ErrResultLength      = fmt.Errorf("%w: the result slice does not have the length of the modulus", ErrShapeMismatch)
	ErrAccumulatorLength = fmt.Errorf("%w: the accumulator does not have twice the length of the modulus", ErrShapeMismatch)
	ErrOperandLength     = fmt.Errorf("%w: an operand does not have the length of the modulus", ErrShapeMismatch)
	ErrAliasedBuffers    = fmt.Errorf("%w: the result slice overlaps the accumulator", ErrShapeMismatch)
)

// ShapeErrorData is the data attached to errors returned for shape mismatches.
//
// Operand is the name of the offending parameter ("n", "r", "a" or "b"), Expected and Got are its required and actual lengths.
// For ErrAliasedBuffers, Expected and Got are both the length of r.
type ShapeErrorData struct {
	Operand  string
	Expected int
	Got      int
}

// ShapeError is the type of errors returned by [Reduce] and [Multiply].
type ShapeError = errorsWithData.ErrorWithData[ShapeErrorData]

// Canary: This will panic if we refactor field names. newShapeError's message uses %v{FieldName} - syntax, which depends on these particular names.
func init() {
	errorsWithData.CheckParametersForStruct_all[ShapeErrorData]([]string{"Operand", "Expected", "Got"})
}

func newShapeError(base error, operand string, expected int, got int) ShapeError {
	return errorsWithData.NewErrorWithData_struct(base, "%w (%v{Operand}: expected %v{Expected} limbs, got %v{Got})", &ShapeErrorData{Operand: operand, Expected: expected, Got: got})
}
