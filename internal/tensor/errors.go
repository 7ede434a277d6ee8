package tensor

import "github.com/pkg/errors"

// Structural errors reported by tensor operations. All of them indicate a
// contract violation by the caller, not a transient condition; callers are
// expected to test with errors.Is.
var (
	// ErrShapeMismatch indicates operand shapes are incompatible:
	// a data buffer whose length does not match its shape, two elementwise
	// operands of different shapes, or a matmul inner-dimension mismatch.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrRankUnsupported indicates an operation that is only defined for a
	// specific rank (matmul and transpose are 2D, display is rank <= 2).
	ErrRankUnsupported = errors.New("unsupported rank")

	// ErrEmptyReduction indicates Element was called on a tensor that does
	// not hold exactly one element.
	ErrEmptyReduction = errors.New("tensor does not have a single element")

	// ErrIndexOutOfRange indicates a coordinate exceeded its dimension bound.
	ErrIndexOutOfRange = errors.New("index out of range")
)
