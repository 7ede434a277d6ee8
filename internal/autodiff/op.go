package autodiff

import "github.com/pkg/errors"

// Op identifies a differentiable operation in the computation graph.
//
// The set is closed: every Op pairs an eager forward rule (applied at graph
// construction) with a backward rule (a vector-Jacobian product applied
// during the reverse pass). Negation, subtraction and division are not op
// kinds; they are compositions of the primitives below.
type Op int

// Supported operations.
const (
	OpNull Op = iota // leaf, no operands
	OpAdd            // element-wise addition
	OpMul            // element-wise multiplication
	OpPow            // element-wise power with a scalar exponent
	OpReLU           // element-wise max(0, x)
	OpMatMul         // 2D matrix multiplication
	OpSum            // reduction to a scalar
)

// ErrUnknownOp indicates an operation tag outside the closed set.
// Unreachable through the package API, but the backward dispatch fails
// loudly on it rather than silently skipping a node.
var ErrUnknownOp = errors.New("unknown operation")

// String returns the operation's display tag.
func (op Op) String() string {
	switch op {
	case OpNull:
		return "null"
	case OpAdd:
		return "+"
	case OpMul:
		return "*"
	case OpPow:
		return "pow"
	case OpReLU:
		return "ReLU"
	case OpMatMul:
		return "MatMul"
	case OpSum:
		return "Sum"
	default:
		return "unknown"
	}
}

// Arity returns the number of operands the operation requires,
// or -1 for an unknown tag.
func (op Op) Arity() int {
	switch op {
	case OpNull:
		return 0
	case OpPow, OpReLU, OpSum:
		return 1
	case OpAdd, OpMul, OpMatMul:
		return 2
	default:
		return -1
	}
}
