package autodiff

import (
	"github.com/pkg/errors"

	"github.com/steep-ml/steep/internal/tensor"
)

// Graph builders. Each function computes its forward value eagerly, records
// the operands on the returned node, and leaves its inputs untouched.

// Add returns a node computing element-wise a + b.
func Add(a, b *Node) (*Node, error) {
	value, err := a.value.Add(b.value)
	if err != nil {
		return nil, errors.WithMessage(err, "autodiff.Add")
	}
	return newNode(value, OpAdd, a, b), nil
}

// Mul returns a node computing element-wise a * b.
func Mul(a, b *Node) (*Node, error) {
	value, err := a.value.Mul(b.value)
	if err != nil {
		return nil, errors.WithMessage(err, "autodiff.Mul")
	}
	return newNode(value, OpMul, a, b), nil
}

// Pow returns a node computing element-wise a^exponent for a real exponent.
func Pow(a *Node, exponent float64) (*Node, error) {
	n := newNode(a.value.Pow(exponent), OpPow, a)
	n.power = exponent
	return n, nil
}

// ReLU returns a node computing element-wise max(0, a).
func ReLU(a *Node) (*Node, error) {
	return newNode(a.value.ReLU(), OpReLU, a), nil
}

// MatMul returns a node computing the 2D matrix product a · b.
func MatMul(a, b *Node) (*Node, error) {
	value, err := a.value.MatMul(b.value)
	if err != nil {
		return nil, errors.WithMessage(err, "autodiff.MatMul")
	}
	return newNode(value, OpMatMul, a, b), nil
}

// Sum returns a node reducing a to a shape-[1] scalar.
func Sum(a *Node) (*Node, error) {
	return newNode(tensor.Single(a.value.Sum()), OpSum, a), nil
}

// Derived operations. These compose the primitives above so the chain rule
// applies without dedicated op kinds.

// Neg returns a node computing -a, as a * (-1).
func Neg(a *Node) (*Node, error) {
	minusOne := Leaf(tensor.Full(a.value.Shape(), -1))
	return Mul(a, minusOne)
}

// Sub returns a node computing a - b, as a + (-b).
func Sub(a, b *Node) (*Node, error) {
	nb, err := Neg(b)
	if err != nil {
		return nil, err
	}
	return Add(a, nb)
}

// Div returns a node computing element-wise a / b, as a * b^-1.
func Div(a, b *Node) (*Node, error) {
	inv, err := Pow(b, -1)
	if err != nil {
		return nil, err
	}
	return Mul(a, inv)
}
