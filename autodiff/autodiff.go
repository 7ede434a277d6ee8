// Copyright 2025 The Steep Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation.
//
// Arithmetic functions build a computation graph implicitly: each returns a
// new Node recording its operation and operands while computing its value
// eagerly. Backward then computes exact gradients of one node with respect
// to every node that contributed to it.
//
// Example:
//
//	a := autodiff.Scalar(2.0)
//	b := autodiff.Scalar(-3.0)
//	y, _ := autodiff.Mul(a, b)
//	_ = autodiff.Backward(y)
//	fmt.Println(a.Grad()) // [-3 ]
package autodiff

import (
	"io"

	"github.com/steep-ml/steep/internal/autodiff"
	"github.com/steep-ml/steep/internal/tensor"
)

// Node is a vertex in the computation graph: a forward value, an
// accumulated gradient of the same shape, and provenance.
type Node = autodiff.Node

// Op identifies a differentiable operation.
type Op = autodiff.Op

// The closed set of operations. Derived operations (Neg, Sub, Div) compose
// these and have no kinds of their own.
const (
	OpNull   Op = autodiff.OpNull
	OpAdd    Op = autodiff.OpAdd
	OpMul    Op = autodiff.OpMul
	OpPow    Op = autodiff.OpPow
	OpReLU   Op = autodiff.OpReLU
	OpMatMul Op = autodiff.OpMatMul
	OpSum    Op = autodiff.OpSum
)

// ErrUnknownOp indicates an operation tag outside the closed set.
var ErrUnknownOp = autodiff.ErrUnknownOp

// Construction.

// Leaf creates a graph input node holding the given tensor, with a zero
// gradient and no operands.
func Leaf(value *tensor.Tensor) *Node {
	return autodiff.Leaf(value)
}

// Scalar creates a leaf holding a shape-[1] tensor.
func Scalar(v float64) *Node {
	return autodiff.Scalar(v)
}

// Operations. All are pure with respect to their inputs and return a new
// node recording the operands.

// Add returns a node computing element-wise a + b.
func Add(a, b *Node) (*Node, error) { return autodiff.Add(a, b) }

// Mul returns a node computing element-wise a * b.
func Mul(a, b *Node) (*Node, error) { return autodiff.Mul(a, b) }

// Pow returns a node computing element-wise a^exponent.
func Pow(a *Node, exponent float64) (*Node, error) { return autodiff.Pow(a, exponent) }

// ReLU returns a node computing element-wise max(0, a).
func ReLU(a *Node) (*Node, error) { return autodiff.ReLU(a) }

// MatMul returns a node computing the 2D matrix product a · b.
func MatMul(a, b *Node) (*Node, error) { return autodiff.MatMul(a, b) }

// Sum returns a node reducing a to a shape-[1] scalar.
func Sum(a *Node) (*Node, error) { return autodiff.Sum(a) }

// Neg returns a node computing -a.
func Neg(a *Node) (*Node, error) { return autodiff.Neg(a) }

// Sub returns a node computing a - b.
func Sub(a, b *Node) (*Node, error) { return autodiff.Sub(a, b) }

// Div returns a node computing element-wise a / b.
func Div(a, b *Node) (*Node, error) { return autodiff.Div(a, b) }

// Traversal.

// Backward computes gradients for every node reachable from root by
// reverse-mode accumulation. Gradients persist across calls; use
// ZeroAllGrads between unrelated passes.
func Backward(root *Node) error {
	return autodiff.Backward(root)
}

// ZeroAllGrads resets the gradient of every node reachable from root.
func ZeroAllGrads(root *Node) {
	autodiff.ZeroAllGrads(root)
}

// Parameters returns every node reachable from root in topological order,
// operands before dependents.
func Parameters(root *Node) []*Node {
	return autodiff.Parameters(root)
}

// Diagnostics.

// WriteTree renders the expression tree below n as indentation-prefixed
// "value=… grad=… <op>" lines.
func WriteTree(w io.Writer, n *Node) error {
	return autodiff.WriteTree(w, n)
}

// Tree returns the WriteTree rendering as a string.
func Tree(n *Node) string {
	return autodiff.Tree(n)
}
