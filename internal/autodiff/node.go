// Package autodiff implements reverse-mode automatic differentiation over a
// lazily built computation graph.
//
// Graph construction is implicit: each operation computes its value eagerly
// and returns a new Node recording which operation produced it and which
// nodes were its operands. The graph is the set of nodes reachable through
// those operand edges; there is no separate graph object. Cycles cannot form
// because operands are always strictly earlier-constructed nodes.
//
// Backward walks the reachable subgraph in reverse topological order and
// accumulates each node's local gradient contribution into its operands.
//
// Example:
//
//	a := autodiff.Scalar(2)
//	b := autodiff.Scalar(-3)
//	y, _ := autodiff.Mul(a, b)
//	_ = autodiff.Backward(y)
//	// a.Grad() == [-3], b.Grad() == [2]
package autodiff

import (
	"github.com/pkg/errors"

	"github.com/steep-ml/steep/internal/tensor"
)

// Node is a vertex in the computation graph.
//
// It holds the forward value, the gradient accumulated during backward
// passes, and provenance: the operation that produced it plus its operand
// nodes (none for leaves). A node may be an operand of any number of
// downstream nodes; gradient accumulation adds each consumer's contribution.
//
// The value is never mutated by the graph. The gradient is mutated only by
// Backward and the ZeroGrad functions; SetValue exists for out-of-graph
// parameter updates by optimizers.
type Node struct {
	value  *tensor.Tensor
	grad   *tensor.Tensor
	op     Op
	inputs []*Node
	power  float64 // exponent payload, meaningful only for OpPow
}

// Leaf creates a graph input node with a zero gradient and no operands.
func Leaf(value *tensor.Tensor) *Node {
	return &Node{
		value: value,
		grad:  tensor.Zeros(value.Shape()),
		op:    OpNull,
	}
}

// Scalar creates a leaf holding a shape-[1] tensor.
func Scalar(v float64) *Node {
	return Leaf(tensor.Single(v))
}

// newNode wraps an already-computed forward value with its provenance.
func newNode(value *tensor.Tensor, op Op, inputs ...*Node) *Node {
	return &Node{
		value:  value,
		grad:   tensor.Zeros(value.Shape()),
		op:     op,
		inputs: inputs,
	}
}

// Value returns the node's forward value.
func (n *Node) Value() *tensor.Tensor {
	return n.value
}

// Grad returns the node's accumulated gradient.
func (n *Node) Grad() *tensor.Tensor {
	return n.grad
}

// Op returns the operation that produced the node (OpNull for leaves).
func (n *Node) Op() Op {
	return n.op
}

// Inputs returns the node's operands in order. Callers must not modify
// the returned slice.
func (n *Node) Inputs() []*Node {
	return n.inputs
}

// Power returns the exponent payload (meaningful only for OpPow nodes).
func (n *Node) Power() float64 {
	return n.power
}

// SetValue overwrites the node's value outside the graph. This is the
// update path for optimizers; it does not create an operation edge and the
// new value must keep the node's shape.
func (n *Node) SetValue(value *tensor.Tensor) error {
	if !value.Shape().Equal(n.value.Shape()) {
		return errors.Wrapf(tensor.ErrShapeMismatch, "SetValue: %v vs %v", value.Shape(), n.value.Shape())
	}
	n.value = value
	return nil
}

// ZeroGrad resets the node's gradient to a zero tensor of matching shape.
func (n *Node) ZeroGrad() {
	n.grad = tensor.Zeros(n.value.Shape())
}
