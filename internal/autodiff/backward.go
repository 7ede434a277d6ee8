package autodiff

import (
	"github.com/pkg/errors"

	"github.com/steep-ml/steep/internal/tensor"
)

// accumulate adds delta into the node's gradient. Backward rules only ever
// accumulate: a node may feed several consumers, and each consumer's
// contribution must add to the others, never replace them.
func (n *Node) accumulate(delta *tensor.Tensor) error {
	sum, err := n.grad.Add(delta)
	if err != nil {
		return errors.WithMessage(err, "gradient accumulation")
	}
	n.grad = sum
	return nil
}

// backwardOnce applies the node's backward rule: it reads the node's own
// accumulated gradient and its operands' values, and accumulates each
// operand's share of the gradient.
func (n *Node) backwardOnce() error {
	switch n.op {
	case OpNull:
		return nil

	case OpAdd:
		// d(a+b)/da = d(a+b)/db = 1
		if err := n.inputs[0].accumulate(n.grad); err != nil {
			return err
		}
		return n.inputs[1].accumulate(n.grad)

	case OpMul:
		// d(a*b)/da = b, d(a*b)/db = a
		a, b := n.inputs[0], n.inputs[1]
		da, err := b.value.Mul(n.grad)
		if err != nil {
			return err
		}
		if err := a.accumulate(da); err != nil {
			return err
		}
		db, err := a.value.Mul(n.grad)
		if err != nil {
			return err
		}
		return b.accumulate(db)

	case OpPow:
		// d(a^p)/da = p * a^(p-1)
		a := n.inputs[0]
		local := a.value.Pow(n.power - 1).MulScalar(n.power)
		da, err := local.Mul(n.grad)
		if err != nil {
			return err
		}
		return a.accumulate(da)

	case OpReLU:
		// Gradient passes through where the output is positive.
		mask := n.value.Apply(func(x float64) float64 {
			if x > 0 {
				return 1
			}
			return 0
		})
		da, err := n.grad.Mul(mask)
		if err != nil {
			return err
		}
		return n.inputs[0].accumulate(da)

	case OpMatMul:
		// d(A·B)/dA = grad · Bᵀ, d(A·B)/dB = Aᵀ · grad
		a, b := n.inputs[0], n.inputs[1]
		bt, err := b.value.T()
		if err != nil {
			return err
		}
		da, err := n.grad.MatMul(bt)
		if err != nil {
			return err
		}
		if err := a.accumulate(da); err != nil {
			return err
		}
		at, err := a.value.T()
		if err != nil {
			return err
		}
		db, err := at.MatMul(n.grad)
		if err != nil {
			return err
		}
		return b.accumulate(db)

	case OpSum:
		// The scalar upstream gradient applies uniformly to every element.
		a := n.inputs[0]
		g, err := n.grad.Element()
		if err != nil {
			return err
		}
		return a.accumulate(tensor.Full(a.value.Shape(), g))

	default:
		return errors.Wrapf(ErrUnknownOp, "backward: op tag %d", int(n.op))
	}
}
