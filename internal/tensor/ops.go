package tensor

import (
	"math"

	"github.com/pkg/errors"
)

// binaryOp applies fn position-wise over two equal-shaped tensors.
func (t *Tensor) binaryOp(name string, other *Tensor, fn func(a, b float64) float64) (*Tensor, error) {
	if !t.shape.Equal(other.shape) {
		return nil, errors.Wrapf(ErrShapeMismatch, "%s: %v vs %v", name, t.shape, other.shape)
	}
	out := newDense(t.shape)
	for i := range t.data {
		out.data[i] = fn(t.data[i], other.data[i])
	}
	return out, nil
}

// Add performs element-wise addition. Operand shapes must be identical.
func (t *Tensor) Add(other *Tensor) (*Tensor, error) {
	return t.binaryOp("Add", other, func(a, b float64) float64 { return a + b })
}

// Sub performs element-wise subtraction. Operand shapes must be identical.
func (t *Tensor) Sub(other *Tensor) (*Tensor, error) {
	return t.binaryOp("Sub", other, func(a, b float64) float64 { return a - b })
}

// Mul performs element-wise multiplication. Operand shapes must be identical.
func (t *Tensor) Mul(other *Tensor) (*Tensor, error) {
	return t.binaryOp("Mul", other, func(a, b float64) float64 { return a * b })
}

// Div performs element-wise division. Operand shapes must be identical.
// Division by zero follows IEEE-754 (Inf/NaN propagate, no error).
func (t *Tensor) Div(other *Tensor) (*Tensor, error) {
	return t.binaryOp("Div", other, func(a, b float64) float64 { return a / b })
}

// AddScalar adds a scalar to every element.
func (t *Tensor) AddScalar(v float64) *Tensor {
	return t.Apply(func(x float64) float64 { return x + v })
}

// SubScalar subtracts a scalar from every element.
func (t *Tensor) SubScalar(v float64) *Tensor {
	return t.Apply(func(x float64) float64 { return x - v })
}

// MulScalar multiplies every element by a scalar.
func (t *Tensor) MulScalar(v float64) *Tensor {
	return t.Apply(func(x float64) float64 { return x * v })
}

// DivScalar divides every element by a scalar.
func (t *Tensor) DivScalar(v float64) *Tensor {
	return t.Apply(func(x float64) float64 { return x / v })
}

// Apply returns a new tensor with fn applied to every element.
func (t *Tensor) Apply(fn func(float64) float64) *Tensor {
	out := newDense(t.shape)
	for i, x := range t.data {
		out.data[i] = fn(x)
	}
	return out
}

// Sum reduces the tensor to a scalar by adding every element.
// Accumulation is naive float64 summation.
func (t *Tensor) Sum() float64 {
	var sum float64
	for _, x := range t.data {
		sum += x
	}
	return sum
}

// ReLU applies element-wise max(0, x).
func (t *Tensor) ReLU() *Tensor {
	return t.Apply(func(x float64) float64 {
		if x > 0 {
			return x
		}
		return 0
	})
}

// Pow raises every element to a real exponent using math.Pow semantics.
// A negative base with a fractional exponent yields NaN, which propagates.
func (t *Tensor) Pow(exponent float64) *Tensor {
	return t.Apply(func(x float64) float64 { return math.Pow(x, exponent) })
}
