// Package tensor implements a dense, strided, row-major float64 tensor.
//
// Tensors are value types with no graph awareness: every operation returns a
// new Tensor and leaves its operands untouched. Elementwise operations require
// operands of identical shape; there is no implicit broadcasting.
package tensor

import (
	"github.com/pkg/errors"
)

// Tensor is a dense N-dimensional float64 array.
//
// The data buffer is flat and row-major (the last dimension is contiguous);
// strides are derived from the shape and recomputed on reshape.
type Tensor struct {
	data   []float64
	shape  Shape
	stride []int
}

// New creates a tensor from a flat data buffer and a shape.
// The buffer length must equal the product of the shape dimensions.
func New(data []float64, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.NumElements() {
		return nil, errors.Wrapf(ErrShapeMismatch, "New: %d elements for shape %v (want %d)",
			len(data), shape, shape.NumElements())
	}

	buf := make([]float64, len(data))
	copy(buf, data)
	return &Tensor{
		data:   buf,
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}, nil
}

// newDense allocates a tensor for an already-validated shape.
func newDense(shape Shape) *Tensor {
	if err := shape.Validate(); err != nil {
		panic(err)
	}
	return &Tensor{
		data:   make([]float64, shape.NumElements()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// Strides returns the tensor's memory strides.
func (t *Tensor) Strides() []int {
	return t.stride
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.shape.NumElements()
}

// Data returns the flat data buffer.
// The slice is shared with the tensor; callers must treat it as read-only.
func (t *Tensor) Data() []float64 {
	return t.data
}

// Clone returns a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	out := newDense(t.shape)
	copy(out.data, t.data)
	return out
}

// Equal reports exact equality of shape and data.
// Comparison is bitwise-exact floating point, with no epsilon tolerance.
func (t *Tensor) Equal(other *Tensor) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	for i := range t.data {
		if t.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// Index slices the tensor at a prefix of coordinates.
//
// If len(indices) equals the rank, the result is a shape-[1] tensor holding
// the addressed element. A shorter prefix yields the sub-tensor over the
// trailing dimensions. Every coordinate is bounds-checked.
//
// Example:
//
//	t, _ := tensor.New([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	row, _ := t.Index(1)    // shape [3]: [4 5 6]
//	el, _ := t.Index(1, 2)  // shape [1]: [6]
func (t *Tensor) Index(indices ...int) (*Tensor, error) {
	if len(indices) > len(t.shape) {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "Index: %d coordinates for rank-%d tensor",
			len(indices), len(t.shape))
	}

	pos := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			return nil, errors.Wrapf(ErrIndexOutOfRange, "Index: coordinate %d is %d (dimension size %d)",
				i, idx, t.shape[i])
		}
		pos += idx * t.stride[i]
	}

	if len(indices) == len(t.shape) {
		return New([]float64{t.data[pos]}, Shape{1})
	}

	rest := t.shape[len(indices):].Clone()
	out := newDense(rest)
	copy(out.data, t.data[pos:pos+rest.NumElements()])
	return out, nil
}

// Element returns the value of a tensor holding exactly one element.
func (t *Tensor) Element() (float64, error) {
	if len(t.data) != 1 {
		return 0, errors.Wrapf(ErrEmptyReduction, "Element: tensor has %d elements", len(t.data))
	}
	return t.data[0], nil
}

// Reshape returns a tensor sharing the same values under a new shape.
// The new shape must describe the same number of elements; strides are
// recomputed for the new shape.
func (t *Tensor) Reshape(shape ...int) (*Tensor, error) {
	newShape := Shape(shape)
	if err := newShape.Validate(); err != nil {
		return nil, err
	}
	if newShape.NumElements() != t.NumElements() {
		return nil, errors.Wrapf(ErrShapeMismatch, "Reshape: %v has %d elements, %v has %d",
			t.shape, t.NumElements(), newShape, newShape.NumElements())
	}
	return New(t.data, newShape)
}
