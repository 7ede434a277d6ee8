// Copyright 2025 The Steep Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand"

	"github.com/steep-ml/steep/internal/tensor"
)

// Type aliases for the public API.

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3} represents a 2D tensor with dimensions 2×3.
type Shape = tensor.Shape

// Tensor is a dense N-dimensional float64 array with row-major strides.
//
// Tensors are value types: operations return new instances and never mutate
// their operands. Elementwise operations require identical operand shapes.
//
// Example:
//
//	a, _ := tensor.New([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	b := tensor.Ones(tensor.Shape{2, 2})
//	c, _ := a.Add(b)
type Tensor = tensor.Tensor

// Structural errors, for use with errors.Is.
var (
	ErrShapeMismatch   = tensor.ErrShapeMismatch
	ErrRankUnsupported = tensor.ErrRankUnsupported
	ErrEmptyReduction  = tensor.ErrEmptyReduction
	ErrIndexOutOfRange = tensor.ErrIndexOutOfRange
)

// Creation functions.

// New creates a tensor from a flat data buffer and a shape.
// Fails with ErrShapeMismatch if the buffer length does not equal the
// product of the shape dimensions.
func New(data []float64, shape Shape) (*Tensor, error) {
	return tensor.New(data, shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *Tensor {
	return tensor.Zeros(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *Tensor {
	return tensor.Ones(shape)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64) *Tensor {
	return tensor.Full(shape, value)
}

// Rand creates a tensor filled with uniform random values from [0, 1).
func Rand(shape Shape, rng *rand.Rand) *Tensor {
	return tensor.Rand(shape, rng)
}

// Single creates a shape-[1] tensor holding one scalar.
func Single(value float64) *Tensor {
	return tensor.Single(value)
}
