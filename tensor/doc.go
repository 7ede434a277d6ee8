// Copyright 2025 The Steep Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for dense float64 tensors.
//
// A Tensor couples a flat row-major data buffer with a Shape; strides are
// derived from the shape and recomputed on reshape. The package supports:
//   - Elementwise arithmetic between equal-shaped tensors, and the same
//     operators against a scalar right-hand side
//   - 2D matrix multiplication and transposition
//   - Reduction (Sum), activation (ReLU), elementwise power
//   - Prefix indexing with bounds checking
//
// There is no implicit broadcasting: elementwise operands must already have
// identical shapes, and mismatches fail with ErrShapeMismatch. Numeric edge
// cases follow IEEE-754 (NaN and Inf propagate rather than erroring).
//
// Example:
//
//	a, _ := tensor.New([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	b, _ := tensor.New([]float64{5, 6, 7, 8}, tensor.Shape{2, 2})
//	c, _ := a.MatMul(b) // [[19 22] [43 50]]
package tensor
