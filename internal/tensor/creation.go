package tensor

import "math/rand"

// Zeros creates a tensor filled with zeros.
// Panics on an invalid shape; use New for validated construction.
func Zeros(shape Shape) *Tensor {
	return newDense(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *Tensor {
	return Full(shape, 1)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64) *Tensor {
	t := newDense(shape)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// Rand creates a tensor filled with uniform random values from [0, 1).
// The values carry no derivative semantics; rng may not be nil.
func Rand(shape Shape, rng *rand.Rand) *Tensor {
	t := newDense(shape)
	for i := range t.data {
		t.data[i] = rng.Float64()
	}
	return t
}

// Single creates a shape-[1] tensor holding one scalar.
func Single(value float64) *Tensor {
	t := newDense(Shape{1})
	t.data[0] = value
	return t
}
