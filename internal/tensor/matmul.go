package tensor

import "github.com/pkg/errors"

// MatMul performs 2D matrix multiplication.
//
// Both operands must be rank-2 and the inner dimensions must agree:
// (M, K) @ (K, N) -> (M, N). Accumulation is naive float64 summation.
func (t *Tensor) MatMul(other *Tensor) (*Tensor, error) {
	if len(t.shape) != 2 || len(other.shape) != 2 {
		return nil, errors.Wrapf(ErrRankUnsupported, "MatMul: requires rank-2 operands, got %v and %v",
			t.shape, other.shape)
	}
	if t.shape[1] != other.shape[0] {
		return nil, errors.Wrapf(ErrShapeMismatch, "MatMul: inner dimensions %v vs %v", t.shape, other.shape)
	}

	m, k, n := t.shape[0], t.shape[1], other.shape[1]
	out := newDense(Shape{m, n})
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for p := 0; p < k; p++ {
				sum += t.data[i*k+p] * other.data[p*n+j]
			}
			out.data[i*n+j] = sum
		}
	}
	return out, nil
}

// T returns the 2D transpose: axes swapped and data permuted accordingly.
func (t *Tensor) T() (*Tensor, error) {
	if len(t.shape) != 2 {
		return nil, errors.Wrapf(ErrRankUnsupported, "T: requires a rank-2 tensor, got %v", t.shape)
	}

	rows, cols := t.shape[0], t.shape[1]
	out := newDense(Shape{cols, rows})
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.data[j*rows+i] = t.data[i*cols+j]
		}
	}
	return out, nil
}
