package tensor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Format renders the tensor for display.
//
// Rank-1 tensors render as a single bracketed row, rank-2 tensors as one
// bracketed row per line. Higher ranks are not displayable.
func (t *Tensor) Format() (string, error) {
	if len(t.shape) > 2 {
		return "", errors.Wrapf(ErrRankUnsupported, "Format: only 1D and 2D tensors are supported, got %v", t.shape)
	}

	var sb strings.Builder
	if len(t.shape) == 1 {
		writeRow(&sb, t.data)
		return sb.String(), nil
	}

	cols := t.shape[1]
	for i := 0; i < t.shape[0]; i++ {
		writeRow(&sb, t.data[i*cols:(i+1)*cols])
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

func writeRow(sb *strings.Builder, row []float64) {
	sb.WriteByte('[')
	for _, v := range row {
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		sb.WriteByte(' ')
	}
	sb.WriteByte(']')
}

// String implements fmt.Stringer. Tensors above rank 2 render as a
// shape-only placeholder; use Format to surface the error.
func (t *Tensor) String() string {
	s, err := t.Format()
	if err != nil {
		return fmt.Sprintf("Tensor(shape=%v)", t.shape)
	}
	return s
}
