package nn

import (
	"github.com/pkg/errors"

	"github.com/steep-ml/steep/internal/autodiff"
)

// SquaredErrorLoss computes Σ (targets[i] - predictions[i])² as a graph
// node, so a Backward call on it reaches every parameter that produced the
// predictions.
func SquaredErrorLoss(targets, predictions []*autodiff.Node) (*autodiff.Node, error) {
	if len(targets) != len(predictions) {
		return nil, errors.Errorf("SquaredErrorLoss: %d targets vs %d predictions",
			len(targets), len(predictions))
	}

	loss := autodiff.Scalar(0)
	for i := range targets {
		diff, err := autodiff.Sub(targets[i], predictions[i])
		if err != nil {
			return nil, err
		}
		sq, err := autodiff.Pow(diff, 2)
		if err != nil {
			return nil, err
		}
		loss, err = autodiff.Add(loss, sq)
		if err != nil {
			return nil, err
		}
	}
	return loss, nil
}
