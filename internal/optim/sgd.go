// Package optim implements gradient-descent parameter updates for graph
// leaves. Updates overwrite parameter values directly through SetValue and
// never create graph edges.
package optim

import (
	"github.com/steep-ml/steep/internal/autodiff"
	"github.com/steep-ml/steep/internal/tensor"
)

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * grad
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + grad
//	param = param - lr * velocity
type SGD struct {
	params     []*autodiff.Node
	lr         float64
	momentum   float64
	velocities map[*autodiff.Node]*tensor.Tensor
}

// Config holds SGD hyperparameters.
type Config struct {
	LR       float64 // learning rate (default 0.01)
	Momentum float64 // momentum factor (default 0, range [0, 1))
}

// NewSGD creates an optimizer over the given parameter leaves.
func NewSGD(params []*autodiff.Node, config Config) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*autodiff.Node]*tensor.Tensor),
	}
}

// Step applies one gradient-descent update to every parameter, reading the
// gradients a prior Backward call accumulated.
func (s *SGD) Step() error {
	for _, param := range s.params {
		step := param.Grad()

		if s.momentum > 0 {
			velocity, ok := s.velocities[param]
			if !ok {
				velocity = tensor.Zeros(param.Value().Shape())
			}
			scaled := velocity.MulScalar(s.momentum)
			next, err := scaled.Add(param.Grad())
			if err != nil {
				return err
			}
			s.velocities[param] = next
			step = next
		}

		updated, err := param.Value().Sub(step.MulScalar(s.lr))
		if err != nil {
			return err
		}
		if err := param.SetValue(updated); err != nil {
			return err
		}
	}
	return nil
}

// ZeroGrad resets every tracked parameter's gradient.
func (s *SGD) ZeroGrad() {
	for _, param := range s.params {
		param.ZeroGrad()
	}
}
