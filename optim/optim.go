// Copyright 2025 The Steep Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/steep-ml/steep/autodiff"
	"github.com/steep-ml/steep/internal/optim"
)

// SGD implements stochastic gradient descent with optional momentum.
type SGD = optim.SGD

// Config holds SGD hyperparameters.
type Config = optim.Config

// NewSGD creates an optimizer over the given parameter leaves.
//
// Example:
//
//	sgd := optim.NewSGD(mlp.Parameters(), optim.Config{LR: 0.01})
//	for epoch := 0; epoch < epochs; epoch++ {
//	    loss := forwardPass()
//	    sgd.ZeroGrad()
//	    _ = autodiff.Backward(loss)
//	    _ = sgd.Step()
//	}
func NewSGD(params []*autodiff.Node, config Config) *SGD {
	return optim.NewSGD(params, config)
}
