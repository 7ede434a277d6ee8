// Copyright 2025 The Steep Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides scalar-weight neural network building blocks over the
// autodiff graph.
//
// Every weight, bias and input is a graph leaf; forward passes compose only
// core autodiff operations, so a single Backward call on a loss node
// reaches every parameter. The training contract is the caller's:
// ZeroAllGrads before each Backward, then read parameter gradients and
// update values through an optimizer.
//
// Example:
//
//	rng := rand.New(rand.NewSource(1))
//	mlp, _ := nn.NewMLP([]int{3, 4, 4, 1}, rng)
//	out, _ := mlp.Forward(inputs)
//	loss, _ := nn.SquaredErrorLoss(targets, out)
//	autodiff.ZeroAllGrads(loss)
//	_ = autodiff.Backward(loss)
package nn

import (
	"math/rand"

	"github.com/steep-ml/steep/autodiff"
	"github.com/steep-ml/steep/internal/nn"
)

// Module is the base interface for network components.
type Module = nn.Module

// Neuron maps N scalar inputs to one scalar output.
type Neuron = nn.Neuron

// Layer maps N scalar inputs to M scalar outputs.
type Layer = nn.Layer

// MLP is a multilayer perceptron of fully connected layers.
type MLP = nn.MLP

// NewNeuron creates a neuron for numInputs scalar inputs.
func NewNeuron(numInputs int, rng *rand.Rand) *Neuron {
	return nn.NewNeuron(numInputs, rng)
}

// NewLayer creates a fully connected layer.
func NewLayer(numInputs, numOutputs int, rng *rand.Rand) *Layer {
	return nn.NewLayer(numInputs, numOutputs, rng)
}

// NewMLP creates a perceptron from consecutive layer sizes.
func NewMLP(sizes []int, rng *rand.Rand) (*MLP, error) {
	return nn.NewMLP(sizes, rng)
}

// SquaredErrorLoss computes Σ (targets[i] - predictions[i])² as a graph node.
func SquaredErrorLoss(targets, predictions []*autodiff.Node) (*autodiff.Node, error) {
	return nn.SquaredErrorLoss(targets, predictions)
}
