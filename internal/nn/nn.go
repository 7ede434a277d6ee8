// Package nn builds scalar-weight neural networks on top of the autodiff
// graph. Every weight, bias and input is a leaf node; forward passes compose
// only the core graph operations, so gradients flow to all parameters
// through a single Backward call on the loss.
package nn

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/steep-ml/steep/internal/autodiff"
	"github.com/steep-ml/steep/internal/tensor"
)

// Module is the base interface for network components: anything that
// exposes its trainable leaves for an optimizer to update.
type Module interface {
	Parameters() []*autodiff.Node
}

// Neuron maps N scalar inputs to one scalar output: a weighted sum of the
// inputs plus a bias. Weights start uniform in [-1, 1), the bias at zero.
type Neuron struct {
	weights []*autodiff.Node
	bias    *autodiff.Node
}

// NewNeuron creates a neuron for numInputs scalar inputs.
// rng drives weight initialization and may not be nil.
func NewNeuron(numInputs int, rng *rand.Rand) *Neuron {
	weights := make([]*autodiff.Node, numInputs)
	for i := range weights {
		weights[i] = autodiff.Scalar(rng.Float64()*2 - 1)
	}
	return &Neuron{
		weights: weights,
		bias:    autodiff.Scalar(0),
	}
}

// Forward computes bias + Σ inputs[i] * weights[i].
func (n *Neuron) Forward(inputs []*autodiff.Node) (*autodiff.Node, error) {
	if len(inputs) != len(n.weights) {
		return nil, errors.Wrapf(tensor.ErrShapeMismatch, "Neuron.Forward: %d inputs for %d weights",
			len(inputs), len(n.weights))
	}

	sum := n.bias
	for i, input := range inputs {
		prod, err := autodiff.Mul(input, n.weights[i])
		if err != nil {
			return nil, err
		}
		sum, err = autodiff.Add(sum, prod)
		if err != nil {
			return nil, err
		}
	}
	return sum, nil
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*autodiff.Node {
	params := make([]*autodiff.Node, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// Layer maps N scalar inputs to M scalar outputs by feeding the inputs to
// each of its M independently initialized neurons.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a fully connected layer.
func NewLayer(numInputs, numOutputs int, rng *rand.Rand) *Layer {
	neurons := make([]*Neuron, numOutputs)
	for i := range neurons {
		neurons[i] = NewNeuron(numInputs, rng)
	}
	return &Layer{neurons: neurons}
}

// Forward computes every neuron's output for the same inputs.
func (l *Layer) Forward(inputs []*autodiff.Node) ([]*autodiff.Node, error) {
	outputs := make([]*autodiff.Node, len(l.neurons))
	for i, neuron := range l.neurons {
		out, err := neuron.Forward(inputs)
		if err != nil {
			return nil, err
		}
		outputs[i] = out
	}
	return outputs, nil
}

// Parameters returns every neuron's parameters in declaration order.
func (l *Layer) Parameters() []*autodiff.Node {
	var params []*autodiff.Node
	for _, neuron := range l.neurons {
		params = append(params, neuron.Parameters()...)
	}
	return params
}

// MLP is a multilayer perceptron: consecutive fully connected layers, the
// output of each feeding the next.
type MLP struct {
	layers []*Layer
}

// NewMLP creates a perceptron from consecutive layer sizes.
// sizes lists the input width followed by each layer's output width, so it
// needs at least two entries.
func NewMLP(sizes []int, rng *rand.Rand) (*MLP, error) {
	if len(sizes) < 2 {
		return nil, errors.Errorf("NewMLP: need at least input and output sizes, got %v", sizes)
	}

	layers := make([]*Layer, len(sizes)-1)
	for i := range layers {
		layers[i] = NewLayer(sizes[i], sizes[i+1], rng)
	}
	return &MLP{layers: layers}, nil
}

// Forward feeds the inputs through each layer in turn.
func (m *MLP) Forward(inputs []*autodiff.Node) ([]*autodiff.Node, error) {
	outputs := inputs
	for _, layer := range m.layers {
		var err error
		outputs, err = layer.Forward(outputs)
		if err != nil {
			return nil, err
		}
	}
	return outputs, nil
}

// Parameters returns every layer's parameters in declaration order.
func (m *MLP) Parameters() []*autodiff.Node {
	var params []*autodiff.Node
	for _, layer := range m.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}
