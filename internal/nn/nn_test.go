package nn

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steep-ml/steep/internal/autodiff"
)

func scalar(t *testing.T, n *autodiff.Node) float64 {
	t.Helper()
	v, err := n.Value().Element()
	require.NoError(t, err)
	return v
}

func scalarGrad(t *testing.T, n *autodiff.Node) float64 {
	t.Helper()
	g, err := n.Grad().Element()
	require.NoError(t, err)
	return g
}

func TestNeuronForward(t *testing.T) {
	neuron := &Neuron{
		weights: []*autodiff.Node{autodiff.Scalar(2), autodiff.Scalar(-1)},
		bias:    autodiff.Scalar(0.5),
	}
	inputs := []*autodiff.Node{autodiff.Scalar(3), autodiff.Scalar(4)}

	out, err := neuron.Forward(inputs)
	require.NoError(t, err)
	assert.Equal(t, 0.5+2*3-1*4, scalar(t, out))

	require.NoError(t, autodiff.Backward(out))
	assert.Equal(t, 3.0, scalarGrad(t, neuron.weights[0]))
	assert.Equal(t, 4.0, scalarGrad(t, neuron.weights[1]))
	assert.Equal(t, 1.0, scalarGrad(t, neuron.bias))
	assert.Equal(t, 2.0, scalarGrad(t, inputs[0]))
	assert.Equal(t, -1.0, scalarGrad(t, inputs[1]))
}

func TestNeuronForwardArity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	neuron := NewNeuron(3, rng)

	_, err := neuron.Forward([]*autodiff.Node{autodiff.Scalar(1)})
	require.Error(t, err)
}

func TestNeuronInit(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	neuron := NewNeuron(5, rng)

	require.Len(t, neuron.Parameters(), 6)
	for _, w := range neuron.weights {
		v := scalar(t, w)
		assert.GreaterOrEqual(t, v, -1.0)
		assert.Less(t, v, 1.0)
	}
	assert.Equal(t, 0.0, scalar(t, neuron.bias))
}

func TestLayerForward(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	layer := NewLayer(2, 4, rng)

	outputs, err := layer.Forward([]*autodiff.Node{autodiff.Scalar(1), autodiff.Scalar(-1)})
	require.NoError(t, err)
	assert.Len(t, outputs, 4)
}

func TestLayerNeuronsAreIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	layer := NewLayer(1, 2, rng)

	// Distinct neurons must not share weight nodes.
	assert.NotSame(t, layer.neurons[0].weights[0], layer.neurons[1].weights[0])
}

func TestMLPParameterCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	mlp, err := NewMLP([]int{3, 4, 4, 1}, rng)
	require.NoError(t, err)

	// (3+1)*4 + (4+1)*4 + (4+1)*1
	assert.Len(t, mlp.Parameters(), 41)
}

func TestMLPSizes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := NewMLP([]int{3}, rng)
	require.Error(t, err)
	_, err = NewMLP(nil, rng)
	require.Error(t, err)
}

func TestMLPForward(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	mlp, err := NewMLP([]int{2, 3, 1}, rng)
	require.NoError(t, err)

	outputs, err := mlp.Forward([]*autodiff.Node{autodiff.Scalar(0.5), autodiff.Scalar(-0.25)})
	require.NoError(t, err)
	assert.Len(t, outputs, 1)
}

func TestSquaredErrorLoss(t *testing.T) {
	targets := []*autodiff.Node{autodiff.Scalar(1), autodiff.Scalar(-1)}
	preds := []*autodiff.Node{autodiff.Scalar(0.5), autodiff.Scalar(-0.5)}

	loss, err := SquaredErrorLoss(targets, preds)
	require.NoError(t, err)
	assert.Equal(t, 0.5, scalar(t, loss))

	require.NoError(t, autodiff.Backward(loss))
	// d/dp (t-p)^2 = -2(t-p)
	assert.InDelta(t, -1.0, scalarGrad(t, preds[0]), 1e-12)
	assert.InDelta(t, 1.0, scalarGrad(t, preds[1]), 1e-12)

	_, err = SquaredErrorLoss(targets, preds[:1])
	require.Error(t, err)
}
