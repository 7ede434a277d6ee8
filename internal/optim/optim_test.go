package optim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steep-ml/steep/internal/autodiff"
	"github.com/steep-ml/steep/internal/nn"
	"github.com/steep-ml/steep/internal/tensor"
)

func scalar(t *testing.T, n *autodiff.Node) float64 {
	t.Helper()
	v, err := n.Value().Element()
	require.NoError(t, err)
	return v
}

func TestSGDStep(t *testing.T) {
	a := autodiff.Scalar(2.0)
	y, err := autodiff.Mul(a, a)
	require.NoError(t, err)
	require.NoError(t, autodiff.Backward(y)) // da = 2a = 4

	sgd := NewSGD([]*autodiff.Node{a}, Config{LR: 0.1})
	require.NoError(t, sgd.Step())

	assert.InDelta(t, 2.0-0.1*4.0, scalar(t, a), 1e-12)
}

func TestSGDDefaultLR(t *testing.T) {
	sgd := NewSGD(nil, Config{})
	assert.Equal(t, 0.01, sgd.lr)
}

func TestSGDMomentum(t *testing.T) {
	a := autodiff.Scalar(1.0)
	c := autodiff.Scalar(3.0)
	y, err := autodiff.Mul(a, c)
	require.NoError(t, err)

	sgd := NewSGD([]*autodiff.Node{a}, Config{LR: 0.1, Momentum: 0.5})

	// Gradient of a is the constant 3 on every pass.
	require.NoError(t, autodiff.Backward(y))
	require.NoError(t, sgd.Step()) // v = 3, a = 1 - 0.3
	assert.InDelta(t, 0.7, scalar(t, a), 1e-12)

	autodiff.ZeroAllGrads(y)
	require.NoError(t, autodiff.Backward(y))
	require.NoError(t, sgd.Step()) // v = 0.5*3 + 3 = 4.5, a = 0.7 - 0.45
	assert.InDelta(t, 0.25, scalar(t, a), 1e-12)
}

func TestSGDZeroGrad(t *testing.T) {
	a := autodiff.Scalar(2.0)
	y, err := autodiff.Mul(a, a)
	require.NoError(t, err)
	require.NoError(t, autodiff.Backward(y))

	sgd := NewSGD([]*autodiff.Node{a}, Config{LR: 0.1})
	sgd.ZeroGrad()

	assert.True(t, a.Grad().Equal(tensor.Zeros(tensor.Shape{1})))
}

// End-to-end: a single neuron fits two points exactly.
func TestSGDTrainsNeuron(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	mlp, err := nn.NewMLP([]int{1, 1}, rng)
	require.NoError(t, err)

	xs := [][]*autodiff.Node{
		{autodiff.Scalar(0)},
		{autodiff.Scalar(1)},
	}
	ys := []*autodiff.Node{autodiff.Scalar(1), autodiff.Scalar(-1)}

	sgd := NewSGD(mlp.Parameters(), Config{LR: 0.1})

	var loss *autodiff.Node
	for epoch := 0; epoch < 200; epoch++ {
		preds := make([]*autodiff.Node, len(xs))
		for i, x := range xs {
			out, err := mlp.Forward(x)
			require.NoError(t, err)
			preds[i] = out[0]
		}

		loss, err = nn.SquaredErrorLoss(ys, preds)
		require.NoError(t, err)

		autodiff.ZeroAllGrads(loss)
		require.NoError(t, autodiff.Backward(loss))
		require.NoError(t, sgd.Step())
	}

	assert.Less(t, scalar(t, loss), 1e-3)
}
