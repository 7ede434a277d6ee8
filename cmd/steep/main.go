// Command steep trains a small multilayer perceptron with the steep
// autodiff engine and reports the fitted predictions.
//
// The dataset is a four-sample, three-feature regression with ±1 targets.
// Per-epoch loss is available at -v=1.
package main

import (
	"flag"
	"fmt"
	"math/rand"

	"github.com/janpfeifer/must"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"

	"github.com/steep-ml/steep/autodiff"
	"github.com/steep-ml/steep/nn"
	"github.com/steep-ml/steep/optim"
)

var (
	flagEpochs = flag.Int("epochs", 10000, "maximum number of training epochs")
	flagLR     = flag.Float64("lr", 1e-4, "learning rate")
	flagTarget = flag.Float64("target_loss", 1e-9, "stop once the loss falls below this")
	flagSeed   = flag.Int64("seed", 42, "random seed for parameter initialization")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	rawXs := [][]float64{
		{2, 3, -1},
		{3, -1, 0.5},
		{0.5, 1, 1},
		{1, 1, -1},
	}
	rawYs := []float64{1, -1, -1, 1}

	xs := make([][]*autodiff.Node, len(rawXs))
	for i, row := range rawXs {
		xs[i] = make([]*autodiff.Node, len(row))
		for j, v := range row {
			xs[i][j] = autodiff.Scalar(v)
		}
	}
	ys := make([]*autodiff.Node, len(rawYs))
	for i, v := range rawYs {
		ys[i] = autodiff.Scalar(v)
	}

	rng := rand.New(rand.NewSource(*flagSeed))
	mlp := must.M1(nn.NewMLP([]int{3, 4, 4, 1}, rng))
	sgd := optim.NewSGD(mlp.Parameters(), optim.Config{LR: *flagLR})

	bar := progressbar.Default(int64(*flagEpochs), "training")
	var loss *autodiff.Node
	for epoch := 0; epoch < *flagEpochs; epoch++ {
		preds := make([]*autodiff.Node, len(xs))
		for i, x := range xs {
			preds[i] = must.M1(mlp.Forward(x))[0]
		}
		loss = must.M1(nn.SquaredErrorLoss(ys, preds))

		lossValue := must.M1(loss.Value().Element())
		klog.V(1).Infof("epoch %d: loss=%.12f", epoch, lossValue)
		if lossValue < *flagTarget {
			klog.Infof("reached target loss %g after %d epochs", *flagTarget, epoch)
			break
		}

		autodiff.ZeroAllGrads(loss)
		must.M(autodiff.Backward(loss))
		must.M(sgd.Step())
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	if loss == nil {
		return
	}
	fmt.Printf("final loss: %.12f\n", must.M1(loss.Value().Element()))
	for i, x := range xs {
		pred := must.M1(mlp.Forward(x))[0]
		fmt.Printf("input %v -> predicted %+.4f (target %+g)\n",
			rawXs[i], must.M1(pred.Value().Element()), rawYs[i])
	}
}
