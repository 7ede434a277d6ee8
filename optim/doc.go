// Copyright 2025 The Steep Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-descent optimizers for graph parameters.
//
// Optimizers read the gradients a prior autodiff.Backward call accumulated
// on parameter leaves and overwrite parameter values directly, outside the
// graph. The differentiable core supplies no optimizer of its own; this
// package is the external update path the engine's contract expects.
package optim
