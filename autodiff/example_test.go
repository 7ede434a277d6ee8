// Copyright 2025 The Steep Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff_test

import (
	"fmt"

	"github.com/steep-ml/steep/autodiff"
)

func ExampleBackward() {
	a := autodiff.Scalar(2)
	b := autodiff.Scalar(-3)
	y, _ := autodiff.Mul(a, b)
	_ = autodiff.Backward(y)

	fmt.Println(a.Grad())
	fmt.Println(b.Grad())
	// Output:
	// [-3 ]
	// [2 ]
}
