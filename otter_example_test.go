// Copyright ©2026 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package otter_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/kortschak/otter"
)

func ExampleSolve() {
	// Two TFs and two genes with no interaction or coexpression structure.
	W := mat.NewDense(2, 2, []float64{1, 1, 1, 1})
	P := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	C := mat.NewDense(2, 2, []float64{1, 0, 0, 1})

	conf := otter.DefaultConfig()
	conf.Iter = 1

	start := otter.Precondition(W, P, C, conf)
	fmt.Printf("start =\n%.6f\n\n", mat.Formatted(start.W))

	net := otter.Solve(W, P, C, conf)
	fmt.Printf("W =\n%.6f\n", mat.Formatted(net))

	// Output:
	// start =
	// ⎡-0.500000  -0.500000⎤
	// ⎣-0.500000  -0.500000⎦
	//
	// W =
	// ⎡-0.499993  -0.499993⎤
	// ⎣-0.499993  -0.499993⎦
}
