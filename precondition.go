// Copyright ©2026 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package otter

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ppiOffset is the uniform shift added to every element of the rescaled
// PPI matrix, in units of (1-λ).
const ppiOffset = 0.0013

// Problem is a preconditioned OTTER problem. P and C are the trace-normalised
// interaction and coexpression matrices with the ridge penalty folded into
// the diagonal of P, and W is the unit Frobenius norm starting point.
type Problem struct {
	W, P, C *mat.Dense
}

// Precondition performs the setup phase of Solve on copies of W, P and C
// using the Lambda and Gamma fields of c.
func Precondition(W, P, C mat.Matrix, c Config) Problem {
	p := mat.DenseCopyOf(P)
	scale := -(1 - c.Lambda) / mat.Trace(p)
	shift := (1 - c.Lambda) * ppiOffset
	p.Apply(func(_, _ int, v float64) float64 {
		return v*scale + shift
	}, p)

	q := mat.DenseCopyOf(C)
	q.Scale(-c.Lambda/mat.Trace(q), q)

	var w mat.Dense
	w.Mul(p, W)
	// sqrt(trace(W Wᵀ)) over the contiguous backing data. A zero norm
	// is left to produce NaN.
	raw := w.RawMatrix().Data
	w.Scale(1/math.Sqrt(floats.Dot(raw, raw)), &w)

	n, _ := p.Dims()
	for i := 0; i < n; i++ {
		p.Set(i, i, p.At(i, i)+c.Gamma)
	}

	return Problem{W: &w, P: p, C: q}
}
