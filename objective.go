// Copyright ©2026 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package otter

import "gonum.org/v1/gonum/mat"

// Objective returns the value of the function minimised by Solve,
//
//	¼‖WᵀW‖² + ½ tr(WᵀPW) + ½ tr(WCWᵀ),
//
// for preconditioned P and C as held by a Problem. For symmetric P and C
// its gradient is the one computed by Gradient.
func Objective(W, P, C mat.Matrix) float64 {
	var wwT mat.Dense
	wwT.Mul(W, W.T())
	quartic := mat.Norm(&wwT, 2)

	var pw, wc mat.Dense
	pw.Mul(P, W)
	wc.Mul(W, C)
	pw.Add(&pw, &wc)
	pw.MulElem(&pw, W)

	return 0.25*quartic*quartic + 0.5*mat.Sum(&pw)
}

// Gradient places W Wᵀ W + P W + W C into dst. The ridge term is expected
// to already be folded into the diagonal of P. dst must not alias W.
func Gradient(dst *mat.Dense, W, P, C mat.Matrix) {
	var wwT mat.Dense
	wwT.Mul(W, W.T())
	wwT.Add(&wwT, P)
	dst.Mul(&wwT, W)

	var wc mat.Dense
	wc.Mul(W, C)
	dst.Add(dst, &wc)
}
