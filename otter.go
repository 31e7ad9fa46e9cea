// Copyright ©2026 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package otter is an implementation of OTTER gene regulatory network inference
// by joint factorisation of TF motif, TF-TF protein interaction and gene
// coexpression matrices using adaptive moment gradient descent.
//
// The solver minimises
//
//	f(W) = (1-λ)/4 ‖WWᵀ - P‖² + λ/4 ‖WᵀW - C‖² + γ/2 ‖W‖²
//
// over the TF-by-gene matrix W. The method is described in:
//
// Weighill D, Ben Guebila M, Glass K, Quackenbush J, Platig J (2021)
// 'Gene Regulatory Network Inference as Relaxed Graph Matching.'
// Proceedings of the AAAI Conference on Artificial Intelligence 35:10263.
package otter

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	beta1 = 0.9
	beta2 = 0.999
	eps   = 1e-8
)

// Config determines the behaviour of a Solve call. The zero values of
// Lambda and Iter are meaningful, so callers should start from DefaultConfig.
type Config struct {
	// Lambda weights the coexpression term against the PPI term.
	// It should be in [0, 1] but is not checked.
	Lambda float64

	// Gamma is the ridge penalty strength.
	Gamma float64

	// Iter is the number of optimisation steps performed.
	Iter int

	// Eta is the base learning rate.
	Eta float64

	// BiasExp is the number of decay steps the moment bias correction
	// starts from.
	BiasExp float64
}

// DefaultConfig returns the default solver configuration.
func DefaultConfig() Config {
	return Config{
		Lambda:  0.0035,
		Gamma:   0.335,
		Iter:    300,
		Eta:     1e-5,
		BiasExp: 1,
	}
}

// Solve returns the TF-gene regulatory network inferred from the motif prior W,
// the TF-TF interaction matrix P and the gene coexpression matrix C. W must be
// t×g, P t×t and C g×g.
//
// The arguments are not modified. Solve panics with mat.ErrShape or
// mat.ErrSquare if the dimensions are inconsistent. Degenerate input, such as
// a zero trace or a W that projects to zero through P, results in NaN or Inf
// values in the returned matrix rather than a panic.
func Solve(W, P, C mat.Matrix, c Config) *mat.Dense {
	prob := Precondition(W, P, C, c)
	w := prob.W

	r, cols := w.Dims()
	var (
		m    = mat.NewDense(r, cols, nil)
		v    = mat.NewDense(r, cols, nil)
		grad = mat.NewDense(r, cols, nil)

		b1t = math.Pow(beta1, c.BiasExp)
		b2t = math.Pow(beta2, c.BiasExp)
	)
	gData := grad.RawMatrix().Data
	mData := m.RawMatrix().Data
	vData := v.RawMatrix().Data

	for i := 0; i < c.Iter; i++ {
		Gradient(grad, w, prob.P, prob.C)

		// The first moment is a plain accumulation with no decay.
		for k, g := range gData {
			mData[k] += 4 * (1 - beta1) * g
			vData[k] = beta2*vData[k] + 16*(1-beta2)*g*g
		}

		b1t *= beta1
		b2t *= beta2
		alpha := c.Eta * math.Sqrt(1-b2t) / (1-b1t)
		epst := eps * math.Sqrt(1-b2t)

		w.Apply(func(r, c int, x float64) float64 {
			return x - alpha*(m.At(r, c)/(epst+math.Sqrt(v.At(r, c))))
		}, w)
	}

	return w
}
