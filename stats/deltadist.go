// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// DeltaDist is the Dirac delta function, centered at T, with total
// area 1.
//
// The CDF of the Dirac delta function is the Heaviside step function,
// centered at T. Specifically, f(T) == 1.
type DeltaDist struct {
	T float64
}

func (d DeltaDist) PDF(x float64) float64 {
	if x == d.T {
		return inf
	}
	return 0
}

func (d DeltaDist) CDF(x float64) float64 {
	if x >= d.T {
		return 1
	}
	return 0
}

func (d DeltaDist) Support() Support {
	return Support{d.T, d.T}
}

func (d DeltaDist) Rand() float64 {
	return d.T
}

func (d DeltaDist) Quantile(p float64) float64 {
	if !checkProb(p) {
		return nan
	}
	return d.T
}

func (d DeltaDist) Mean() float64 {
	return d.T
}
