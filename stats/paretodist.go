// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// ParetoDist is a Pareto (type I) distribution with scale Xm, which
// is also its minimum value, and shape Alpha.
//
// The mean is infinite if Alpha <= 1 and the variance is infinite if
// Alpha <= 2. Mode and the numerical algorithms fall back to the
// median in that case.
type ParetoDist struct {
	Xm, Alpha float64
	Src       rand.Source
}

func (p ParetoDist) dist() distuv.Pareto {
	return distuv.Pareto{Xm: p.Xm, Alpha: p.Alpha, Src: p.Src}
}

func (p ParetoDist) PDF(x float64) float64 {
	return p.dist().Prob(x)
}

func (p ParetoDist) LogProb(x float64) float64 {
	return p.dist().LogProb(x)
}

func (p ParetoDist) CDF(x float64) float64 {
	return p.dist().CDF(x)
}

func (p ParetoDist) Survival(x float64) float64 {
	return p.dist().Survival(x)
}

func (p ParetoDist) Support() Support {
	return Support{p.Xm, inf}
}

func (p ParetoDist) Rand() float64 {
	return p.dist().Rand()
}

func (p ParetoDist) Quantile(prob float64) float64 {
	if !checkProb(prob) {
		return nan
	}
	return p.dist().Quantile(prob)
}

func (p ParetoDist) Mean() float64 {
	return p.dist().Mean()
}

func (p ParetoDist) Median() float64 {
	return p.dist().Median()
}

func (p ParetoDist) Mode() float64 {
	return p.Xm
}

func (p ParetoDist) Variance() float64 {
	return p.dist().Variance()
}
