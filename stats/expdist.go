// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// ExponentialDist is an exponential distribution with the given Rate,
// the inverse of its mean.
type ExponentialDist struct {
	Rate float64
	Src  rand.Source
}

func (e ExponentialDist) dist() distuv.Exponential {
	return distuv.Exponential{Rate: e.Rate, Src: e.Src}
}

func (e ExponentialDist) PDF(x float64) float64 {
	return e.dist().Prob(x)
}

func (e ExponentialDist) LogProb(x float64) float64 {
	return e.dist().LogProb(x)
}

func (e ExponentialDist) CDF(x float64) float64 {
	return e.dist().CDF(x)
}

func (e ExponentialDist) Survival(x float64) float64 {
	return e.dist().Survival(x)
}

func (e ExponentialDist) Support() Support {
	return Support{0, inf}
}

func (e ExponentialDist) Rand() float64 {
	return e.dist().Rand()
}

func (e ExponentialDist) Quantile(p float64) float64 {
	if !checkProb(p) {
		return nan
	}
	return e.dist().Quantile(p)
}

func (e ExponentialDist) Mean() float64 {
	return 1 / e.Rate
}

func (e ExponentialDist) Median() float64 {
	return math.Ln2 / e.Rate
}

func (e ExponentialDist) Mode() float64 {
	return 0
}

func (e ExponentialDist) Variance() float64 {
	return 1 / (e.Rate * e.Rate)
}
