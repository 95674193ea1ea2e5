// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type NormalDist struct {
	Mu, Sigma float64

	// Src is the source of random variates. If nil, the global
	// source is used.
	Src rand.Source
}

// StdNormal is the standard normal distribution.
var StdNormal = NormalDist{Mu: 0, Sigma: 1}

func (n NormalDist) dist() distuv.Normal {
	return distuv.Normal{Mu: n.Mu, Sigma: n.Sigma, Src: n.Src}
}

func (n NormalDist) PDF(x float64) float64 {
	return n.dist().Prob(x)
}

func (n NormalDist) LogProb(x float64) float64 {
	return n.dist().LogProb(x)
}

func (n NormalDist) CDF(x float64) float64 {
	return n.dist().CDF(x)
}

// Survival is computed from erfc rather than 1-erf so it keeps its
// precision in the upper tail.
func (n NormalDist) Survival(x float64) float64 {
	return 0.5 * math.Erfc((x-n.Mu)/(n.Sigma*math.Sqrt2))
}

func (n NormalDist) Support() Support {
	return realLine
}

func (n NormalDist) Rand() float64 {
	return n.dist().Rand()
}

// Quantile returns the inverse of the CDF, or NaN if p is outside
// [0, 1].
func (n NormalDist) Quantile(p float64) float64 {
	if !checkProb(p) {
		return nan
	}
	return n.dist().Quantile(p)
}

func (n NormalDist) Mean() float64 {
	return n.Mu
}

func (n NormalDist) Median() float64 {
	return n.Mu
}

func (n NormalDist) Mode() float64 {
	return n.Mu
}

func (n NormalDist) Variance() float64 {
	return n.Sigma * n.Sigma
}
