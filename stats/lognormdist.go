// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// LogNormalDist is a log-normal distribution: the logarithm of a
// variate is normally distributed with mean Mu and standard deviation
// Sigma.
type LogNormalDist struct {
	Mu, Sigma float64
	Src       rand.Source
}

func (l LogNormalDist) dist() distuv.LogNormal {
	return distuv.LogNormal{Mu: l.Mu, Sigma: l.Sigma, Src: l.Src}
}

func (l LogNormalDist) PDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return l.dist().Prob(x)
}

func (l LogNormalDist) LogProb(x float64) float64 {
	if x <= 0 {
		return -inf
	}
	return l.dist().LogProb(x)
}

func (l LogNormalDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return l.dist().CDF(x)
}

func (l LogNormalDist) Survival(x float64) float64 {
	if x <= 0 {
		return 1
	}
	return 0.5 * math.Erfc((math.Log(x)-l.Mu)/(l.Sigma*math.Sqrt2))
}

func (l LogNormalDist) Support() Support {
	return Support{0, inf}
}

func (l LogNormalDist) Rand() float64 {
	return l.dist().Rand()
}

func (l LogNormalDist) Quantile(p float64) float64 {
	if !checkProb(p) {
		return nan
	}
	return l.dist().Quantile(p)
}

func (l LogNormalDist) Mean() float64 {
	return math.Exp(l.Mu + l.Sigma*l.Sigma/2)
}

func (l LogNormalDist) Median() float64 {
	return math.Exp(l.Mu)
}

func (l LogNormalDist) Mode() float64 {
	return math.Exp(l.Mu - l.Sigma*l.Sigma)
}

func (l LogNormalDist) Variance() float64 {
	return l.dist().Variance()
}
