// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// WeibullDist is a Weibull distribution with shape K and scale
// Lambda. K == 1 is the exponential distribution with rate 1/Lambda.
type WeibullDist struct {
	K, Lambda float64
	Src       rand.Source
}

func (w WeibullDist) dist() distuv.Weibull {
	return distuv.Weibull{K: w.K, Lambda: w.Lambda, Src: w.Src}
}

func (w WeibullDist) PDF(x float64) float64 {
	return w.dist().Prob(x)
}

func (w WeibullDist) LogProb(x float64) float64 {
	return w.dist().LogProb(x)
}

func (w WeibullDist) CDF(x float64) float64 {
	return w.dist().CDF(x)
}

func (w WeibullDist) Survival(x float64) float64 {
	return w.dist().Survival(x)
}

func (w WeibullDist) Support() Support {
	return Support{0, inf}
}

func (w WeibullDist) Rand() float64 {
	return w.dist().Rand()
}

func (w WeibullDist) Quantile(p float64) float64 {
	if !checkProb(p) {
		return nan
	}
	return w.dist().Quantile(p)
}

func (w WeibullDist) Mean() float64 {
	return w.dist().Mean()
}

func (w WeibullDist) Median() float64 {
	return w.dist().Median()
}

func (w WeibullDist) Mode() float64 {
	return w.dist().Mode()
}

func (w WeibullDist) Variance() float64 {
	return w.dist().Variance()
}
