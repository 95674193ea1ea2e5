// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// GammaDist is a gamma distribution with shape Alpha and rate Beta.
type GammaDist struct {
	Alpha, Beta float64
	Src         rand.Source
}

func (g GammaDist) dist() distuv.Gamma {
	return distuv.Gamma{Alpha: g.Alpha, Beta: g.Beta, Src: g.Src}
}

func (g GammaDist) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return g.dist().Prob(x)
}

func (g GammaDist) LogProb(x float64) float64 {
	return g.dist().LogProb(x)
}

func (g GammaDist) CDF(x float64) float64 {
	return g.dist().CDF(x)
}

func (g GammaDist) Survival(x float64) float64 {
	return g.dist().Survival(x)
}

func (g GammaDist) Support() Support {
	return Support{0, inf}
}

func (g GammaDist) Rand() float64 {
	return g.dist().Rand()
}

func (g GammaDist) Quantile(p float64) float64 {
	if !checkProb(p) {
		return nan
	}
	return g.dist().Quantile(p)
}

func (g GammaDist) Mean() float64 {
	return g.Alpha / g.Beta
}

// Mode returns the mode of g, which is 0 if Alpha < 1.
func (g GammaDist) Mode() float64 {
	return g.dist().Mode()
}

func (g GammaDist) Variance() float64 {
	return g.Alpha / (g.Beta * g.Beta)
}
