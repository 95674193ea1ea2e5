// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"golang.org/x/exp/rand"
)

// RayleighDist is a Rayleigh distribution with scale Sigma. It is the
// distribution of the length of a 2-D vector whose components are
// independent normal variates with mean 0 and standard deviation
// Sigma.
type RayleighDist struct {
	Sigma float64
	Src   rand.Source
}

func (r RayleighDist) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	s2 := r.Sigma * r.Sigma
	return x / s2 * math.Exp(-x*x/(2*s2))
}

func (r RayleighDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return -math.Expm1(-x * x / (2 * r.Sigma * r.Sigma))
}

func (r RayleighDist) Survival(x float64) float64 {
	if x <= 0 {
		return 1
	}
	return math.Exp(-x * x / (2 * r.Sigma * r.Sigma))
}

func (r RayleighDist) Support() Support {
	return Support{0, inf}
}

func (r RayleighDist) Rand() float64 {
	return r.Sigma * math.Sqrt(-2*math.Log1p(-uniformVariate(r.Src)))
}

func (r RayleighDist) Quantile(p float64) float64 {
	if !checkProb(p) {
		return nan
	}
	return r.Sigma * math.Sqrt(-2*math.Log1p(-p))
}

func (r RayleighDist) Mean() float64 {
	return r.Sigma * math.Sqrt(math.Pi/2)
}

func (r RayleighDist) Median() float64 {
	return r.Sigma * math.Sqrt(2*math.Ln2)
}

func (r RayleighDist) Mode() float64 {
	return r.Sigma
}

func (r RayleighDist) Variance() float64 {
	return (4 - math.Pi) / 2 * r.Sigma * r.Sigma
}
