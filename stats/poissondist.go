// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// PoissonDist is a Poisson distribution with mean Lambda.
type PoissonDist struct {
	Lambda float64
	Src    rand.Source
}

func (d PoissonDist) dist() distuv.Poisson {
	return distuv.Poisson{Lambda: d.Lambda, Src: d.Src}
}

// PMF is the probability of exactly int(k) events.
func (d PoissonDist) PMF(k float64) float64 {
	k = math.Floor(k)
	if k < 0 {
		return 0
	}
	return d.dist().Prob(k)
}

func (d PoissonDist) PDF(k float64) float64 {
	return d.PMF(k)
}

func (d PoissonDist) LogProb(k float64) float64 {
	k = math.Floor(k)
	if k < 0 {
		return -inf
	}
	return d.dist().LogProb(k)
}

func (d PoissonDist) CDF(k float64) float64 {
	return d.dist().CDF(k)
}

func (d PoissonDist) Survival(k float64) float64 {
	return d.dist().Survival(k)
}

func (d PoissonDist) Support() Support {
	return Support{0, inf}
}

func (d PoissonDist) Step() float64 {
	return 1
}

func (d PoissonDist) Rand() float64 {
	return d.dist().Rand()
}

func (d PoissonDist) Mean() float64 {
	return d.Lambda
}

func (d PoissonDist) Variance() float64 {
	return d.Lambda
}
