// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"golang.org/x/exp/rand"
)

// GeometricDist is the distribution of the number of Bernoulli trials
// with success probability P needed to get one success. Its support
// is {1, 2, 3, ...}.
type GeometricDist struct {
	P   float64
	Src rand.Source
}

// PMF is the probability that the first success happens on trial
// int(k).
func (d GeometricDist) PMF(k float64) float64 {
	k = math.Floor(k)
	if k < 1 {
		return 0
	}
	return d.P * math.Pow(1-d.P, k-1)
}

func (d GeometricDist) PDF(k float64) float64 {
	return d.PMF(k)
}

func (d GeometricDist) CDF(k float64) float64 {
	k = math.Floor(k)
	if k < 1 {
		return 0
	}
	return -math.Expm1(k * math.Log1p(-d.P))
}

func (d GeometricDist) Survival(k float64) float64 {
	k = math.Floor(k)
	if k < 1 {
		return 1
	}
	return math.Pow(1-d.P, k)
}

func (d GeometricDist) Support() Support {
	return Support{1, inf}
}

func (d GeometricDist) Step() float64 {
	return 1
}

func (d GeometricDist) Rand() float64 {
	u := uniformVariate(d.Src)
	k := math.Ceil(math.Log1p(-u) / math.Log1p(-d.P))
	return math.Max(1, k)
}

func (d GeometricDist) Mean() float64 {
	return 1 / d.P
}

func (d GeometricDist) Mode() float64 {
	return 1
}

func (d GeometricDist) Variance() float64 {
	return (1 - d.P) / (d.P * d.P)
}
