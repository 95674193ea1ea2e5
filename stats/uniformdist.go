// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// UniformDist is a continuous uniform distribution on [Min, Max].
type UniformDist struct {
	Min, Max float64
	Src      rand.Source
}

func (u UniformDist) dist() distuv.Uniform {
	return distuv.Uniform{Min: u.Min, Max: u.Max, Src: u.Src}
}

func (u UniformDist) PDF(x float64) float64 {
	return u.dist().Prob(x)
}

func (u UniformDist) CDF(x float64) float64 {
	return u.dist().CDF(x)
}

func (u UniformDist) Support() Support {
	return Support{u.Min, u.Max}
}

func (u UniformDist) Rand() float64 {
	return u.dist().Rand()
}

func (u UniformDist) Quantile(p float64) float64 {
	if !checkProb(p) {
		return nan
	}
	return u.dist().Quantile(p)
}

func (u UniformDist) Mean() float64 {
	return (u.Min + u.Max) / 2
}

func (u UniformDist) Median() float64 {
	return (u.Min + u.Max) / 2
}

func (u UniformDist) Variance() float64 {
	return u.dist().Variance()
}
