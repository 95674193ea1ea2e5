// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// TriangularDist is a triangular distribution on [A, B] with mode C.
// It requires A < B and A <= C <= B; its methods panic otherwise.
type TriangularDist struct {
	A, B, C float64
	Src     rand.Source
}

func (t TriangularDist) dist() distuv.Triangle {
	return distuv.NewTriangle(t.A, t.B, t.C, t.Src)
}

func (t TriangularDist) PDF(x float64) float64 {
	return t.dist().Prob(x)
}

func (t TriangularDist) CDF(x float64) float64 {
	return t.dist().CDF(x)
}

func (t TriangularDist) Support() Support {
	return Support{t.A, t.B}
}

func (t TriangularDist) Rand() float64 {
	return t.dist().Rand()
}

func (t TriangularDist) Quantile(p float64) float64 {
	if !checkProb(p) {
		return nan
	}
	return t.dist().Quantile(p)
}

func (t TriangularDist) Mean() float64 {
	return (t.A + t.B + t.C) / 3
}

func (t TriangularDist) Median() float64 {
	return t.dist().Median()
}

func (t TriangularDist) Mode() float64 {
	return t.C
}

func (t TriangularDist) Variance() float64 {
	return t.dist().Variance()
}
