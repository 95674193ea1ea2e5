// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// Hazard returns the hazard function of d at x, which is the density
// at x conditioned on survival up to x, f(x)/S(x).
//
// Hazard is 0 below d's support and NaN above it.
func Hazard(d Dist, x float64) float64 {
	s := d.Support()
	switch {
	case x < s.Min:
		return 0
	case x > s.Max:
		return nan
	}
	return d.PDF(x) / Survival(d, x)
}

// Likelihood returns the likelihood of the sample xs under d, the
// product of d's density at each x. This underflows easily for large
// samples; most callers want LogLikelihood.
func Likelihood(d Dist, xs []float64) float64 {
	return math.Exp(LogLikelihood(d, xs))
}

// LogLikelihood returns the log likelihood of the sample xs under d.
//
// If any x has zero density, LogLikelihood returns -Inf. The log
// likelihood of an empty sample is 0.
func LogLikelihood(d Dist, xs []float64) float64 {
	lp, _ := d.(LogProber)
	var sum float64
	for _, x := range xs {
		var l float64
		if lp != nil {
			l = lp.LogProb(x)
		} else {
			l = math.Log(d.PDF(x))
		}
		if math.IsInf(l, -1) {
			return l
		}
		sum += l
	}
	return sum
}

// Variates returns n random variates drawn from d.
func Variates(d Dist, n int) []float64 {
	xs := make([]float64, n)
	Fill(d, xs)
	return xs
}

// Fill fills dst with random variates drawn from d.
func Fill(d Dist, dst []float64) {
	for i := range dst {
		dst[i] = d.Rand()
	}
}
