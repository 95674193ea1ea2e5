// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/aclements/go-moredist/mathx"
	"golang.org/x/exp/rand"
)

// MaxRejections is the number of variates TruncatedDist.Rand draws
// from the underlying distribution before it switches to inverting
// the underlying CDF.
const MaxRejections = 100

// TruncatedDist is continuous distribution Dist restricted to [Min,
// Max] and renormalized. Either bound may be infinite.
//
// TruncatedDist has no closed-form quantile function, mode, or
// moments. These are all computed by Numerical.
type TruncatedDist struct {
	Dist     Dist
	Min, Max float64

	// Src is the source of uniform variates used when rejection
	// sampling gives up. If nil, the global source is used.
	Src rand.Source
}

// bounds returns the intersection of t's bounds with the support of
// the underlying distribution and the underlying mass in between. If
// upper is true, s lies mostly in the upper half of the underlying
// distribution, where its survival function is more precise than its
// CDF, and mass was computed from the survival function.
func (t TruncatedDist) bounds() (s Support, mass float64, upper bool) {
	s = t.Dist.Support().Clamp(t.Min, t.Max)
	if lo := t.Dist.CDF(s.Min); lo <= 0.5 {
		return s, t.Dist.CDF(s.Max) - lo, false
	}
	return s, Survival(t.Dist, s.Min) - Survival(t.Dist, s.Max), true
}

func (t TruncatedDist) PDF(x float64) float64 {
	s, mass, _ := t.bounds()
	if !s.Contains(x) {
		return 0
	}
	return t.Dist.PDF(x) / mass
}

func (t TruncatedDist) CDF(x float64) float64 {
	s, mass, upper := t.bounds()
	switch {
	case x < s.Min:
		return 0
	case x >= s.Max:
		return 1
	case upper:
		return (Survival(t.Dist, s.Min) - Survival(t.Dist, x)) / mass
	}
	return (t.Dist.CDF(x) - t.Dist.CDF(s.Min)) / mass
}

func (t TruncatedDist) Survival(x float64) float64 {
	s, mass, upper := t.bounds()
	switch {
	case x < s.Min:
		return 1
	case x >= s.Max:
		return 0
	case upper:
		return (Survival(t.Dist, x) - Survival(t.Dist, s.Max)) / mass
	}
	return (t.Dist.CDF(s.Max) - t.Dist.CDF(x)) / mass
}

func (t TruncatedDist) Support() Support {
	s, _, _ := t.bounds()
	return s
}

// Rand draws variates from the underlying distribution until one
// falls in [Min, Max]. After MaxRejections misses, it instead returns
// the underlying quantile of a uniform variate scaled to [Min, Max].
func (t TruncatedDist) Rand() float64 {
	s, mass, upper := t.bounds()
	for i := 0; i < MaxRejections; i++ {
		if x := t.Dist.Rand(); s.Contains(x) {
			return x
		}
	}

	// Invert from whichever tail has more precision. The mass
	// may be tiny, so the root finder's tolerance scales with it.
	u := uniformVariate(t.Src)
	n := Numerical{Root: mathx.RootFinder{FTol: mass * 1e-9}}
	var x float64
	if upper {
		x = n.QuantileUpper(t.Dist, Survival(t.Dist, s.Min)-u*mass)
	} else if q, ok := t.Dist.(quantiler); ok {
		x = q.Quantile(t.Dist.CDF(s.Min) + u*mass)
	} else {
		x = n.Quantile(t.Dist, t.Dist.CDF(s.Min)+u*mass)
	}
	return math.Max(s.Min, math.Min(s.Max, x))
}

// quantiler is implemented by distributions with a closed-form
// quantile function.
type quantiler interface {
	Quantile(p float64) float64
}

// Mean returns the mean of t, computed numerically.
func (t TruncatedDist) Mean() float64 {
	return Numerical{}.Mean(t)
}

// Median returns the median of t, computed numerically.
func (t TruncatedDist) Median() float64 {
	return Quantile(t, 0.5)
}
