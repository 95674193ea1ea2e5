// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"golang.org/x/exp/rand"
)

// A Dist is a univariate statistical distribution.
//
// Dist is the capability set the generic algorithms in this package
// (Quantile, Mode, ExpectedValue, and so on) are written against. They
// only ever query a Dist; they never modify it. Implementations are
// expected to be immutable values: changing a parameter means
// constructing a new Dist.
type Dist interface {
	// PDF returns the value of the probability density function
	// of this distribution at x. For a DiscreteDist, this is the
	// probability mass Pr[X = x'], where x' is x rounded down to
	// the nearest defined point.
	PDF(x float64) float64

	// CDF returns the cumulative probability Pr[X <= x].
	CDF(x float64) float64

	// Support returns the smallest closed interval outside of
	// which the distribution has no probability.
	Support() Support

	// Rand returns a random variate drawn from the distribution.
	Rand() float64
}

// A DiscreteDist is a discrete statistical distribution.
//
// Most discrete distributions are defined only at integral values of
// the random variable. However, some are defined at other intervals,
// so this interface takes a float64 value for the random variable.
// Note that float64 values can exactly represent integer values
// between ±2**53.
type DiscreteDist interface {
	Dist

	// Step returns s, where the distribution is defined for sℕ.
	Step() float64
}

// Optional capabilities of a Dist. The generic algorithms use these
// when a distribution provides them.
type (
	// Survivaler is implemented by distributions that can compute
	// the survival function Pr[X > x] more accurately than
	// 1-CDF(x).
	Survivaler interface {
		Survival(x float64) float64
	}

	// Meaner is implemented by distributions with a closed-form
	// mean. The mean may be infinite or NaN if it does not exist.
	Meaner interface {
		Mean() float64
	}

	// Medianer is implemented by distributions with a closed-form
	// median.
	Medianer interface {
		Median() float64
	}

	// LogProber is implemented by distributions that can compute
	// log(PDF(x)) directly.
	LogProber interface {
		LogProb(x float64) float64
	}
)

// Survival returns Pr[X > x] for d.
func Survival(d Dist, x float64) float64 {
	if s, ok := d.(Survivaler); ok {
		return s.Survival(x)
	}
	return 1 - d.CDF(x)
}

// Support is the closed interval [Min, Max]. Either end may be
// infinite.
type Support struct {
	Min, Max float64
}

// SupportKind classifies a Support by which of its ends are finite.
type SupportKind int

const (
	// SupportFinite is a support [Min, Max] with both ends finite.
	SupportFinite SupportKind = iota

	// SupportLeftBounded is a support [Min, +∞).
	SupportLeftBounded

	// SupportRightBounded is a support (-∞, Max].
	SupportRightBounded

	// SupportInfinite is the whole real line.
	SupportInfinite
)

func (k SupportKind) String() string {
	switch k {
	case SupportFinite:
		return "finite"
	case SupportLeftBounded:
		return "left-bounded"
	case SupportRightBounded:
		return "right-bounded"
	case SupportInfinite:
		return "infinite"
	}
	return "SupportKind(?)"
}

// Kind returns which ends of s are finite.
func (s Support) Kind() SupportKind {
	lo, hi := !math.IsInf(s.Min, 0), !math.IsInf(s.Max, 0)
	switch {
	case lo && hi:
		return SupportFinite
	case lo:
		return SupportLeftBounded
	case hi:
		return SupportRightBounded
	}
	return SupportInfinite
}

// Finite returns whether both ends of s are finite.
func (s Support) Finite() bool {
	return s.Kind() == SupportFinite
}

// Contains returns whether x is in s.
func (s Support) Contains(x float64) bool {
	return s.Min <= x && x <= s.Max
}

// Clamp returns the intersection of s and [lo, hi]. The result is
// empty (Min > Max) if they do not overlap.
func (s Support) Clamp(lo, hi float64) Support {
	return Support{math.Max(s.Min, lo), math.Min(s.Max, hi)}
}

// realLine is the support of distributions over all of ℝ.
var realLine = Support{-inf, inf}

// uniformVariate returns a uniform variate in [0, 1) drawn from src,
// or from the global source if src is nil. It takes the top 53 bits
// of one src.Uint64 so a variate costs no allocation.
func uniformVariate(src rand.Source) float64 {
	if src == nil {
		return rand.Float64()
	}
	return float64(src.Uint64()>>11) / (1 << 53)
}

// expVariate returns a standard exponential variate drawn from src,
// or from the global source if src is nil.
func expVariate(src rand.Source) float64 {
	if src == nil {
		return rand.ExpFloat64()
	}
	return -math.Log1p(-uniformVariate(src))
}

// checkProb returns whether p is a valid probability.
func checkProb(p float64) bool {
	return p >= 0 && p <= 1
}
