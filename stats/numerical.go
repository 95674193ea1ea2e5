// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"github.com/aclements/go-moredist/mathx"
	"gonum.org/v1/gonum/floats"
)

// Numerical implements distribution operations that have no closed
// form in terms of the Dist interface alone.
//
// Numerical only ever queries the distributions passed to it, so a
// single Numerical may be used concurrently on any number of
// distributions.
//
// The zero value of Numerical is a reasonable default configuration.
type Numerical struct {
	// Root configures the root finder used to invert the CDF.
	Root mathx.RootFinder

	// Min configures the minimizer used to find modes.
	Min mathx.Minimizer

	// Integral configures the integrator used to compute
	// expected values.
	Integral mathx.Integrator

	// SampleSize is the number of variates drawn to guess a
	// starting point for quantile searches. If zero, 100 is used.
	SampleSize int
}

const defaultSampleSize = 100

// tailMass is the probability below which the tail of a discrete
// distribution is dropped from an infinite sum.
const tailMass = 1e-16

// maxTerms bounds the number of terms of a discrete expected value.
const maxTerms = 1000000

func (n Numerical) sampleSize() int {
	if n.SampleSize <= 0 {
		return defaultSampleSize
	}
	return n.SampleSize
}

func (n Numerical) maxIter() int {
	if n.Min.MaxIter <= 0 {
		return mathx.DefaultMaxIter
	}
	return n.Min.MaxIter
}

// Quantile returns the smallest x such that d.CDF(x) >= p.
//
// If p is NaN or outside [0, 1], Quantile returns NaN. Quantile(d, 0)
// and Quantile(d, 1) are the ends of d's support, which may be
// infinite. Quantile also returns NaN if the search does not converge.
//
// If d has finite support, the quantile is found by bisection over
// the support. Otherwise, Quantile guesses a starting point from a
// random sample of d and refines it by Newton's method, using d.PDF
// as the derivative of d.CDF. If that fails, it falls back to
// bracketing the quantile by expanding outward from the guess.
//
// If d is a DiscreteDist, the result is always a point of d's
// lattice.
func (n Numerical) Quantile(d Dist, p float64) float64 {
	return n.quantile(d, p, false)
}

// QuantileUpper returns the smallest x such that Survival(d, x) <= p.
// For continuous distributions, this is Quantile(d, 1-p), but may be
// more accurate when p is small.
func (n Numerical) QuantileUpper(d Dist, p float64) float64 {
	return n.quantile(d, p, true)
}

func (n Numerical) quantile(d Dist, p float64, upper bool) float64 {
	if !checkProb(p) {
		return nan
	}
	s := d.Support()
	// Compare p itself against the ends. 1-p rounds to 1 for tiny p.
	lowEnd, highEnd := p == 0, p == 1
	if upper {
		lowEnd, highEnd = highEnd, lowEnd
	}
	switch {
	case lowEnd || s.Min == s.Max:
		return s.Min
	case highEnd:
		return s.Max
	}

	// g is non-decreasing and crosses 0 at the quantile.
	g := func(x float64) float64 { return d.CDF(x) - p }
	if upper {
		g = func(x float64) float64 { return p - Survival(d, x) }
	}

	// g is known only to about the precision of p, so a small p
	// needs a proportionally small tolerance.
	root := n.Root
	if root.FTol == 0 {
		root.FTol = math.Min(1e-14, 1e-9*p)
	}

	dd, discrete := d.(DiscreteDist)
	var x float64
	if s.Finite() {
		if g(s.Min) >= 0 {
			return s.Min
		}
		var ok bool
		if x, ok = root.Bracket(g, s.Min, s.Max); !ok {
			return nan
		}
	} else {
		guess := n.Guess(d, p, upper)
		ok := false
		if !discrete {
			x, ok = root.Newton(func(x float64) (float64, float64) {
				return g(x), d.PDF(x)
			}, guess)
		}
		if !ok {
			lo, hi, found := root.Expand(g, guess, 0)
			if !found {
				return nan
			}
			// Keep the bracket in the support, where g is
			// still monotone and not merely flat.
			lo, hi = math.Max(lo, s.Min), math.Min(hi, s.Max)
			if g(lo) >= 0 {
				x = lo
			} else if x, ok = root.Bracket(g, lo, hi); !ok {
				return nan
			}
		}
		x = math.Max(s.Min, math.Min(s.Max, x))
	}

	if discrete {
		x = n.snap(dd, g, x)
	}
	return x
}

// snap returns the smallest lattice point k of d near x with g(k) >= 0.
func (n Numerical) snap(d DiscreteDist, g func(float64) float64, x float64) float64 {
	step, min := d.Step(), d.Support().Min
	k := math.Floor(x/step) * step
	for i := 0; g(k) < 0 && i < n.maxIter(); i++ {
		k += step
	}
	for i := 0; k-step >= min && g(k-step) >= 0 && i < n.maxIter(); i++ {
		k -= step
	}
	return k
}

// Guess estimates the p-quantile of d from the order statistics of a
// random sample of d. If upper is true, it estimates the value
// exceeded with probability p instead.
//
// Guess is meant to give Quantile a starting point. Its result varies
// from call to call unless d draws from a deterministic source.
func (n Numerical) Guess(d Dist, p float64, upper bool) float64 {
	xs := Variates(d, n.sampleSize())
	sort.Float64s(xs)
	if upper {
		floats.Reverse(xs)
	}
	i := int(p * float64(len(xs)))
	if i < 0 {
		i = 0
	} else if i >= len(xs) {
		i = len(xs) - 1
	}
	return xs[i]
}

// Mode returns a local maximum of d's density.
//
// The search starts from d's mean, or its median if the mean is not
// finite. For a unimodal distribution, the result is the mode. If the
// search does not converge, Mode returns the starting point.
func (n Numerical) Mode(d Dist) float64 {
	var guess float64
	if m, ok := d.(Meaner); ok {
		guess = m.Mean()
	} else {
		guess = n.Mean(d)
	}
	if !isFinite(guess) {
		if m, ok := d.(Medianer); ok {
			guess = m.Median()
		} else {
			guess = n.Quantile(d, 0.5)
		}
	}
	if !isFinite(guess) {
		return nan
	}

	if dd, ok := d.(DiscreteDist); ok {
		return n.discreteMode(dd, guess)
	}
	x, ok := n.Min.Minimize(func(x float64) float64 { return -d.PDF(x) }, guess)
	if !ok {
		return guess
	}
	return x
}

// discreteMode climbs d's mass function from the lattice point
// nearest guess.
func (n Numerical) discreteMode(d DiscreteDist, guess float64) float64 {
	step, s := d.Step(), d.Support()
	k := math.Round(guess/step) * step
	if k < s.Min {
		k = s.Min
	} else if k > s.Max {
		k = s.Max
	}
	fk := d.PDF(k)
	for i := 0; i < n.maxIter(); i++ {
		if k+step <= s.Max {
			if f := d.PDF(k + step); f > fk {
				k, fk = k+step, f
				continue
			}
		}
		if k-step >= s.Min {
			if f := d.PDF(k - step); f > fk {
				k, fk = k-step, f
				continue
			}
		}
		break
	}
	return k
}

// ExpectedValue returns the expected value of g(X) for X distributed
// as d, restricted to [min, max]. That is, it returns the integral of
// g(x)*d.PDF(x) over [min, max] intersected with d's support. If that
// intersection is empty, it returns 0.
//
// The integral is taken over the standardized variable (x-c)/w, where
// c is d's median and w is half its interquartile range, and split at
// fixed multiples of w around c. Hence the integrator sees the bulk of
// d at unit scale however far it lies from the origin, and infinite
// tails are mapped onto finite intervals from the outermost split.
//
// For a DiscreteDist, the integral is a sum over d's lattice. An
// infinite upper tail is cut off once its probability falls below
// 1e-16.
func (n Numerical) ExpectedValue(d Dist, g func(float64) float64, min, max float64) float64 {
	s := d.Support().Clamp(min, max)
	if !(s.Min < s.Max) {
		return 0
	}
	if dd, ok := d.(DiscreteDist); ok {
		return n.sum(dd, g, s)
	}

	c, w := n.spread(d)
	h := func(u float64) float64 {
		x := c + w*u
		fx := d.PDF(x)
		if fx == 0 {
			return 0
		}
		return g(x) * fx * w
	}
	lo, hi := (s.Min-c)/w, (s.Max-c)/w
	edges := []float64{lo}
	for _, e := range splits {
		if lo < e && e < hi {
			edges = append(edges, e)
		}
	}
	edges = append(edges, hi)

	var sum float64
	for i := 1; i < len(edges); i++ {
		sum += n.Integral.Integrate(h, edges[i-1], edges[i])
	}
	return sum
}

// splits are the points, in units of spread around the median, at
// which ExpectedValue splits its integral.
var splits = [...]float64{-64, -8, -1, 0, 1, 8, 64}

// spread returns the median of d and half its interquartile range. If
// these can't be computed, it returns a point of d's support and 1.
func (n Numerical) spread(d Dist) (c, w float64) {
	q := func(p float64) float64 {
		if qd, ok := d.(quantiler); ok {
			return qd.Quantile(p)
		}
		return n.Quantile(d, p)
	}
	if m, ok := d.(Medianer); ok {
		c = m.Median()
	} else {
		c = q(0.5)
	}
	if !isFinite(c) {
		s := d.Support()
		c = math.Max(s.Min, math.Min(s.Max, 0))
	}
	w = (q(0.75) - q(0.25)) / 2
	if !(w > 0) || !isFinite(w) {
		w = 1
	}
	return c, w
}

func (n Numerical) sum(d DiscreteDist, g func(float64) float64, s Support) float64 {
	step := d.Step()
	lo := s.Min
	if math.IsInf(lo, -1) {
		if lo = n.Quantile(d, tailMass); math.IsNaN(lo) {
			return nan
		}
	}
	k0 := math.Ceil(lo/step) * step
	openTail := math.IsInf(s.Max, 1)

	var sum float64
	for i := 0; i < maxTerms; i++ {
		k := k0 + float64(i)*step
		if k > s.Max {
			break
		}
		if fk := d.PDF(k); fk != 0 {
			sum += g(k) * fk
		}
		if openTail && Survival(d, k) < tailMass {
			break
		}
	}
	return sum
}

// Mean returns the mean of d computed by ExpectedValue. It does not
// use d's Mean method, even if d has one.
func (n Numerical) Mean(d Dist) float64 {
	return n.ExpectedValue(d, func(x float64) float64 { return x }, -inf, inf)
}

// Variance returns the variance of d computed by ExpectedValue. If d
// implements Meaner, its mean is used as the center.
func (n Numerical) Variance(d Dist) float64 {
	var mu float64
	if m, ok := d.(Meaner); ok {
		mu = m.Mean()
	} else {
		mu = n.Mean(d)
	}
	if !isFinite(mu) {
		return nan
	}
	return n.ExpectedValue(d, func(x float64) float64 { return (x - mu) * (x - mu) }, -inf, inf)
}

// Moment returns the k'th raw moment E[X^k] of d.
func (n Numerical) Moment(d Dist, k float64) float64 {
	return n.ExpectedValue(d, func(x float64) float64 { return math.Pow(x, k) }, -inf, inf)
}

// Quantile is shorthand for Numerical{}.Quantile.
func Quantile(d Dist, p float64) float64 {
	return Numerical{}.Quantile(d, p)
}

// QuantileUpper is shorthand for Numerical{}.QuantileUpper.
func QuantileUpper(d Dist, p float64) float64 {
	return Numerical{}.QuantileUpper(d, p)
}

// Mode is shorthand for Numerical{}.Mode.
func Mode(d Dist) float64 {
	return Numerical{}.Mode(d)
}

// ExpectedValue is shorthand for Numerical{}.ExpectedValue.
func ExpectedValue(d Dist, g func(float64) float64, min, max float64) float64 {
	return Numerical{}.ExpectedValue(d, g, min, max)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
