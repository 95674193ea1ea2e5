// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// QuantileCIResult is the confidence interval for a quantile.
type QuantileCIResult struct {
	// Quantile is the quantile of this confidence interval. This
	// is simply a copy of the argument to QuantileCI.
	Quantile float64

	// N is the sample size.
	N int

	// Confidence is the actual confidence level of this interval.
	// This will be >= the requested confidence.
	Confidence float64

	// LoOrder and HiOrder are the order statistics that bound the
	// confidence interval. By convention, these are 1-based, so
	// given an ordered slice of samples Xs, the CI is
	// Xs[LoOrder-1] to Xs[HiOrder-1].
	//
	// These may be outside the range of the sample, which
	// indicates that corresponding bound is negative or positive
	// infinity.
	LoOrder, HiOrder int

	// Ambiguous indicates that the given confidence interval is
	// ambiguous. In this case, the interval LoOrder+1 to
	// HiOrder+1 has equivalent confidence.
	Ambiguous bool
}

// FromSample returns the confidence interval of q in terms of values
// from a sample. It may return negative or positive infinity if the
// interval lies outside the sample.
//
// FromSample panics if s is weighted or its size is not q.N.
func (q QuantileCIResult) FromSample(s Sample) (lo, hi float64) {
	if s.Weights != nil {
		panic("cannot compute quantile CI on a weighted sample")
	}
	if len(s.Xs) != q.N {
		panic("sample size differs from computed quantile CI")
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}

	lo, hi = -inf, inf
	if q.LoOrder >= 1 {
		lo = s.Xs[q.LoOrder-1]
	}
	if q.HiOrder <= len(s.Xs) {
		hi = s.Xs[q.HiOrder-1]
	}
	return
}

// quantileCIApproxThreshold is the sample size above which QuantileCI
// uses a normal approximation. This is a variable for testing.
var quantileCIApproxThreshold = 30

// QuantileCI returns the bounds of the confidence interval of the
// q'th quantile in a sample of size n.
//
// The number of sample points below the q'th population quantile is
// binomially distributed, so order statistic k bounds the quantile
// from above with probability CDF(k-1) of B(n, q). QuantileCI picks
// the narrowest band of order statistics whose binomial mass reaches
// confidence, breaking ties toward the left.
func QuantileCI(n int, q, confidence float64) QuantileCIResult {
	res := QuantileCIResult{N: n, Quantile: q}
	if confidence >= 1 {
		res.Confidence, res.LoOrder, res.HiOrder = 1, 0, n+1
		return res
	}

	samp := BinomialDist{N: n, P: q}
	var l, r int
	if n <= quantileCIApproxThreshold {
		l, r = res.exact(samp, confidence)
	} else {
		l, r = res.approx(samp, confidence)
	}
	res.LoOrder, res.HiOrder = max(l, 0), min(r, n+1)
	return res
}

// exact grows the band [l, r) outward from the lower mode of samp,
// adding whichever neighbor has more mass, until its mass reaches
// confidence. The binomial mass decreases monotonically away from
// the mode, so the band is always the narrowest one.
func (res *QuantileCIResult) exact(samp BinomialDist, confidence float64) (l, r int) {
	x := int(samp.Mode())
	l, r = x, x+1
	mass := samp.PMF(float64(x))
	lp, rp := samp.PMF(float64(l-1)), samp.PMF(float64(r))
	// Two equal modes make the starting band ambiguous.
	res.Ambiguous = rp == mass

	// Stop when there's nothing left to add, in case round-off
	// keeps mass below confidence.
	for mass < confidence && (lp > 0 || rp > 0) {
		res.Ambiguous = lp == rp
		if lp >= rp {
			mass += lp
			l--
			lp = samp.PMF(float64(l - 1))
		} else {
			mass += rp
			r++
			rp = samp.PMF(float64(r))
		}
	}
	res.Confidence = mass
	return l, r
}

// approx finds the band of samp using its normal approximation with
// continuity correction. Integer k of the binomial corresponds to
// [k-0.5, k+0.5] of the normal.
func (res *QuantileCIResult) approx(samp BinomialDist, confidence float64) (l, r int) {
	norm := samp.NormalApprox()
	lx := norm.Quantile((1 - confidence) / 2)
	rx := 2*norm.Mu - lx

	// Round [lx, rx] out to half-integers and recover the band of
	// the binomial.
	l = int(math.Floor(math.Floor(lx-0.5)+0.5)) + 1
	r = int(math.Floor(math.Ceil(rx-0.5)+0.5)) + 1
	band := func(l, r int) float64 {
		return norm.CDF(float64(r)-0.5) - norm.CDF(float64(l)-0.5)
	}
	res.Confidence = band(l, r)

	// The band is symmetric. Dropping its right end may still
	// satisfy confidence.
	if c := band(l, r-1); c >= confidence && c < res.Confidence {
		res.Confidence, res.Ambiguous = c, true
		r--
	}
	if l <= 0 && r >= samp.N+1 {
		// The band covers every order statistic, so it
		// certainly contains the quantile even though the
		// normal's tails lie outside it.
		res.Confidence, res.Ambiguous = 1, false
	}
	return l, r
}
