// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/aclements/go-moredist/mathx"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// The Fit functions return the distribution of a family that best
// describes a sample. They never modify xs.
//
// All of them return an error wrapping ErrEmptySample if xs is empty
// and ErrOutOfSupport if xs contains a value the family cannot
// produce. Use errors.Cause to recover the sentinel.

// checkSample returns an error if xs is empty or contains a value
// less than min.
func checkSample(family string, xs []float64, min float64, open bool) error {
	if len(xs) == 0 {
		return errors.Wrapf(ErrEmptySample, "fitting %s", family)
	}
	lo := floats.Min(xs)
	if lo < min || (open && lo == min) {
		return errors.Wrapf(ErrOutOfSupport, "fitting %s: sample value %v", family, lo)
	}
	return nil
}

// FitNormal returns the maximum likelihood normal distribution for
// xs.
func FitNormal(xs []float64) (NormalDist, error) {
	if err := checkSample("normal", xs, -inf, false); err != nil {
		return NormalDist{}, err
	}
	mean, std := stat.PopMeanStdDev(xs, nil)
	if std == 0 {
		return NormalDist{}, errors.Wrap(ErrSamplesEqual, "fitting normal")
	}
	return NormalDist{Mu: mean, Sigma: std}, nil
}

// FitLogNormal returns the maximum likelihood log-normal distribution
// for xs. All of xs must be positive.
func FitLogNormal(xs []float64) (LogNormalDist, error) {
	if err := checkSample("log-normal", xs, 0, true); err != nil {
		return LogNormalDist{}, err
	}
	logs := make([]float64, len(xs))
	for i, x := range xs {
		logs[i] = math.Log(x)
	}
	mean, std := stat.PopMeanStdDev(logs, nil)
	if std == 0 {
		return LogNormalDist{}, errors.Wrap(ErrSamplesEqual, "fitting log-normal")
	}
	return LogNormalDist{Mu: mean, Sigma: std}, nil
}

// FitExponential returns the maximum likelihood exponential
// distribution for xs.
func FitExponential(xs []float64) (ExponentialDist, error) {
	if err := checkSample("exponential", xs, 0, false); err != nil {
		return ExponentialDist{}, err
	}
	mean := stat.Mean(xs, nil)
	if mean == 0 {
		return ExponentialDist{}, errors.Wrap(ErrSamplesEqual, "fitting exponential")
	}
	return ExponentialDist{Rate: 1 / mean}, nil
}

// FitPoisson returns the maximum likelihood Poisson distribution for
// xs. The values of xs are truncated to integers.
func FitPoisson(xs []float64) (PoissonDist, error) {
	if err := checkSample("Poisson", xs, 0, false); err != nil {
		return PoissonDist{}, err
	}
	var sum float64
	for _, x := range xs {
		sum += math.Floor(x)
	}
	if sum == 0 {
		return PoissonDist{}, errors.Wrap(ErrSamplesEqual, "fitting Poisson")
	}
	return PoissonDist{Lambda: sum / float64(len(xs))}, nil
}

// FitGeometric returns the maximum likelihood geometric distribution
// for xs. The values of xs are truncated to integers.
func FitGeometric(xs []float64) (GeometricDist, error) {
	if err := checkSample("geometric", xs, 1, false); err != nil {
		return GeometricDist{}, err
	}
	var sum float64
	for _, x := range xs {
		sum += math.Floor(x)
	}
	return GeometricDist{P: float64(len(xs)) / sum}, nil
}

// FitRayleigh returns the maximum likelihood Rayleigh distribution for
// xs.
func FitRayleigh(xs []float64) (RayleighDist, error) {
	if err := checkSample("Rayleigh", xs, 0, false); err != nil {
		return RayleighDist{}, err
	}
	sumSq := floats.Dot(xs, xs)
	if sumSq == 0 {
		return RayleighDist{}, errors.Wrap(ErrSamplesEqual, "fitting Rayleigh")
	}
	return RayleighDist{Sigma: math.Sqrt(sumSq / (2 * float64(len(xs))))}, nil
}

// FitWeibullMLE returns the maximum likelihood Weibull distribution
// for xs. All of xs must be positive.
//
// The shape K is the root of the profile likelihood equation
//
//	Σ xᵏ ln x / Σ xᵏ - 1/k - mean(ln x) = 0,
//
// which has no closed form. Given K, the scale has a closed form.
func FitWeibullMLE(xs []float64) (WeibullDist, error) {
	if err := checkSample("Weibull", xs, 0, true); err != nil {
		return WeibullDist{}, err
	}
	max := floats.Max(xs)
	if floats.Min(xs) == max {
		return WeibullDist{}, errors.Wrap(ErrSamplesEqual, "fitting Weibull")
	}

	// Work with x/max so xᵏ cannot overflow. This doesn't change
	// the ratio of sums in the profile equation.
	n := float64(len(xs))
	ys := make([]float64, len(xs))
	logs := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = x / max
		logs[i] = math.Log(x)
	}
	meanLog := floats.Sum(logs) / n
	powSum := func(k float64) (sum, logSum float64) {
		for i, y := range ys {
			yk := math.Pow(y, k)
			sum += yk
			logSum += yk * logs[i]
		}
		return
	}
	profile := func(k float64) float64 {
		sum, logSum := powSum(k)
		return logSum/sum - 1/k - meanLog
	}

	// profile is increasing in k and tends to -∞ as k → 0.
	lo, hi := 0.01, 1.0
	for i := 0; profile(hi) < 0; i++ {
		if i == mathx.DefaultMaxIter {
			return WeibullDist{}, errors.Wrap(ErrNoConvergence, "fitting Weibull: bracketing shape")
		}
		lo, hi = hi, 2*hi
	}
	if profile(lo) > 0 {
		return WeibullDist{}, errors.Wrap(ErrNoConvergence, "fitting Weibull: shape below 0.01")
	}
	k, ok := mathx.RootFinder{}.Bracket(profile, lo, hi)
	if !ok {
		return WeibullDist{}, errors.Wrap(ErrNoConvergence, "fitting Weibull shape")
	}

	sum, _ := powSum(k)
	lambda := max * math.Pow(sum/n, 1/k)
	return WeibullDist{K: k, Lambda: lambda}, nil
}
