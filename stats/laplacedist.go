// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/aclements/go-moredist/mathx"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// LaplaceDist is an asymmetric Laplace distribution with location Mu,
// scale Sigma and asymmetry Kappa. Its density is
//
//	f(x) = 1/(σ(κ+1/κ)) exp(-κ(x-μ)/σ)   x >= μ
//	f(x) = 1/(σ(κ+1/κ)) exp((x-μ)/(σκ))  x < μ
//
// Kappa == 1 is the ordinary symmetric Laplace distribution. Kappa < 1
// skews the distribution right. If Kappa is 0, it is treated as 1.
type LaplaceDist struct {
	Mu, Sigma, Kappa float64
	Src              rand.Source
}

func (l LaplaceDist) kappa() float64 {
	if l.Kappa <= 0 {
		return 1
	}
	return l.Kappa
}

func (l LaplaceDist) symmetric() (distuv.Laplace, bool) {
	return distuv.Laplace{Mu: l.Mu, Scale: l.Sigma, Src: l.Src}, l.kappa() == 1
}

func (l LaplaceDist) PDF(x float64) float64 {
	return math.Exp(l.LogProb(x))
}

func (l LaplaceDist) LogProb(x float64) float64 {
	if d, ok := l.symmetric(); ok {
		return d.LogProb(x)
	}
	k := l.kappa()
	lp := -math.Log(l.Sigma * (k + 1/k))
	if x >= l.Mu {
		return lp - k*(x-l.Mu)/l.Sigma
	}
	return lp + (x-l.Mu)/(l.Sigma*k)
}

func (l LaplaceDist) CDF(x float64) float64 {
	if d, ok := l.symmetric(); ok {
		return d.CDF(x)
	}
	k := l.kappa()
	k2 := k * k
	if x < l.Mu {
		return k2 / (1 + k2) * math.Exp((x-l.Mu)/(l.Sigma*k))
	}
	return 1 - math.Exp(-k*(x-l.Mu)/l.Sigma)/(1+k2)
}

func (l LaplaceDist) Survival(x float64) float64 {
	k := l.kappa()
	k2 := k * k
	if x < l.Mu {
		return 1 - k2/(1+k2)*math.Exp((x-l.Mu)/(l.Sigma*k))
	}
	return math.Exp(-k*(x-l.Mu)/l.Sigma) / (1 + k2)
}

func (l LaplaceDist) Support() Support {
	return realLine
}

// Rand returns μ + σ(E₁/κ - κE₂) for independent standard exponential
// variates E₁ and E₂.
func (l LaplaceDist) Rand() float64 {
	if d, ok := l.symmetric(); ok {
		return d.Rand()
	}
	k := l.kappa()
	return l.Mu + l.Sigma*(expVariate(l.Src)/k-expVariate(l.Src)*k)
}

func (l LaplaceDist) Quantile(p float64) float64 {
	if !checkProb(p) {
		return nan
	}
	k := l.kappa()
	k2 := k * k
	if p < k2/(1+k2) {
		return l.Mu + k*l.Sigma*math.Log(p*(1+k2)/k2)
	}
	return l.Mu - l.Sigma/k*math.Log((1+k2)*(1-p))
}

func (l LaplaceDist) Mean() float64 {
	k := l.kappa()
	return l.Mu + l.Sigma*(1/k-k)
}

func (l LaplaceDist) Median() float64 {
	return l.Quantile(0.5)
}

func (l LaplaceDist) Mode() float64 {
	return l.Mu
}

func (l LaplaceDist) Variance() float64 {
	k := l.kappa()
	k2 := k * k
	return l.Sigma * l.Sigma * (1 + k2*k2) / k2
}

// laplaceDeviations returns the mean positive and negative deviations
// of xs from mu.
func laplaceDeviations(xs []float64, mu float64) (plus, minus float64) {
	for _, x := range xs {
		if x < mu {
			minus += mu - x
		} else {
			plus += x - mu
		}
	}
	n := float64(len(xs))
	return plus / n, minus / n
}

// FitLaplaceMLE returns the maximum likelihood asymmetric Laplace
// distribution for xs.
//
// The location is the weighted median of xs that balances kappa² times
// the number of points above it against the number below it. Given
// the location, the scale and asymmetry have closed forms. If kappa is
// 0, it is treated as 1, which makes the location the sample median.
func FitLaplaceMLE(xs []float64, kappa float64) (LaplaceDist, error) {
	if len(xs) == 0 {
		return LaplaceDist{}, errors.Wrap(ErrEmptySample, "fitting Laplace")
	}
	if kappa <= 0 {
		kappa = 1
	}
	k2 := kappa * kappa
	lo, hi := floats.Min(xs), floats.Max(xs)
	if lo == hi {
		return LaplaceDist{}, errors.Wrap(ErrSamplesEqual, "fitting Laplace")
	}

	mu, ok := mathx.RootFinder{}.Bracket(func(m float64) float64 {
		var y float64
		for _, x := range xs {
			if x > m {
				y -= k2
			} else if x < m {
				y++
			}
		}
		return y
	}, lo, hi)
	if !ok {
		return LaplaceDist{}, errors.Wrap(ErrNoConvergence, "fitting Laplace location")
	}

	plus, minus := laplaceDeviations(xs, mu)
	if plus == 0 || minus == 0 {
		return LaplaceDist{}, errors.Wrapf(ErrSamplesEqual, "fitting Laplace: all samples on one side of location %v", mu)
	}
	sp, sm := math.Sqrt(plus), math.Sqrt(minus)
	sigma := (sp + sm) * math.Sqrt(sp*sm)
	return LaplaceDist{Mu: mu, Sigma: sigma, Kappa: math.Pow(minus/plus, 0.25)}, nil
}

// FitLaplaceAsymmetry returns the asymmetric Laplace distribution with
// location mu and scale sigma whose asymmetry maximizes the
// likelihood of xs.
func FitLaplaceAsymmetry(xs []float64, mu, sigma float64) (LaplaceDist, error) {
	if len(xs) == 0 {
		return LaplaceDist{}, errors.Wrap(ErrEmptySample, "fitting Laplace asymmetry")
	}
	if !(sigma > 0) {
		return LaplaceDist{}, errors.Errorf("fitting Laplace asymmetry: scale %v must be positive", sigma)
	}
	plus, minus := laplaceDeviations(xs, mu)
	if plus == minus {
		return LaplaceDist{Mu: mu, Sigma: sigma, Kappa: 1}, nil
	}
	if plus == 0 || minus == 0 {
		return LaplaceDist{}, errors.Wrapf(ErrSamplesEqual, "fitting Laplace asymmetry: all samples on one side of %v", mu)
	}

	// The score equation for κ, divided through by n. Its root
	// lies between 1 and √(minus/plus).
	score := func(t float64) float64 {
		t2 := t * t
		return sigma*(1-t2)/(t*(t2+1)) + minus/t2 - plus
	}
	lo, hi := 1.0, math.Sqrt(minus/plus)
	if hi < lo {
		lo, hi = hi, lo
	}
	k, ok := mathx.RootFinder{}.Bracket(score, lo, hi)
	if !ok {
		return LaplaceDist{}, errors.Wrap(ErrNoConvergence, "fitting Laplace asymmetry")
	}
	return LaplaceDist{Mu: mu, Sigma: sigma, Kappa: k}, nil
}

// FitLaplaceMM returns the symmetric Laplace distribution whose mean
// and variance match those of xs.
func FitLaplaceMM(xs []float64) (LaplaceDist, error) {
	if len(xs) == 0 {
		return LaplaceDist{}, errors.Wrap(ErrEmptySample, "fitting Laplace")
	}
	mean, variance := stat.PopMeanVariance(xs, nil)
	return LaplaceDist{Mu: mean, Sigma: math.Sqrt(variance / 2), Kappa: 1}, nil
}
