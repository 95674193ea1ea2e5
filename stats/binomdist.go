// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distuv"
)

// BinomialDist is a binomial distribution.
type BinomialDist struct {
	// N is the number of independent Bernoulli trials. N >= 0.
	//
	// If N=1, this is equivalent to the Bernoulli distribution.
	N int

	// P is the probability of success in each trial. 0 <= P <= 1.
	P float64

	Src rand.Source
}

func (d BinomialDist) dist() distuv.Binomial {
	return distuv.Binomial{N: float64(d.N), P: d.P, Src: d.Src}
}

// PMF is the probability of getting exactly ⌊k⌋ successes in d.N
// trials.
func (d BinomialDist) PMF(k float64) float64 {
	k = math.Floor(k)
	if k < 0 || k > float64(d.N) {
		return 0
	}
	switch d.P {
	case 0:
		if k == 0 {
			return 1
		}
		return 0
	case 1:
		if k == float64(d.N) {
			return 1
		}
		return 0
	}
	return math.Exp(d.LogProb(k))
}

func (d BinomialDist) PDF(k float64) float64 {
	return d.PMF(k)
}

// LogProb is the log of PMF at integer k. It is -Inf off the
// lattice.
func (d BinomialDist) LogProb(k float64) float64 {
	if d.P == 0 || d.P == 1 {
		return math.Log(d.PMF(k))
	}
	return d.dist().LogProb(k)
}

// CDF is the probability of getting ⌊k⌋ or fewer successes in d.N
// trials.
func (d BinomialDist) CDF(k float64) float64 {
	return d.dist().CDF(k)
}

// Survival is the probability of more than ⌊k⌋ successes. It is
// computed directly so it keeps precision in the upper tail.
func (d BinomialDist) Survival(k float64) float64 {
	k = math.Floor(k)
	if k < 0 {
		return 1
	} else if k >= float64(d.N) {
		return 0
	}
	return mathext.RegIncBeta(k+1, float64(d.N)-k, d.P)
}

func (d BinomialDist) Support() Support {
	return Support{0, float64(d.N)}
}

func (d BinomialDist) Step() float64 {
	return 1
}

func (d BinomialDist) Rand() float64 {
	return d.dist().Rand()
}

func (d BinomialDist) Mean() float64 {
	return float64(d.N) * d.P
}

// Mode returns the lower mode of d. If (N+1)P is an integer, d has
// two modes, Mode() and Mode()+1.
func (d BinomialDist) Mode() float64 {
	if d.P == 0 {
		return 0
	}
	return math.Ceil(float64(d.N+1)*d.P) - 1
}

func (d BinomialDist) Variance() float64 {
	return float64(d.N) * d.P * (1 - d.P)
}

// NormalApprox returns a normal distribution approximation of
// binomial distribution d.
//
// Because the binomial distribution is discrete and the normal
// distribution is continuous, the caller must apply a continuity
// correction when using this approximation. Specifically, if b is the
// binomial distribution and n is the normal approximation, operations
// map as follows:
//
//	b.PMF(k) => n.CDF(k+0.5) - n.CDF(k-0.5)
//	b.CDF(k) => n.CDF(k+0.5)
func (d BinomialDist) NormalApprox() NormalDist {
	return NormalDist{Mu: d.Mean(), Sigma: math.Sqrt(d.Variance()), Src: d.Src}
}
