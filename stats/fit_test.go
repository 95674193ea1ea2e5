// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

func TestFitClosedForm(t *testing.T) {
	check := func(name string, got, want float64, err error) {
		t.Helper()
		if err != nil {
			t.Errorf("%s: unexpected error %v", name, err)
		} else if !aeq(want, got) {
			t.Errorf("%s: want %v, got %v", name, want, got)
		}
	}

	n, err := FitNormal([]float64{1, 2, 3, 4})
	check("normal μ", n.Mu, 2.5, err)
	check("normal σ", n.Sigma, math.Sqrt(1.25), err)

	ln, err := FitLogNormal([]float64{1, math.E, math.E * math.E})
	check("log-normal μ", ln.Mu, 1, err)
	check("log-normal σ", ln.Sigma, math.Sqrt(2.0/3), err)

	e, err := FitExponential([]float64{1, 2, 3})
	check("exponential rate", e.Rate, 0.5, err)

	p, err := FitPoisson([]float64{1.5, 2, 3.9})
	check("Poisson λ", p.Lambda, 2, err)

	g, err := FitGeometric([]float64{1, 2, 3})
	check("geometric p", g.P, 0.5, err)

	r, err := FitRayleigh([]float64{1, 2, 3})
	check("Rayleigh σ", r.Sigma, math.Sqrt(14.0/6), err)
}

func TestFitErrors(t *testing.T) {
	check := func(name string, err, want error) {
		t.Helper()
		if errors.Cause(err) != want {
			t.Errorf("%s: want error %v, got %v", name, want, err)
		}
	}
	var err error
	_, err = FitNormal(nil)
	check("normal empty", err, ErrEmptySample)
	_, err = FitNormal([]float64{2, 2, 2})
	check("normal equal", err, ErrSamplesEqual)
	_, err = FitLogNormal([]float64{0, 1})
	check("log-normal zero", err, ErrOutOfSupport)
	_, err = FitExponential([]float64{1, -1})
	check("exponential negative", err, ErrOutOfSupport)
	_, err = FitExponential([]float64{0, 0})
	check("exponential zeros", err, ErrSamplesEqual)
	_, err = FitPoisson([]float64{})
	check("Poisson empty", err, ErrEmptySample)
	_, err = FitGeometric([]float64{0.5, 2})
	check("geometric below 1", err, ErrOutOfSupport)
	_, err = FitRayleigh([]float64{-2})
	check("Rayleigh negative", err, ErrOutOfSupport)
	_, err = FitWeibullMLE(nil)
	check("Weibull empty", err, ErrEmptySample)
	_, err = FitWeibullMLE([]float64{0, 1})
	check("Weibull zero", err, ErrOutOfSupport)
	_, err = FitWeibullMLE([]float64{3, 3})
	check("Weibull equal", err, ErrSamplesEqual)
}

func TestFitWeibullMLE(t *testing.T) {
	for _, want := range []WeibullDist{
		{K: 1.5, Lambda: 2},
		{K: 0.7, Lambda: 100},
		{K: 5, Lambda: 0.01},
	} {
		want.Src = rand.NewSource(1)
		xs := Variates(want, 10000)
		got, err := FitWeibullMLE(xs)
		if err != nil {
			t.Errorf("fitting %+v: %v", want, err)
			continue
		}
		if math.Abs(got.K/want.K-1) > 0.06 || math.Abs(got.Lambda/want.Lambda-1) > 0.06 {
			t.Errorf("fitting %+v: got K=%v, λ=%v", want, got.K, got.Lambda)
		}
	}
}

func TestFitRecovers(t *testing.T) {
	src := rand.NewSource(2)
	const n = 20000

	xs := Variates(NormalDist{Mu: -3, Sigma: 0.5, Src: src}, n)
	if d, err := FitNormal(xs); err != nil || math.Abs(d.Mu+3) > 0.02 || math.Abs(d.Sigma-0.5) > 0.02 {
		t.Errorf("FitNormal: got %+v, %v", d, err)
	}

	xs = Variates(ExponentialDist{Rate: 4, Src: src}, n)
	if d, err := FitExponential(xs); err != nil || math.Abs(d.Rate-4) > 0.15 {
		t.Errorf("FitExponential: got %+v, %v", d, err)
	}

	xs = Variates(PoissonDist{Lambda: 7, Src: src}, n)
	if d, err := FitPoisson(xs); err != nil || math.Abs(d.Lambda-7) > 0.1 {
		t.Errorf("FitPoisson: got %+v, %v", d, err)
	}

	xs = Variates(GeometricDist{P: 0.2, Src: src}, n)
	if d, err := FitGeometric(xs); err != nil || math.Abs(d.P-0.2) > 0.01 {
		t.Errorf("FitGeometric: got %+v, %v", d, err)
	}

	xs = Variates(RayleighDist{Sigma: 3, Src: src}, n)
	if d, err := FitRayleigh(xs); err != nil || math.Abs(d.Sigma-3) > 0.05 {
		t.Errorf("FitRayleigh: got %+v, %v", d, err)
	}
}
