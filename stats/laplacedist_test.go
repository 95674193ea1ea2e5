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

func laplaceSample(d LaplaceDist, n int, seed uint64) []float64 {
	d.Src = rand.NewSource(seed)
	return Variates(d, n)
}

func TestFitLaplaceMLE(t *testing.T) {
	want := LaplaceDist{Mu: 1, Sigma: 2, Kappa: 0.7}
	xs := laplaceSample(want, 20000, 1)
	got, err := FitLaplaceMLE(xs, want.Kappa)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got.Mu-want.Mu) > 0.1 || math.Abs(got.Sigma-want.Sigma) > 0.1 || math.Abs(got.Kappa-want.Kappa) > 0.05 {
		t.Errorf("want %+v, got %+v", want, got)
	}

	// With kappa 0, the location is the sample median.
	sym := LaplaceDist{Mu: -5, Sigma: 0.5}
	xs = laplaceSample(sym, 20000, 2)
	got, err = FitLaplaceMLE(xs, 0)
	if err != nil {
		t.Fatal(err)
	}
	if med := (Sample{Xs: xs}).Quantile(0.5); math.Abs(got.Mu-med) > 0.01 {
		t.Errorf("location: want sample median %v, got %v", med, got.Mu)
	}
	if math.Abs(got.Sigma-0.5) > 0.03 || math.Abs(got.Kappa-1) > 0.05 {
		t.Errorf("want %+v, got %+v", sym, got)
	}
}

func TestFitLaplaceAsymmetry(t *testing.T) {
	want := LaplaceDist{Mu: 1, Sigma: 2, Kappa: 0.7}
	xs := laplaceSample(want, 20000, 3)
	got, err := FitLaplaceAsymmetry(xs, want.Mu, want.Sigma)
	if err != nil {
		t.Fatal(err)
	}
	if got.Mu != want.Mu || got.Sigma != want.Sigma || math.Abs(got.Kappa-want.Kappa) > 0.05 {
		t.Errorf("want %+v, got %+v", want, got)
	}

	// Balanced deviations are exactly symmetric.
	got, err = FitLaplaceAsymmetry([]float64{-1, 1, -2, 2}, 0, 1)
	if err != nil || got.Kappa != 1 {
		t.Errorf("symmetric sample: want κ=1, got %+v, %v", got, err)
	}
}

func TestFitLaplaceMM(t *testing.T) {
	want := LaplaceDist{Mu: 1, Sigma: 2, Kappa: 1}
	xs := laplaceSample(want, 20000, 4)
	got, err := FitLaplaceMM(xs)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got.Mu-want.Mu) > 0.1 || math.Abs(got.Sigma-want.Sigma) > 0.1 || got.Kappa != 1 {
		t.Errorf("want %+v, got %+v", want, got)
	}
}

func TestFitLaplaceErrors(t *testing.T) {
	check := func(name string, err, want error) {
		t.Helper()
		if errors.Cause(err) != want {
			t.Errorf("%s: want error %v, got %v", name, want, err)
		}
	}
	var err error
	_, err = FitLaplaceMLE(nil, 1)
	check("MLE empty", err, ErrEmptySample)
	_, err = FitLaplaceMLE([]float64{3, 3, 3}, 1)
	check("MLE equal", err, ErrSamplesEqual)
	_, err = FitLaplaceAsymmetry(nil, 0, 1)
	check("asymmetry empty", err, ErrEmptySample)
	_, err = FitLaplaceAsymmetry([]float64{1, 2, 3}, 0, 1)
	check("asymmetry one-sided", err, ErrSamplesEqual)
	_, err = FitLaplaceMM(nil)
	check("MM empty", err, ErrEmptySample)

	if _, err = FitLaplaceAsymmetry([]float64{1, 2}, 0, 0); err == nil {
		t.Errorf("asymmetry with zero scale: want error")
	}
}
