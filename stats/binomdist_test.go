// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"testing"
)

func TestBinomialDist(t *testing.T) {
	dist := BinomialDist{N: 5, P: 0.2}
	name := fmt.Sprintf("%+v", dist)
	testFunc(t, name+".PMF", dist.PMF,
		map[float64]float64{
			-1000: 0,
			-1:    0,
			0:     0.32768,
			1:     0.4096,
			1.5:   0.4096,
			2:     0.2048,
			3:     0.0512,
			4:     0.0064,
			5:     math.Pow(dist.P, 5),
			6:     0,
			1000:  0,
		})
	testDiscreteCDF(t, name+".CDF", dist)
	testFunc(t, name+".Survival", dist.Survival,
		map[float64]float64{
			-1:  1,
			0:   1 - 0.32768,
			3:   0.0064 + 0.00032,
			4.5: 0.00032,
			5:   0,
		})
	if got := dist.LogProb(2.5); !math.IsInf(got, -1) {
		t.Errorf("%s.LogProb(2.5): want -Inf, got %v", name, got)
	}

	// Quantiles land on the lattice.
	testFunc(t, name+" quantile", func(p float64) float64 { return Quantile(dist, p) },
		map[float64]float64{
			0:     0,
			0.3:   0,
			0.5:   1,
			0.9:   2,
			0.995: 4,
			1:     5,
		})
}

func TestBinomialDegenerate(t *testing.T) {
	for _, dist := range []BinomialDist{{N: 4, P: 0}, {N: 4, P: 1}} {
		want := float64(dist.N) * dist.P
		for k := -1.0; k <= 5; k++ {
			e := 0.0
			if k == want {
				e = 1
			}
			if got := dist.PMF(k); got != e {
				t.Errorf("%+v.PMF(%v): want %v, got %v", dist, k, e, got)
			}
		}
		if got := LogLikelihood(dist, []float64{want, want}); got != 0 {
			t.Errorf("%+v: log likelihood at the atom: want 0, got %v", dist, got)
		}
	}
}

func TestBinomialNormalApprox(t *testing.T) {
	dist := BinomialDist{N: 30, P: 0.5}
	norm := dist.NormalApprox()
	for k := 10; k <= 20; k++ {
		b := dist.PMF(float64(k))
		n := norm.CDF(float64(k)+0.5) - norm.CDF(float64(k)-0.5)

		// Only the center of the distribution is close, even
		// with P near 0.5.
		if err := math.Abs(b/n - 1); err > 0.01 {
			t.Errorf("want %v ≅ %v at %d", b, n, k)
		}
	}
}

func TestBinomialMode(t *testing.T) {
	for _, d := range []BinomialDist{{N: 4, P: 0.5}, {N: 5, P: 0.5}, {N: 10, P: 0.35}, {N: 7, P: 0}, {N: 7, P: 1}} {
		m := d.Mode()
		for k := 0.0; k <= float64(d.N); k++ {
			if d.PMF(k) > d.PMF(m) {
				t.Errorf("%+v: PMF(%v) > PMF(Mode()=%v)", d, k, m)
			}
		}
		if m > 0 && d.PMF(m-1) == d.PMF(m) {
			t.Errorf("%+v: Mode()=%v is not the lower mode", d, m)
		}
	}
}
