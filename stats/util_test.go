// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"sort"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// testFunc checks f against the table vals, in increasing order of x.
func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	for _, x := range xs {
		want, got := vals[x], f(x)
		if want == got || math.IsNaN(want) && math.IsNaN(got) || aeq(want, got) {
			continue
		}
		var label string
		if math.IsInf(x, 1) {
			label = "∞"
		} else if math.IsInf(x, -1) {
			label = "-∞"
		} else {
			label = fmt.Sprintf("%v", x)
		}
		t.Errorf("want %s(%s)=%v, got %v", name, label, want, got)
	}
}

// testDiscreteCDF checks that the CDF of dist is the running sum of
// its PMF over the first few hundred points of its lattice, and that
// it is constant between lattice points.
func testDiscreteCDF(t *testing.T, name string, dist DiscreteDist) {
	t.Helper()
	s, step := dist.Support(), dist.Step()
	hi := s.Max
	if math.IsInf(hi, 1) {
		hi = s.Min + 200*step
	}

	var sum float64
	for i := -1; ; i++ {
		x := s.Min + float64(i)*step
		if x > hi {
			break
		}
		sum += dist.PDF(x)
		for _, dx := range []float64{0, step / 2} {
			got := dist.CDF(x + dx)
			if math.Abs(got-sum) > 1e-10 {
				t.Errorf("%s(%v): want %v, got %v", name, x+dx, sum, got)
			}
		}
	}
}

func TestSeries(t *testing.T) {
	// Geometric series 1 + 1/2 + 1/4 + ...
	got := series(func(n float64) float64 { return math.Pow(0.5, n) })
	if !aeq(2, got) {
		t.Errorf("want 2, got %v", got)
	}
	if got := series(func(n float64) float64 { return 0 }); got != 0 {
		t.Errorf("want 0, got %v", got)
	}
}
