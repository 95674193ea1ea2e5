// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

func TestSupportKind(t *testing.T) {
	for _, test := range []struct {
		s    Support
		kind SupportKind
		name string
	}{
		{Support{0, 1}, SupportFinite, "finite"},
		{Support{0, inf}, SupportLeftBounded, "left-bounded"},
		{Support{-inf, 0}, SupportRightBounded, "right-bounded"},
		{realLine, SupportInfinite, "infinite"},
		{Support{2, 2}, SupportFinite, "finite"},
	} {
		if got := test.s.Kind(); got != test.kind {
			t.Errorf("%+v.Kind(): want %v, got %v", test.s, test.kind, got)
		}
		if got := test.s.Kind().String(); got != test.name {
			t.Errorf("%+v.Kind().String(): want %q, got %q", test.s, test.name, got)
		}
		if got := test.s.Finite(); got != (test.kind == SupportFinite) {
			t.Errorf("%+v.Finite(): want %v", test.s, !got)
		}
	}
}

func TestSupportContains(t *testing.T) {
	s := Support{0, inf}
	for x, want := range map[float64]bool{-1: false, 0: true, 1e300: true, inf: true} {
		if got := s.Contains(x); got != want {
			t.Errorf("%+v.Contains(%v): want %v, got %v", s, x, want, got)
		}
	}
	if s.Contains(math.NaN()) {
		t.Errorf("%+v.Contains(NaN): want false", s)
	}
}

func TestSupportClamp(t *testing.T) {
	check := func(s Support, lo, hi float64, want Support) {
		t.Helper()
		if got := s.Clamp(lo, hi); got != want {
			t.Errorf("%+v.Clamp(%v, %v): want %+v, got %+v", s, lo, hi, want, got)
		}
	}
	check(realLine, 0, 1, Support{0, 1})
	check(Support{0, inf}, -5, 3, Support{0, 3})
	check(Support{0, 1}, -inf, inf, Support{0, 1})
	check(Support{0, 1}, 2, 3, Support{2, 1})
}

// cdfOnly hides every optional method of a distribution.
type cdfOnly struct{ d Dist }

func (c cdfOnly) PDF(x float64) float64 { return c.d.PDF(x) }
func (c cdfOnly) CDF(x float64) float64 { return c.d.CDF(x) }
func (c cdfOnly) Support() Support      { return c.d.Support() }
func (c cdfOnly) Rand() float64         { return c.d.Rand() }

func TestSurvival(t *testing.T) {
	d := ExponentialDist{Rate: 1}
	// The closed form keeps its precision far in the tail.
	if got, want := Survival(d, 50), math.Exp(-50); math.Abs(got/want-1) > 1e-12 {
		t.Errorf("Survival(%+v, 50): want %v, got %v", d, want, got)
	}
	// Without it, Survival falls back to 1-CDF.
	testFunc(t, "Survival(cdfOnly)", func(x float64) float64 { return Survival(cdfOnly{d}, x) },
		map[float64]float64{
			-1: 1,
			0:  1,
			1:  math.Exp(-1),
			2:  math.Exp(-2),
		})
}

func TestVariateAllocs(t *testing.T) {
	src := rand.NewSource(1)
	var u, e float64
	allocs := testing.AllocsPerRun(100, func() {
		u = uniformVariate(src)
		e = expVariate(src)
	})
	if allocs != 0 {
		t.Errorf("variates from a Source: want 0 allocations, got %v", allocs)
	}
	if !(0 <= u && u < 1) || !(e >= 0) || math.IsInf(e, 1) {
		t.Errorf("variates out of range: uniform %v, exponential %v", u, e)
	}

	// The same Source gives the same stream.
	a, b := rand.NewSource(7), rand.NewSource(7)
	for i := 0; i < 10; i++ {
		if x, y := uniformVariate(a), uniformVariate(b); x != y {
			t.Fatalf("variate %d: %v != %v from equal seeds", i, x, y)
		}
	}
}
