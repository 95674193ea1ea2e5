// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// An Integrator computes definite integrals of scalar functions by
// globally adaptive Gauss-Legendre quadrature.
//
// The zero value of Integrator is a reasonable default configuration.
type Integrator struct {
	// MaxIter bounds the number of panel subdivisions. If zero,
	// DefaultMaxIter is used.
	MaxIter int

	// Points is the number of Gauss-Legendre points per panel.
	// If zero, 15 points are used.
	Points int

	// AbsTol and RelTol bound the estimated error of the
	// result. Subdivision stops once the estimated error is at
	// most max(AbsTol, RelTol*|result|). If zero, they default
	// to 1e-12 and 1e-10.
	AbsTol, RelTol float64
}

func (in Integrator) maxIter() int {
	if in.MaxIter <= 0 {
		return DefaultMaxIter
	}
	return in.MaxIter
}

func (in Integrator) points() int {
	if in.Points <= 0 {
		return 15
	}
	return in.Points
}

func (in Integrator) tol(sum float64) float64 {
	abs, rel := in.AbsTol, in.RelTol
	if abs <= 0 {
		abs = 1e-12
	}
	if rel <= 0 {
		rel = 1e-10
	}
	return math.Max(abs, rel*math.Abs(sum))
}

// Integrate returns the integral of f from a to b.
//
// Either bound may be infinite. An infinite interval is mapped onto a
// finite one by substitution before integration:
//
//	[a, ∞)   x = a + t/(1-t),   t ∈ [0, 1)
//	(-∞, b]  x = b - (1-t)/t,   t ∈ (0, 1]
//	(-∞, ∞)  x = t/(1-t²),      t ∈ (-1, 1)
//
// The Jacobian of each substitution is folded into the integrand, and
// the transformed integrand is taken to be 0 at the end of the
// interval that maps to infinity.
//
// If a > b, Integrate returns the negated integral from b to a. If a
// == b, it returns 0. If either bound is NaN, it returns NaN.
func (in Integrator) Integrate(f func(float64) float64, a, b float64) float64 {
	switch {
	case math.IsNaN(a) || math.IsNaN(b):
		return nan
	case a == b:
		return 0
	case a > b:
		return -in.Integrate(f, b, a)
	}

	// scale multiplies y by the Jacobian j, treating y == 0 as
	// exactly 0 even if j has overflowed.
	scale := func(y, j float64) float64 {
		if y == 0 {
			return 0
		}
		return y * j
	}

	lInf, rInf := math.IsInf(a, -1), math.IsInf(b, 1)
	switch {
	case lInf && rInf:
		return in.finite(func(t float64) float64 {
			if math.Abs(t) >= 1 {
				return 0
			}
			t2 := t * t
			d := 1 - t2
			return scale(f(t/d), (1+t2)/(d*d))
		}, -1, 1)
	case rInf:
		return in.finite(func(t float64) float64 {
			if t >= 1 {
				return 0
			}
			d := 1 - t
			return scale(f(a+t/d), 1/(d*d))
		}, 0, 1)
	case lInf:
		return in.finite(func(t float64) float64 {
			if t <= 0 {
				return 0
			}
			return scale(f(b-(1-t)/t), 1/(t*t))
		}, 0, 1)
	}
	return in.finite(f, a, b)
}

// A panel is a subinterval [a, b] of a finite integral, with its
// Gauss-Legendre estimate and the estimates of its two halves.
type panel struct {
	a, b              float64
	whole, left, right float64
}

func (p panel) estimate() float64 {
	return p.left + p.right
}

func (p panel) err() float64 {
	return math.Abs(p.left + p.right - p.whole)
}

// finite integrates f over the finite interval [a, b], a < b.
//
// Each panel's error is estimated by comparing its rule to the sum of
// the rule applied to its two halves. Each iteration splits the panel
// with the largest estimated error.
func (in Integrator) finite(f func(float64) float64, a, b float64) float64 {
	n := in.points()
	rule := func(a, b float64) float64 {
		return quad.Fixed(f, a, b, n, quad.Legendre{}, 0)
	}
	split := func(a, b, whole float64) panel {
		m := a + (b-a)/2
		return panel{a: a, b: b, whole: whole, left: rule(a, m), right: rule(m, b)}
	}

	panels := []panel{split(a, b, rule(a, b))}
	var sum float64
	for i := 0; ; i++ {
		sum = 0
		errSum, worst := 0.0, 0
		for j, p := range panels {
			sum += p.estimate()
			e := p.err()
			errSum += e
			if e > panels[worst].err() {
				worst = j
			}
		}
		if math.IsNaN(sum) || errSum <= in.tol(sum) || i >= in.maxIter() {
			break
		}

		p := panels[worst]
		m := p.a + (p.b-p.a)/2
		if !(p.a < m && m < p.b) {
			// The panel cannot be split any further.
			break
		}
		panels[worst] = split(p.a, m, p.left)
		panels = append(panels, split(m, p.b, p.right))
	}
	return sum
}
