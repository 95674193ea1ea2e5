// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// A Minimizer finds local minima of scalar functions using only
// function evaluations.
//
// The zero value of Minimizer is a reasonable default configuration.
type Minimizer struct {
	// MaxIter bounds both the number of bracket expansions and
	// the number of golden-section steps. If zero,
	// DefaultMaxIter is used.
	MaxIter int

	// Tol is the relative tolerance on the location of the
	// minimum. The search stops once the minimum is bracketed to
	// within Tol*|x| + 1e-10. If zero, 1e-8 is used. Golden
	// section search cannot do much better than the square root
	// of the machine epsilon.
	Tol float64

	// Step is the initial step away from the guess. If zero, it
	// is 0.1*max(1, |guess|).
	Step float64
}

// 1/φ and φ, where φ is the golden ratio.
const (
	invPhi = 0.61803398874989484820
	phi    = 1.61803398874989484820
)

func (m Minimizer) maxIter() int {
	if m.MaxIter <= 0 {
		return DefaultMaxIter
	}
	return m.MaxIter
}

func (m Minimizer) tol(x float64) float64 {
	tol := m.Tol
	if tol <= 0 {
		tol = 1e-8
	}
	return tol*math.Abs(x) + 1e-10
}

// Minimize returns a local minimum of f near guess.
//
// It first walks downhill from guess, growing the step by the golden
// ratio, until f rises on both sides of the lowest point seen. It then
// narrows that bracket by golden section search. The result is a
// local minimum: if f has several, which one is found depends on
// guess.
//
// If the bracket cannot be found or narrowed within m.MaxIter steps,
// or f returns NaN, Minimize returns the lowest point seen so far and
// false.
func (m Minimizer) Minimize(f func(float64) float64, guess float64) (float64, bool) {
	if !isFinite(guess) {
		return guess, false
	}
	h := m.Step
	if !(h > 0) {
		h = 0.1 * math.Max(1, math.Abs(guess))
	}

	a, fa := guess, f(guess)
	if math.IsNaN(fa) {
		return guess, false
	}
	b, fb := a+h, f(a+h)
	if !(fb < fa) {
		c, fc := a-h, f(a-h)
		if !(fc < fa) {
			// Already bracketed.
			return m.golden(f, c, a, b, fa)
		}
		b, fb = c, fc
	}

	// fb < fa. Keep going in the direction of b.
	for i := 0; i < m.maxIter(); i++ {
		c := b + phi*(b-a)
		fc := f(c)
		if math.IsNaN(fc) || !isFinite(c) {
			return b, false
		}
		if fc >= fb {
			return m.golden(f, a, b, c, fb)
		}
		a, b, fb = b, c, fc
	}
	return b, false
}

// golden narrows the bracket formed by the ends a and c around x,
// where f(x) = fx is no greater than f at either end. a and c may be
// given in either order.
func (m Minimizer) golden(f func(float64) float64, a, x, c, fx float64) (float64, bool) {
	lo, hi := math.Min(a, c), math.Max(a, c)
	for i := 0; i < m.maxIter(); i++ {
		if hi-lo <= m.tol(x) {
			return x, true
		}

		// Probe the larger of the two segments.
		var u float64
		if hi-x > x-lo {
			u = x + (1-invPhi)*(hi-x)
		} else {
			u = x - (1-invPhi)*(x-lo)
		}
		fu := f(u)
		if math.IsNaN(fu) {
			return x, false
		}

		if fu < fx {
			if u > x {
				lo = x
			} else {
				hi = x
			}
			x, fx = u, fu
		} else {
			if u > x {
				hi = u
			} else {
				lo = u
			}
		}
	}
	return x, false
}
