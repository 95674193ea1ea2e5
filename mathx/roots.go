// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// A RootFinder finds zeros of scalar functions.
//
// The zero value of RootFinder is a reasonable default configuration.
type RootFinder struct {
	// MaxIter bounds the number of function evaluations of a
	// single search. If zero, DefaultMaxIter is used.
	MaxIter int

	// XTol is the relative tolerance on the location of the
	// root: a search stops once the root is known to within
	// XTol*|x|, or to within the smallest normal float64 near
	// zero. If zero, 1e-12 is used.
	XTol float64

	// FTol is the absolute tolerance on the function value. A
	// point x with |f(x)| <= FTol is accepted as a root. If
	// zero, 1e-14 is used.
	FTol float64
}

func (r RootFinder) maxIter() int {
	if r.MaxIter <= 0 {
		return DefaultMaxIter
	}
	return r.MaxIter
}

// smallestNormal is the smallest positive normal float64.
const smallestNormal = 0x1p-1022

func (r RootFinder) xtol(x float64) float64 {
	tol := r.XTol
	if tol <= 0 {
		tol = 1e-12
	}
	return math.Max(smallestNormal, tol*math.Abs(x))
}

func (r RootFinder) ftol() float64 {
	if r.FTol <= 0 {
		return 1e-14
	}
	return r.FTol
}

// Bracket returns a root of f in [lo, hi]. f(lo) and f(hi) must have
// opposite signs, or one of them must be exactly zero.
//
// Bracket combines regula falsi with bisection. The interpolated
// point is used only if it falls well inside the current bracket and
// the previous step at least halved the bracket; otherwise the
// bracket is bisected. A bracket on one side of zero that spans more
// than a factor of 16 is bisected at its geometric mean, so roots
// many orders of magnitude smaller than the bracket are found within
// the iteration budget.
//
// If the bounds are not finite, do not bracket a sign change, or the
// search does not converge within r.MaxIter evaluations, Bracket
// returns NaN, false.
func (r RootFinder) Bracket(f func(float64) float64, lo, hi float64) (float64, bool) {
	if !(lo < hi) || !isFinite(lo) || !isFinite(hi) {
		return nan, false
	}
	flo, fhi := f(lo), f(hi)
	switch {
	case flo == 0:
		return lo, true
	case fhi == 0:
		return hi, true
	case math.IsNaN(flo) || math.IsNaN(fhi):
		return nan, false
	case math.Signbit(flo) == math.Signbit(fhi):
		return nan, false
	}

	ftol := r.ftol()
	halved := true
	for i := 0; i < r.maxIter(); i++ {
		w := hi - lo
		x := bisect(lo, hi)
		if halved {
			if s := lo - flo*w/(fhi-flo); s > lo+w/16 && s < hi-w/16 {
				x = s
			}
		}

		fx := f(x)
		if math.IsNaN(fx) {
			return nan, false
		}
		if math.Abs(fx) <= ftol {
			return x, true
		}
		if math.Signbit(fx) == math.Signbit(flo) {
			lo, flo = x, fx
		} else {
			hi, fhi = x, fx
		}

		if hi-lo <= r.xtol(x) {
			return lo + (hi-lo)/2, true
		}
		halved = hi-lo <= w/2
	}
	return nan, false
}

// bisect returns the point that splits [lo, hi] in half, either
// arithmetically or, for a wide bracket on one side of zero,
// geometrically.
func bisect(lo, hi float64) float64 {
	switch {
	case lo >= 0 && hi > 16*lo:
		return math.Sqrt(math.Max(lo, smallestNormal) * hi)
	case hi <= 0 && lo < 16*hi:
		return -math.Sqrt(math.Max(-hi, smallestNormal) * -lo)
	}
	return lo + (hi-lo)/2
}

// Newton returns a root of f starting from guess. f returns the value
// of the target function and its derivative at x.
//
// Each Newton step is accepted only if it yields a finite value of
// smaller magnitude than the current one. Otherwise the step is
// halved until it does. If the derivative is zero or not finite, the
// previous accepted step is halved instead.
//
// Newton succeeds once |f(x)| <= r.FTol, or once an accepted step is
// within XTol of x and |f(x)| <= sqrt(r.FTol). It returns NaN, false
// if halving can no longer reduce |f(x)|, or the search exceeds
// r.MaxIter evaluations. Callers that can bracket the root should
// fall back to Bracket in that case.
func (r RootFinder) Newton(f func(x float64) (y, dy float64), guess float64) (float64, bool) {
	if !isFinite(guess) {
		return nan, false
	}
	x := guess
	y, dy := f(x)
	if math.IsNaN(y) {
		return nan, false
	}

	ftol := r.ftol()
	// Residual at which a converged search still counts as a root.
	stallTol := math.Sqrt(ftol)
	prev := 0.0
	for evals := 1; ; {
		if math.Abs(y) <= ftol {
			return x, true
		}
		if evals >= r.maxIter() {
			return nan, false
		}

		step := y / dy
		if !isFinite(step) {
			if prev == 0 {
				return nan, false
			}
			step = prev / 2
		}

		for {
			xn := x - step
			yn, dyn := f(xn)
			evals++
			if isFinite(yn) && math.Abs(yn) < math.Abs(y) {
				x, y, dy, prev = xn, yn, dyn, step
				break
			}
			step /= 2
			if math.Abs(step) <= r.xtol(x) {
				return nan, false
			}
			if evals >= r.maxIter() {
				return nan, false
			}
		}

		if math.Abs(prev) <= r.xtol(x) && math.Abs(y) <= stallTol {
			return x, true
		}
	}
}

// Expand searches for a bracket of a root of f around guess. It
// starts from [guess-step, guess+step] and repeatedly widens the end
// whose value is smaller in magnitude, by 1.6 times the current
// width, until f changes sign. If step <= 0, it defaults to
// 0.1*max(1, |guess|).
//
// The returned bracket is suitable for Bracket. Expand returns ok ==
// false if no sign change is found within r.MaxIter evaluations, f
// returns NaN, or the bracket overflows.
func (r RootFinder) Expand(f func(float64) float64, guess, step float64) (lo, hi float64, ok bool) {
	if !isFinite(guess) {
		return nan, nan, false
	}
	if !(step > 0) || !isFinite(step) {
		step = 0.1 * math.Max(1, math.Abs(guess))
	}
	const grow = 1.6

	lo, hi = guess-step, guess+step
	flo, fhi := f(lo), f(hi)
	for i := 2; i < r.maxIter(); i++ {
		if math.IsNaN(flo) || math.IsNaN(fhi) {
			break
		}
		if flo == 0 || fhi == 0 || math.Signbit(flo) != math.Signbit(fhi) {
			return lo, hi, true
		}
		if math.Abs(flo) < math.Abs(fhi) {
			lo -= grow * (hi - lo)
			flo = f(lo)
		} else {
			hi += grow * (hi - lo)
			fhi = f(hi)
		}
		if !isFinite(lo) || !isFinite(hi) {
			break
		}
	}
	return nan, nan, false
}
