// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx provides the scalar numerical methods behind the
// generic distribution algorithms in package stats: root finding,
// one-dimensional minimization, and adaptive quadrature.
//
// None of these methods panic or return errors on numerical trouble.
// Failure is reported through a boolean result or a NaN, and it is up
// to the caller to check it.
package mathx // import "github.com/aclements/go-moredist/mathx"

import "math"

var nan = math.NaN()

// DefaultMaxIter is the iteration ceiling used by RootFinder,
// Minimizer and Integrator when their MaxIter field is zero.
const DefaultMaxIter = 100

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
