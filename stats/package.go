// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats implements univariate statistical distributions.
//
// Every distribution satisfies the Dist interface. Distributions that
// have closed forms for their quantile function, mode or moments
// provide them as methods. For everything else, Numerical implements
// these in terms of the Dist interface alone, using root finding,
// minimization and quadrature from package mathx.
package stats // import "github.com/aclements/go-moredist/stats"

import (
	"math"

	"github.com/pkg/errors"
)

var inf = math.Inf(1)
var nan = math.NaN()

var (
	// ErrEmptySample is returned when fitting a distribution to
	// an empty sample.
	ErrEmptySample = errors.New("empty sample")

	// ErrOutOfSupport is returned when fitting a distribution to a
	// sample containing values the distribution cannot produce.
	ErrOutOfSupport = errors.New("sample value outside of support")

	// ErrSamplesEqual is returned when fitting a distribution
	// requires the sample to have some spread.
	ErrSamplesEqual = errors.New("all samples are equal")

	// ErrNoConvergence is returned when a numerical method used
	// for fitting does not converge.
	ErrNoConvergence = errors.New("failed to converge")
)
