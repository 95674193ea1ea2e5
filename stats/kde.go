// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moredist/mathx"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// KDE represents options for constructing a kernel density estimate.
//
// Kernel density estimation is a method for constructing an estimate
// ƒ̂(x) of a unknown distribution ƒ(x) given a sample from that
// distribution.  Unlike many techniques, kernel density estimation is
// non-parametric: in general, it doesn't assume any particular true
// distribution (note, however, that the resulting distribution
// depends deeply on the selected bandwidth, and many bandwidth
// estimation techniques assume normal reference rules).
//
// A kernel density estimate is similar to a histogram, except that it
// is a smooth probability estimate and does not require choosing a
// bin size and discretizing the data.
//
// A kernel density estimate has no closed-form quantile function,
// mode or moments. Use Numerical to compute them.
//
// The default (zero) value of KDE is a reasonable default
// configuration.
type KDE struct {
	// Kernel is the kernel to use for the KDE.
	Kernel KDEKernel

	// Bandwidth is the bandwidth to use for the KDE.
	//
	// If this is zero, the bandwidth is computed from the
	// provided data using a default bandwidth estimator
	// (currently BandwidthScott).
	Bandwidth float64

	// BoundaryMethod is the boundary correction method to use for
	// the KDE. The default value is BoundaryReflect; however, the
	// default bounds are effectively +/-inf, which is equivalent
	// to performing no boundary correction.
	BoundaryMethod KDEBoundaryMethod

	// [BoundaryMin, BoundaryMax) specify a bounded support for
	// the KDE. If both are 0 (their default values), they are
	// treated as +/-inf.
	//
	// To specify a half-bounded support, set Min to math.Inf(-1)
	// or Max to math.Inf(1).
	BoundaryMin float64
	BoundaryMax float64

	// Src is the source of random variates drawn from the KDE.
	// If nil, the global source is used.
	Src rand.Source
}

// BandwidthSilverman is a bandwidth estimator implementing
// Silverman's Rule of Thumb. It's fast, but not very robust to
// outliers as it assumes data is approximately normal.
//
// Silverman, B. W. (1986) Density Estimation.
func BandwidthSilverman(data interface {
	StdDev() float64
	Weight() float64
}) float64 {
	return 1.06 * data.StdDev() * math.Pow(data.Weight(), -1.0/5)
}

// BandwidthScott is a bandwidth estimator implementing Scott's Rule.
// This is generally robust to outliers: it chooses the minimum
// between the sample's standard deviation and an robust estimator of
// a Gaussian distribution's standard deviation.
//
// Scott, D. W. (1992) Multivariate Density Estimation: Theory,
// Practice, and Visualization.
func BandwidthScott(data interface {
	StdDev() float64
	Weight() float64
	Quantile(float64) float64
}) float64 {
	iqr := data.Quantile(0.75) - data.Quantile(0.25)
	hScale := 1.06 * math.Pow(data.Weight(), -1.0/5)
	stdDev := data.StdDev()
	if stdDev < iqr/1.349 || iqr == 0 {
		// Use Silverman's Rule of Thumb
		return hScale * stdDev
	}
	// Use IQR/1.349 as a robust estimator of the standard
	// deviation of a Gaussian distribution.
	return hScale * (iqr / 1.349)
}

// KDEKernel represents a kernel to use for a KDE.
type KDEKernel int

//go:generate stringer -type=KDEKernel

const (
	GaussianKernel KDEKernel = iota

	// DeltaKernel is a Dirac delta function.  The PDF of such a
	// KDE is not well-defined, but the CDF will represent each
	// sample as an instantaneous increase.  This kernel ignores
	// bandwidth and never requires boundary correction.
	DeltaKernel
)

// KDEBoundaryMethod represents a boundary correction method for
// constructing a KDE with bounded support.
type KDEBoundaryMethod int

//go:generate stringer -type=KDEBoundaryMethod

const (
	// BoundaryReflect reflects the density estimate at the
	// boundaries.  For example, for a KDE with support [0, inf),
	// this is equivalent to ƒ̂ᵣ(x)=ƒ̂(x)+ƒ̂(-x) for x>=0.  This is a
	// simple and fast technique, but enforces that ƒ̂ᵣ'(0)=0, so
	// it may not be applicable to all distributions.
	BoundaryReflect KDEBoundaryMethod = iota

	// boundaryNone represents no boundary correction.
	//
	// This is used internally when the bounds are -/+inf.
	boundaryNone
)

// From returns the kernel density estimate for the sample s.
//
// From panics if s.Weights is non-nil and has a different length
// than s.Xs, or if k.Kernel is unknown.
func (k KDE) From(s Sample) *KDEDist {
	if s.Weights != nil && len(s.Xs) != len(s.Weights) {
		panic("len(xs) != len(weights)")
	}

	// Compute bandwidth
	h := k.Bandwidth
	if h == 0 {
		h = BandwidthScott(s)
	}

	// Construct kernel
	var kernel Dist
	switch k.Kernel {
	default:
		panic(fmt.Sprint("unknown kernel ", k.Kernel))
	case GaussianKernel:
		kernel = NormalDist{Mu: 0, Sigma: h, Src: k.Src}
	case DeltaKernel:
		kernel = DeltaDist{0}
	}

	// Normalize boundaries
	bm := k.BoundaryMethod
	min, max := k.BoundaryMin, k.BoundaryMax
	if min == 0 && max == 0 {
		min, max = math.Inf(-1), math.Inf(1)
	}
	if math.IsInf(min, -1) && math.IsInf(max, 1) {
		bm = boundaryNone
	}

	var cum []float64
	if s.Weights != nil {
		cum = floats.CumSum(make([]float64, len(s.Weights)), s.Weights)
	}

	return &KDEDist{
		kernel:  kernel,
		xs:      s.Xs,
		weights: s.Weights,
		cum:     cum,
		total:   s.Weight(),
		bm:      bm,
		min:     min,
		max:     max,
		src:     k.Src,
	}
}

// KDEDist is a kernel density estimate. It implements Dist.
type KDEDist struct {
	kernel      Dist
	xs, weights []float64
	cum         []float64 // Cumulative weights, or nil if unweighted
	total       float64
	bm          KDEBoundaryMethod
	min, max    float64 // Support bounds
	src         rand.Source
}

// eval returns the weighted mean of f(x - xi) over the sample points
// xi. Evaluating kernels shifted by kde.xs all at x is equivalent to
// evaluating one unshifted kernel at x - kde.xs.
func (kde *KDEDist) eval(f func(float64) float64, x float64) float64 {
	var sum float64
	for i, xi := range kde.xs {
		y := f(x - xi)
		if kde.weights != nil {
			y *= kde.weights[i]
		}
		sum += y
	}
	return sum / kde.total
}

func (kde *KDEDist) PDF(x float64) float64 {
	// Apply boundary
	if x < kde.min || x >= kde.max {
		return 0
	}

	y := func(x float64) float64 {
		return kde.eval(kde.kernel.PDF, x)
	}
	switch kde.bm {
	default:
		panic("unknown boundary correction method")
	case boundaryNone:
		return y(x)
	case BoundaryReflect:
		if math.IsInf(kde.max, 1) {
			return y(x) + y(2*kde.min-x)
		} else if math.IsInf(kde.min, -1) {
			return y(x) + y(2*kde.max-x)
		} else {
			d := 2 * (kde.max - kde.min)
			w := 2 * (x - kde.min)
			return series(func(n float64) float64 {
				// Points >= x
				return y(x+n*d) + y(x+n*d-w)
			}) + series(func(n float64) float64 {
				// Points < x
				return y(x-(n+1)*d) + y(x-(n+1)*d-w)
			})
		}
	}
}

func (kde *KDEDist) CDF(x float64) float64 {
	// Apply boundary
	if x < kde.min {
		return 0
	} else if x >= kde.max {
		return 1
	}

	y := func(x float64) float64 {
		return kde.eval(kde.kernel.CDF, x)
	}
	switch kde.bm {
	default:
		panic("unknown boundary correction method")
	case boundaryNone:
		return y(x)
	case BoundaryReflect:
		if math.IsInf(kde.max, 1) {
			return y(x) - y(2*kde.min-x)
		} else if math.IsInf(kde.min, -1) {
			return y(x) + (1 - y(2*kde.max-x))
		} else {
			d := 2 * (kde.max - kde.min)
			w := 2 * (x - kde.min)
			return series(func(n float64) float64 {
				// Windows >= x-w
				return y(x+n*d) - y(x+n*d-w)
			}) + series(func(n float64) float64 {
				// Windows < x-w
				return y(x-(n+1)*d) - y(x-(n+1)*d-w)
			})
		}
	}
}

// Support returns the boundaries of the KDE. With a DeltaKernel, this
// is the range of the sample.
func (kde *KDEDist) Support() Support {
	s := Support{kde.min, kde.max}
	if _, ok := kde.kernel.(DeltaDist); ok {
		lo, hi := Sample{Xs: kde.xs}.Bounds()
		s = s.Clamp(lo, hi)
	}
	return s
}

// Rand picks a sample point with probability proportional to its
// weight and perturbs it by a variate of the kernel. Variates that
// fall outside the boundaries are reflected back in.
func (kde *KDEDist) Rand() float64 {
	u := uniformVariate(kde.src)
	var i int
	if kde.cum == nil {
		i = int(u * float64(len(kde.xs)))
	} else {
		target := u * kde.total
		i = sort.Search(len(kde.cum), func(i int) bool { return kde.cum[i] > target })
	}
	if i >= len(kde.xs) {
		i = len(kde.xs) - 1
	}

	x := kde.xs[i] + kde.kernel.Rand()
	if kde.bm != BoundaryReflect {
		return x
	}
	for j := 0; j < mathx.DefaultMaxIter; j++ {
		if x < kde.min {
			x = 2*kde.min - x
		} else if x > kde.max {
			x = 2*kde.max - x
		} else {
			break
		}
	}
	return x
}

// Bounds returns reasonable bounds for plotting or sampling the KDE.
// These contain 99% of its mass, widened by 20%, and limited to its
// boundaries.
func (kde *KDEDist) Bounds() (low float64, high float64) {
	// TODO(austin) It would be nice if this could be instructed
	// to include all original data points, even if they are in
	// the tail.  Probably that should just be up to the caller to
	// pass an axis derived from the bounds of the original data.

	// Use the lowest and highest samples as starting points
	lowX, highX := Sample{Xs: kde.xs, Weights: kde.weights}.Bounds()
	if lowX == highX {
		lowX -= 1
		highX += 1
	}

	// Find the end points that contain 99% of the CDF's weight.
	// Since Bracket requires that the root be bracketed, start by
	// expanding our range if necessary.
	const (
		lowY      = 0.005
		highY     = 0.995
		tolerance = 0.001
	)
	for kde.CDF(lowX) > lowY {
		lowX -= highX - lowX
	}
	for kde.CDF(highX) < highY {
		highX += highX - lowX
	}
	// Bracket only needs a sign change, so discontinuous kernels
	// are fine.
	r := mathx.RootFinder{XTol: tolerance}
	low, lok := r.Bracket(func(x float64) float64 { return kde.CDF(x) - lowY }, lowX, highX)
	high, hok := r.Bracket(func(x float64) float64 { return kde.CDF(x) - highY }, lowX, highX)
	if !lok {
		low = lowX
	}
	if !hok {
		high = highX
	}

	// Expand width by 20% to give some margins
	width := high - low
	low, high = low-0.1*width, high+0.1*width

	// Limit to bounds
	low, high = math.Max(low, kde.min), math.Min(high, kde.max)

	return
}
