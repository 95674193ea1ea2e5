// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// series returns the sum of the series f(0), f(1), ...
//
// This implementation is fast, but subject to round-off error. It
// stops as soon as adding a term no longer changes the sum.
func series(f func(float64) float64) float64 {
	y, yp := 0.0, 1.0
	for n := 0.0; y != yp; n++ {
		yp = y
		y += f(n)
	}
	return y
}
