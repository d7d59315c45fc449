// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pc

import (
	"fmt"
	"math"
)

// root finder settings
//  The search stops when the bracket is narrower than RootTol·(b-a) or when
//  |f| ≤ RootTol·|target|
const (
	RootTol   = 1e-10
	RootMaxIt = 100
)

// bisect finds x in [a, b] such that f(x) = target. f must be monotone in
// [a, b]; infinite values at the ends are allowed
func bisect(f func(x float64) float64, target, a, b float64) (x float64, err error) {
	fa, fb := f(a)-target, f(b)-target
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if math.IsNaN(fa) || math.IsNaN(fb) || math.Signbit(fa) == math.Signbit(fb) {
		return math.NaN(), fmt.Errorf("%w: f(%g) - %g = %g and f(%g) - %g = %g", ErrNoRoot, a, target, fa, b, target, fb)
	}
	tolx := RootTol * (b - a)
	tolf := RootTol * math.Abs(target)
	for it := 0; it < RootMaxIt; it++ {
		x = a + (b-a)/2
		fx := f(x) - target
		if math.IsNaN(fx) {
			return x, fmt.Errorf("%w: f(%g) is NaN", ErrNoConvergence, x)
		}
		if fx == 0 || b-a < tolx || math.Abs(fx) <= tolf {
			return x, nil
		}
		if math.Signbit(fx) == math.Signbit(fa) {
			a, fa = x, fx
		} else {
			b = x
		}
	}
	return x, fmt.Errorf("%w: %d iterations, bracket = [%g, %g]", ErrNoConvergence, RootMaxIt, a, b)
}
