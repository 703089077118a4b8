// SPDX-License-Identifier: MIT
// Package: rmmcurve/rmm
//
// g3m.go — constant-weighted two-asset curve for side-by-side comparison.

package rmm

import (
	"fmt"
	"math"
)

// G3MTradingCurve returns (xs, y) on the geometric-mean invariant
// x^w · y^(1-w) = l, i.e.
//
//	y = (l / x^w)^(1/(1-w)).
//
// Requires w in (0,1), l > 0 and every x > 0.
func G3MTradingCurve(xs []float64, weight, l float64) (x, y []float64, err error) {
	if math.IsNaN(weight) || !(weight > 0 && weight < 1) {
		return nil, nil, rmmErrorf(methodG3MTradingCurve, fmt.Errorf("weight=%v: %w", weight, ErrInvalidWeight))
	}
	if !(l > 0) || math.IsInf(l, 0) {
		return nil, nil, rmmErrorf(methodG3MTradingCurve, fmt.Errorf("l=%v: %w", l, ErrNonPositiveInvariant))
	}
	pow := 1 / (1 - weight)
	x = make([]float64, len(xs))
	y = make([]float64, len(xs))
	for i, v := range xs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, nil, rmmErrorf(methodG3MTradingCurve, fmt.Errorf("index %d: %w", i, ErrNaNInf))
		}
		if v <= 0 {
			return nil, nil, rmmErrorf(methodG3MTradingCurve, fmt.Errorf("index %d x=%v: %w", i, v, ErrNonPositiveReserve))
		}
		x[i] = v
		y[i] = math.Pow(l/math.Pow(v, weight), pow)
	}

	return x, y, nil
}
