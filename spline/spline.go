// SPDX-License-Identifier: MIT
// Package: rmmcurve/spline
//
// spline.go — monotone cubic Hermite spline over gonum's Fritsch–Butland fit.
//
// New validates the control points and returns sentinel errors; fitting and
// evaluation are delegated to interp.FritschButland, whose tangents keep every
// monotone interval monotone. Evaluation is a binary search for the bracket,
// then the cubic on that segment. O(log n) per query.

package spline

import (
	"math"

	"gonum.org/v1/gonum/interp"

	"github.com/katalvlaran/rmmcurve/series"
)

// MonotonicCubic is an immutable monotone cubic interpolant.
// Safe for concurrent use after construction.
type MonotonicCubic struct {
	xs, ys []float64
	fit    interp.FritschButland
}

// New fits a monotone cubic through (xs[i], ys[i]). The inputs are copied.
func New(xs, ys []float64) (*MonotonicCubic, error) {
	if len(xs) != len(ys) {
		return nil, splineErrorf(ErrLengthMismatch, "len(xs)=%d len(ys)=%d", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, splineErrorf(ErrTooFewPoints, "got %d", len(xs))
	}

	for i := range xs {
		if !series.IsFinite(xs[i]) || !series.IsFinite(ys[i]) {
			return nil, splineErrorf(ErrNaNInf, "point %d = (%v, %v)", i, xs[i], ys[i])
		}
		if i > 0 && !(xs[i] > xs[i-1]) {
			return nil, splineErrorf(ErrNotIncreasing, "xs[%d]=%v <= xs[%d]=%v", i, xs[i], i-1, xs[i-1])
		}
	}

	s := &MonotonicCubic{
		xs: append([]float64(nil), xs...),
		ys: append([]float64(nil), ys...),
	}
	// Fit only panics on the shapes rejected above.
	if err := s.fit.Fit(s.xs, s.ys); err != nil {
		return nil, splineErrorf(err, "fit")
	}

	return s, nil
}

// Interpolate evaluates the spline at x. Knots are reproduced exactly;
// x outside [xs[0], xs[n-1]] yields the nearest boundary value; NaN yields NaN.
func (s *MonotonicCubic) Interpolate(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}

	return s.fit.Predict(x)
}

// InterpolateAll evaluates the spline at each query point, in order.
func (s *MonotonicCubic) InterpolateAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = s.Interpolate(x)
	}

	return out
}

// Knots returns copies of the control points.
func (s *MonotonicCubic) Knots() (xs, ys []float64) {
	return append([]float64(nil), s.xs...), append([]float64(nil), s.ys...)
}
