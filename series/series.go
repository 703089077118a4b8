// SPDX-License-Identifier: MIT
// Package: rmmcurve/series
//
// series.go — grids, curves and pointwise kernels.
//
// Determinism:
//   • Fixed loop order 0..n-1, no reductions, no hidden state.
//   • Inputs are read-only; outputs are freshly allocated.

package series

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Method tags used to prefix wrapped errors.
const (
	methodNewCurve       = "NewCurve"
	methodZip            = "Zip"
	methodValidateFinite = "ValidateFinite"
)

// Curve is an x/y pair of equal-length coordinate sequences.
type Curve struct {
	X []float64
	Y []float64
}

// NewCurve pairs x and y into a Curve.
// Returns ErrLengthMismatch when len(x) != len(y). The slices are stored as
// given; callers that keep mutating them should pass copies.
// Complexity: O(1).
func NewCurve(x, y []float64) (Curve, error) {
	if len(x) != len(y) {
		return Curve{}, fmt.Errorf("%s: len(x)=%d len(y)=%d: %w", methodNewCurve, len(x), len(y), ErrLengthMismatch)
	}

	return Curve{X: x, Y: y}, nil
}

// Len returns the number of points on the curve.
func (c Curve) Len() int { return len(c.X) }

// XY returns the i-th point. Panics on out-of-range i, like slice indexing.
func (c Curve) XY(i int) (float64, float64) { return c.X[i], c.Y[i] }

// Reversed returns a copy of the curve with point order reversed.
func (c Curve) Reversed() Curve {
	n := len(c.X)
	out := Curve{X: make([]float64, n), Y: make([]float64, n)}
	for i := 0; i < n; i++ {
		out.X[n-1-i] = c.X[i]
		out.Y[n-1-i] = c.Y[i]
	}

	return out
}

// Linspace returns n evenly spaced values on [start, end], both ends included.
// n <= 0 yields an empty slice and n == 1 yields [start].
// The endpoints are exact; interior points follow floats.Span.
// Complexity: O(n).
func Linspace(start, end float64, n int) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{start}
	}

	out := floats.Span(make([]float64, n), start, end)
	out[0], out[n-1] = start, end

	return out
}

// Map applies fn to every element of xs and returns the results in order.
func Map(xs []float64, fn func(float64) float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = fn(x)
	}

	return out
}

// Zip combines a and b pointwise with fn.
// Returns ErrLengthMismatch when the operands differ in length.
func Zip(a, b []float64, fn func(float64, float64) float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, seriesErrorf(methodZip, ErrLengthMismatch)
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = fn(a[i], b[i])
	}

	return out, nil
}

// Scale returns c*xs as a new slice.
func Scale(c float64, xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)
	floats.Scale(c, out)

	return out
}

// Constant returns n copies of v. Used for flat guide lines (strike markers).
func Constant(v float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return out
}

// ValidateFinite reports the first NaN or ±Inf in xs as a wrapped ErrNaNInf
// carrying its index.
func ValidateFinite(xs []float64) error {
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%s: index %d: %w", methodValidateFinite, i, ErrNaNInf)
		}
	}

	return nil
}

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
