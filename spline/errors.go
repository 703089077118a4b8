// SPDX-License-Identifier: MIT
// Package: rmmcurve/spline
//
// errors.go — sentinel errors for spline construction.

package spline

import (
	"errors"
	"fmt"
)

// ErrTooFewPoints indicates fewer than two control points.
var ErrTooFewPoints = errors.New("spline: need at least 2 control points")

// ErrLengthMismatch indicates len(xs) != len(ys).
var ErrLengthMismatch = errors.New("spline: xs and ys differ in length")

// ErrNotIncreasing indicates xs is not strictly increasing.
var ErrNotIncreasing = errors.New("spline: xs must be strictly increasing")

// ErrNaNInf indicates a NaN or ±Inf control coordinate.
var ErrNaNInf = errors.New("spline: NaN or Inf control point")

func splineErrorf(err error, format string, args ...interface{}) error {
	return fmt.Errorf("spline.New: %s: %w", fmt.Sprintf(format, args...), err)
}
