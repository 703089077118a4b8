// SPDX-License-Identifier: MIT
// Package: rmmcurve/series
//
// errors.go — sentinel errors for the series package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context is attached with %w via seriesErrorf, never baked into sentinels.

package series

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch indicates two sequences that must pair up element by
// element (x/y of a Curve, operands of Zip) have different lengths.
var ErrLengthMismatch = errors.New("series: length mismatch")

// ErrNaNInf indicates a NaN or ±Inf value where a finite one is required.
var ErrNaNInf = errors.New("series: NaN or Inf encountered")

// seriesErrorf wraps err with the given method tag: "<method>: <err>".
func seriesErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
