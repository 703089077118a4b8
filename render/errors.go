// SPDX-License-Identifier: MIT
// Package: rmmcurve/render
//
// errors.go — sentinel errors for chart validation and output.

package render

import (
	"errors"
	"fmt"
)

// ErrBadChart indicates a chart that cannot be drawn: mismatched or empty
// coordinates, a colour slot outside the palette, or invalid axis bounds.
var ErrBadChart = errors.New("render: invalid chart")

// ErrBadFormat indicates an output format other than png, svg or pdf.
var ErrBadFormat = errors.New("render: unsupported output format")

func chartErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrBadChart)
}

var errEmptyCurve = errors.New("no points")
