// SPDX-License-Identifier: MIT
// Package: rmmcurve/pathgen
//
// errors.go — sentinel errors for the pathgen package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (method, offending value) is attached with %w by pathErrorf.
//   • Generators never panic; option constructors do, on programmer error.

package pathgen

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a step count below the minimum (2 for paths) or a
// non-positive candle bucket.
var ErrBadSize = errors.New("pathgen: invalid size")

// ErrBadHorizon indicates a non-finite or non-positive end time.
var ErrBadHorizon = errors.New("pathgen: end time must be finite and > 0")

// ErrBadPrice indicates a non-finite start/end price, or a non-positive GBM
// start price.
var ErrBadPrice = errors.New("pathgen: invalid price")

// ErrDegenerateBridge indicates the raw walk returned exactly to its first
// value, leaving the bridge correction with a zero denominator. Retry with a
// different seed.
var ErrDegenerateBridge = errors.New("pathgen: raw walk returned to its start; bridge correction undefined")

// pathErrorf returns "<method>: <formatted message>: <err>" keeping err matchable.
func pathErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
