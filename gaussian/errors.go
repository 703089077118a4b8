// SPDX-License-Identifier: MIT
// Package: rmmcurve/gaussian
//
// errors.go — sentinel errors for the gaussian package.

package gaussian

import "errors"

// ErrProbabilityOutOfRange indicates a Quantile argument outside (0,1).
// Φ⁻¹ is ±Inf at the endpoints and undefined beyond them.
var ErrProbabilityOutOfRange = errors.New("gaussian: probability must lie in (0,1)")

// ErrBadParameter indicates a non-positive standard deviation, a negative
// sample count, or a non-finite distribution parameter.
var ErrBadParameter = errors.New("gaussian: invalid distribution parameter")
