// SPDX-License-Identifier: MIT
// Package: rmmcurve/moneyness
//
// errors.go — sentinel errors for the moneyness package.
//
// Priority when several checks fail: NaN/Inf → strike → sigma → tau →
// degenerate σ√τ → prices (first offending index).

package moneyness

import "errors"

var (
	// ErrNaNInf indicates a NaN or ±Inf scalar parameter or price.
	ErrNaNInf = errors.New("moneyness: NaN or Inf encountered")

	// ErrNonPositiveStrike indicates strike <= 0.
	ErrNonPositiveStrike = errors.New("moneyness: strike must be > 0")

	// ErrNonPositivePrice indicates a price <= 0 in the input grid.
	ErrNonPositivePrice = errors.New("moneyness: price must be > 0")

	// ErrNonPositiveSigma indicates sigma <= 0.
	ErrNonPositiveSigma = errors.New("moneyness: sigma must be > 0")

	// ErrNegativeTau indicates a negative time to maturity.
	ErrNegativeTau = errors.New("moneyness: tau must be >= 0")

	// ErrDegenerateVolTime indicates σ√τ == 0, the zero denominator at expiry.
	ErrDegenerateVolTime = errors.New("moneyness: sigma*sqrt(tau) is zero")
)
