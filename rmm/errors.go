// SPDX-License-Identifier: MIT
// Package: rmmcurve/rmm
//
// errors.go — sentinel errors for the rmm package.
//
// The moneyness domain errors are re-exported so callers of rmm can branch
// on them without importing moneyness.

package rmm

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rmmcurve/moneyness"
)

// Re-exported moneyness sentinels.
var (
	ErrNaNInf            = moneyness.ErrNaNInf
	ErrNonPositiveStrike = moneyness.ErrNonPositiveStrike
	ErrNonPositivePrice  = moneyness.ErrNonPositivePrice
	ErrNonPositiveSigma  = moneyness.ErrNonPositiveSigma
	ErrNegativeTau       = moneyness.ErrNegativeTau
	ErrDegenerateVolTime = moneyness.ErrDegenerateVolTime
)

var (
	// ErrInvalidRate indicates a perpetual-put rate that is not finite and > 0.
	ErrInvalidRate = errors.New("rmm: rate must be finite and > 0")

	// ErrReserveOutOfRange indicates a forced-rebalance reserve outside (0,1),
	// where the inverse CDF is undefined.
	ErrReserveOutOfRange = errors.New("rmm: reserve must lie in (0,1)")

	// ErrInvalidWeight indicates a G3M weight outside (0,1).
	ErrInvalidWeight = errors.New("rmm: weight must lie in (0,1)")

	// ErrNonPositiveReserve indicates a G3M x-reserve <= 0.
	ErrNonPositiveReserve = errors.New("rmm: reserve must be > 0")

	// ErrNonPositiveInvariant indicates a G3M invariant l <= 0.
	ErrNonPositiveInvariant = errors.New("rmm: invariant must be > 0")
)

// rmmErrorf prefixes err with the method name, keeping it matchable.
func rmmErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
