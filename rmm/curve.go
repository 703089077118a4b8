// SPDX-License-Identifier: MIT
// Package: rmmcurve/rmm
//
// curve.go — reserve curve, liquidity density and portfolio value.
//
// All three share one moneyness pass; each returns freshly allocated slices
// of len(prices).

package rmm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rmmcurve/gaussian"
	"github.com/katalvlaran/rmmcurve/moneyness"
)

// Method tags used to prefix wrapped errors.
const (
	methodTradingCurve         = "TradingCurve"
	methodExpiryTradingCurve   = "ExpiryTradingCurve"
	methodLiquidityDensity     = "LiquidityDensity"
	methodPortfolioValue       = "PortfolioValue"
	methodExpiryPortfolioValue = "ExpiryPortfolioValue"
	methodCoveredCallPayoff    = "CoveredCallPayoff"
	methodPerpetualPutPayoff   = "PerpetualPutPayoff"
	methodPerpetualPutBoundary = "PerpetualPutBoundary"
	methodForcedRebalance      = "ForcedRebalance"
	methodG3MTradingCurve      = "G3MTradingCurve"
)

// TradingCurve returns the RMM-CC reserve curve over prices:
//
//	x_i = c·(1 - Φ(d1_i)),   y_i = c·(K·Φ(d2_i))
//
// where c is the WithScale factor (DefaultScale if absent). The scale is the
// last multiply, so scaled output equals c times the unscaled output bit for bit.
// Complexity: O(n).
func TradingCurve(prices []float64, strike, sigma, tau float64, opts ...Option) (x, y []float64, err error) {
	cfg := newCurveConfig(opts...)
	d1, d2, err := moneyness.Terms(prices, strike, sigma, tau)
	if err != nil {
		return nil, nil, rmmErrorf(methodTradingCurve, err)
	}
	x = make([]float64, len(prices))
	y = make([]float64, len(prices))
	for i := range prices {
		x[i] = cfg.scale * (1 - gaussian.CDFAt(d1[i]))
		y[i] = cfg.scale * (strike * gaussian.CDFAt(d2[i]))
	}

	return x, y, nil
}

// ExpiryTradingCurve is the τ→0 limit of TradingCurve: the pool holds only
// the risky asset below the strike, only the numeraire above it, and splits
// evenly at S == K. Zero prices are allowed here.
func ExpiryTradingCurve(prices []float64, strike float64, opts ...Option) (x, y []float64, err error) {
	cfg := newCurveConfig(opts...)
	if err = validateExpiry(prices, strike); err != nil {
		return nil, nil, rmmErrorf(methodExpiryTradingCurve, err)
	}
	x = make([]float64, len(prices))
	y = make([]float64, len(prices))
	for i, s := range prices {
		h := expiryStep(s, strike)
		x[i] = cfg.scale * (1 - h)
		y[i] = cfg.scale * (strike * h)
	}

	return x, y, nil
}

// LiquidityDensity returns L(S) = φ(d1(S)) / (σ√τ·S), the price derivative
// of the risky reserve. S = 0 is rejected (ErrNonPositivePrice).
func LiquidityDensity(prices []float64, strike, sigma, tau float64) ([]float64, error) {
	d1, _, err := moneyness.Terms(prices, strike, sigma, tau)
	if err != nil {
		return nil, rmmErrorf(methodLiquidityDensity, err)
	}
	st := sigma * math.Sqrt(tau)
	out := make([]float64, len(prices))
	for i, s := range prices {
		out[i] = gaussian.PDFAt(d1[i]) / (st * s)
	}

	return out, nil
}

// PortfolioValue returns V(S) = S·Φ(-d1) + K·Φ(d2), the value of one unit of
// the pool position. V → S for S ≪ K and V → K for S ≫ K.
func PortfolioValue(prices []float64, strike, sigma, tau float64) ([]float64, error) {
	d1, d2, err := moneyness.Terms(prices, strike, sigma, tau)
	if err != nil {
		return nil, rmmErrorf(methodPortfolioValue, err)
	}
	out := make([]float64, len(prices))
	for i, s := range prices {
		out[i] = s*gaussian.CDFAt(-d1[i]) + strike*gaussian.CDFAt(d2[i])
	}

	return out, nil
}

// ExpiryPortfolioValue is the τ→0 limit of PortfolioValue: min(S, K).
func ExpiryPortfolioValue(prices []float64, strike float64) ([]float64, error) {
	if err := validateExpiry(prices, strike); err != nil {
		return nil, rmmErrorf(methodExpiryPortfolioValue, err)
	}
	out := make([]float64, len(prices))
	for i, s := range prices {
		out[i] = math.Min(s, strike)
	}

	return out, nil
}

// expiryStep is lim τ→0 Φ(d2(S)): 0 below the strike, 1 above, ½ at it.
func expiryStep(s, strike float64) float64 {
	switch {
	case s > strike:
		return 1
	case s < strike:
		return 0
	default:
		return 0.5
	}
}

func validateExpiry(prices []float64, strike float64) error {
	if math.IsNaN(strike) || math.IsInf(strike, 0) {
		return fmt.Errorf("strike=%v: %w", strike, ErrNaNInf)
	}
	if strike <= 0 {
		return fmt.Errorf("strike=%v: %w", strike, ErrNonPositiveStrike)
	}
	for i, s := range prices {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return fmt.Errorf("index %d: %w", i, ErrNaNInf)
		}
		if s < 0 {
			return fmt.Errorf("index %d price=%v: %w", i, s, ErrNonPositivePrice)
		}
	}

	return nil
}
