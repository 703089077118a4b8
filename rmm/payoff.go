// SPDX-License-Identifier: MIT
// Package: rmmcurve/rmm
//
// payoff.go — covered-call and perpetual-put payoff decompositions and the
// forced-rebalance value function.

package rmm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rmmcurve/gaussian"
	"github.com/katalvlaran/rmmcurve/moneyness"
)

// CoveredCallPayoff returns (prices, g) with
//
//	g(S) = (1 - Φ(d1))·S + K·Φ(d2).
//
// The returned x slice is a copy of prices.
func CoveredCallPayoff(prices []float64, strike, sigma, tau float64) (x, y []float64, err error) {
	d1, d2, err := moneyness.Terms(prices, strike, sigma, tau)
	if err != nil {
		return nil, nil, rmmErrorf(methodCoveredCallPayoff, err)
	}
	x = make([]float64, len(prices))
	y = make([]float64, len(prices))
	for i, s := range prices {
		x[i] = s
		y[i] = (1-gaussian.CDFAt(d1[i]))*s + strike*gaussian.CDFAt(d2[i])
	}

	return x, y, nil
}

// PerpetualPutBoundary returns the early-exercise boundary of the perpetual
// put, ℓ = 2r/(2r+σ²)·K.
func PerpetualPutBoundary(strike, sigma, rate float64) (float64, error) {
	if err := validatePerpetual(strike, sigma, rate); err != nil {
		return 0, rmmErrorf(methodPerpetualPutBoundary, err)
	}

	return perpetualBoundary(strike, sigma, rate), nil
}

// PerpetualPutPayoff returns (prices, v) with the piecewise perpetual-put value
//
//	v(S) = K - S                      for S <= ℓ
//	v(S) = (K - ℓ)·(ℓ/S)^(2r/σ²)      for S >  ℓ
//
// The kink at ℓ is reproduced exactly: value and slope are continuous there,
// curvature jumps from zero to positive.
func PerpetualPutPayoff(prices []float64, strike, sigma, rate float64) (x, y []float64, err error) {
	if err = validatePerpetual(strike, sigma, rate); err != nil {
		return nil, nil, rmmErrorf(methodPerpetualPutPayoff, err)
	}
	ell := perpetualBoundary(strike, sigma, rate)
	exp := 2 * rate / (sigma * sigma)
	x = make([]float64, len(prices))
	y = make([]float64, len(prices))
	for i, s := range prices {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return nil, nil, rmmErrorf(methodPerpetualPutPayoff, fmt.Errorf("index %d: %w", i, ErrNaNInf))
		}
		if s <= 0 {
			return nil, nil, rmmErrorf(methodPerpetualPutPayoff, fmt.Errorf("index %d price=%v: %w", i, s, ErrNonPositivePrice))
		}
		x[i] = s
		if s <= ell {
			y[i] = strike - s
		} else {
			y[i] = (strike - ell) * math.Pow(ell/s, exp)
		}
	}

	return x, y, nil
}

// ForcedRebalance returns (reserves, value) with
//
//	value(R) = (ratio·R - inv)/K - Φ(Φ⁻¹(1-R) - σ√τ)
//
// Every reserve must lie strictly inside (0,1). τ = 0 is allowed: the
// formula has no division by σ√τ.
func ForcedRebalance(reserves []float64, strike, sigma, tau, ratio, inv float64) (x, y []float64, err error) {
	for _, v := range [...]float64{strike, sigma, tau, ratio, inv} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, nil, rmmErrorf(methodForcedRebalance, fmt.Errorf(
				"strike=%v sigma=%v tau=%v ratio=%v inv=%v: %w", strike, sigma, tau, ratio, inv, ErrNaNInf))
		}
	}
	switch {
	case strike <= 0:
		return nil, nil, rmmErrorf(methodForcedRebalance, fmt.Errorf("strike=%v: %w", strike, ErrNonPositiveStrike))
	case sigma <= 0:
		return nil, nil, rmmErrorf(methodForcedRebalance, fmt.Errorf("sigma=%v: %w", sigma, ErrNonPositiveSigma))
	case tau < 0:
		return nil, nil, rmmErrorf(methodForcedRebalance, fmt.Errorf("tau=%v: %w", tau, ErrNegativeTau))
	}
	st := sigma * math.Sqrt(tau)
	x = make([]float64, len(reserves))
	y = make([]float64, len(reserves))
	for i, r := range reserves {
		if !(r > 0 && r < 1) {
			return nil, nil, rmmErrorf(methodForcedRebalance, fmt.Errorf("index %d reserve=%v: %w", i, r, ErrReserveOutOfRange))
		}
		q, qerr := gaussian.Quantile(1 - r)
		if qerr != nil {
			// 1-r rounds to 1 for r below the float64 spacing near 1.
			return nil, nil, rmmErrorf(methodForcedRebalance, fmt.Errorf("index %d reserve=%v: %w", i, r, ErrReserveOutOfRange))
		}
		x[i] = r
		y[i] = (ratio*r-inv)/strike - gaussian.CDFAt(q-st)
	}

	return x, y, nil
}

func perpetualBoundary(strike, sigma, rate float64) float64 {
	return 2 * rate / (2*rate + sigma*sigma) * strike
}

func validatePerpetual(strike, sigma, rate float64) error {
	for _, v := range [...]float64{strike, sigma} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("strike=%v sigma=%v: %w", strike, sigma, ErrNaNInf)
		}
	}
	if strike <= 0 {
		return fmt.Errorf("strike=%v: %w", strike, ErrNonPositiveStrike)
	}
	if sigma <= 0 {
		return fmt.Errorf("sigma=%v: %w", sigma, ErrNonPositiveSigma)
	}
	if !(rate > 0) || math.IsInf(rate, 0) {
		return fmt.Errorf("rate=%v: %w", rate, ErrInvalidRate)
	}

	return nil
}
