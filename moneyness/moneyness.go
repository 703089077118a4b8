// SPDX-License-Identifier: MIT
// Package: rmmcurve/moneyness
//
// moneyness.go — d1/d2 over a price grid.

package moneyness

import (
	"fmt"
	"math"
)

// Method tags used to prefix wrapped errors.
const (
	methodD1    = "D1"
	methodD2    = "D2"
	methodTerms = "Terms"
)

// VolTime returns σ√τ after validating strike, sigma and tau. It is the
// common denominator of d1/d2 and the spread between them.
func VolTime(strike, sigma, tau float64) (float64, error) {
	if math.IsNaN(strike) || math.IsInf(strike, 0) ||
		math.IsNaN(sigma) || math.IsInf(sigma, 0) ||
		math.IsNaN(tau) || math.IsInf(tau, 0) {
		return 0, fmt.Errorf("strike=%v sigma=%v tau=%v: %w", strike, sigma, tau, ErrNaNInf)
	}
	if strike <= 0 {
		return 0, fmt.Errorf("strike=%v: %w", strike, ErrNonPositiveStrike)
	}
	if sigma <= 0 {
		return 0, fmt.Errorf("sigma=%v: %w", sigma, ErrNonPositiveSigma)
	}
	if tau < 0 {
		return 0, fmt.Errorf("tau=%v: %w", tau, ErrNegativeTau)
	}
	st := sigma * math.Sqrt(tau)
	if st == 0 {
		return 0, fmt.Errorf("sigma=%v tau=%v: %w", sigma, tau, ErrDegenerateVolTime)
	}

	return st, nil
}

// Terms returns d1 and d2 for every price in one pass.
// Both vectors have len(prices) elements; prices is not modified.
// Complexity: O(n) time, O(n) memory.
func Terms(prices []float64, strike, sigma, tau float64) (d1, d2 []float64, err error) {
	st, err := VolTime(strike, sigma, tau)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodTerms, err)
	}
	half := 0.5 * st
	d1 = make([]float64, len(prices))
	d2 = make([]float64, len(prices))
	for i, s := range prices {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return nil, nil, fmt.Errorf("%s: index %d: %w", methodTerms, i, ErrNaNInf)
		}
		if s <= 0 {
			return nil, nil, fmt.Errorf("%s: index %d price=%v: %w", methodTerms, i, s, ErrNonPositivePrice)
		}
		base := math.Log(s/strike) / st
		d1[i] = base + half
		d2[i] = base - half
	}

	return d1, d2, nil
}

// D1 returns ln(S/K)/(σ√τ) + σ√τ/2 for every price.
func D1(prices []float64, strike, sigma, tau float64) ([]float64, error) {
	d1, _, err := Terms(prices, strike, sigma, tau)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodD1, err)
	}

	return d1, nil
}

// D2 returns ln(S/K)/(σ√τ) - σ√τ/2 for every price.
func D2(prices []float64, strike, sigma, tau float64) ([]float64, error) {
	_, d2, err := Terms(prices, strike, sigma, tau)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodD2, err)
	}

	return d2, nil
}
