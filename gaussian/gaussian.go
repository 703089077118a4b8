// SPDX-License-Identifier: MIT
// Package: rmmcurve/gaussian
//
// gaussian.go — standard normal density, distribution and quantile.
//
// Contract:
//   • PDF/CDF never fail: every real input maps to a finite output.
//     Large |x| underflows the density to 0, which is the correct limit.
//   • Quantile fails with ErrProbabilityOutOfRange outside (0,1).

package gaussian

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// invSqrt2Pi is 1/√(2π).
const invSqrt2Pi = 1 / (math.Sqrt2 * math.SqrtPi)

// PDFAt returns the standard normal density exp(-x²/2)/√(2π).
func PDFAt(x float64) float64 {
	return math.Exp(-0.5*x*x) * invSqrt2Pi
}

// CDFAt returns Φ(x).
func CDFAt(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

// PDF evaluates the standard normal density at every element of xs.
// Complexity: O(n).
func PDF(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = PDFAt(x)
	}

	return ys
}

// CDF evaluates Φ at every element of xs. Monotone non-decreasing in x.
// Complexity: O(n).
func CDF(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = CDFAt(x)
	}

	return ys
}

// Quantile returns Φ⁻¹(p) for p in (0,1).
func Quantile(p float64) (float64, error) {
	if !(p > 0 && p < 1) {
		return 0, fmt.Errorf("Quantile: p=%v: %w", p, ErrProbabilityOutOfRange)
	}

	return distuv.UnitNormal.Quantile(p), nil
}

// QuantileAll applies Quantile pointwise and stops at the first invalid
// probability, reporting its index.
func QuantileAll(ps []float64) ([]float64, error) {
	out := make([]float64, len(ps))
	for i, p := range ps {
		q, err := Quantile(p)
		if err != nil {
			return nil, fmt.Errorf("QuantileAll: index %d: %w", i, err)
		}
		out[i] = q
	}

	return out, nil
}
