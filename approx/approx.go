// SPDX-License-Identifier: MIT
// Package: rmmcurve/approx
//
// approx.go — factorial, polynomial and parametric-line helpers.

package approx

import (
	"errors"
	"fmt"
	"math"
)

// ErrFactorialOverflow indicates n! does not fit in uint32 (n > 12).
var ErrFactorialOverflow = errors.New("approx: factorial overflows uint32")

// ErrBadDegree indicates a negative degree, or one whose coefficients need
// a factorial beyond MaxFactorial.
var ErrBadDegree = errors.New("approx: invalid degree")

// MaxFactorial is the largest n with n! representable in uint32.
const MaxFactorial = 12

// Factorial returns n!, with 0! = 1.
func Factorial(n uint32) (uint32, error) {
	if n > MaxFactorial {
		return 0, fmt.Errorf("Factorial(%d): %w", n, ErrFactorialOverflow)
	}
	f := uint32(1)
	for i := uint32(2); i <= n; i++ {
		f *= i
	}

	return f, nil
}

// Polynomial evaluates Σ coeffs[i]·x^i at every x by Horner's rule.
// Empty coeffs yield zeros.
func Polynomial(xs, coeffs []float64) []float64 {
	out := make([]float64, len(xs))
	for j, x := range xs {
		var y float64
		for i := len(coeffs) - 1; i >= 0; i-- {
			y = y*x + coeffs[i]
		}
		out[j] = y
	}

	return out
}

// ParametricLine returns x = a·t + x0 and y = b·t + y0 for every t.
func ParametricLine(t []float64, a, b, x0, y0 float64) (x, y []float64) {
	x = make([]float64, len(t))
	y = make([]float64, len(t))
	for i, v := range t {
		x[i] = a*v + x0
		y[i] = b*v + y0
	}

	return x, y
}

// GaussianTaylorCoeffs returns the degree+1 Maclaurin coefficients of
// exp(-x²): c[2k] = (-1)^k / k!, odd entries zero.
func GaussianTaylorCoeffs(degree int) ([]float64, error) {
	if degree < 0 || degree/2 > MaxFactorial {
		return nil, fmt.Errorf("GaussianTaylorCoeffs(%d): %w", degree, ErrBadDegree)
	}

	coeffs := make([]float64, degree+1)
	for n := 0; n <= degree; n += 2 {
		k := n / 2
		f, err := Factorial(uint32(k))
		if err != nil {
			return nil, err
		}
		coeffs[n] = math.Pow(-1, float64(k)) / float64(f)
	}

	return coeffs, nil
}
