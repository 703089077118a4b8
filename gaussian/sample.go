// SPDX-License-Identifier: MIT
// Package: rmmcurve/gaussian
//
// sample.go — normal sampling.
//
// Determinism policy:
//   • SampleSeeded owns a PCG source seeded from the caller's seed; the source
//     lives for one call and is never shared, so equal seeds give equal output.
//   • Sample draws from the package-global x/exp/rand source. It exists for
//     quick illustrations and must not back anything that promises reproducibility.

package gaussian

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// SampleSeeded returns n draws from N(mean, stdDev²) using a PCG source seeded
// by seed.
func SampleSeeded(mean, stdDev float64, n int, seed uint64) ([]float64, error) {
	if err := validateSample(mean, stdDev, n); err != nil {
		return nil, fmt.Errorf("SampleSeeded: %w", err)
	}

	return draw(distuv.Normal{Mu: mean, Sigma: stdDev, Src: rand.NewSource(seed)}, n), nil
}

// Sample returns n draws from N(mean, stdDev²) using the shared global source.
// Results differ between runs.
func Sample(mean, stdDev float64, n int) ([]float64, error) {
	if err := validateSample(mean, stdDev, n); err != nil {
		return nil, fmt.Errorf("Sample: %w", err)
	}

	return draw(distuv.Normal{Mu: mean, Sigma: stdDev}, n), nil
}

func draw(d distuv.Normal, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = d.Rand()
	}

	return out
}

func validateSample(mean, stdDev float64, n int) error {
	if n < 0 {
		return fmt.Errorf("n=%d: %w", n, ErrBadParameter)
	}
	if math.IsNaN(mean) || math.IsInf(mean, 0) {
		return fmt.Errorf("mean=%v: %w", mean, ErrBadParameter)
	}
	if !(stdDev > 0) || math.IsInf(stdDev, 0) {
		return fmt.Errorf("stdDev=%v: %w", stdDev, ErrBadParameter)
	}

	return nil
}
