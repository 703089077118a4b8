// SPDX-License-Identifier: MIT
// Package: rmmcurve/pathgen
//
// gbm.go — discrete geometric Brownian motion on an even time grid.
//
// Model (Δt = endTime/(steps-1)):
//
//	S_{i+1} = S_i · exp((μ - σ²/2)Δt + σ√Δt · Z),  Z ~ N(0,1).
//
// Prices stay strictly positive by construction (up to float underflow).

package pathgen

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

const methodGBMPath = "GBMPath"

// GBMPath returns steps prices starting at s0 and sampled every
// endTime/(steps-1). Drift and volatility come from WithDrift and
// WithVolatility; the noise stream from seed or WithSource.
func GBMPath(s0, endTime float64, steps int, seed uint64, opts ...Option) ([]float64, error) {
	if steps < minPathSteps {
		return nil, pathErrorf(methodGBMPath, ErrBadSize, "steps=%d, need >= %d", steps, minPathSteps)
	}
	if !(endTime > 0) || math.IsInf(endTime, 0) {
		return nil, pathErrorf(methodGBMPath, ErrBadHorizon, "endTime=%v", endTime)
	}
	if !(s0 > 0) || math.IsInf(s0, 0) {
		return nil, pathErrorf(methodGBMPath, ErrBadPrice, "s0=%v must be finite and > 0", s0)
	}

	cfg := newPathConfig(opts...)
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: sourceFrom(cfg, seed)}

	// Precompute the per-step constants once.
	dt := endTime / float64(steps-1)
	driftTerm := (cfg.drift - 0.5*cfg.volatility*cfg.volatility) * dt
	noiseScale := cfg.volatility * math.Sqrt(dt)

	path := make([]float64, steps)
	path[0] = s0
	for i := 1; i < steps; i++ {
		path[i] = path[i-1] * math.Exp(driftTerm+noiseScale*normal.Rand())
	}

	return path, nil
}
