// SPDX-License-Identifier: MIT
// Package: rmmcurve/pathgen
//
// bridge.go — seeded Brownian bridge between two fixed prices.
//
// Model:
//   1) t = Linspace(0, endTime, steps); dt_i = t_i - t_{i-1}.
//   2) Raw walk: p_0 = start, p_i = p_{i-1} + σ·√dt_i·Z_i,  Z_i ~ N(0,1).
//   3) Affine correction onto the requested endpoints:
//        b_i = start + (end-start)·(p_i - p_0)/(p_last - p_0).
//      b_0 and b_last are then assigned exactly so rounding never moves them.
//
// Contract:
//   • steps ≥ 2, endTime finite and > 0, start/end finite.
//   • p_last == p_0 ⇒ ErrDegenerateBridge (zero denominator).
//   • O(steps) time and memory; strictly sequential.

package pathgen

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/rmmcurve/series"
)

const methodBrownianBridge = "BrownianBridge"

// BrownianBridge returns steps prices on an even grid over [0, endTime] that
// start exactly at start and end exactly at end. The path shape comes from a
// normal random walk drawn from a PCG source seeded by seed (or WithSource).
//
// Identical arguments produce bit-identical paths. WithVolatility has no
// effect on the result: the affine correction cancels any global scale of
// the walk, and the number of draws does not depend on it.
func BrownianBridge(start, end, endTime float64, steps int, seed uint64, opts ...Option) ([]float64, error) {
	if steps < minPathSteps {
		return nil, pathErrorf(methodBrownianBridge, ErrBadSize, "steps=%d, need >= %d", steps, minPathSteps)
	}
	if !(endTime > 0) || math.IsInf(endTime, 0) {
		return nil, pathErrorf(methodBrownianBridge, ErrBadHorizon, "endTime=%v", endTime)
	}
	if !series.IsFinite(start) || !series.IsFinite(end) {
		return nil, pathErrorf(methodBrownianBridge, ErrBadPrice, "start=%v end=%v", start, end)
	}

	cfg := newPathConfig(opts...)
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: sourceFrom(cfg, seed)}

	t := series.Linspace(0, endTime, steps)
	raw := make([]float64, steps)
	raw[0] = start
	var i int
	for i = 1; i < steps; i++ {
		raw[i] = raw[i-1] + cfg.volatility*math.Sqrt(t[i]-t[i-1])*normal.Rand()
	}

	last := steps - 1
	span := raw[last] - raw[0]
	if span == 0 {
		return nil, pathErrorf(methodBrownianBridge, ErrDegenerateBridge, "seed=%d", seed)
	}

	bridge := make([]float64, steps)
	move := end - start
	for i = 1; i < last; i++ {
		bridge[i] = start + move*(raw[i]-raw[0])/span
	}
	bridge[0] = start
	bridge[last] = end

	return bridge, nil
}
