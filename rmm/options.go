// SPDX-License-Identifier: MIT
// Package: rmmcurve/rmm
//
// options.go — functional options for the reserve-curve generators.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless values; the curve
//     functions themselves never panic.
//   • Defaults are deterministic: scale = 1.0.

package rmm

import "math"

// DefaultScale is the liquidity scale applied when WithScale is not given.
const DefaultScale = 1.0

// curveConfig holds per-call knobs for reserve-curve generators.
type curveConfig struct {
	scale float64
}

// Option customizes a reserve-curve call.
type Option func(*curveConfig)

// WithScale rescales both reserve axes by c, the share of the pool held by a
// fractional LP token. Panics unless c is finite and > 0.
func WithScale(c float64) Option {
	if !(c > 0) || math.IsInf(c, 0) {
		panic("rmm: WithScale(c) requires finite c > 0")
	}
	return func(cfg *curveConfig) {
		cfg.scale = c
	}
}

// newCurveConfig applies opts in order over the defaults (last wins).
func newCurveConfig(opts ...Option) curveConfig {
	cfg := curveConfig{scale: DefaultScale}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
