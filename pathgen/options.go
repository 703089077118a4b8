// SPDX-License-Identifier: MIT
// Package: rmmcurve/pathgen
//
// options.go — functional options for the path generators.
//
// Contract (strict):
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: the seed argument, or WithSource.

package pathgen

import (
	"math"

	"golang.org/x/exp/rand"
)

// Option customizes a generator call by mutating a pathConfig.
type Option func(*pathConfig)

// WithSource makes the generator draw from src instead of seeding its own
// source. Consecutive calls then continue one stream. Panics on nil.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic("pathgen: WithSource(nil)")
	}
	return func(c *pathConfig) {
		c.src = src
	}
}

// WithVolatility sets the per-step noise scale σ of GBMPath. BrownianBridge
// accepts it but its output does not depend on σ.
// Panics unless σ is finite and > 0.
func WithVolatility(sigma float64) Option {
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		panic("pathgen: WithVolatility(sigma) requires finite sigma > 0")
	}
	return func(c *pathConfig) {
		c.volatility = sigma
	}
}

// WithDrift sets the GBM drift μ. Panics on NaN/Inf.
func WithDrift(mu float64) Option {
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		panic("pathgen: WithDrift(mu) requires finite mu")
	}
	return func(c *pathConfig) {
		c.drift = mu
	}
}
