// SPDX-License-Identifier: MIT
// Package: rmmcurve/pathgen
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • src        = nil   (each call seeds its own PCG source from 'seed')
//   • volatility = 1.0   (bridge walk increments are z·√dt)
//   • drift      = 0.0

package pathgen

import (
	"golang.org/x/exp/rand"
)

// Deterministic defaults.
const (
	defaultVolatility = 1.0
	defaultDrift      = 0.0
	minPathSteps      = 2
)

// pathConfig aggregates all knobs used by generators. Passed by value.
type pathConfig struct {
	// Shared source; nil means "seed locally from the call's seed".
	src rand.Source
	// Per-step noise scale.
	volatility float64
	// GBM drift per unit time.
	drift float64
}

// newPathConfig applies options in order over the defaults (last wins).
// Complexity: O(len(opts)).
func newPathConfig(opts ...Option) pathConfig {
	cfg := pathConfig{
		src:        nil,
		volatility: defaultVolatility,
		drift:      defaultDrift,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// sourceFrom returns cfg.src if present (shared stream), else a fresh PCG
// source seeded by seed.
func sourceFrom(cfg pathConfig, seed uint64) rand.Source {
	if cfg.src != nil {
		return cfg.src
	}

	return rand.NewSource(seed)
}
