// Package pathgen generates reproducible stochastic price paths for
// illustration: a Brownian bridge pinned at both ends, a discrete geometric
// Brownian motion, and OHLC candles aggregated from any path.
//
// The package offers the following key components:
//
//   - Generators:
//     – BrownianBridge: scaled random walk, affinely corrected so the path
//     starts exactly at the start price and ends exactly at the end price.
//     – GBMPath:        S·exp((μ-σ²/2)dt + σ√dt·Z) on an even time grid.
//     – Candles:        open/high/low/close per fixed-size bucket of a path.
//   - Configuration primitives (functional options):
//     – WithSource:     share an explicit x/exp/rand source across calls.
//     – WithVolatility: per-step noise scale (default 1.0).
//     – WithDrift:      GBM drift μ (default 0.0).
//
// Guarantees:
//
//   - Determinism: identical (parameters, seed) ⇒ bit-identical output. Each
//     call seeds its own PCG source unless WithSource supplies one.
//   - No global RNG anywhere on these code paths.
//   - Sequential by construction: every step depends on the previous one, so
//     generation is never split across goroutines.
//   - Fast-fail on invalid option values via panics in option constructors;
//     runtime parameters fail with sentinel errors (errors.Is).
package pathgen
