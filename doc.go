// Package rmmcurve is a numerical toolkit for replicating-market-maker
// trading curves and the figures that illustrate them.
//
// What it covers:
//
//	• Gaussian primitives: pdf, cdf, inverse cdf, seeded sampling
//	• Moneyness terms d1/d2 of the log-normal price model
//	• RMM-CC family: reserve curve, liquidity density, portfolio value,
//	  covered-call and perpetual-put payoffs, forced rebalance, G3M curve
//	• Seeded price paths: Brownian bridge, GBM, OHLC candles
//	• Monotone cubic interpolation and small approximation helpers
//	• A YAML-configured renderer that writes every figure via gonum/plot
//
// Packages:
//
//	series/    — curves, grids and pointwise kernels shared by everything
//	gaussian/  — standard normal pdf/cdf/quantile and sampling
//	moneyness/ — d1, d2 and the σ√τ volatility-time term
//	rmm/       — the RMM-CC trading-curve family
//	pathgen/   — reproducible stochastic price paths
//	spline/    — monotone cubic spline (gonum Fritsch–Butland fit)
//	approx/    — factorial, Horner polynomial, parametric line
//	csvload/   — price columns from CSV, memoised
//	render/    — chart model and gonum/plot backend
//	figures/   — the named figure catalog and its runner
//	config/    — YAML run configuration
//	cmd/rmmplot — command-line entry point
//
// The numerical packages are pure: inputs are never mutated, outputs are
// freshly allocated, and identical inputs (including seeds) give identical
// outputs. Only csvload, figures and cmd/rmmplot log.
//
// Quick example:
//
//	prices := series.Linspace(0.5, 10, 200)
//	x, y, err := rmm.TradingCurve(prices, 3, 0.5, 1)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(x[0], y[0])
package rmmcurve
