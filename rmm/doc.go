// Package rmm implements the RMM-CC replicating-option AMM curve family: the
// reserve (trading) curve, its liquidity density, the portfolio value
// function, the covered-call and perpetual-put payoffs, the forced-rebalance
// value and the constant-weighted (G3M) comparison curve.
//
// 🚀 What is the RMM-CC trading curve?
//
//	For one maturity τ, strike K and volatility σ the pool holds reserves
//
//	  x(S) = 1 - Φ(d1(S))        (risky asset)
//	  y(S) = K·Φ(d2(S))          (numeraire)
//
//	so that the pool value equals a covered call. Tracing S over a price grid
//	draws the invariant boundary of the constant-function pool.
//
// ⚙️ Usage:
//
//	prices := series.Linspace(0.01, 100, 1000)
//	x, y, err := rmm.TradingCurve(prices, 3, 0.5, 2)               // scale 1
//	x, y, err = rmm.TradingCurve(prices, 3, 0.5, 2, rmm.WithScale(0.4)) // fractional LP
//
// Contract:
//   - Every function is a pure pointwise transform returning fresh slices.
//   - Invalid domains fail with a sentinel (errors.Is), never NaN/Inf output.
//   - τ = 0 fails in the τ>0 formulas (ErrDegenerateVolTime); use
//     ExpiryTradingCurve / ExpiryPortfolioValue for the expiry limits.
package rmm
