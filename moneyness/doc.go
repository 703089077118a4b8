// Package moneyness computes the standardized log-moneyness terms d1 and d2
// that every RMM curve formula feeds into the Gaussian CDF/PDF:
//
//	d1 = ln(S/K)/(σ√τ) + σ√τ/2
//	d2 = ln(S/K)/(σ√τ) - σ√τ/2
//
// Domain (checked, never silently mapped to NaN/Inf):
//   - strike K > 0, every price S > 0 (logarithm)
//   - σ > 0, τ >= 0, and σ√τ != 0 (denominator)
//
// τ = 0 is a legitimate expiry state for the AMM, but the terms themselves
// are undefined there; they fail with ErrDegenerateVolTime and callers switch
// to the expiry limits in package rmm.
package moneyness
