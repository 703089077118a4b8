// Package gaussian provides the standard normal primitives every RMM curve is
// built from: density, cumulative distribution, its inverse, and normal
// sampling with an explicit reproducibility contract.
//
// ✨ Key features:
//   - PDF / CDF over whole coordinate sequences (length and order preserved)
//   - scalar PDFAt / CDFAt for formula code that works point by point
//   - Quantile (Φ⁻¹) with a strict (0,1) domain, never a silent ±Inf
//   - SampleSeeded: PCG-seeded draws, identical seeds ⇒ identical samples
//   - Sample: unseeded convenience draws for throwaway illustrations only
//
// Accuracy:
//
//	CDF is erfc based (gonum distuv), within 1e-10 of an erf reference on
//	[-10, 10] and accurate in the far left tail where 1-Φ(-x) would cancel.
//
// Every function is a pure pointwise transform; elements may be evaluated in
// any order with identical results.
package gaussian
