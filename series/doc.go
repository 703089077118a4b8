// Package series holds the coordinate-sequence vocabulary shared by every
// curve generator in rmmcurve: evenly spaced grids, x/y curve pairs and a
// handful of pointwise kernels.
//
// What is a coordinate sequence?
//
//	An ordered, finite []float64 produced with a caller-chosen length.
//	Two sequences of equal length form a Curve. Sequences are never mutated
//	in place; every kernel in this package returns a fresh slice.
//
// Key pieces:
//   - Linspace:       n evenly spaced points on [start, end] (inclusive).
//   - Curve/NewCurve: x/y pair, length mismatch rejected at construction.
//   - Map/Zip/Scale:  pointwise transforms with no cross-element dependency.
//   - ValidateFinite: fail fast on NaN/±Inf before a value reaches a formula.
//
// Usage:
//
//	grid := series.Linspace(0.01, 10, 1000)
//	c, err := series.NewCurve(grid, series.Map(grid, math.Sqrt))
//
// Performance:
//
//	Every kernel is O(n) time, O(n) memory for the output slice.
package series
