// Package spline implements monotone piecewise-cubic interpolation.
//
// MonotonicCubic fits cubic Hermite segments through strictly increasing
// control points. Fitting is delegated to gonum's interp.FritschButland, whose
// weighted harmonic-mean tangents keep the interpolant from overshooting:
// wherever the data are monotone on an interval, so is the curve. Queries
// outside the knot range are clamped to the boundary control value.
package spline
