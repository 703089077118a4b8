// Package approx provides small exact helpers used to build approximation
// figures: an overflow-checked factorial, Horner polynomial evaluation,
// parametric lines and the Taylor coefficients of exp(-x²).
package approx
