// Package figures is the catalog of named charts.
//
// Each Figure pairs a stable name with a Builder that computes its curves
// from the numerical packages and returns a render.Chart. Runner builds and
// saves a selection of figures, logging progress; one failing figure does
// not stop the others unless the configuration asks for fail-fast.
package figures
