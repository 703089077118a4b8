// Package render turns declarative charts into gonum/plot figures.
//
// A Chart is plain data: curves and shaded regions built from series.Curve,
// each with a design (palette colour, slot, line emphasis) and an optional
// legend name, plus axis labels and bounds. Build lays the chart out for a
// Display (light or dark, opaque or transparent) and Save/Write encode it as
// PNG, SVG or PDF on a 16×9 inch canvas.
//
// Nothing here computes curves; callers pass finished coordinates.
package render
