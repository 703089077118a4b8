// SPDX-License-Identifier: MIT
// Package: rmmcurve/render
//
// chart.go — declarative chart model and its validation.

package render

import (
	"math"

	"github.com/katalvlaran/rmmcurve/series"
)

// Curve is one drawn line or marker set. An empty Name keeps it out of the legend.
type Curve struct {
	Data   series.Curve
	Design CurveDesign
	Name   string
}

// Region is the area between Lower and Upper, filled with a translucent shade.
// The outline runs along Lower, then back along Upper reversed.
type Region struct {
	Lower, Upper series.Curve
	Design       RegionDesign
	Name         string
}

// Bounds is an inclusive [min, max] axis range. The zero value autoscales.
type Bounds [2]float64

// Auto reports whether b is the autoscale zero value.
func (b Bounds) Auto() bool { return b[0] == 0 && b[1] == 0 }

// Axes labels and bounds.
type Axes struct {
	XLabel, YLabel   string
	XBounds, YBounds Bounds
}

// Chart is everything needed to draw one figure.
type Chart struct {
	Title   string
	Curves  []Curve
	Regions []Region
	Axes    Axes
}

// Validate checks every element of the chart; Build calls it first.
func (c Chart) Validate() error {
	if len(c.Curves) == 0 && len(c.Regions) == 0 {
		return chartErrorf("chart %q has nothing to draw", c.Title)
	}
	for i, curve := range c.Curves {
		if err := checkData(curve.Data); err != nil {
			return chartErrorf("curve %d (%s): %v", i, curve.Name, err)
		}
		if _, err := curve.Design.Color.Shade(curve.Design.Slot); err != nil {
			return err
		}
	}
	for i, region := range c.Regions {
		if err := checkData(region.Lower); err != nil {
			return chartErrorf("region %d (%s) lower: %v", i, region.Name, err)
		}
		if err := checkData(region.Upper); err != nil {
			return chartErrorf("region %d (%s) upper: %v", i, region.Name, err)
		}
		if _, err := region.Design.Color.Shade(region.Design.Slot); err != nil {
			return err
		}
	}
	if !validBounds(c.Axes.XBounds) {
		return chartErrorf("x bounds %v", c.Axes.XBounds)
	}
	if !validBounds(c.Axes.YBounds) {
		return chartErrorf("y bounds %v", c.Axes.YBounds)
	}

	return nil
}

func checkData(c series.Curve) error {
	if len(c.X) != len(c.Y) {
		return series.ErrLengthMismatch
	}
	if len(c.X) == 0 {
		return errEmptyCurve
	}

	return nil
}

func validBounds(b Bounds) bool {
	if b.Auto() {
		return true
	}
	for _, v := range b {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return b[0] < b[1]
}
