// SPDX-License-Identifier: MIT
// Package: rmmcurve/figures
//
// helpers.go — small constructors shared by the builders.

package figures

import (
	"strconv"

	"github.com/katalvlaran/rmmcurve/render"
	"github.com/katalvlaran/rmmcurve/series"
)

// samples is the resolution of every analytic curve.
const samples = 1000

func design(c render.Color, slot int, e render.Emphasis) render.CurveDesign {
	return render.CurveDesign{Color: c, Slot: slot, Style: render.Lines, Emphasis: e}
}

func curve(x, y []float64, d render.CurveDesign, name string) (render.Curve, error) {
	data, err := series.NewCurve(x, y)
	if err != nil {
		return render.Curve{}, err
	}

	return render.Curve{Data: data, Design: d, Name: name}, nil
}

// slotFor spreads the i-th of several curves over the palette.
func slotFor(i int) int {
	return (render.MainColorSlot + 3*i) % render.PaletteSize
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
