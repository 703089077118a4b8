// SPDX-License-Identifier: MIT
// Package: rmmcurve/render
//
// build.go — lay a Chart out on a gonum/plot canvas.
//
// Draw order: grid, regions, curves; later elements paint over earlier ones.
// Axis bounds are applied after all plotters are added because plot.Add
// widens the ranges to fit the data.

package render

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/rmmcurve/series"
)

// Line and marker sizes per emphasis.
var (
	lightWidth    = vg.Points(2)
	heavyWidth    = vg.Points(4)
	dashPattern   = []vg.Length{vg.Points(8), vg.Points(5)}
	lightRadius   = vg.Points(2.5)
	heavyRadius   = vg.Points(4.5)
	gridLineWidth = vg.Points(0.5)
)

// Build validates chart and returns a plot ready for Save or Write.
func Build(chart Chart, display Display) (*plot.Plot, error) {
	if err := chart.Validate(); err != nil {
		return nil, err
	}

	fg, bg := display.palette()
	p := plot.New()
	p.BackgroundColor = bg
	p.Title.Text = chart.Title
	p.Title.TextStyle.Color = fg
	p.X.Label.Text = chart.Axes.XLabel
	p.Y.Label.Text = chart.Axes.YLabel
	paintAxis(&p.X, fg)
	paintAxis(&p.Y, fg)
	p.Legend.TextStyle.Color = fg
	p.Legend.Top = true

	gridColor, _ := Grey.Shade(MainColorSlot)
	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Vertical.Width = gridLineWidth
	grid.Horizontal.Color = gridColor
	grid.Horizontal.Width = gridLineWidth
	p.Add(grid)

	for _, region := range chart.Regions {
		if err := addRegion(p, region); err != nil {
			return nil, err
		}
	}
	for _, curve := range chart.Curves {
		if err := addCurve(p, curve); err != nil {
			return nil, err
		}
	}

	applyBounds(&p.X, chart.Axes.XBounds)
	applyBounds(&p.Y, chart.Axes.YBounds)

	return p, nil
}

func paintAxis(a *plot.Axis, fg color.Color) {
	a.Label.TextStyle.Color = fg
	a.LineStyle.Color = fg
	a.Tick.Label.Color = fg
	a.Tick.LineStyle.Color = fg
}

func applyBounds(a *plot.Axis, b Bounds) {
	if b.Auto() {
		return
	}
	a.Min, a.Max = b[0], b[1]
}

func addRegion(p *plot.Plot, region Region) error {
	shade, err := region.Design.Color.Shade(region.Design.Slot)
	if err != nil {
		return err
	}

	outline := append(toXYs(region.Lower), toXYs(region.Upper.Reversed())...)
	poly, err := plotter.NewPolygon(outline)
	if err != nil {
		return chartErrorf("region %s: %v", region.Name, err)
	}
	poly.Color = regionFill(shade)
	poly.LineStyle.Width = 0

	p.Add(poly)
	if region.Name != "" {
		p.Legend.Add(region.Name, poly)
	}

	return nil
}

// regionFill makes an opaque shade translucent. color.RGBA is premultiplied,
// so lowering its A alone would leave R, G, B above A.
func regionFill(shade color.RGBA) color.NRGBA {
	return color.NRGBA{R: shade.R, G: shade.G, B: shade.B, A: regionAlpha}
}

func addCurve(p *plot.Plot, curve Curve) error {
	shade, err := curve.Design.Color.Shade(curve.Design.Slot)
	if err != nil {
		return err
	}
	xys := toXYs(curve.Data)

	switch curve.Design.Style {
	case Markers:
		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return chartErrorf("curve %s: %v", curve.Name, err)
		}
		scatter.GlyphStyle.Color = shade
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		scatter.GlyphStyle.Radius = lightRadius
		if curve.Design.Emphasis == Heavy {
			scatter.GlyphStyle.Radius = heavyRadius
		}
		p.Add(scatter)
		if curve.Name != "" {
			p.Legend.Add(curve.Name, scatter)
		}
	default:
		line, err := plotter.NewLine(xys)
		if err != nil {
			return chartErrorf("curve %s: %v", curve.Name, err)
		}
		line.LineStyle.Color = shade
		line.LineStyle.Width = lightWidth
		switch curve.Design.Emphasis {
		case Heavy:
			line.LineStyle.Width = heavyWidth
		case Dashed:
			line.LineStyle.Dashes = dashPattern
		}
		p.Add(line)
		if curve.Name != "" {
			p.Legend.Add(curve.Name, line)
		}
	}

	return nil
}

func toXYs(c series.Curve) plotter.XYs {
	xys := make(plotter.XYs, c.Len())
	for i := range xys {
		xys[i].X, xys[i].Y = c.XY(i)
	}

	return xys
}
