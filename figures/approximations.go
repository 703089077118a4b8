// SPDX-License-Identifier: MIT
// Package: rmmcurve/figures
//
// approximations.go — Gaussian-shape approximation figures and the CDF spline.

package figures

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rmmcurve/approx"
	"github.com/katalvlaran/rmmcurve/gaussian"
	"github.com/katalvlaran/rmmcurve/render"
	"github.com/katalvlaran/rmmcurve/series"
	"github.com/katalvlaran/rmmcurve/spline"
)

var gaussianShapeAxes = render.Axes{
	XLabel:  "x",
	YLabel:  "f(x)",
	XBounds: render.Bounds{-5, 5},
	YBounds: render.Bounds{-0.5, 1.5},
}

// gaussianShape returns exp(-x²) = √(2π)·φ(√2·x).
func gaussianShape(t []float64) []float64 {
	return series.Scale(math.Sqrt(2*math.Pi), gaussian.PDF(series.Scale(math.Sqrt2, t)))
}

func approximationTypes(Env) (render.Chart, error) {
	t := series.Linspace(-5, 5, samples)

	poly, err := curve(t, approx.Polynomial(t, []float64{1, 0, -1}),
		design(render.Purple, render.MainColorSlot, render.Light), "1-x²")
	if err != nil {
		return render.Chart{}, err
	}
	rational, err := curve(t, series.Map(t, func(x float64) float64 { return 1 / (1 + x*x) }),
		design(render.Blue, render.MainColorSlot, render.Light), "1/(1+x²)")
	if err != nil {
		return render.Chart{}, err
	}
	exact, err := curve(t, gaussianShape(t), design(render.Green, render.MainColorSlot, render.Heavy), "exp(-x²)")
	if err != nil {
		return render.Chart{}, err
	}

	return render.Chart{
		Title:  "Comparing Types of Approximations",
		Curves: []render.Curve{poly, rational, exact},
		Axes:   gaussianShapeAxes,
	}, nil
}

const topTaylorDegree = 8

func polynomialApproximations(Env) (render.Chart, error) {
	t := series.Linspace(-5, 5, samples)
	coeffs, err := approx.GaussianTaylorCoeffs(topTaylorDegree)
	if err != nil {
		return render.Chart{}, err
	}

	var curves []render.Curve
	for degree := 0; degree <= topTaylorDegree; degree += 2 {
		c, err := curve(t, approx.Polynomial(t, coeffs[:degree+1]),
			design(render.Purple, degree, render.Light), fmt.Sprintf("degree %d", degree))
		if err != nil {
			return render.Chart{}, err
		}
		curves = append(curves, c)
	}
	exact, err := curve(t, gaussianShape(t), design(render.Green, render.MainColorSlot, render.Heavy), "exp(-x²)")
	if err != nil {
		return render.Chart{}, err
	}

	return render.Chart{
		Title:  "Polynomial Approximations",
		Curves: append(curves, exact),
		Axes:   gaussianShapeAxes,
	}, nil
}

const splineKnots = 7

func cubicSpline(Env) (render.Chart, error) {
	xs := series.Linspace(-3, 3, splineKnots)
	ys := gaussian.CDF(xs)
	s, err := spline.New(xs, ys)
	if err != nil {
		return render.Chart{}, err
	}

	points, err := curve(xs, ys, render.CurveDesign{
		Color: render.Green, Slot: render.MainColorSlot, Style: render.Markers, Emphasis: render.Heavy,
	}, "CDF points")
	if err != nil {
		return render.Chart{}, err
	}
	dense := series.Linspace(-3, 3, samples)
	fit, err := curve(dense, s.InterpolateAll(dense), design(render.Blue, render.MainColorSlot, render.Heavy), "CDF spline")
	if err != nil {
		return render.Chart{}, err
	}

	return render.Chart{
		Title:  fmt.Sprintf("Monotonic Cubic Spline Approximation for %d Points", splineKnots),
		Curves: []render.Curve{fit, points},
		Axes:   render.Axes{XLabel: "x", YLabel: "Φ(x)", XBounds: render.Bounds{-3, 3}, YBounds: render.Bounds{0, 1}},
	}, nil
}
