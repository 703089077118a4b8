// SPDX-License-Identifier: MIT
// Package: rmmcurve/figures
//
// rmmcurves.go — RMM-CC and G3M figures.
//
// Price grids start just above zero: the curve family rejects S <= 0 for
// τ > 0, and the τ = 0 entries use the expiry limits instead.

package figures

import (
	"fmt"

	"github.com/katalvlaran/rmmcurve/rmm"
	"github.com/katalvlaran/rmmcurve/render"
	"github.com/katalvlaran/rmmcurve/series"
)

// Shared RMM-CC pool parameters.
const (
	poolStrike = 3.0
	poolSigma  = 0.5
	minPrice   = 1e-3
)

var reserveAxes = render.Axes{
	XLabel:  "R_x",
	YLabel:  "R_y",
	XBounds: render.Bounds{0, 1},
	YBounds: render.Bounds{0, 3},
}

func tradingCurveTaus(Env) (render.Chart, error) {
	prices := series.Linspace(minPrice, 100, samples)
	taus := series.Linspace(2, 0, 5)

	curves := make([]render.Curve, 0, len(taus))
	for i, tau := range taus {
		var x, y []float64
		var err error
		if tau == 0 {
			x, y, err = rmm.ExpiryTradingCurve(prices, poolStrike)
		} else {
			x, y, err = rmm.TradingCurve(prices, poolStrike, poolSigma, tau)
		}
		if err != nil {
			return render.Chart{}, err
		}
		c, err := curve(x, y, design(render.Green, i, render.Light), "τ="+ftoa(tau))
		if err != nil {
			return render.Chart{}, err
		}
		curves = append(curves, c)
	}

	return render.Chart{Title: "RMM Trading Curve", Curves: curves, Axes: reserveAxes}, nil
}

func tradingCurveRescaling(Env) (render.Chart, error) {
	const tau = 2.0
	prices := series.Linspace(minPrice, 100, samples)
	scales := series.Linspace(0.1, 1, 10)

	curves := make([]render.Curve, 0, len(scales))
	for i, scale := range scales {
		x, y, err := rmm.TradingCurve(prices, poolStrike, poolSigma, tau, rmm.WithScale(scale))
		if err != nil {
			return render.Chart{}, err
		}
		c, err := curve(x, y, design(render.Green, i, render.Light), fmt.Sprintf("scale %.1f", scale))
		if err != nil {
			return render.Chart{}, err
		}
		curves = append(curves, c)
	}

	return render.Chart{
		Title:  fmt.Sprintf("Fractional LPTs with K=%v, σ=%v, τ=%v", poolStrike, poolSigma, tau),
		Curves: curves,
		Axes:   reserveAxes,
	}, nil
}

func liquidityDistribution(Env) (render.Chart, error) {
	prices := series.Linspace(0.01, 10, samples)
	taus := []float64{1, 0.5, 0.3, 0.2, 0.1}

	curves := make([]render.Curve, 0, len(taus))
	for i, tau := range taus {
		density, err := rmm.LiquidityDensity(prices, poolStrike, poolSigma, tau)
		if err != nil {
			return render.Chart{}, err
		}
		c, err := curve(prices, density, design(render.Green, i, render.Light), "τ="+ftoa(tau))
		if err != nil {
			return render.Chart{}, err
		}
		curves = append(curves, c)
	}

	return render.Chart{
		Title:  "RMM Liquidity Distribution",
		Curves: curves,
		Axes:   render.Axes{XLabel: "S", YLabel: "L(S)", XBounds: render.Bounds{0, 10}, YBounds: render.Bounds{0, 1}},
	}, nil
}

func portfolioValue(Env) (render.Chart, error) {
	prices := series.Linspace(minPrice, 10, samples)
	taus := []float64{2, 1.5, 1, 0.5, 0}

	curves := make([]render.Curve, 0, len(taus)+1)
	for i, tau := range taus {
		var v []float64
		var err error
		if tau == 0 {
			v, err = rmm.ExpiryPortfolioValue(prices, poolStrike)
		} else {
			v, err = rmm.PortfolioValue(prices, poolStrike, poolSigma, tau)
		}
		if err != nil {
			return render.Chart{}, err
		}
		c, err := curve(prices, v, design(render.Green, i, render.Light), "τ="+ftoa(tau))
		if err != nil {
			return render.Chart{}, err
		}
		curves = append(curves, c)
	}

	strikeLine, err := curve(series.Constant(poolStrike, 2), []float64{0, 5},
		design(render.Grey, render.MainColorSlot, render.Dashed), "strike")
	if err != nil {
		return render.Chart{}, err
	}

	return render.Chart{
		Title:  "RMM Portfolio Value",
		Curves: append(curves, strikeLine),
		Axes:   render.Axes{XLabel: "S", YLabel: "V(S)", XBounds: render.Bounds{0, 10}, YBounds: render.Bounds{0, 5}},
	}, nil
}

func leverageZones(Env) (render.Chart, error) {
	t := series.Linspace(0, 1, samples)
	s := series.Scale(5, t)
	diagonal, err := series.NewCurve(s, s)
	if err != nil {
		return render.Chart{}, err
	}
	ceiling, err := series.NewCurve(s, series.Constant(5, len(s)))
	if err != nil {
		return render.Chart{}, err
	}
	floor, err := series.NewCurve(s, series.Constant(0, len(s)))
	if err != nil {
		return render.Chart{}, err
	}

	pvf, err := curve(s, series.Map(s, func(v float64) float64 { return v * v }),
		design(render.Green, render.MainColorSlot, render.Heavy), "V(S)=S²")
	if err != nil {
		return render.Chart{}, err
	}

	return render.Chart{
		Title:  "Leverage Zones",
		Curves: []render.Curve{pvf},
		Regions: []render.Region{
			{Lower: diagonal, Upper: ceiling, Design: render.RegionDesign{Color: render.Purple, Slot: render.MainColorSlot}, Name: "over-levered"},
			{Lower: diagonal, Upper: floor, Design: render.RegionDesign{Color: render.Blue, Slot: render.MainColorSlot}, Name: "under-levered"},
		},
		Axes: render.Axes{XLabel: "S", YLabel: "V(S)", XBounds: render.Bounds{0, 5}, YBounds: render.Bounds{0, 5}},
	}, nil
}

func perpetualPutAndCoveredCall(Env) (render.Chart, error) {
	const (
		strike = 7.0
		sigma  = 0.5
		rate   = 0.04
		tau    = 0.1
	)
	prices := series.Linspace(0.1, 15, samples)

	_, cc, err := rmm.CoveredCallPayoff(prices, strike, sigma, tau)
	if err != nil {
		return render.Chart{}, err
	}
	_, pp, err := rmm.PerpetualPutPayoff(prices, strike, sigma, rate)
	if err != nil {
		return render.Chart{}, err
	}
	sum, err := series.Zip(cc, pp, func(a, b float64) float64 { return a + b })
	if err != nil {
		return render.Chart{}, err
	}

	ccCurve, err := curve(prices, cc, design(render.Green, render.MainColorSlot, render.Light), "covered call")
	if err != nil {
		return render.Chart{}, err
	}
	ppCurve, err := curve(prices, pp, design(render.Blue, render.MainColorSlot, render.Light), "perpetual put")
	if err != nil {
		return render.Chart{}, err
	}
	sumCurve, err := curve(prices, sum, design(render.Purple, render.MainColorSlot, render.Light), "covered call + perpetual put")
	if err != nil {
		return render.Chart{}, err
	}

	return render.Chart{
		Title:  "Perpetual Put and Covered Call",
		Curves: []render.Curve{ccCurve, ppCurve, sumCurve},
		Axes:   render.Axes{XLabel: "S", YLabel: "V(S)", XBounds: render.Bounds{0.1, 15}, YBounds: render.Bounds{0, 10}},
	}, nil
}

func forcedRebalance(Env) (render.Chart, error) {
	const (
		strike = 5.0
		sigma  = 0.5
		tau    = 0.8
		ratio  = 1.5
		inv    = 0.0
	)
	reserves := series.Linspace(0.001, 0.999, samples)
	x, v, err := rmm.ForcedRebalance(reserves, strike, sigma, tau, ratio, inv)
	if err != nil {
		return render.Chart{}, err
	}
	c, err := curve(x, v, design(render.Purple, render.MainColorSlot, render.Light), "forced rebalance")
	if err != nil {
		return render.Chart{}, err
	}

	return render.Chart{
		Title:  "Forced Rebalance",
		Curves: []render.Curve{c},
		Axes:   render.Axes{XLabel: "R_x", YLabel: "V(R_x)", XBounds: render.Bounds{0, 1}, YBounds: render.Bounds{-1, 0.6}},
	}, nil
}

func g3mTradingCurve(Env) (render.Chart, error) {
	xs := series.Linspace(0.05, 5, samples)
	weights := []float64{0.2, 0.5, 0.8}

	curves := make([]render.Curve, 0, len(weights))
	for i, w := range weights {
		x, y, err := rmm.G3MTradingCurve(xs, w, 1)
		if err != nil {
			return render.Chart{}, err
		}
		c, err := curve(x, y, design(render.Blue, slotFor(i), render.Light), "w="+ftoa(w))
		if err != nil {
			return render.Chart{}, err
		}
		curves = append(curves, c)
	}

	return render.Chart{
		Title:  "G3M Trading Curves",
		Curves: curves,
		Axes:   render.Axes{XLabel: "R_x", YLabel: "R_y", XBounds: render.Bounds{0, 5}, YBounds: render.Bounds{0, 5}},
	}, nil
}
