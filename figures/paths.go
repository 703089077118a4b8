// SPDX-License-Identifier: MIT
// Package: rmmcurve/figures
//
// paths.go — price-path figures: seeded bridges, synthetic GBM and CSV data.

package figures

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rmmcurve/pathgen"
	"github.com/katalvlaran/rmmcurve/render"
	"github.com/katalvlaran/rmmcurve/series"
)

func brownianBridge(env Env) (render.Chart, error) {
	bc := env.Config.Bridge
	t := series.Linspace(0, 1, bc.Steps)

	curves := make([]render.Curve, 0, len(bc.Seeds))
	for i, seed := range bc.Seeds {
		path, err := pathgen.BrownianBridge(bc.StartPrice, bc.EndPrice, 1, bc.Steps, seed)
		if err != nil {
			return render.Chart{}, fmt.Errorf("seed %d: %w", seed, err)
		}
		c, err := curve(t, path, design(render.Green, slotFor(i), render.Light), fmt.Sprintf("seed %d", seed))
		if err != nil {
			return render.Chart{}, err
		}
		curves = append(curves, c)
	}

	return render.Chart{
		Title:  "Example Price Paths",
		Curves: curves,
		Axes: render.Axes{
			XLabel:  "t",
			YLabel:  "P(t)",
			XBounds: render.Bounds{0, 1},
			YBounds: render.Bounds{0, 2 * math.Max(bc.StartPrice, bc.EndPrice)},
		},
	}, nil
}

func gbmPrices(env Env) (render.Chart, error) {
	gc := env.Config.GBM
	path, err := pathgen.GBMPath(gc.StartPrice, 1, gc.Steps, gc.Seed,
		pathgen.WithDrift(gc.Drift), pathgen.WithVolatility(gc.Volatility))
	if err != nil {
		return render.Chart{}, err
	}
	_, high, low, _, err := pathgen.Candles(path, gc.Candle)
	if err != nil {
		return render.Chart{}, err
	}

	// Each candle spans [t_first, t_last] of its bucket; draw the envelope as
	// a step shape so every bucket is flat across its own interval.
	t := series.Linspace(0, 1, gc.Steps)
	var envX, envLow, envHigh []float64
	for k := range high {
		from := k * gc.Candle
		to := from + gc.Candle - 1
		if to >= len(t) {
			to = len(t) - 1
		}
		envX = append(envX, t[from], t[to])
		envLow = append(envLow, low[k], low[k])
		envHigh = append(envHigh, high[k], high[k])
	}
	lower, err := series.NewCurve(envX, envLow)
	if err != nil {
		return render.Chart{}, err
	}
	upper, err := series.NewCurve(envX, envHigh)
	if err != nil {
		return render.Chart{}, err
	}

	price, err := curve(t, path, design(render.Green, render.MainColorSlot, render.Light), "price")
	if err != nil {
		return render.Chart{}, err
	}

	return render.Chart{
		Title:  fmt.Sprintf("Synthetic GBM Prices (μ=%v, σ=%v)", gc.Drift, gc.Volatility),
		Curves: []render.Curve{price},
		Regions: []render.Region{{
			Lower:  lower,
			Upper:  upper,
			Design: render.RegionDesign{Color: render.Grey, Slot: 3},
			Name:   fmt.Sprintf("%d-step high/low", gc.Candle),
		}},
		Axes: render.Axes{XLabel: "t", YLabel: "S(t)", XBounds: render.Bounds{0, 1}},
	}, nil
}

func csvPrices(env Env) (render.Chart, error) {
	cc := env.Config.CSV

	var prices []float64
	var err error
	if cc.Column == "" {
		prices, err = env.Loader.FirstColumn(cc.Path)
	} else {
		prices, err = env.Loader.Column(cc.Path, cc.Column)
	}
	if err != nil {
		return render.Chart{}, err
	}
	if len(prices) == 0 {
		return render.Chart{}, fmt.Errorf("%s: no rows: %w", cc.Path, render.ErrBadChart)
	}

	n := float64(len(prices))
	c, err := curve(series.Linspace(0, n, len(prices)), prices,
		design(render.Green, render.MainColorSlot, render.Light), "liquid exchange prices")
	if err != nil {
		return render.Chart{}, err
	}

	return render.Chart{
		Title:  "CSV Data",
		Curves: []render.Curve{c},
		Axes:   render.Axes{XLabel: "trade number", YLabel: "price", XBounds: render.Bounds{0, n}},
	}, nil
}
