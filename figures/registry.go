// SPDX-License-Identifier: MIT
// Package: rmmcurve/figures
//
// registry.go — figure catalog and the environment builders read from.

package figures

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sgostarter/i/l"

	"github.com/katalvlaran/rmmcurve/config"
	"github.com/katalvlaran/rmmcurve/csvload"
	"github.com/katalvlaran/rmmcurve/render"
)

// ErrUnknownFigure indicates a name missing from the catalog.
var ErrUnknownFigure = errors.New("figures: unknown figure")

// Env is what a Builder may read. Builders never write files or log.
type Env struct {
	Config config.Config
	Loader *csvload.Loader
	Logger l.Wrapper
}

// NewEnv returns an Env with a fresh CSV loader. A nil logger discards output.
func NewEnv(cfg config.Config, logger l.Wrapper) Env {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	return Env{
		Config: cfg,
		Loader: csvload.NewLoader(logger),
		Logger: logger,
	}
}

// Builder computes one chart.
type Builder func(env Env) (render.Chart, error)

// Figure is a named catalog entry.
type Figure struct {
	Name        string
	Description string
	Build       Builder
}

var registry = []Figure{
	{"approximation-types", "polynomial and rational approximations of exp(-x²)", approximationTypes},
	{"polynomial-approximations", "Taylor polynomials of exp(-x²) by degree", polynomialApproximations},
	{"trading-curve-taus", "RMM-CC reserve curve for decreasing time to expiry", tradingCurveTaus},
	{"trading-curve-rescaling", "fractional liquidity tokens of one RMM-CC pool", tradingCurveRescaling},
	{"liquidity-distribution", "RMM-CC liquidity density over price", liquidityDistribution},
	{"portfolio-value", "RMM-CC portfolio value over price", portfolioValue},
	{"leverage-zones", "over- and under-levered regions around V(S)=S²", leverageZones},
	{"brownian-bridge", "seeded Brownian bridges between two prices", brownianBridge},
	{"cubic-spline", "monotone cubic spline through Gaussian CDF samples", cubicSpline},
	{"csv-prices", "price series read from CSV", csvPrices},
	{"pp-and-cc", "perpetual put, covered call and their sum", perpetualPutAndCoveredCall},
	{"forced-rebalance", "value of a forced rebalance over the risky reserve", forcedRebalance},
	{"g3m-trading-curve", "geometric-mean trading curves by weight", g3mTradingCurve},
	{"gbm-prices", "synthetic GBM prices with candle high/low envelope", gbmPrices},
}

// Registry returns the catalog in presentation order.
func Registry() []Figure {
	return append([]Figure(nil), registry...)
}

// Lookup returns the figure called name.
func Lookup(name string) (Figure, error) {
	for _, f := range registry {
		if f.Name == name {
			return f, nil
		}
	}

	return Figure{}, fmt.Errorf("%q: %w", name, ErrUnknownFigure)
}

// Names returns every figure name, sorted.
func Names() []string {
	names := make([]string, len(registry))
	for i, f := range registry {
		names[i] = f.Name
	}
	sort.Strings(names)

	return names
}
