package rmm_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rmmcurve/rmm"
	"github.com/katalvlaran/rmmcurve/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testStrike = 3.0
	testSigma  = 0.5
	testTau    = 2.0
)

// TestTradingCurve_AtTheMoneyInterior checks both reserves are strictly
// interior at S == K.
func TestTradingCurve_AtTheMoneyInterior(t *testing.T) {
	x, y, err := rmm.TradingCurve([]float64{testStrike}, testStrike, testSigma, testTau)
	require.NoError(t, err)
	assert.Greater(t, x[0], 0.0)
	assert.Less(t, x[0], 1.0)
	assert.Greater(t, y[0], 0.0)
	assert.Less(t, y[0], testStrike)
}

// TestTradingCurve_ScaleLaw verifies WithScale(c) == c * default, elementwise.
func TestTradingCurve_ScaleLaw(t *testing.T) {
	prices := series.Linspace(0.01, 100, 500)
	x1, y1, err := rmm.TradingCurve(prices, testStrike, testSigma, testTau)
	require.NoError(t, err)
	for _, c := range []float64{0.1, 0.5, 1, 2.5} {
		xc, yc, err := rmm.TradingCurve(prices, testStrike, testSigma, testTau, rmm.WithScale(c))
		require.NoError(t, err)
		for i := range prices {
			assert.Equal(t, c*x1[i], xc[i], "x c=%v i=%d", c, i)
			assert.Equal(t, c*y1[i], yc[i], "y c=%v i=%d", c, i)
		}
	}
}

// TestExpiryTradingCurve_ScaleLaw verifies the same law at τ = 0, including
// the even split at S == K.
func TestExpiryTradingCurve_ScaleLaw(t *testing.T) {
	prices := append(series.Linspace(0, 10, 101), testStrike)
	x1, y1, err := rmm.ExpiryTradingCurve(prices, testStrike)
	require.NoError(t, err)
	for _, c := range []float64{0.1, 0.3, 2.5, 7} {
		xc, yc, err := rmm.ExpiryTradingCurve(prices, testStrike, rmm.WithScale(c))
		require.NoError(t, err)
		for i := range prices {
			assert.Equal(t, c*x1[i], xc[i], "x c=%v i=%d", c, i)
			assert.Equal(t, c*y1[i], yc[i], "y c=%v i=%d", c, i)
		}
	}
}

// TestExpiryTradingCurve_NaNStrikeContext checks the rejected strike is named.
func TestExpiryTradingCurve_NaNStrikeContext(t *testing.T) {
	_, _, err := rmm.ExpiryTradingCurve([]float64{1}, math.Inf(1))
	require.ErrorIs(t, err, rmm.ErrNaNInf)
	assert.Contains(t, err.Error(), "strike=+Inf")
}

// TestTradingCurve_Monotone: risky reserve falls and numeraire reserve rises
// with price.
func TestTradingCurve_Monotone(t *testing.T) {
	prices := series.Linspace(0.1, 20, 400)
	x, y, err := rmm.TradingCurve(prices, testStrike, testSigma, testTau)
	require.NoError(t, err)
	for i := 1; i < len(prices); i++ {
		assert.LessOrEqual(t, x[i], x[i-1])
		assert.GreaterOrEqual(t, y[i], y[i-1])
	}
}

// TestTradingCurve_Errors covers the moneyness domain surfaced through rmm.
func TestTradingCurve_Errors(t *testing.T) {
	_, _, err := rmm.TradingCurve([]float64{0, 1}, testStrike, testSigma, testTau)
	assert.ErrorIs(t, err, rmm.ErrNonPositivePrice)
	_, _, err = rmm.TradingCurve([]float64{1}, testStrike, testSigma, 0)
	assert.ErrorIs(t, err, rmm.ErrDegenerateVolTime)
	_, _, err = rmm.TradingCurve([]float64{1}, -1, testSigma, testTau)
	assert.ErrorIs(t, err, rmm.ErrNonPositiveStrike)
}

// TestWithScale_Panics ensures meaningless scales are rejected at option construction.
func TestWithScale_Panics(t *testing.T) {
	assert.Panics(t, func() { rmm.WithScale(0) })
	assert.Panics(t, func() { rmm.WithScale(-1) })
	assert.Panics(t, func() { rmm.WithScale(math.NaN()) })
	assert.Panics(t, func() { rmm.WithScale(math.Inf(1)) })
	assert.NotPanics(t, func() { rmm.WithScale(0.3) })
}

// TestExpiryTradingCurve checks the step limit and agreement with small τ.
func TestExpiryTradingCurve(t *testing.T) {
	x, y, err := rmm.ExpiryTradingCurve([]float64{0, 1, 3, 5}, testStrike)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 0.5, 0}, x)
	assert.Equal(t, []float64{0, 0, 1.5, 3}, y)

	xs, ys, err := rmm.TradingCurve([]float64{1, 5}, testStrike, testSigma, 1e-8)
	require.NoError(t, err)
	assert.InDelta(t, x[1], xs[0], 1e-9)
	assert.InDelta(t, y[3], ys[1], 1e-9)

	_, _, err = rmm.ExpiryTradingCurve([]float64{-1}, testStrike)
	assert.ErrorIs(t, err, rmm.ErrNonPositivePrice)
}

// TestLiquidityDensity_Positive checks L(S) > 0 and S = 0 rejection.
func TestLiquidityDensity_Positive(t *testing.T) {
	prices := series.Linspace(0.01, 10, 200)
	l, err := rmm.LiquidityDensity(prices, testStrike, testSigma, 1)
	require.NoError(t, err)
	for i, v := range l {
		assert.Greater(t, v, 0.0, "i=%d", i)
	}

	_, err = rmm.LiquidityDensity([]float64{0, 1}, testStrike, testSigma, 1)
	assert.ErrorIs(t, err, rmm.ErrNonPositivePrice)
}

// TestLiquidityDensity_IsReserveDerivative compares L(S) with -dx/dS.
func TestLiquidityDensity_IsReserveDerivative(t *testing.T) {
	const h = 1e-5
	for _, s := range []float64{1, 2.5, 3, 4, 8} {
		xs, _, err := rmm.TradingCurve([]float64{s - h, s + h}, testStrike, testSigma, 1)
		require.NoError(t, err)
		l, err := rmm.LiquidityDensity([]float64{s}, testStrike, testSigma, 1)
		require.NoError(t, err)
		assert.InDelta(t, -(xs[1]-xs[0])/(2*h), l[0], 1e-6, "S=%v", s)
	}
}

// TestPortfolioValue_Limits checks V → S below and V → K above the strike.
func TestPortfolioValue_Limits(t *testing.T) {
	v, err := rmm.PortfolioValue([]float64{0.01, 1000}, testStrike, testSigma, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.01, v[0], 1e-6)
	assert.InDelta(t, testStrike, v[1], 1e-6)

	prices := series.Linspace(0.1, 10, 100)
	v, err = rmm.PortfolioValue(prices, testStrike, testSigma, 1)
	require.NoError(t, err)
	for i, s := range prices {
		assert.LessOrEqual(t, v[i], math.Min(s, testStrike)+1e-12, "covered call never beats min(S,K)")
	}
}

// TestExpiryPortfolioValue returns min(S, K).
func TestExpiryPortfolioValue(t *testing.T) {
	v, err := rmm.ExpiryPortfolioValue([]float64{0, 2, 3, 7}, testStrike)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 3, 3}, v)

	_, err = rmm.ExpiryPortfolioValue([]float64{1}, 0)
	assert.ErrorIs(t, err, rmm.ErrNonPositiveStrike)
}
