package rmm_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rmmcurve/gaussian"
	"github.com/katalvlaran/rmmcurve/rmm"
	"github.com/katalvlaran/rmmcurve/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCoveredCallPayoff_MatchesPortfolioValue: both are the same function
// written with 1-Φ(d1) and Φ(-d1).
func TestCoveredCallPayoff_MatchesPortfolioValue(t *testing.T) {
	prices := series.Linspace(0.1, 15, 300)
	x, g, err := rmm.CoveredCallPayoff(prices, 7, 0.5, 0.1)
	require.NoError(t, err)
	v, err := rmm.PortfolioValue(prices, 7, 0.5, 0.1)
	require.NoError(t, err)
	assert.Equal(t, prices, x)
	for i := range prices {
		assert.InDelta(t, v[i], g[i], 1e-12)
	}
}

// TestPerpetualPut_Boundary checks ℓ and the linear branch.
func TestPerpetualPut_Boundary(t *testing.T) {
	const strike, sigma, rate = 7.0, 0.5, 0.04
	ell, err := rmm.PerpetualPutBoundary(strike, sigma, rate)
	require.NoError(t, err)
	assert.InDelta(t, 2*rate/(2*rate+sigma*sigma)*strike, ell, 1e-15)

	_, y, err := rmm.PerpetualPutPayoff([]float64{ell / 2, ell}, strike, sigma, rate)
	require.NoError(t, err)
	assert.InDelta(t, strike-ell/2, y[0], 1e-12)
	assert.InDelta(t, strike-ell, y[1], 1e-12)
}

// TestPerpetualPut_KinkContinuity: value continuous across ℓ, flat curvature
// on the left, positive curvature on the right.
func TestPerpetualPut_KinkContinuity(t *testing.T) {
	const strike, sigma, rate = 7.0, 0.5, 0.04
	ell, err := rmm.PerpetualPutBoundary(strike, sigma, rate)
	require.NoError(t, err)

	const h = 1e-4
	pts := []float64{ell - 2*h, ell - h, ell, ell + h, ell + 2*h}
	_, y, err := rmm.PerpetualPutPayoff(pts, strike, sigma, rate)
	require.NoError(t, err)

	assert.InDelta(t, y[1], y[3], 3*h, "no jump across the boundary")

	left := y[0] - 2*y[1] + y[2]
	right := y[2] - 2*y[3] + y[4]
	assert.InDelta(t, 0, left, 1e-12, "linear branch has zero curvature")
	assert.Greater(t, right, 1e-12, "power branch is convex")
}

// TestPerpetualPut_Errors covers rate, strike, sigma and price checks.
func TestPerpetualPut_Errors(t *testing.T) {
	_, _, err := rmm.PerpetualPutPayoff([]float64{1}, 7, 0.5, 0)
	assert.ErrorIs(t, err, rmm.ErrInvalidRate)
	_, _, err = rmm.PerpetualPutPayoff([]float64{1}, 7, 0, 0.04)
	assert.ErrorIs(t, err, rmm.ErrNonPositiveSigma)
	_, _, err = rmm.PerpetualPutPayoff([]float64{1}, 0, 0.5, 0.04)
	assert.ErrorIs(t, err, rmm.ErrNonPositiveStrike)
	_, _, err = rmm.PerpetualPutPayoff([]float64{1, 0}, 7, 0.5, 0.04)
	assert.ErrorIs(t, err, rmm.ErrNonPositivePrice)
	_, err = rmm.PerpetualPutBoundary(7, 0.5, math.Inf(1))
	assert.ErrorIs(t, err, rmm.ErrInvalidRate)
}

// TestForcedRebalance_Formula spot-checks one reserve against the closed form.
func TestForcedRebalance_Formula(t *testing.T) {
	const strike, sigma, tau, ratio, inv = 5.0, 0.5, 0.8, 1.5, 0.0
	r := 0.3
	x, y, err := rmm.ForcedRebalance([]float64{r}, strike, sigma, tau, ratio, inv)
	require.NoError(t, err)
	q, err := gaussian.Quantile(1 - r)
	require.NoError(t, err)
	want := (ratio*r-inv)/strike - gaussian.CDFAt(q-sigma*math.Sqrt(tau))
	assert.Equal(t, r, x[0])
	assert.InDelta(t, want, y[0], 1e-15)
}

// TestForcedRebalance_ExpiryAllowed: τ = 0 leaves Φ(Φ⁻¹(1-R)) = 1-R.
func TestForcedRebalance_ExpiryAllowed(t *testing.T) {
	_, y, err := rmm.ForcedRebalance([]float64{0.25}, 4, 0.5, 0, 2, 0)
	require.NoError(t, err)
	assert.InDelta(t, 2*0.25/4-0.75, y[0], 1e-12)
}

// TestForcedRebalance_Domain rejects reserves at or beyond the unit interval.
func TestForcedRebalance_Domain(t *testing.T) {
	for _, r := range []float64{0, 1, -0.2, 1.2, math.NaN()} {
		_, _, err := rmm.ForcedRebalance([]float64{0.5, r}, 5, 0.5, 0.8, 1.5, 0)
		assert.ErrorIs(t, err, rmm.ErrReserveOutOfRange, "r=%v", r)
	}
	_, _, err := rmm.ForcedRebalance([]float64{0.5}, 0, 0.5, 0.8, 1.5, 0)
	assert.ErrorIs(t, err, rmm.ErrNonPositiveStrike)
	_, _, err = rmm.ForcedRebalance([]float64{0.5}, 5, 0.5, -1, 1.5, 0)
	assert.ErrorIs(t, err, rmm.ErrNegativeTau)
	_, _, err = rmm.ForcedRebalance([]float64{0.5}, 5, 0.5, 1, math.NaN(), 0)
	require.ErrorIs(t, err, rmm.ErrNaNInf)
	assert.Contains(t, err.Error(), "ratio=NaN")
}
