// SPDX-License-Identifier: MIT
// Package: rmmcurve/pathgen_test
//
// pathgen_test.go — endpoint pinning, reproducibility and error contracts of
// the path generators.

package pathgen_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/rmmcurve/pathgen"
)

// TestBrownianBridge_Endpoints checks that both ends are pinned exactly.
func TestBrownianBridge_Endpoints(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		start, end float64
		endTime    float64
		steps      int
		seed       uint64
	}{
		{"flat", 100, 100, 1, 50, 7},
		{"up", 1500, 1750, 1, 200, 11},
		{"down", 0.3, 0.1, 2.5, 3, 1},
		{"two-points", 10, 20, 1, 2, 5},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path, err := pathgen.BrownianBridge(tc.start, tc.end, tc.endTime, tc.steps, tc.seed)
			require.NoError(t, err)
			require.Len(t, path, tc.steps)
			assert.Equal(t, tc.start, path[0])
			assert.Equal(t, tc.end, path[len(path)-1])
			for i, v := range path {
				assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "path[%d]=%v", i, v)
			}
		})
	}
}

// TestBrownianBridge_Reproducible checks seed determinism and that different
// seeds give different interiors.
func TestBrownianBridge_Reproducible(t *testing.T) {
	t.Parallel()

	a, err := pathgen.BrownianBridge(1500, 1750, 1, 100, 7)
	require.NoError(t, err)
	b, err := pathgen.BrownianBridge(1500, 1750, 1, 100, 7)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := pathgen.BrownianBridge(1500, 1750, 1, 100, 8)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

// TestBrownianBridge_FlatReproducible repeats a flat bridge with the same
// seed: the two paths are bit-identical and both ends stay exactly 100.
func TestBrownianBridge_FlatReproducible(t *testing.T) {
	t.Parallel()

	a, err := pathgen.BrownianBridge(100, 100, 1, 50, 7)
	require.NoError(t, err)
	b, err := pathgen.BrownianBridge(100, 100, 1, 50, 7)
	require.NoError(t, err)
	require.Len(t, a, 50)
	require.Len(t, b, 50)
	for i := range a {
		assert.Equal(t, math.Float64bits(a[i]), math.Float64bits(b[i]), "i=%d", i)
	}
	assert.Equal(t, 100.0, a[0])
	assert.Equal(t, 100.0, a[49])
	assert.Equal(t, 100.0, b[0])
	assert.Equal(t, 100.0, b[49])
}

// TestBrownianBridge_Volatility checks that the volatility option has no
// effect on the bridge.
func TestBrownianBridge_Volatility(t *testing.T) {
	t.Parallel()

	// The affine correction cancels any global scale of the raw walk, so
	// σ=1 and σ=3 pin to the same interior.
	base, err := pathgen.BrownianBridge(100, 120, 1, 64, 3)
	require.NoError(t, err)
	scaled, err := pathgen.BrownianBridge(100, 120, 1, 64, 3, pathgen.WithVolatility(3))
	require.NoError(t, err)
	require.Len(t, scaled, len(base))
	for i := range base {
		assert.InDelta(t, base[i], scaled[i], 1e-9)
	}

	// Draw count does not depend on σ either: a shared source ends up in the
	// same state.
	lo, hi := rand.NewSource(5), rand.NewSource(5)
	_, err = pathgen.BrownianBridge(1, 2, 1, 32, 0, pathgen.WithSource(lo))
	require.NoError(t, err)
	_, err = pathgen.BrownianBridge(1, 2, 1, 32, 0, pathgen.WithSource(hi), pathgen.WithVolatility(4))
	require.NoError(t, err)
	assert.Equal(t, lo.Uint64(), hi.Uint64())
}

// TestBrownianBridge_SharedSource checks that a shared source continues one
// stream across calls.
func TestBrownianBridge_SharedSource(t *testing.T) {
	t.Parallel()

	src := rand.NewSource(21)
	first, err := pathgen.BrownianBridge(1, 2, 1, 16, 0, pathgen.WithSource(src))
	require.NoError(t, err)
	second, err := pathgen.BrownianBridge(1, 2, 1, 16, 0, pathgen.WithSource(src))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	again, err := pathgen.BrownianBridge(1, 2, 1, 16, 0, pathgen.WithSource(rand.NewSource(21)))
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

// TestBrownianBridge_Errors checks the sentinel errors.
func TestBrownianBridge_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		start, end float64
		endTime    float64
		steps      int
		want       error
	}{
		{"one-step", 1, 2, 1, 1, pathgen.ErrBadSize},
		{"zero-steps", 1, 2, 1, 0, pathgen.ErrBadSize},
		{"zero-horizon", 1, 2, 0, 10, pathgen.ErrBadHorizon},
		{"nan-horizon", 1, 2, math.NaN(), 10, pathgen.ErrBadHorizon},
		{"inf-horizon", 1, 2, math.Inf(1), 10, pathgen.ErrBadHorizon},
		{"nan-start", math.NaN(), 2, 1, 10, pathgen.ErrBadPrice},
		{"inf-end", 1, math.Inf(-1), 1, 10, pathgen.ErrBadPrice},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path, err := pathgen.BrownianBridge(tc.start, tc.end, tc.endTime, tc.steps, 7)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			assert.Nil(t, path)
		})
	}
}

// TestGBMPath checks positivity, reproducibility and the drift-free limit.
func TestGBMPath(t *testing.T) {
	t.Parallel()

	a, err := pathgen.GBMPath(100, 1, 252, 42, pathgen.WithVolatility(0.2), pathgen.WithDrift(0.05))
	require.NoError(t, err)
	require.Len(t, a, 252)
	assert.Equal(t, 100.0, a[0])
	for i, v := range a {
		assert.Greater(t, v, 0.0, "a[%d]", i)
	}

	b, err := pathgen.GBMPath(100, 1, 252, 42, pathgen.WithVolatility(0.2), pathgen.WithDrift(0.05))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	_, err = pathgen.GBMPath(0, 1, 10, 1)
	assert.ErrorIs(t, err, pathgen.ErrBadPrice)
	_, err = pathgen.GBMPath(1, -1, 10, 1)
	assert.ErrorIs(t, err, pathgen.ErrBadHorizon)
	_, err = pathgen.GBMPath(1, 1, 1, 1)
	assert.ErrorIs(t, err, pathgen.ErrBadSize)
}

// TestCandles checks bucket boundaries and the OHLC ordering invariant.
func TestCandles(t *testing.T) {
	t.Parallel()

	path := []float64{5, 7, 3, 4, 9, 8, 6}
	open, high, low, closeP, err := pathgen.Candles(path, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 4, 6}, open)
	assert.Equal(t, []float64{7, 9, 6}, high)
	assert.Equal(t, []float64{3, 4, 6}, low)
	assert.Equal(t, []float64{3, 8, 6}, closeP)

	gbm, err := pathgen.GBMPath(100, 1, 500, 3, pathgen.WithVolatility(0.3))
	require.NoError(t, err)
	open, high, low, closeP, err = pathgen.Candles(gbm, 25)
	require.NoError(t, err)
	require.Len(t, open, 20)
	for k := range open {
		assert.LessOrEqual(t, low[k], math.Min(open[k], closeP[k]))
		assert.GreaterOrEqual(t, high[k], math.Max(open[k], closeP[k]))
	}

	open, _, _, _, err = pathgen.Candles(nil, 4)
	require.NoError(t, err)
	assert.Empty(t, open)

	_, _, _, _, err = pathgen.Candles(path, 0)
	assert.ErrorIs(t, err, pathgen.ErrBadSize)
}

// BenchmarkBrownianBridge measures a 10k-step bridge.
func BenchmarkBrownianBridge(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := pathgen.BrownianBridge(1500, 1750, 1, 10_000, uint64(i)+1); err != nil {
			b.Fatal(err)
		}
	}
}
