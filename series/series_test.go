package series_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rmmcurve/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLinspace_Endpoints verifies inclusive endpoints and even spacing.
func TestLinspace_Endpoints(t *testing.T) {
	xs := series.Linspace(-3, 3, 7)
	require.Len(t, xs, 7)
	assert.Equal(t, -3.0, xs[0])
	assert.Equal(t, 3.0, xs[6])
	for i := 1; i < len(xs); i++ {
		assert.InDelta(t, 1.0, xs[i]-xs[i-1], 1e-12, "step %d", i)
	}
}

// TestLinspace_Degenerate covers n <= 1.
func TestLinspace_Degenerate(t *testing.T) {
	assert.Empty(t, series.Linspace(0, 1, 0))
	assert.Empty(t, series.Linspace(0, 1, -4))
	assert.Equal(t, []float64{2.5}, series.Linspace(2.5, 9, 1))
}

// TestLinspace_Descending mirrors the tau grids that run from 2 down to 0.
func TestLinspace_Descending(t *testing.T) {
	assert.InDeltaSlice(t, []float64{2, 1.5, 1, 0.5, 0}, series.Linspace(2, 0, 5), 1e-12)
}

// TestNewCurve_LengthMismatch ensures construction fails fast.
func TestNewCurve_LengthMismatch(t *testing.T) {
	_, err := series.NewCurve([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, series.ErrLengthMismatch)

	c, err := series.NewCurve([]float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	x, y := c.XY(1)
	assert.Equal(t, 2.0, x)
	assert.Equal(t, 4.0, y)
}

// TestReversed checks order reversal without touching the source.
func TestReversed(t *testing.T) {
	c := series.Curve{X: []float64{1, 2, 3}, Y: []float64{4, 5, 6}}
	r := c.Reversed()
	assert.Equal(t, []float64{3, 2, 1}, r.X)
	assert.Equal(t, []float64{6, 5, 4}, r.Y)
	assert.Equal(t, []float64{1, 2, 3}, c.X, "source must stay intact")
}

// TestKernels covers Map, Zip, Scale and Constant.
func TestKernels(t *testing.T) {
	xs := []float64{1, 4, 9}
	assert.Equal(t, []float64{1, 2, 3}, series.Map(xs, math.Sqrt))

	sum, err := series.Zip(xs, []float64{1, 1, 1}, func(a, b float64) float64 { return a + b })
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 5, 10}, sum)

	_, err = series.Zip(xs, []float64{1}, func(a, b float64) float64 { return a })
	assert.ErrorIs(t, err, series.ErrLengthMismatch)

	scaled := series.Scale(2, xs)
	assert.Equal(t, []float64{2, 8, 18}, scaled)
	assert.Equal(t, []float64{1, 4, 9}, xs, "Scale must not mutate its input")

	assert.Equal(t, []float64{3, 3}, series.Constant(3, 2))
	assert.Empty(t, series.Constant(3, 0))
}

// TestValidateFinite reports NaN and Inf with ErrNaNInf.
func TestValidateFinite(t *testing.T) {
	assert.NoError(t, series.ValidateFinite([]float64{0, -1, 1e300}))
	assert.ErrorIs(t, series.ValidateFinite([]float64{0, math.NaN()}), series.ErrNaNInf)
	assert.ErrorIs(t, series.ValidateFinite([]float64{math.Inf(-1)}), series.ErrNaNInf)
	assert.True(t, series.IsFinite(1))
	assert.False(t, series.IsFinite(math.Inf(1)))
}
