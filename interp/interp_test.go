package interp_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sedfit/interp"
)

var (
	triGrid   = []float64{0, 1000, 2000}
	triValues = []float64{10, 20, 10}
)

// interpolators runs each case against both the scan and the prepared form.
func interpolators(t *testing.T, grid, values []float64) map[string]func(float64) (float64, error) {
	t.Helper()
	lin, err := interp.NewLinear(grid, values)
	require.NoError(t, err)

	return map[string]func(float64) (float64, error){
		"Interpolate": func(x float64) (float64, error) { return interp.Interpolate(grid, values, x) },
		"Linear.At":   lin.At,
	}
}

// TestInterpolate_EndToEnd covers the worked triangle example.
func TestInterpolate_EndToEnd(t *testing.T) {
	for name, f := range interpolators(t, triGrid, triValues) {
		cases := []struct{ x, want float64 }{
			{500, 15},
			{1500, 15},
			{-100, 10},
			{3000, 10},
		}
		for _, c := range cases {
			got, err := f(c.x)
			require.NoError(t, err, name)
			assert.Equal(t, c.want, got, "%s(%g)", name, c.x)
		}
	}
}

// TestInterpolate_ExactAtGridPoints checks interpolate(grid, values, grid[k]) == values[k].
func TestInterpolate_ExactAtGridPoints(t *testing.T) {
	grid := []float64{91, 100.5, 3600, 3601.25, 5000, 9000, 1e5}
	values := []float64{3e-5, 7.25, -1, 0, 1e12, 0.125, 42}

	for name, f := range interpolators(t, grid, values) {
		for k := range grid {
			got, err := f(grid[k])
			require.NoError(t, err)
			assert.Equal(t, values[k], got, "%s at grid[%d]", name, k)
		}
	}
}

// TestInterpolate_Clamps verifies flat extrapolation on both sides.
func TestInterpolate_Clamps(t *testing.T) {
	const eps = 1e-6
	for name, f := range interpolators(t, triGrid, triValues) {
		lo, err := f(triGrid[0] - eps)
		require.NoError(t, err)
		assert.Equal(t, triValues[0], lo, name)

		hi, err := f(triGrid[2] + eps)
		require.NoError(t, err)
		assert.Equal(t, triValues[2], hi, name)

		far, err := f(math.Inf(1))
		require.NoError(t, err)
		assert.Equal(t, triValues[2], far, name)
	}
}

// TestInterpolate_MonotonicBetweenPoints samples a monotonic table densely.
func TestInterpolate_MonotonicBetweenPoints(t *testing.T) {
	grid := []float64{0, 1, 3, 7, 8}
	values := []float64{-5, -1, 0, 10, 11}

	for name, f := range interpolators(t, grid, values) {
		prev := math.Inf(-1)
		for x := -1.0; x <= 9; x += 0.01 {
			got, err := f(x)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got, prev, "%s not monotonic at %g", name, x)
			prev = got
		}
	}
}

// TestInterpolate_SinglePoint is flat everywhere.
func TestInterpolate_SinglePoint(t *testing.T) {
	for name, f := range interpolators(t, []float64{5000}, []float64{3}) {
		for _, x := range []float64{0, 5000, 1e9} {
			got, err := f(x)
			require.NoError(t, err)
			assert.Equal(t, 3.0, got, name)
		}
	}
}

func TestInterpolate_Preconditions(t *testing.T) {
	_, err := interp.Interpolate(nil, nil, 1)
	assert.ErrorIs(t, err, interp.ErrEmptyGrid)

	_, err = interp.Interpolate([]float64{1, 2}, []float64{1}, 1)
	assert.ErrorIs(t, err, interp.ErrLengthMismatch)

	_, err = interp.NewLinear([]float64{1, 2}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, interp.ErrLengthMismatch)

	_, err = interp.Interpolate(triGrid, triValues, math.NaN())
	assert.ErrorIs(t, err, interp.ErrNaNQuery)
}

// TestInterpolate_DegenerateInterval fails instead of returning NaN or Inf.
func TestInterpolate_DegenerateInterval(t *testing.T) {
	grid := []float64{0, math.NaN(), 2000}
	values := []float64{1, 2, 3}

	for name, f := range interpolators(t, grid, values) {
		_, err := f(1500)
		require.ErrorIs(t, err, interp.ErrDegenerateGrid, name)

		var de *interp.DegenerateGridError
		require.True(t, errors.As(err, &de), name)
		assert.Equal(t, 2, de.Index)
		assert.Equal(t, 1500.0, de.X)
	}

	_, err := interp.Interpolate([]float64{0, math.Inf(1)}, []float64{1, 2}, 10)
	assert.ErrorIs(t, err, interp.ErrDegenerateGrid)
}

// TestLinear_UnsortedMatchesScan makes sure the prepared form keeps the scan
// semantics when the grid is not ascending.
func TestLinear_UnsortedMatchesScan(t *testing.T) {
	grid := []float64{0, 10, 5, 20}
	values := []float64{0, 100, 50, 200}

	lin, err := interp.NewLinear(grid, values)
	require.NoError(t, err)

	for x := -2.0; x <= 22; x += 0.5 {
		want, werr := interp.Interpolate(grid, values, x)
		got, gerr := lin.At(x)
		assert.Equal(t, werr, gerr)
		assert.Equal(t, want, got, "x=%g", x)
	}
}

func TestLinear_CopiesInput(t *testing.T) {
	grid := []float64{0, 1}
	values := []float64{0, 10}
	lin, err := interp.NewLinear(grid, values)
	require.NoError(t, err)

	values[1] = 1000
	got, err := lin.At(0.5)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)

	assert.Equal(t, 2, lin.Len())
	lo, hi := lin.Bounds()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)
}
