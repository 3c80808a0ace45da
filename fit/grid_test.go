package fit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sedfit/fit"
	"github.com/katalvlaran/sedfit/model"
)

func TestNewGrid_AxesAndTotal(t *testing.T) {
	g, err := fit.NewGrid(model.DefaultRanges(), 3)
	require.NoError(t, err)

	assert.Equal(t, 729, g.Total(), "3^6")
	assert.Equal(t, []float64{0, 5, 10}, g.Axis(model.C1))
	assert.Equal(t, []float64{0, 500, 1000}, g.Axis(model.C3))
	assert.Equal(t, []float64{0, 1, 2}, g.Axis(model.TauV))
	assert.Nil(t, g.Axis(model.Param(9)))
}

func TestNewGrid_FixedParamsDoNotMultiply(t *testing.T) {
	rs := model.DefaultRanges()
	rs[model.C2] = model.Range{Min: 7, Max: 7}
	rs[model.C5] = model.Range{Min: 1, Max: 1}

	g, err := fit.NewGrid(rs, 4)
	require.NoError(t, err)
	assert.Equal(t, 4*4*4*4, g.Total())
	assert.Equal(t, []float64{7}, g.Axis(model.C2))

	g, err = fit.NewGrid(uniformRanges(0, 0), 2)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Total())
}

func TestNewGrid_Errors(t *testing.T) {
	_, err := fit.NewGrid(model.DefaultRanges(), 1)
	assert.ErrorIs(t, err, fit.ErrInvalidGridSize)

	rs := model.DefaultRanges()
	delete(rs, model.C4)
	_, err = fit.NewGrid(rs, 2)
	assert.ErrorIs(t, err, fit.ErrMissingRange)

	rs = model.DefaultRanges()
	rs[model.TauV] = model.Range{Min: 2, Max: 0}
	_, err = fit.NewGrid(rs, 2)
	assert.ErrorIs(t, err, fit.ErrInvalidRange)

	// 20000^6 combinations exceed the default cap
	_, err = fit.NewGrid(model.DefaultRanges(), 20000)
	assert.ErrorIs(t, err, fit.ErrGridTooLarge)
}

func TestGrid_EnumerationOrder(t *testing.T) {
	g, err := fit.NewGrid(model.DefaultRanges(), 2)
	require.NoError(t, err)

	first, err := g.At(0)
	require.NoError(t, err)
	assert.Equal(t, model.ParameterVector{}, first, "all minima first")

	second, err := g.At(1)
	require.NoError(t, err)
	assert.Equal(t, first.With(model.TauV, 2), second, "TauV is the innermost digit")

	third, err := g.At(2)
	require.NoError(t, err)
	assert.Equal(t, first.With(model.C5, 150), third)

	last, err := g.At(g.Total() - 1)
	require.NoError(t, err)
	assert.Equal(t, model.ParameterVector{C1: 10, C2: 100, C3: 1000, C4: 150, C5: 150, TauV: 2}, last)

	_, err = g.At(g.Total())
	assert.Error(t, err)
	_, err = g.At(-1)
	assert.Error(t, err)
}

func TestGrid_AllMatchesAt(t *testing.T) {
	rs := model.DefaultRanges()
	rs[model.C3] = model.Range{Min: 3, Max: 3}
	g, err := fit.NewGrid(rs, 3)
	require.NoError(t, err)

	n := 0
	seen := make(map[model.ParameterVector]bool, g.Total())
	for k, v := range g.All() {
		require.Equal(t, n, k)
		want, err := g.At(k)
		require.NoError(t, err)
		require.Equal(t, want, v, "index %d", k)
		seen[v] = true
		n++
	}
	assert.Equal(t, g.Total(), n)
	assert.Len(t, seen, n, "combinations are distinct")
}

func TestGrid_AllStopsEarly(t *testing.T) {
	g, err := fit.NewGrid(model.DefaultRanges(), 2)
	require.NoError(t, err)

	n := 0
	for range g.All() {
		n++
		if n == 5 {
			break
		}
	}
	assert.Equal(t, 5, n)
}
