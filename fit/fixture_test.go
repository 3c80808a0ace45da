package fit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sedfit/model"
	"github.com/katalvlaran/sedfit/spectrum"
)

// sspFixture is a 7-row table on 3000..9000 Å with a distinct shape per age.
func sspFixture(t testing.TB) *spectrum.SSPTable {
	t.Helper()
	tbl, err := spectrum.NewSSPTable(
		[]float64{3000, 4000, 5000, 6000, 7000, 8000, 9000},
		[spectrum.NumAgeBins][]float64{
			spectrum.Age1Myr:     {9, 8, 7, 6, 5, 4, 3},
			spectrum.Age10Myr:    {1, 1, 1, 1, 1, 1, 1},
			spectrum.Age100Myr:   {2, 3, 5, 3, 2, 1, 1},
			spectrum.Age1000Myr:  {1, 2, 3, 4, 5, 6, 7},
			spectrum.Age5000Myr:  {1, 1, 1, 1, 1, 1, 1},
			spectrum.Age10000Myr: {0.5, 1, 2, 4, 8, 16, 32},
		},
	)
	require.NoError(t, err)

	return tbl
}

var fixtureWavelengths = []float64{3500, 4000, 4500, 5000, 6000, 7500, 8800}

// synthetic returns observed points equal to the model of truth, plus noise[i]
// when given.
func synthetic(t testing.TB, tbl *spectrum.SSPTable, truth model.ParameterVector, noise ...float64) []spectrum.SpectralPoint {
	t.Helper()
	vals, err := model.EvaluateAt(fixtureWavelengths, tbl, truth)
	require.NoError(t, err)

	out := make([]spectrum.SpectralPoint, len(vals))
	for i, v := range vals {
		if i < len(noise) {
			v += noise[i]
		}
		out[i] = spectrum.SpectralPoint{Wavelength: fixtureWavelengths[i], Value: v}
	}

	return out
}

// uniformRanges gives every parameter the same range.
func uniformRanges(lo, hi float64) model.Ranges {
	rs := make(model.Ranges, model.NumParams)
	for _, p := range model.Params() {
		rs[p] = model.Range{Min: lo, Max: hi}
	}

	return rs
}

// fixedAt pins every parameter to v except the listed free ones, which get
// their DefaultRanges bounds.
func fixedAt(v model.ParameterVector, free ...model.Param) model.Ranges {
	def := model.DefaultRanges()
	rs := make(model.Ranges, model.NumParams)
	for _, p := range model.Params() {
		x := v.Get(p)
		rs[p] = model.Range{Min: x, Max: x}
	}
	for _, p := range free {
		rs[p] = def[p]
	}

	return rs
}
