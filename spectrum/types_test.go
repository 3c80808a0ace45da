// SPDX-License-Identifier: MIT

package spectrum_test

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sedfit/spectrum"
)

func TestAgeBin_Labels(t *testing.T) {
	assert.Equal(t, "1Myr", spectrum.Age1Myr.String())
	assert.Equal(t, "10000Myr", spectrum.Age10000Myr.String())
	assert.Equal(t, "LUM5000", spectrum.Age5000Myr.Header())
	assert.Equal(t, 1000.0, spectrum.Age1000Myr.Myr())
	assert.True(t, math.IsNaN(spectrum.AgeBin(42).Myr()))
	assert.Len(t, spectrum.AgeBins(), spectrum.NumAgeBins)
}

// TestNewSSPTable_CopiesInput ensures later writes to caller slices do not leak in.
func TestNewSSPTable_CopiesInput(t *testing.T) {
	wl := []float64{1, 2}
	var cols [spectrum.NumAgeBins][]float64
	for a := range cols {
		cols[a] = []float64{float64(a), float64(a)}
	}

	tbl, err := spectrum.NewSSPTable(wl, cols)
	require.NoError(t, err)

	wl[0] = 99
	cols[0][0] = 99
	assert.Equal(t, 1.0, tbl.Wavelengths[0])
	assert.Equal(t, 0.0, tbl.Column(spectrum.Age1Myr)[0])
}

func TestNewSSPTable_Errors(t *testing.T) {
	var cols [spectrum.NumAgeBins][]float64
	_, err := spectrum.NewSSPTable(nil, cols)
	assert.ErrorIs(t, err, spectrum.ErrEmptyData)

	for a := range cols {
		cols[a] = []float64{1, 2}
	}
	cols[3] = []float64{1}
	_, err = spectrum.NewSSPTable([]float64{1, 2}, cols)
	assert.ErrorIs(t, err, spectrum.ErrColumnLength)
}

func TestSSPTable_Window(t *testing.T) {
	tbl, err := spectrum.ParseSSP(sspText)
	require.NoError(t, err)

	sub, err := tbl.Window(1500, 3000)
	require.NoError(t, err)
	assert.Equal(t, []float64{2000, 3000}, sub.Wavelengths)
	assert.Equal(t, []float64{20, 200}, sub.Column(spectrum.Age10Myr))
	assert.Equal(t, 3, tbl.Len(), "source table untouched")

	_, err = tbl.Window(4000, 5000)
	assert.ErrorIs(t, err, spectrum.ErrEmptyData)

	_, err = tbl.Window(5000, 4000)
	assert.ErrorIs(t, err, spectrum.ErrInvalidWindow)

	var nilTable *spectrum.SSPTable
	_, err = nilTable.Window(0, 1)
	assert.ErrorIs(t, err, spectrum.ErrNilTable)
	assert.Equal(t, 0, nilTable.Len())
}

func TestWindow_Points(t *testing.T) {
	points, err := spectrum.ParseObserved(observedText)
	require.NoError(t, err)

	got, err := spectrum.Window(points, 3601, 3610)
	require.NoError(t, err)
	assert.Equal(t, []float64{3601.5, 3603}, spectrum.Wavelengths(got))

	_, err = spectrum.Window(points, math.NaN(), 1)
	assert.ErrorIs(t, err, spectrum.ErrInvalidWindow)
}

func TestJSON_RoundTrip(t *testing.T) {
	tbl, err := spectrum.ParseSSP(sspText)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, spectrum.WriteJSON(&buf, tbl))

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	assert.Contains(t, raw, "wavelengths")
	assert.Contains(t, raw, "models")
	assert.Contains(t, buf.String(), `"5000Myr":[5,50,500]`)

	back, err := spectrum.ReadSSPJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, tbl, back)
}

func TestJSON_MissingModel(t *testing.T) {
	_, err := spectrum.ReadSSPJSON(bytes.NewBufferString(`{"wavelengths":[1],"models":{"1Myr":[1]}}`))
	assert.ErrorIs(t, err, spectrum.ErrParse)

	_, err = spectrum.ReadSSPJSON(bytes.NewBufferString(`{"wavelengths":[],"models":{}}`))
	assert.ErrorIs(t, err, spectrum.ErrEmptyData)
}

func TestBands(t *testing.T) {
	bands := spectrum.SDSSBands()
	require.Len(t, bands, 5)
	assert.Equal(t, "u", bands[0].Name)

	ivs := spectrum.BandIntervals(bands, 3400)
	require.Len(t, ivs, 5)
	assert.Equal(t, 3400.0, ivs[0].Lo)
	assert.Equal(t, 3551.0, ivs[0].Hi)
	assert.Equal(t, 3551.0, ivs[1].Lo)
	assert.Equal(t, 8932.0, ivs[4].Hi)

	points := []spectrum.SpectralPoint{
		{Wavelength: 3500, Value: 2},
		{Wavelength: 3550, Value: 4},
		{Wavelength: 4000, Value: 10},
	}
	mean, n, ok := spectrum.MeanIn(points, ivs[0])
	assert.True(t, ok)
	assert.Equal(t, 2, n)
	assert.Equal(t, 3.0, mean)

	_, _, ok = spectrum.MeanIn(points, ivs[4])
	assert.False(t, ok)
}
