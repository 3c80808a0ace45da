package dust_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sedfit/dust"
)

// TestAttenuation_ReferenceWavelength: no dust at λref with τV=0, exp(−τV) otherwise.
func TestAttenuation_ReferenceWavelength(t *testing.T) {
	a, err := dust.Attenuation(5000, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, a)

	for _, tau := range []float64{0.1, 0.5, 1, 2, 5} {
		a, err = dust.Attenuation(5000, tau)
		require.NoError(t, err)
		assert.Equal(t, math.Exp(-tau), a, "tauV=%g", tau)
	}
}

// TestAttenuation_BluerIsDimmer checks the power-law direction.
func TestAttenuation_BluerIsDimmer(t *testing.T) {
	blue, err := dust.Attenuation(3600, 1)
	require.NoError(t, err)
	red, err := dust.Attenuation(9000, 1)
	require.NoError(t, err)

	assert.Less(t, blue, red)
	assert.InDelta(t, math.Exp(-math.Pow(3600.0/5000, -0.7)), blue, 1e-15)
}

func TestAttenuation_InvalidWavelength(t *testing.T) {
	for _, w := range []float64{0, -1, math.NaN()} {
		_, err := dust.Attenuation(w, 1)
		require.ErrorIs(t, err, dust.ErrInvalidWavelength, "w=%g", w)

		var we *dust.WavelengthError
		require.True(t, errors.As(err, &we))
	}
}

func TestLaw_Custom(t *testing.T) {
	law := dust.Law{Reference: 5500, Exponent: -1.3}
	a, err := law.Attenuation(5500, 0.7)
	require.NoError(t, err)
	assert.InDelta(t, math.Exp(-0.7), a, 1e-15)

	s, err := dust.DefaultLaw().Shape(5000)
	require.NoError(t, err)
	assert.Equal(t, 1.0, s)
}

func TestAttenuate(t *testing.T) {
	wl := []float64{4000, 5000, 6000}
	lum := []float64{2, 2, 2}

	out, err := dust.Attenuate(wl, lum, 0)
	require.NoError(t, err)
	assert.Equal(t, lum, out)

	out, err = dust.Attenuate(wl, lum, 1)
	require.NoError(t, err)
	assert.Equal(t, 2*math.Exp(-1), out[1])
	assert.Equal(t, []float64{2, 2, 2}, lum, "input untouched")

	_, err = dust.Attenuate(wl, lum[:2], 1)
	assert.ErrorIs(t, err, dust.ErrLengthMismatch)

	_, err = dust.Attenuate([]float64{1, 0}, []float64{1, 1}, 1)
	assert.ErrorIs(t, err, dust.ErrInvalidWavelength)
}
