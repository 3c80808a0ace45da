// SPDX-License-Identifier: MIT

package model

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/sedfit/dust"
	"github.com/katalvlaran/sedfit/spectrum"
)

// ResidualPoint is observed minus model at one wavelength.
type ResidualPoint struct {
	Wavelength float64
	Residual   float64
}

// Residuals returns observed - model for every point, in order.
func Residuals(points []spectrum.ModelPoint) []ResidualPoint {
	out := make([]ResidualPoint, len(points))
	for i, p := range points {
		out[i] = ResidualPoint{Wavelength: p.Wavelength, Residual: p.Value - p.Model}
	}

	return out
}

// Composite combines all age columns of t on the table's own wavelength grid:
//
//	Σ_a weights[a]·L_a(λ) · exp(−τV·(λ/5000)^−0.7)
//
// Unlike Evaluate it uses every age bin and no interpolation, which makes it
// suitable for plotting the full model curve behind the observed points.
func Composite(t *spectrum.SSPTable, weights [spectrum.NumAgeBins]float64, tauV float64) ([]spectrum.SpectralPoint, error) {
	const op = "Composite"
	if t == nil {
		return nil, modelErrorf(op, ErrNilTable)
	}

	sum := make([]float64, t.Len())
	for _, a := range spectrum.AgeBins() {
		if weights[a] == 0 {
			continue
		}
		col := t.Column(a)
		if len(col) != len(sum) {
			return nil, modelErrorf(op+": "+a.String(), ErrLengthMismatch)
		}
		floats.AddScaled(sum, weights[a], col)
	}

	dimmed, err := dust.Attenuate(t.Wavelengths, sum, tauV)
	if err != nil {
		return nil, modelErrorf(op, err)
	}

	out := make([]spectrum.SpectralPoint, len(dimmed))
	for i, v := range dimmed {
		if !finite(v) {
			return nil, &NonFiniteError{Index: i, Wavelength: t.Wavelengths[i], Stage: StageModel, Value: v}
		}
		out[i] = spectrum.SpectralPoint{Wavelength: t.Wavelengths[i], Value: v}
	}

	return out, nil
}

// AttenuatedColumns returns a copy of t with every age column dimmed by dust
// of optical depth tauV.
func AttenuatedColumns(t *spectrum.SSPTable, tauV float64) (*spectrum.SSPTable, error) {
	const op = "AttenuatedColumns"
	if t == nil {
		return nil, modelErrorf(op, ErrNilTable)
	}

	var cols [spectrum.NumAgeBins][]float64
	for _, a := range spectrum.AgeBins() {
		c, err := dust.Attenuate(t.Wavelengths, t.Column(a), tauV)
		if err != nil {
			return nil, modelErrorf(op+": "+a.String(), err)
		}
		cols[a] = c
	}

	out, err := spectrum.NewSSPTable(t.Wavelengths, cols)
	if err != nil {
		return nil, modelErrorf(op, err)
	}

	return out, nil
}
