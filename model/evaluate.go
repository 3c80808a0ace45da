// SPDX-License-Identifier: MIT

package model

import (
	"math"

	"github.com/katalvlaran/sedfit/dust"
	"github.com/katalvlaran/sedfit/interp"
	"github.com/katalvlaran/sedfit/spectrum"
)

// Basis holds everything about one wavelength grid that does not depend on the
// parameters: the four weighted SSP columns interpolated at each wavelength and
// the dust shape (λ/5000)^−0.7. Model then costs O(n) per ParameterVector.
//
// A Basis is read-only after NewBasis and safe for concurrent use.
type Basis struct {
	wavelengths []float64
	lum         [numComponents][]float64
	shape       []float64
}

// NewBasis interpolates the weighted SSP columns of t at every wavelength.
// Wavelengths must be positive; the table must be non-empty.
func NewBasis(wavelengths []float64, t *spectrum.SSPTable) (*Basis, error) {
	const op = "NewBasis"
	if t == nil {
		return nil, modelErrorf(op, ErrNilTable)
	}

	var lins [numComponents]*interp.Linear
	for k, c := range Components() {
		lin, err := interp.NewLinear(t.Wavelengths, t.Column(c.Age))
		if err != nil {
			return nil, modelErrorf(op+": "+c.Age.String(), err)
		}
		lins[k] = lin
	}

	n := len(wavelengths)
	b := &Basis{
		wavelengths: append([]float64(nil), wavelengths...),
		shape:       make([]float64, n),
	}
	for k := range b.lum {
		b.lum[k] = make([]float64, n)
	}

	law := dust.DefaultLaw()
	for i, w := range b.wavelengths {
		s, err := law.Shape(w)
		if err != nil {
			return nil, pointErrorf(op, i, w, err)
		}
		b.shape[i] = s

		for k, lin := range lins {
			v, err := lin.At(w)
			if err != nil {
				return nil, pointErrorf(op, i, w, err)
			}
			if !finite(v) {
				return nil, &NonFiniteError{Index: i, Wavelength: w, Stage: StageInterpolation, Value: v}
			}
			b.lum[k][i] = v
		}
	}

	return b, nil
}

// Len returns the number of wavelengths.
func (b *Basis) Len() int { return len(b.wavelengths) }

// Wavelengths returns the grid the basis was built for. Do not modify it.
func (b *Basis) Wavelengths() []float64 { return b.wavelengths }

// Model writes the model luminosity for p into dst and returns it. A dst with
// insufficient capacity is replaced by a new slice, so callers in a loop can
// pass the previous result to avoid allocation.
func (b *Basis) Model(p ParameterVector, dst []float64) ([]float64, error) {
	n := len(b.wavelengths)
	if cap(dst) < n {
		dst = make([]float64, n)
	}
	dst = dst[:n]

	l1, l100, l1000, l10000 := b.lum[0], b.lum[1], b.lum[2], b.lum[3]
	for i := 0; i < n; i++ {
		combined := p.C1*l1[i] + p.C2*l100[i] + p.C3*l1000[i] + p.C4*l10000[i]
		if !finite(combined) {
			return nil, &NonFiniteError{Index: i, Wavelength: b.wavelengths[i], Stage: StageCombination, Value: combined}
		}

		m := combined * p.C5 * math.Exp(-p.TauV*b.shape[i])
		if !finite(m) {
			return nil, &NonFiniteError{Index: i, Wavelength: b.wavelengths[i], Stage: StageModel, Value: m}
		}
		dst[i] = m
	}

	return dst, nil
}

// Evaluate pairs every observed point with the model luminosity at its
// wavelength. The result has the same length and order as observed.
func Evaluate(observed []spectrum.SpectralPoint, t *spectrum.SSPTable, p ParameterVector) ([]spectrum.ModelPoint, error) {
	values, err := EvaluateAt(spectrum.Wavelengths(observed), t, p)
	if err != nil {
		return nil, err
	}

	out := make([]spectrum.ModelPoint, len(observed))
	for i, pt := range observed {
		out[i] = spectrum.ModelPoint{SpectralPoint: pt, Model: values[i]}
	}

	return out, nil
}

// EvaluateAt returns the model luminosity at each wavelength.
func EvaluateAt(wavelengths []float64, t *spectrum.SSPTable, p ParameterVector) ([]float64, error) {
	b, err := NewBasis(wavelengths, t)
	if err != nil {
		return nil, err
	}

	return b.Model(p, nil)
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
