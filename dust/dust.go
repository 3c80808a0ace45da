// Package dust models wavelength-dependent dimming of starlight by
// interstellar dust as a power-law optical depth:
//
//	τ(λ) = τV · (λ / λref)^n          attenuation(λ) = exp(−τ(λ))
//
// with λref = 5000 Å and n = −0.7 by default, so bluer light is dimmed more.
// τV is the optical depth at the reference wavelength; τV = 0 means no dust.
//
// Wavelengths must be positive: the power law is undefined at 0 and negative
// wavelengths are meaningless, so both fail with ErrInvalidWavelength.
package dust

import (
	"errors"
	"fmt"
	"math"
)

// Default power-law parameters.
const (
	ReferenceWavelength = 5000.0 // Å
	Exponent            = -0.7
)

// ErrInvalidWavelength indicates a non-positive or NaN wavelength.
var ErrInvalidWavelength = errors.New("dust: wavelength must be positive")

// ErrLengthMismatch indicates that wavelength and luminosity slices differ in length.
var ErrLengthMismatch = errors.New("dust: wavelength and luminosity length mismatch")

// WavelengthError carries the rejected wavelength.
type WavelengthError struct {
	Wavelength float64
}

func (e *WavelengthError) Error() string {
	return fmt.Sprintf("dust: invalid wavelength %g", e.Wavelength)
}

// Unwrap lets errors.Is(err, ErrInvalidWavelength) match.
func (e *WavelengthError) Unwrap() error { return ErrInvalidWavelength }

// Law is a power-law attenuation curve.
type Law struct {
	Reference float64 // λref in Å, > 0
	Exponent  float64
}

// DefaultLaw returns the λref = 5000 Å, n = −0.7 law.
func DefaultLaw() Law {
	return Law{Reference: ReferenceWavelength, Exponent: Exponent}
}

// Attenuation returns exp(−τV · (λ/5000)^−0.7).
func Attenuation(wavelength, tauV float64) (float64, error) {
	return DefaultLaw().Attenuation(wavelength, tauV)
}

// Attenuation returns the multiplicative dimming factor at wavelength.
func (l Law) Attenuation(wavelength, tauV float64) (float64, error) {
	s, err := l.Shape(wavelength)
	if err != nil {
		return 0, err
	}

	return math.Exp(-tauV * s), nil
}

// Shape returns (λ/λref)^n, the optical depth per unit τV. Callers that sweep
// τV over a fixed wavelength grid compute it once and reuse it.
func (l Law) Shape(wavelength float64) (float64, error) {
	if !(wavelength > 0) {
		return 0, &WavelengthError{Wavelength: wavelength}
	}

	return math.Pow(wavelength/l.Reference, l.Exponent), nil
}

// Attenuate returns a new slice with lum[i] dimmed at wavelengths[i].
func Attenuate(wavelengths, lum []float64, tauV float64) ([]float64, error) {
	if len(wavelengths) != len(lum) {
		return nil, ErrLengthMismatch
	}

	law := DefaultLaw()
	out := make([]float64, len(lum))
	for i, w := range wavelengths {
		a, err := law.Attenuation(w, tauV)
		if err != nil {
			return nil, fmt.Errorf("Attenuate: index %d: %w", i, err)
		}
		out[i] = lum[i] * a
	}

	return out, nil
}
