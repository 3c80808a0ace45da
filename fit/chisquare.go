// SPDX-License-Identifier: MIT

package fit

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/sedfit/spectrum"
)

// DefaultUnitError is the uniform per-point uncertainty σ.
const DefaultUnitError = 1.0

// ChiSquare returns Σ (value − model)² with unit error 1.
// An empty slice yields 0.
func ChiSquare(points []spectrum.ModelPoint) float64 {
	var sum float64
	for _, p := range points {
		r := p.Value - p.Model
		sum += r * r
	}

	return sum
}

// ChiSquareWithError returns Σ ((value − model)/σ)².
func ChiSquareWithError(points []spectrum.ModelPoint, unitError float64) (float64, error) {
	if err := validateUnitError(unitError); err != nil {
		return 0, err
	}

	var sum float64
	for _, p := range points {
		r := (p.Value - p.Model) / unitError
		sum += r * r
	}

	return sum, nil
}

// ChiSquareSeries pairs observed[i] with model[i]. Indices present in only one
// of the slices contribute nothing.
func ChiSquareSeries(observed []spectrum.SpectralPoint, model []float64, unitError float64) (float64, error) {
	if err := validateUnitError(unitError); err != nil {
		return 0, err
	}

	n := min(len(observed), len(model))
	if n == 0 {
		return 0, nil
	}
	diff := make([]float64, n)
	for i := range diff {
		diff[i] = observed[i].Value
	}
	floats.SubTo(diff, diff, model[:n])
	floats.Scale(1/unitError, diff)

	return floats.Dot(diff, diff), nil
}

// chiSquareValues is the inner loop of the grid search; it must agree with
// ChiSquareWithError term by term.
func chiSquareValues(observed, model []float64, unitError float64) float64 {
	var sum float64
	if unitError == 1 {
		for i, v := range observed {
			r := v - model[i]
			sum += r * r
		}

		return sum
	}
	for i, v := range observed {
		r := (v - model[i]) / unitError
		sum += r * r
	}

	return sum
}

func validateUnitError(unitError float64) error {
	if !(unitError > 0) || math.IsInf(unitError, 1) {
		return ErrInvalidUnitError
	}

	return nil
}
