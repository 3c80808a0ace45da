// SPDX-License-Identifier: MIT
// Package: model
//
// errors.go — sentinel errors for parameters, ranges and evaluation.

package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNonFiniteModel indicates a NaN or ±Inf produced during evaluation.
	ErrNonFiniteModel = errors.New("model: non-finite model value")

	// ErrNilTable indicates a nil SSP table.
	ErrNilTable = errors.New("model: nil SSP table")

	// ErrLengthMismatch indicates a destination or weight slice of the wrong length.
	ErrLengthMismatch = errors.New("model: length mismatch")

	// ErrUnknownParam indicates a parameter name or index outside c1..c5, tauV.
	ErrUnknownParam = errors.New("model: unknown parameter")

	// ErrInvalidRange indicates a range with Min > Max or a non-finite bound.
	ErrInvalidRange = errors.New("model: invalid parameter range")

	// ErrMissingRange indicates a Ranges value without an entry for some parameter.
	ErrMissingRange = errors.New("model: missing parameter range")
)

// Evaluation stages reported by NonFiniteError.
const (
	StageInterpolation = "interpolation"
	StageCombination   = "combination"
	StageModel         = "model"
)

// NonFiniteError reports where evaluation produced NaN or ±Inf.
type NonFiniteError struct {
	Index      int
	Wavelength float64
	Stage      string
	Value      float64
}

func (e *NonFiniteError) Error() string {
	return fmt.Sprintf("model: non-finite %s value %g at index %d (λ=%g)", e.Stage, e.Value, e.Index, e.Wavelength)
}

// Unwrap lets errors.Is(err, ErrNonFiniteModel) match.
func (e *NonFiniteError) Unwrap() error { return ErrNonFiniteModel }

// modelErrorf tags err with the operation name.
func modelErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// pointErrorf tags err with the point index and wavelength that triggered it.
func pointErrorf(op string, i int, wavelength float64, err error) error {
	return fmt.Errorf("%s: index %d (λ=%g): %w", op, i, wavelength, err)
}
