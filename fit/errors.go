// SPDX-License-Identifier: MIT
// Package: fit
//
// errors.go — sentinel errors and structured failures of the grid search.

package fit

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sedfit/model"
)

var (
	// ErrInvalidGridSize indicates gridSize < 2.
	ErrInvalidGridSize = errors.New("fit: grid size must be at least 2")

	// ErrGridTooLarge indicates a grid above Options.MaxGridSize or a
	// combination count above Options.MaxCombinations.
	ErrGridTooLarge = errors.New("fit: grid too large")

	// ErrInvalidUnitError indicates a unit error that is not positive and finite.
	ErrInvalidUnitError = errors.New("fit: unit error must be positive and finite")

	// ErrCanceled indicates that Options.Ctx was done before the search finished.
	ErrCanceled = errors.New("fit: search canceled")

	// ErrInvalidRange is model.ErrInvalidRange.
	ErrInvalidRange = model.ErrInvalidRange

	// ErrMissingRange is model.ErrMissingRange.
	ErrMissingRange = model.ErrMissingRange
)

// CombinationError reports the grid combination whose evaluation failed.
type CombinationError struct {
	Iteration  int // zero-based enumeration index
	Parameters model.ParameterVector
	Err        error
}

func (e *CombinationError) Error() string {
	return fmt.Sprintf("fit: combination %d (%s): %v", e.Iteration, e.Parameters, e.Err)
}

func (e *CombinationError) Unwrap() error { return e.Err }

// fitErrorf tags err with the operation name.
func fitErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// canceled wraps the context cause so that both ErrCanceled and
// context.Canceled / context.DeadlineExceeded match.
func canceled(cause error) error {
	return fmt.Errorf("%w: %w", ErrCanceled, cause)
}
