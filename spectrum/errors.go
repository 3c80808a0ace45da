// SPDX-License-Identifier: MIT
// Package: spectrum
//
// errors.go — sentinel errors and the structured row error.
//
// Error policy:
//   - Callers branch with errors.Is(err, ErrX); never compare strings.
//   - *ParseError carries line/column context and unwraps to ErrParse.

package spectrum

import (
	"errors"
	"fmt"
)

var (
	// ErrParse indicates a malformed row: a non-numeric or non-finite token, or
	// a row whose column count does not match the table shape.
	ErrParse = errors.New("spectrum: malformed table row")

	// ErrEmptyData indicates that no data rows remain after the header.
	ErrEmptyData = errors.New("spectrum: no data rows")

	// ErrNilTable indicates that a nil *SSPTable was passed where a table is required.
	ErrNilTable = errors.New("spectrum: nil table")

	// ErrColumnLength indicates that SSP columns do not share the wavelength grid length.
	ErrColumnLength = errors.New("spectrum: column length mismatch")

	// ErrInvalidWindow indicates a wavelength window with min > max or a NaN bound.
	ErrInvalidWindow = errors.New("spectrum: invalid wavelength window")
)

// ParseError describes the first malformed row encountered by a reader.
// Line is 1-based and counts the header; Column is 1-based, or 0 when the
// whole row is at fault (wrong column count).
type ParseError struct {
	Line   int
	Column int
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Column == 0 {
		return fmt.Sprintf("spectrum: line %d: %s", e.Line, e.Reason)
	}

	return fmt.Sprintf("spectrum: line %d, column %d: %s (%q)", e.Line, e.Column, e.Reason, e.Token)
}

// Unwrap lets errors.Is(err, ErrParse) match.
func (e *ParseError) Unwrap() error { return ErrParse }

// spectrumErrorf tags err with the operation name.
func spectrumErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
