// SPDX-License-Identifier: MIT
// Package: spectrum
//
// parse.go — readers for the observed (2-column) and SSP (7-column) tables.
//
// Implementation:
//   - Stage 1: skip the header line unconditionally.
//   - Stage 2: for every following line, split on runs of whitespace; skip
//     blank lines and lines whose first token starts with '#'.
//   - Stage 3: check the column count, convert each token with ParseFloat and
//     reject non-finite values.
//   - Stage 4: emit the row into the caller's accumulator.
//
// Complexity: O(L) time over the input length, O(rows·cols) memory.

package spectrum

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single table line; SSP rows are well under 1 KiB.
const maxLineBytes = 1 << 20

const (
	opParseObserved = "ParseObserved"
	opParseSSP      = "ParseSSP"
)

// ParseObserved parses a 2-column observed spectrum (wavelength, luminosity).
func ParseObserved(text string) ([]SpectralPoint, error) {
	return ReadObserved(strings.NewReader(text))
}

// ReadObserved is ParseObserved over an io.Reader.
func ReadObserved(r io.Reader) ([]SpectralPoint, error) {
	var points []SpectralPoint
	err := scanRows(r, observedColumns, func(vals []float64) {
		points = append(points, SpectralPoint{Wavelength: vals[0], Value: vals[1]})
	})
	if err != nil {
		return nil, spectrumErrorf(opParseObserved, err)
	}
	if len(points) == 0 {
		return nil, spectrumErrorf(opParseObserved, ErrEmptyData)
	}

	return points, nil
}

// ParseSSP parses a 7-column SSP grid into a column-oriented table.
func ParseSSP(text string) (*SSPTable, error) {
	return ReadSSP(strings.NewReader(text))
}

// ReadSSP is ParseSSP over an io.Reader.
func ReadSSP(r io.Reader) (*SSPTable, error) {
	t := &SSPTable{}
	err := scanRows(r, sspColumns, func(vals []float64) {
		t.Wavelengths = append(t.Wavelengths, vals[0])
		for a := 0; a < NumAgeBins; a++ {
			t.Columns[a] = append(t.Columns[a], vals[1+a])
		}
	})
	if err != nil {
		return nil, spectrumErrorf(opParseSSP, err)
	}
	if len(t.Wavelengths) == 0 {
		return nil, spectrumErrorf(opParseSSP, ErrEmptyData)
	}

	return t, nil
}

// scanRows drives the line loop shared by both table shapes. emit receives a
// reused buffer and must copy what it keeps.
func scanRows(r io.Reader, columns int, emit func(vals []float64)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	vals := make([]float64, columns)
	line := 0
	for sc.Scan() {
		line++
		if line == 1 {
			continue // header
		}

		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if len(fields) != columns {
			return &ParseError{
				Line:   line,
				Reason: fmt.Sprintf("expected %d columns, got %d", columns, len(fields)),
			}
		}

		for j, tok := range fields {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return &ParseError{Line: line, Column: j + 1, Token: tok, Reason: "not a number"}
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return &ParseError{Line: line, Column: j + 1, Token: tok, Reason: "non-finite value"}
			}
			vals[j] = v
		}
		emit(vals)
	}

	return sc.Err()
}
