// SPDX-License-Identifier: MIT
// Package: spectrum
//
// json.go — JSON export of SSP tables, keyed by population age:
//
//	{"wavelengths": [...], "models": {"1Myr": [...], ..., "10000Myr": [...]}}
//
// This is the shape consumed by browser front-ends that fetch the grid as a
// static asset instead of parsing the text table.

package spectrum

import (
	"encoding/json"
	"fmt"
	"io"
)

type sspJSON struct {
	Wavelengths []float64            `json:"wavelengths"`
	Models      map[string][]float64 `json:"models"`
}

// MarshalJSON implements json.Marshaler.
func (t *SSPTable) MarshalJSON() ([]byte, error) {
	doc := sspJSON{
		Wavelengths: t.Wavelengths,
		Models:      make(map[string][]float64, NumAgeBins),
	}
	for _, a := range AgeBins() {
		doc.Models[a.String()] = t.Columns[a]
	}

	return json.Marshal(doc)
}

// UnmarshalJSON implements json.Unmarshaler. Every age key must be present and
// every column must match the wavelength grid length.
func (t *SSPTable) UnmarshalJSON(data []byte) error {
	var doc sspJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	if len(doc.Wavelengths) == 0 {
		return ErrEmptyData
	}

	var cols [NumAgeBins][]float64
	for _, a := range AgeBins() {
		col, ok := doc.Models[a.String()]
		if !ok {
			return fmt.Errorf("missing model %q: %w", a.String(), ErrParse)
		}
		cols[a] = col
	}

	built, err := NewSSPTable(doc.Wavelengths, cols)
	if err != nil {
		return err
	}
	*t = *built

	return nil
}

// WriteJSON encodes t to w.
func WriteJSON(w io.Writer, t *SSPTable) error {
	if t == nil {
		return spectrumErrorf("WriteJSON", ErrNilTable)
	}
	if err := json.NewEncoder(w).Encode(t); err != nil {
		return spectrumErrorf("WriteJSON", err)
	}

	return nil
}

// ReadSSPJSON decodes a table written by WriteJSON.
func ReadSSPJSON(r io.Reader) (*SSPTable, error) {
	t := &SSPTable{}
	if err := json.NewDecoder(r).Decode(t); err != nil {
		return nil, spectrumErrorf("ReadSSPJSON", err)
	}

	return t, nil
}
