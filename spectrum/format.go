// SPDX-License-Identifier: MIT

package spectrum

import (
	"bufio"
	"io"
	"strconv"
)

// Fixed-width layout: every value is written with %16.9E, which keeps ten
// significant digits and lines up columns for human inspection.
const (
	cellWidth     = 16
	cellPrecision = 9
)

// FormatObserved writes points in the observed 2-column text format.
func FormatObserved(w io.Writer, points []SpectralPoint) error {
	bw := bufio.NewWriter(w)
	writeHeader(bw, []string{"WAVE", "LUM"})

	buf := make([]byte, 0, 2*cellWidth+1)
	for _, p := range points {
		buf = appendCell(buf[:0], p.Wavelength)
		buf = appendCell(buf, p.Value)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return spectrumErrorf("FormatObserved", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return spectrumErrorf("FormatObserved", err)
	}

	return nil
}

// FormatSSP writes t in the 7-column SSP text format.
// ParseSSP of the output reproduces t within a relative 1e-9.
func FormatSSP(w io.Writer, t *SSPTable) error {
	if t == nil {
		return spectrumErrorf("FormatSSP", ErrNilTable)
	}

	names := []string{"WAVE"}
	for _, a := range AgeBins() {
		names = append(names, a.Header())
	}

	bw := bufio.NewWriter(w)
	writeHeader(bw, names)

	buf := make([]byte, 0, sspColumns*cellWidth+1)
	for i, wl := range t.Wavelengths {
		buf = appendCell(buf[:0], wl)
		for a := 0; a < NumAgeBins; a++ {
			buf = appendCell(buf, t.Columns[a][i])
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return spectrumErrorf("FormatSSP", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return spectrumErrorf("FormatSSP", err)
	}

	return nil
}

// writeHeader writes "# NAME NAME ..." padded to the cell width.
// Errors surface at Flush.
func writeHeader(bw *bufio.Writer, names []string) {
	bw.WriteString("#")
	for i, n := range names {
		width := cellWidth
		if i == 0 {
			width-- // the leading '#' takes one column
		}
		for pad := width - len(n); pad > 0; pad-- {
			bw.WriteByte(' ')
		}
		bw.WriteString(n)
	}
	bw.WriteByte('\n')
}

// appendCell right-aligns v in a cellWidth-wide field, always leaving at
// least one separating space.
func appendCell(dst []byte, v float64) []byte {
	var tmp [32]byte
	s := strconv.AppendFloat(tmp[:0], v, 'E', cellPrecision, 64)
	pad := cellWidth - len(s)
	if pad < 1 {
		pad = 1 // three-digit exponents still need a separator
	}
	for ; pad > 0; pad-- {
		dst = append(dst, ' ')
	}

	return append(dst, s...)
}
