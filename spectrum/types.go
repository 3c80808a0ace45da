// SPDX-License-Identifier: MIT

package spectrum

import (
	"fmt"
	"math"
)

// SpectralPoint is one sample of a spectrum: luminosity Value at Wavelength (Å).
type SpectralPoint struct {
	Wavelength float64
	Value      float64
}

// ModelPoint is an observed SpectralPoint extended with the model luminosity at
// the same wavelength. Observed and model values are paired by slice index.
type ModelPoint struct {
	SpectralPoint
	Model float64
}

// AgeBin indexes the luminosity columns of an SSPTable.
type AgeBin int

// Age bins of the fixed 7-column table, in column order.
const (
	Age1Myr AgeBin = iota
	Age10Myr
	Age100Myr
	Age1000Myr
	Age5000Myr
	Age10000Myr

	// NumAgeBins is the number of luminosity columns in an SSP table.
	NumAgeBins = 6
)

// ssp table column count: wavelength + one column per age bin.
const sspColumns = 1 + NumAgeBins

// observed table column count: wavelength + luminosity.
const observedColumns = 2

var ageMyr = [NumAgeBins]float64{1, 10, 100, 1000, 5000, 10000}

// AgeBins returns all age bins in column order.
func AgeBins() []AgeBin {
	return []AgeBin{Age1Myr, Age10Myr, Age100Myr, Age1000Myr, Age5000Myr, Age10000Myr}
}

// Myr returns the population age in millions of years.
func (a AgeBin) Myr() float64 {
	if !a.valid() {
		return math.NaN()
	}

	return ageMyr[a]
}

// String returns the label used by the JSON export, e.g. "100Myr".
func (a AgeBin) String() string {
	if !a.valid() {
		return fmt.Sprintf("AgeBin(%d)", int(a))
	}

	return fmt.Sprintf("%gMyr", ageMyr[a])
}

// Header returns the column name used by the text format, e.g. "LUM100".
func (a AgeBin) Header() string {
	if !a.valid() {
		return fmt.Sprintf("LUM?%d", int(a))
	}

	return fmt.Sprintf("LUM%g", ageMyr[a])
}

func (a AgeBin) valid() bool { return a >= 0 && int(a) < NumAgeBins }

// SSPTable is a simple-stellar-population grid: a shared, strictly increasing
// wavelength grid (assumed, not validated) and one luminosity column per age.
//
// Fields are exported for read access; treat them as read-only. Use NewSSPTable
// to build a table from caller-owned slices.
type SSPTable struct {
	Wavelengths []float64
	Columns     [NumAgeBins][]float64
}

// NewSSPTable copies wavelengths and columns into a new table.
// Every column must have len(wavelengths) entries and the grid must be non-empty.
func NewSSPTable(wavelengths []float64, columns [NumAgeBins][]float64) (*SSPTable, error) {
	if len(wavelengths) == 0 {
		return nil, spectrumErrorf("NewSSPTable", ErrEmptyData)
	}

	t := &SSPTable{Wavelengths: append([]float64(nil), wavelengths...)}
	for a := range columns {
		if len(columns[a]) != len(wavelengths) {
			return nil, spectrumErrorf(fmt.Sprintf("NewSSPTable: %s", AgeBin(a)), ErrColumnLength)
		}
		t.Columns[a] = append([]float64(nil), columns[a]...)
	}

	return t, nil
}

// Len returns the number of grid rows.
func (t *SSPTable) Len() int {
	if t == nil {
		return 0
	}

	return len(t.Wavelengths)
}

// Column returns the luminosity column for age. The slice is shared with the
// table and must not be modified.
func (t *SSPTable) Column(age AgeBin) []float64 {
	if t == nil || !age.valid() {
		return nil
	}

	return t.Columns[age]
}

// Window returns a new table restricted to rows with lo <= wavelength <= hi.
// An empty selection yields ErrEmptyData.
func (t *SSPTable) Window(lo, hi float64) (*SSPTable, error) {
	if t == nil {
		return nil, spectrumErrorf("Window", ErrNilTable)
	}
	if err := validateWindow(lo, hi); err != nil {
		return nil, spectrumErrorf("Window", err)
	}

	out := &SSPTable{}
	for i, w := range t.Wavelengths {
		if w < lo || w > hi {
			continue
		}
		out.Wavelengths = append(out.Wavelengths, w)
		for a := range t.Columns {
			out.Columns[a] = append(out.Columns[a], t.Columns[a][i])
		}
	}
	if len(out.Wavelengths) == 0 {
		return nil, spectrumErrorf("Window", ErrEmptyData)
	}

	return out, nil
}

// Wavelengths extracts the wavelength of every point, in order.
func Wavelengths(points []SpectralPoint) []float64 {
	out := make([]float64, len(points))
	for i := range points {
		out[i] = points[i].Wavelength
	}

	return out
}

// Window returns the points with lo <= wavelength <= hi, preserving order.
// The result is a fresh slice; points is left untouched.
func Window(points []SpectralPoint, lo, hi float64) ([]SpectralPoint, error) {
	if err := validateWindow(lo, hi); err != nil {
		return nil, spectrumErrorf("Window", err)
	}

	out := make([]SpectralPoint, 0, len(points))
	for _, p := range points {
		if p.Wavelength >= lo && p.Wavelength <= hi {
			out = append(out, p)
		}
	}

	return out, nil
}

func validateWindow(lo, hi float64) error {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return ErrInvalidWindow
	}

	return nil
}
