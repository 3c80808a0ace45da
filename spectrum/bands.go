// SPDX-License-Identifier: MIT

package spectrum

// Band is a photometric filter identified by its effective wavelength (Å).
type Band struct {
	Name       string
	Wavelength float64
}

// Interval is a closed wavelength range [Lo, Hi] attached to a band.
type Interval struct {
	Band Band
	Lo   float64
	Hi   float64
}

// SDSSBands returns the SDSS ugriz filters in ascending wavelength order.
func SDSSBands() []Band {
	return []Band{
		{Name: "u", Wavelength: 3551},
		{Name: "g", Wavelength: 4686},
		{Name: "r", Wavelength: 6166},
		{Name: "i", Wavelength: 7480},
		{Name: "z", Wavelength: 8932},
	}
}

// BandIntervals tiles the bands into adjacent shaded intervals: the first one
// starts at start, every later one starts at the previous band's wavelength,
// and each ends at its own band's wavelength. bands must be sorted ascending.
func BandIntervals(bands []Band, start float64) []Interval {
	out := make([]Interval, len(bands))
	lo := start
	for i, b := range bands {
		out[i] = Interval{Band: b, Lo: lo, Hi: b.Wavelength}
		lo = b.Wavelength
	}

	return out
}

// MeanIn returns the mean value of the points inside iv and how many points
// contributed. ok is false when no point falls inside.
func MeanIn(points []SpectralPoint, iv Interval) (mean float64, n int, ok bool) {
	var sum float64
	for _, p := range points {
		if p.Wavelength >= iv.Lo && p.Wavelength <= iv.Hi {
			sum += p.Value
			n++
		}
	}
	if n == 0 {
		return 0, 0, false
	}

	return sum / float64(n), n, true
}
