// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/sedfit/spectrum"
)

// Param names one model parameter. The declaration order C1..TauV is the
// canonical order used for enumeration and display.
type Param int

const (
	C1   Param = iota // weight of the 1 Myr population
	C2                // weight of the 100 Myr population
	C3                // weight of the 1000 Myr population
	C4                // weight of the 10000 Myr population
	C5                // global scale
	TauV              // dust optical depth at 5000 Å

	// NumParams is the number of model parameters.
	NumParams = 6
)

var paramNames = [NumParams]string{"c1", "c2", "c3", "c4", "c5", "tauV"}

// Params returns every parameter in declaration order.
func Params() []Param {
	return []Param{C1, C2, C3, C4, C5, TauV}
}

func (p Param) String() string {
	if !p.valid() {
		return fmt.Sprintf("Param(%d)", int(p))
	}

	return paramNames[p]
}

func (p Param) valid() bool { return p >= 0 && int(p) < NumParams }

// ParseParam resolves a case-insensitive parameter name ("c1", "TAUV", ...).
func ParseParam(name string) (Param, error) {
	for i, n := range paramNames {
		if strings.EqualFold(n, name) {
			return Param(i), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownParam)
}

// Component pairs a weight parameter with the SSP age column it scales.
type Component struct {
	Weight Param
	Age    spectrum.AgeBin
}

// numComponents is the number of weighted populations in the model.
const numComponents = 4

// Components returns the weighted populations in evaluation order.
func Components() [numComponents]Component {
	return [numComponents]Component{
		{Weight: C1, Age: spectrum.Age1Myr},
		{Weight: C2, Age: spectrum.Age100Myr},
		{Weight: C3, Age: spectrum.Age1000Myr},
		{Weight: C4, Age: spectrum.Age10000Myr},
	}
}

// ParameterVector is a complete set of model parameters. It is a plain value:
// With returns a modified copy and never changes the receiver.
type ParameterVector struct {
	C1, C2, C3, C4 float64 // population weights
	C5             float64 // global scale
	TauV           float64 // dust optical depth
}

// DefaultParameters returns the starting point of an interactive session.
func DefaultParameters() ParameterVector {
	return ParameterVector{C1: 10, C2: 50, C3: 120, C4: 50, C5: 120, TauV: 1}
}

// FromArray builds a vector from values in declaration order.
func FromArray(a [NumParams]float64) ParameterVector {
	return ParameterVector{C1: a[C1], C2: a[C2], C3: a[C3], C4: a[C4], C5: a[C5], TauV: a[TauV]}
}

// Array returns the values in declaration order.
func (v ParameterVector) Array() [NumParams]float64 {
	return [NumParams]float64{v.C1, v.C2, v.C3, v.C4, v.C5, v.TauV}
}

// Get returns the value of p, or NaN for an unknown parameter.
func (v ParameterVector) Get(p Param) float64 {
	if !p.valid() {
		return math.NaN()
	}

	return v.Array()[p]
}

// With returns a copy of v with p set to x. Unknown parameters leave v as is.
func (v ParameterVector) With(p Param, x float64) ParameterVector {
	if !p.valid() {
		return v
	}
	a := v.Array()
	a[p] = x

	return FromArray(a)
}

// Weight returns the weight applied to the age column of c.
func (v ParameterVector) Weight(c Component) float64 { return v.Get(c.Weight) }

// String renders "c1=10 c2=50 ... tauV=1".
func (v ParameterVector) String() string {
	var sb strings.Builder
	for i, x := range v.Array() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s=%g", paramNames[i], x)
	}

	return sb.String()
}

// Range is the closed interval [Min, Max] of valid values for a parameter.
type Range struct {
	Min, Max float64
}

// Validate reports ErrInvalidRange for NaN/Inf bounds or Min > Max.
func (r Range) Validate() error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) || r.Min > r.Max {
		return ErrInvalidRange
	}

	return nil
}

// Fixed reports whether the range pins a single value.
func (r Range) Fixed() bool { return r.Min == r.Max }

// Contains reports whether Min <= x <= Max.
func (r Range) Contains(x float64) bool { return x >= r.Min && x <= r.Max }

// Clamp limits x to [Min, Max].
func (r Range) Clamp(x float64) float64 { return math.Min(math.Max(x, r.Min), r.Max) }

// Ranges assigns a Range to every parameter.
type Ranges map[Param]Range

// DefaultRanges returns the interactive slider bounds.
func DefaultRanges() Ranges {
	return Ranges{
		C1:   {Min: 0, Max: 10},
		C2:   {Min: 0, Max: 100},
		C3:   {Min: 0, Max: 1000},
		C4:   {Min: 0, Max: 150},
		C5:   {Min: 0, Max: 150},
		TauV: {Min: 0, Max: 2},
	}
}

// Validate checks that every parameter has a valid range and no unknown
// parameter is present.
func (rs Ranges) Validate() error {
	for p := range rs {
		if !p.valid() {
			return fmt.Errorf("%s: %w", p, ErrUnknownParam)
		}
	}
	for _, p := range Params() {
		r, ok := rs[p]
		if !ok {
			return fmt.Errorf("%s: %w", p, ErrMissingRange)
		}
		if err := r.Validate(); err != nil {
			return fmt.Errorf("%s [%g, %g]: %w", p, r.Min, r.Max, err)
		}
	}

	return nil
}

// Free returns the tunable parameters (Min < Max) in declaration order.
func (rs Ranges) Free() []Param {
	var out []Param
	for _, p := range Params() {
		if r, ok := rs[p]; ok && !r.Fixed() {
			out = append(out, p)
		}
	}

	return out
}

// Clamp limits every parameter of v that has a range.
func (rs Ranges) Clamp(v ParameterVector) ParameterVector {
	for p, r := range rs {
		v = v.With(p, r.Clamp(v.Get(p)))
	}

	return v
}

// Clone returns an independent copy.
func (rs Ranges) Clone() Ranges {
	out := make(Ranges, len(rs))
	for p, r := range rs {
		out[p] = r
	}

	return out
}
