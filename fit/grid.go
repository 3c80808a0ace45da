// SPDX-License-Identifier: MIT

package fit

import (
	"fmt"
	"iter"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/sedfit/model"
)

// DefaultMaxCombinations caps the size of a Grid built by NewGrid.
const DefaultMaxCombinations = 1 << 24

// Grid is the Cartesian product of one value axis per parameter.
//
// Enumeration is a mixed-radix counter in parameter declaration order: C1 is
// the most significant digit and TauV the least, so index 1 differs from
// index 0 only in TauV. A fixed parameter (Min == Max) has a single-value axis
// and does not multiply Total.
type Grid struct {
	axes  [model.NumParams][]float64
	total int
}

// NewGrid builds gridSize evenly spaced values from Min to Max inclusive for
// every tunable parameter of ranges.
func NewGrid(ranges model.Ranges, gridSize int) (*Grid, error) {
	return newGrid(ranges, gridSize, DefaultMaxCombinations)
}

func newGrid(ranges model.Ranges, gridSize, limit int) (*Grid, error) {
	const op = "NewGrid"
	if gridSize < 2 {
		return nil, fitErrorf(op, ErrInvalidGridSize)
	}
	if err := ranges.Validate(); err != nil {
		return nil, fitErrorf(op, err)
	}

	g := &Grid{total: 1}
	for _, p := range model.Params() {
		r := ranges[p]
		if r.Fixed() {
			g.axes[p] = []float64{r.Min}
			continue
		}
		if g.total > limit/gridSize {
			return nil, fitErrorf(op, fmt.Errorf("%w: more than %d combinations", ErrGridTooLarge, limit))
		}
		g.axes[p] = floats.Span(make([]float64, gridSize), r.Min, r.Max)
		g.total *= gridSize
	}

	return g, nil
}

// Total returns the number of combinations.
func (g *Grid) Total() int { return g.total }

// Axis returns a copy of the values enumerated for p.
func (g *Grid) Axis(p model.Param) []float64 {
	if p < 0 || int(p) >= model.NumParams {
		return nil
	}

	return append([]float64(nil), g.axes[p]...)
}

// At decodes combination k, 0 <= k < Total().
func (g *Grid) At(k int) (model.ParameterVector, error) {
	if k < 0 || k >= g.total {
		return model.ParameterVector{}, fmt.Errorf("fit: combination %d out of [0, %d)", k, g.total)
	}

	var v [model.NumParams]float64
	for p := model.NumParams - 1; p >= 0; p-- {
		axis := g.axes[p]
		v[p] = axis[k%len(axis)]
		k /= len(axis)
	}

	return model.FromArray(v), nil
}

// All yields every (index, combination) pair in enumeration order.
// Stopping the range loop early stops the enumeration.
func (g *Grid) All() iter.Seq2[int, model.ParameterVector] {
	return func(yield func(int, model.ParameterVector) bool) {
		var digit [model.NumParams]int
		var v [model.NumParams]float64
		for p := range v {
			v[p] = g.axes[p][0]
		}

		for k := 0; k < g.total; k++ {
			if !yield(k, model.FromArray(v)) {
				return
			}
			// increment, least significant digit first
			for p := model.NumParams - 1; p >= 0; p-- {
				digit[p]++
				if digit[p] < len(g.axes[p]) {
					v[p] = g.axes[p][digit[p]]
					break
				}
				digit[p] = 0
				v[p] = g.axes[p][0]
			}
		}
	}
}
