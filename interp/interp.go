package interp

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrEmptyGrid indicates a grid with no points.
	ErrEmptyGrid = errors.New("interp: grid must be non-empty")

	// ErrLengthMismatch indicates that grid and values differ in length.
	ErrLengthMismatch = errors.New("interp: grid and values length mismatch")

	// ErrDegenerateGrid indicates a zero-width (or NaN-width) bracketing interval.
	ErrDegenerateGrid = errors.New("interp: degenerate grid interval")

	// ErrNaNQuery indicates a NaN query point, which no interval can bracket.
	ErrNaNQuery = errors.New("interp: query is NaN")
)

// DegenerateGridError reports the interval [Lo, Hi] between grid indices
// Index-1 and Index that could not be interpolated across.
type DegenerateGridError struct {
	Index  int
	Lo, Hi float64
	X      float64
}

func (e *DegenerateGridError) Error() string {
	return fmt.Sprintf("interp: degenerate interval [%g, %g] at index %d for x=%g", e.Lo, e.Hi, e.Index, e.X)
}

// Unwrap lets errors.Is(err, ErrDegenerateGrid) match.
func (e *DegenerateGridError) Unwrap() error { return ErrDegenerateGrid }

// Interpolate returns the value at x by linear interpolation over (grid, values),
// clamping flat outside [grid[0], grid[last]].
//
// Preconditions: grid ascending, len(values) == len(grid) >= 1.
func Interpolate(grid, values []float64, x float64) (float64, error) {
	if err := validate(grid, values); err != nil {
		return 0, err
	}
	if math.IsNaN(x) {
		return 0, ErrNaNQuery
	}

	// first index with grid[i] > x
	i := 0
	for i < len(grid) && !(grid[i] > x) {
		i++
	}

	return at(grid, values, x, i)
}

// Linear is a prepared interpolator over one (grid, values) pair.
// It is immutable and safe for concurrent use.
type Linear struct {
	grid   []float64
	values []float64
	sorted bool
}

// NewLinear copies grid and values into a prepared interpolator.
func NewLinear(grid, values []float64) (*Linear, error) {
	if err := validate(grid, values); err != nil {
		return nil, err
	}

	g := append([]float64(nil), grid...)

	return &Linear{
		grid:   g,
		values: append([]float64(nil), values...),
		sorted: sort.Float64sAreSorted(g) && !hasNaN(g),
	}, nil
}

// At returns the interpolated value at x.
func (l *Linear) At(x float64) (float64, error) {
	if math.IsNaN(x) {
		return 0, ErrNaNQuery
	}

	var i int
	if l.sorted {
		i = sort.Search(len(l.grid), func(k int) bool { return l.grid[k] > x })
	} else {
		for i < len(l.grid) && !(l.grid[i] > x) {
			i++
		}
	}

	return at(l.grid, l.values, x, i)
}

// Len returns the number of grid points.
func (l *Linear) Len() int { return len(l.grid) }

// Bounds returns the first and last grid points.
func (l *Linear) Bounds() (lo, hi float64) { return l.grid[0], l.grid[len(l.grid)-1] }

// at evaluates the interpolant given i, the first index with grid[i] > x
// (len(grid) when there is none).
func at(grid, values []float64, x float64, i int) (float64, error) {
	last := len(grid) - 1
	switch {
	case i > last:
		return values[last], nil
	case i == 0:
		return values[0], nil
	}

	x0, x1 := grid[i-1], grid[i]
	dx := x1 - x0
	if !(dx > 0) || math.IsInf(dx, 0) {
		return 0, &DegenerateGridError{Index: i, Lo: x0, Hi: x1, X: x}
	}
	y0, y1 := values[i-1], values[i]

	return y0 + (y1-y0)*(x-x0)/dx, nil
}

func validate(grid, values []float64) error {
	if len(grid) == 0 {
		return ErrEmptyGrid
	}
	if len(values) != len(grid) {
		return ErrLengthMismatch
	}

	return nil
}

func hasNaN(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) {
			return true
		}
	}

	return false
}
