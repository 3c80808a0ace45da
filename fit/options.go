// SPDX-License-Identifier: MIT

package fit

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/sedfit/model"
)

// Option defaults.
const (
	DefaultGridSize      = 5
	DefaultMaxGridSize   = 10
	DefaultProgressEvery = 1
	DefaultYieldEvery    = 256
)

// Options configures Optimize. The zero value of each field selects its
// default, so Options{} behaves like DefaultOptions().
//
//   - Ctx:             checked between combinations; nil means Background.
//   - GridSize:        values per tunable parameter, >= 2 and <= MaxGridSize.
//   - MaxGridSize:     upper bound on GridSize.
//   - MaxCombinations: upper bound on GridSize^tunable.
//   - UnitError:       uniform σ of the chi-square.
//   - ProgressEvery:   call OnProgress after every N combinations (and after the last).
//   - YieldEvery:      runtime.Gosched after every N combinations; negative disables.
//   - OnProgress:      optional progress sink, called synchronously.
//   - Logger:          debug logging of the run; nil discards.
type Options struct {
	Ctx             context.Context
	GridSize        int
	MaxGridSize     int
	MaxCombinations int
	UnitError       float64
	ProgressEvery   int
	YieldEvery      int
	OnProgress      func(Progress)
	Logger          *slog.Logger
}

// DefaultOptions returns Options with every default filled in.
func DefaultOptions() Options {
	return Options{
		Ctx:             context.Background(),
		GridSize:        DefaultGridSize,
		MaxGridSize:     DefaultMaxGridSize,
		MaxCombinations: DefaultMaxCombinations,
		UnitError:       DefaultUnitError,
		ProgressEvery:   DefaultProgressEvery,
		YieldEvery:      DefaultYieldEvery,
		Logger:          slog.New(slog.DiscardHandler),
	}
}

func (o *Options) normalize() {
	d := DefaultOptions()
	if o.Ctx == nil {
		o.Ctx = d.Ctx
	}
	if o.GridSize == 0 {
		o.GridSize = d.GridSize
	}
	if o.MaxGridSize <= 0 {
		o.MaxGridSize = d.MaxGridSize
	}
	if o.MaxCombinations <= 0 {
		o.MaxCombinations = d.MaxCombinations
	}
	if o.UnitError == 0 {
		o.UnitError = d.UnitError
	}
	if o.ProgressEvery <= 0 {
		o.ProgressEvery = d.ProgressEvery
	}
	if o.YieldEvery == 0 {
		o.YieldEvery = d.YieldEvery
	}
	if o.Logger == nil {
		o.Logger = d.Logger
	}
}

func (o *Options) validate() error {
	if o.GridSize < 2 {
		return ErrInvalidGridSize
	}
	if o.GridSize > o.MaxGridSize {
		return ErrGridTooLarge
	}

	return validateUnitError(o.UnitError)
}

// Progress is a snapshot of a running search.
type Progress struct {
	Checked       int
	Total         int
	BestChiSquare float64
	Best          model.ParameterVector
}

// Fraction returns Checked/Total in [0, 1].
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 0
	}

	return float64(p.Checked) / float64(p.Total)
}

// FitResult is the outcome of one Optimize run.
type FitResult struct {
	Parameters model.ParameterVector
	ChiSquare  float64
	Iterations int // combinations checked
}
