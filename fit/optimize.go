// SPDX-License-Identifier: MIT

package fit

import (
	"math"
	"runtime"
	"time"

	"github.com/katalvlaran/sedfit/model"
	"github.com/katalvlaran/sedfit/spectrum"
)

// Optimize evaluates every combination of the grid spanned by ranges and
// opts.GridSize and returns the one with the smallest chi-square against
// observed. On ties the combination enumerated first wins.
//
// Steps:
//  1. Normalize and validate opts; build the Grid (NewGrid rules).
//  2. Precompute a model.Basis for the observed wavelengths.
//  3. For each combination: check opts.Ctx, evaluate, score, keep if strictly
//     better, report progress, yield every opts.YieldEvery combinations.
//
// On cancellation the best result so far is returned together with an error
// matching ErrCanceled and the context error; Iterations counts the
// combinations actually checked and ChiSquare is +Inf if none was.
//
// Complexity: O(GridSize^k · n) for k tunable parameters and n observed points.
// Memory: O(n) beyond the inputs. The cost is exponential in k, which is why
// GridSize is capped by MaxGridSize and the product by MaxCombinations.
func Optimize(observed []spectrum.SpectralPoint, t *spectrum.SSPTable, ranges model.Ranges, opts Options) (FitResult, error) {
	const op = "Optimize"

	opts.normalize()
	if err := opts.validate(); err != nil {
		return FitResult{}, fitErrorf(op, err)
	}
	ctx, log := opts.Ctx, opts.Logger

	grid, err := newGrid(ranges, opts.GridSize, opts.MaxCombinations)
	if err != nil {
		return FitResult{}, fitErrorf(op, err)
	}
	basis, err := model.NewBasis(spectrum.Wavelengths(observed), t)
	if err != nil {
		return FitResult{}, fitErrorf(op, err)
	}

	values := make([]float64, len(observed))
	for i, p := range observed {
		values[i] = p.Value
	}

	total := grid.Total()
	log.Debug("grid search started",
		"points", len(observed),
		"grid_size", opts.GridSize,
		"free_params", len(ranges.Free()),
		"combinations", total)
	start := time.Now()

	best := FitResult{ChiSquare: math.Inf(1)}
	var (
		dst     []float64
		checked int
	)
	for k, p := range grid.All() {
		if err = ctx.Err(); err != nil {
			best.Iterations = checked
			log.Debug("grid search canceled", "checked", checked, "combinations", total)

			return best, fitErrorf(op, canceled(err))
		}

		dst, err = basis.Model(p, dst)
		if err != nil {
			best.Iterations = checked

			return best, fitErrorf(op, &CombinationError{Iteration: k, Parameters: p, Err: err})
		}
		chi := chiSquareValues(values, dst, opts.UnitError)
		checked++

		// strict <: the first combination reaching a value keeps it
		if checked == 1 || chi < best.ChiSquare {
			best.Parameters, best.ChiSquare = p, chi
		}

		if opts.OnProgress != nil && (checked%opts.ProgressEvery == 0 || checked == total) {
			opts.OnProgress(Progress{Checked: checked, Total: total, BestChiSquare: best.ChiSquare, Best: best.Parameters})
		}
		if opts.YieldEvery > 0 && checked%opts.YieldEvery == 0 {
			runtime.Gosched()
		}
	}
	best.Iterations = checked

	log.Debug("grid search finished",
		"combinations", checked,
		"chi_square", best.ChiSquare,
		"best", best.Parameters.String(),
		"elapsed", time.Since(start))

	return best, nil
}
