// SPDX-License-Identifier: MIT

// Package fit scores a model against an observed spectrum and searches a
// parameter grid for the best match.
//
// 🚀 Goodness of fit
//
//	χ² = Σ ((observed_i − model_i) / σ)²
//
//	with a uniform unit error σ (1 by default). Observed and model values are
//	paired by index; callers must keep both sequences in the same order.
//	0 is a perfect fit.
//
// 🔎 Grid search
//
//	Optimize spans GridSize evenly spaced values over [Min, Max] for every
//	tunable parameter (Min < Max; a fixed parameter contributes one value),
//	evaluates all GridSize^k combinations and keeps the first one with the
//	smallest χ². The enumeration order is fixed (C1 outermost, TauV innermost),
//	so ties resolve the same way on every run.
//
//	The search is exhaustive and its cost grows exponentially with k. That is
//	the price of a method with no tuning knobs and a guaranteed global minimum
//	over the grid; GridSize is capped by MaxGridSize and the total by
//	MaxCombinations.
//
// ⚙️ Options
//
//	opts := fit.DefaultOptions()
//	opts.GridSize = 4
//	opts.OnProgress = func(p fit.Progress) { fmt.Printf("%.0f%%\n", 100*p.Fraction()) }
//	opts.Ctx = ctx // cancellation between combinations
//	res, err := fit.Optimize(observed, table, model.DefaultRanges(), opts)
//
// Progress is reported after every ProgressEvery combinations and always after
// the last one, so the final report has Fraction() == 1. The search yields the
// processor every YieldEvery combinations. Each call owns its own state;
// concurrent calls are independent.
//
// Errors:
//
//	ErrInvalidGridSize   – GridSize < 2
//	ErrGridTooLarge      – GridSize > MaxGridSize or too many combinations
//	ErrMissingRange      – a parameter has no range
//	ErrInvalidRange      – Min > Max or a non-finite bound
//	ErrInvalidUnitError  – σ not positive and finite
//	ErrCanceled          – Ctx done; best-so-far result returned alongside
//	*CombinationError    – evaluation of one combination failed
package fit
