// Package sedfit evaluates and fits galaxy spectral energy distributions (SEDs)
// against tabulated simple-stellar-population (SSP) model spectra.
//
// 🚀 What is sedfit?
//
//	A small, dependency-light engine for the numeric core of an interactive
//	SED fitting tool:
//		• Parsing: whitespace tables of observed spectra and SSP grids, JSON export
//		• Interpolation: piecewise-linear, flat-clamped outside the grid
//		• Dust: power-law attenuation exp(−τV·(λ/5000)^−0.7)
//		• Model: weighted sum of four SSP ages, global scale, dust
//		• Fit: χ² goodness of fit and an exhaustive, cancellable grid search
//		• Session: concurrency-safe state for a UI driving the engine
//
// Packages:
//
//	spectrum/  — SpectralPoint, SSPTable, parsers, formatters, ugriz bands
//	interp/    — linear interpolation (one-shot and prepared)
//	dust/      — attenuation law
//	model/     — parameters, ranges, model evaluation, residuals, composites
//	fit/       — χ², Grid, Optimize, Summarize
//	session/   — loaded data, current parameters, fit runs
//	cmd/sedfit — command-line driver (fit, evaluate, convert, attenuate, bands)
//
// Quick example:
//
//	table, _ := spectrum.ParseSSP(sspText)
//	observed, _ := spectrum.ParseObserved(obsText)
//	res, err := fit.Optimize(observed, table, model.DefaultRanges(), fit.DefaultOptions())
//
// See examples/ for runnable programs.
package sedfit
