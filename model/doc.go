// SPDX-License-Identifier: MIT

// Package model evaluates the composite galaxy spectrum for a parameter vector.
//
// 🚀 The model
//
//	For every observed wavelength λ:
//
//	  combined(λ) = c1·L1(λ) + c2·L100(λ) + c3·L1000(λ) + c4·L10000(λ)
//	  model(λ)    = combined(λ) · c5 · exp(−τV · (λ/5000)^−0.7)
//
//	where L_age(λ) is the SSP luminosity column of that age (Myr) interpolated
//	at λ (package interp), c1..c4 are population weights, c5 is a global scale
//	and τV the dust optical depth (package dust).
//
// ✨ Types
//
//   - Param / ParameterVector — the six named parameters, an immutable value.
//   - Range / Ranges          — valid [Min, Max] per parameter.
//   - Basis                   — interpolated columns and dust shape precomputed
//     for one wavelength grid; evaluates a ParameterVector in O(n) without
//     re-interpolating. The grid search builds one Basis per run.
//
// ⚙️ Usage:
//
//	points, err := model.Evaluate(observed, table, model.DefaultParameters())
//	res := model.Residuals(points)
//
// Evaluation never mutates the table or the observed slice. A NaN or ±Inf at
// any stage fails with *NonFiniteError (errors.Is(err, ErrNonFiniteModel))
// naming the index and wavelength, instead of leaking NaN downstream.
package model
