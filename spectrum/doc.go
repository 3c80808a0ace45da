// SPDX-License-Identifier: MIT

// Package spectrum holds the data model of the SED engine and the readers and
// writers for its two plain-text table shapes.
//
// 🚀 What lives here?
//
//	• SpectralPoint — one (wavelength, luminosity) sample of an observed spectrum.
//	• ModelPoint    — a SpectralPoint paired (by index) with the model value.
//	• SSPTable      — one shared wavelength grid plus one luminosity column per
//	                  stellar-population age bin (1, 10, 100, 1000, 5000, 10000 Myr).
//
// ⚙️ Table shapes:
//
//	observed spectrum (2 columns):   # WAVE LUM
//	                                 3600.0 1.2e-3
//	SSP grid (7 columns):            # WAVE LUM1 LUM10 LUM100 LUM1000 LUM5000 LUM10000
//	                                 91.0   ...
//
// The first line is always a header and is ignored. Rows are split on runs of
// whitespace; blank lines and `#` comment lines after the header are skipped.
// A malformed row fails with *ParseError (errors.Is(err, ErrParse)); a table with
// no data rows fails with ErrEmptyData.
//
// The 7-column shape is stored column-wise so the evaluator can pick a whole
// age column in O(1). Tables are immutable once built: every constructor copies
// its input and no function in this module writes into a table.
//
// Besides parsing, the package writes both shapes back as fixed-width text
// (FormatObserved, FormatSSP), exports SSP tables as JSON keyed by age
// (WriteJSON / ReadSSPJSON), cuts wavelength windows, and describes the SDSS
// ugriz filter bands used for overlays.
package spectrum
