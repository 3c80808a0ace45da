// Package interp performs piecewise-linear interpolation of tabulated values
// with flat clamping outside the tabulated range.
//
// 🚀 Policy
//
//	Given a grid g (ascending) and values v of the same length, the value at x is:
//	  • v[0]      if x <  g[0]            (flat below the range)
//	  • v[last]   if x >= g[last]         (flat above the range)
//	  • otherwise the straight line between (g[i-1], v[i-1]) and (g[i], v[i]),
//	    where i is the first index with g[i] > x.
//
//	Clamping is deliberate: zero-fill or an error at the edges would bias fits
//	of spectra that extend slightly past the model grid.
//
// ⚙️ Usage:
//
//	y, err := interp.Interpolate(grid, values, 4861.3)
//
//	// repeated queries against one column:
//	lin, err := interp.NewLinear(grid, values)
//	y, err = lin.At(4861.3)
//
// Interpolate scans linearly for the bracketing index, exactly as the policy is
// stated. Linear copies its inputs once and switches to binary search when the
// grid is non-decreasing, which returns the same index as the scan.
//
// Errors:
//   - ErrEmptyGrid        — the grid has no points.
//   - ErrLengthMismatch   — len(values) != len(grid).
//   - ErrDegenerateGrid   — the bracketing interval has zero or non-finite width
//     (*DegenerateGridError carries the index and bounds).
//   - ErrNaNQuery         — x is NaN.
//
// Complexity:
//
//	Interpolate: O(n) per query. Linear.At: O(log n) on sorted grids.
package interp
