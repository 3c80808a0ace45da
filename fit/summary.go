// SPDX-License-Identifier: MIT

package fit

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/sedfit/spectrum"
)

// Summary describes the quality of a fit.
type Summary struct {
	Points           int
	FreeParams       int
	DegreesOfFreedom int     // Points − FreeParams
	ChiSquare        float64 // unit error 1
	ReducedChiSquare float64 // ChiSquare / DegreesOfFreedom; NaN when DegreesOfFreedom <= 0
	RMS              float64
	MeanResidual     float64
	StdResidual      float64 // sample standard deviation; NaN for fewer than 2 points
	MaxAbsResidual   float64
}

// Summarize computes residual statistics of points for a fit with freeParams
// tunable parameters.
func Summarize(points []spectrum.ModelPoint, freeParams int) Summary {
	s := Summary{
		Points:           len(points),
		FreeParams:       freeParams,
		DegreesOfFreedom: len(points) - freeParams,
		ChiSquare:        ChiSquare(points),
		ReducedChiSquare: math.NaN(),
		StdResidual:      math.NaN(),
	}
	if s.DegreesOfFreedom > 0 {
		s.ReducedChiSquare = s.ChiSquare / float64(s.DegreesOfFreedom)
	}
	if len(points) == 0 {
		return s
	}

	res := make([]float64, len(points))
	for i, p := range points {
		res[i] = p.Value - p.Model
	}
	s.RMS = floats.Norm(res, 2) / math.Sqrt(float64(len(res)))
	s.MaxAbsResidual = floats.Norm(res, math.Inf(1))
	if len(res) > 1 {
		s.MeanResidual, s.StdResidual = stat.MeanStdDev(res, nil)
	} else {
		s.MeanResidual = res[0]
	}

	return s
}
