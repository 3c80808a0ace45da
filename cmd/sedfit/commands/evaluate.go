package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/sedfit/fit"
	"github.com/katalvlaran/sedfit/model"
)

type evaluateRow struct {
	Wavelength float64 `json:"wavelength"`
	Observed   float64 `json:"observed"`
	Model      float64 `json:"model"`
	Residual   float64 `json:"residual"`
}

func evaluateCommand() *cli.Command {
	def := model.DefaultParameters()
	flags := []cli.Flag{
		envFlag(),
		sspFlag(),
		&cli.StringFlag{
			Name:     "observed",
			Usage:    "observed spectrum",
			Required: true,
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "print rows as JSON",
		},
	}
	for _, p := range model.Params() {
		flags = append(flags, &cli.FloatFlag{
			Name:  strings.ToLower(p.String()),
			Usage: fmt.Sprintf("value of %s", p),
			Value: def.Get(p),
		})
	}

	return &cli.Command{
		Name:   "evaluate",
		Usage:  "evaluate the model for given parameters and print observed, model and residual",
		Flags:  flags,
		Action: EvaluateAction,
	}
}

// EvaluateAction prints the model and residuals for the flag parameters.
func EvaluateAction(_ context.Context, cmd *cli.Command) error {
	app, err := NewAppContext(cmd)
	if err != nil {
		return err
	}
	table, err := readSSPFile(cmd.String("ssp"))
	if err != nil {
		return err
	}
	observed, err := readObservedFile(cmd.String("observed"))
	if err != nil {
		return err
	}

	var params model.ParameterVector
	for _, p := range model.Params() {
		params = params.With(p, cmd.Float(strings.ToLower(p.String())))
	}

	points, err := model.Evaluate(observed, table, params)
	if err != nil {
		return err
	}
	residuals := model.Residuals(points)
	sum := fit.Summarize(points, 0)

	app.Logger.Debug("evaluated", "params", params.String(), "points", len(points), "chi_square", sum.ChiSquare)

	if cmd.Bool("json") {
		rows := make([]evaluateRow, len(points))
		for i, p := range points {
			rows[i] = evaluateRow{Wavelength: p.Wavelength, Observed: p.Value, Model: p.Model, Residual: residuals[i].Residual}
		}
		enc := json.NewEncoder(app.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	tw := tablewriter.NewWriter(app.Out)
	tw.Header("Wavelength", "Observed", "Model", "Residual")
	for i, p := range points {
		_ = tw.Append(formatFloat(p.Wavelength), formatFloat(p.Value), formatFloat(p.Model), formatFloat(residuals[i].Residual))
	}
	_ = tw.Render()
	fmt.Fprintf(app.Out, "%s\nχ² = %s  rms = %s  max|r| = %s\n", params, formatFloat(sum.ChiSquare), formatFloat(sum.RMS), formatFloat(sum.MaxAbsResidual))

	return nil
}
