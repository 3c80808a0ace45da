package commands

import (
	"context"
	"fmt"
	"math"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/sedfit/model"
	"github.com/katalvlaran/sedfit/spectrum"
)

func attenuateCommand() *cli.Command {
	return &cli.Command{
		Name:  "attenuate",
		Usage: "print every SSP age column dimmed by dust of optical depth --tauv",
		Flags: []cli.Flag{
			envFlag(),
			sspFlag(),
			&cli.FloatFlag{
				Name:  "tauv",
				Usage: "dust optical depth at 5000 Å",
				Value: model.DefaultParameters().TauV,
			},
			&cli.FloatFlag{
				Name:  "min",
				Usage: "shortest wavelength to keep (Å)",
				Value: math.Inf(-1),
			},
			&cli.FloatFlag{
				Name:  "max",
				Usage: "longest wavelength to keep (Å)",
				Value: math.Inf(1),
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "output file; .json selects JSON; - is stdout",
				Value: "-",
			},
		},
		Action: AttenuateAction,
	}
}

// AttenuateAction writes the dimmed table in the same text layout as its input.
func AttenuateAction(_ context.Context, cmd *cli.Command) error {
	app, err := NewAppContext(cmd)
	if err != nil {
		return err
	}
	table, err := readSSPFile(cmd.String("ssp"))
	if err != nil {
		return err
	}

	if cmd.IsSet("min") || cmd.IsSet("max") {
		if table, err = table.Window(cmd.Float("min"), cmd.Float("max")); err != nil {
			return err
		}
	}
	dimmed, err := model.AttenuatedColumns(table, cmd.Float("tauv"))
	if err != nil {
		return err
	}

	path := cmd.String("out")
	w, closeFn, err := createOutput(app, path)
	if err != nil {
		return err
	}
	if isJSON(path) {
		err = spectrum.WriteJSON(w, dimmed)
	} else {
		err = spectrum.FormatSSP(w, dimmed)
	}
	if cerr := closeFn(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("attenuate: %w", err)
	}

	return nil
}
