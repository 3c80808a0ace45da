package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/sedfit/spectrum"
)

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:  "convert",
		Usage: "convert an SSP table between the 7-column text and JSON forms",
		Flags: []cli.Flag{
			envFlag(),
			sspFlag(),
			&cli.StringFlag{
				Name:  "out",
				Usage: "output file; .json selects JSON, anything else text; - is stdout",
				Value: "-",
			},
			&cli.BoolFlag{
				Name:  "to-json",
				Usage: "write JSON when --out is stdout",
				Value: true,
			},
		},
		Action: ConvertAction,
	}
}

// ConvertAction re-encodes the --ssp table.
func ConvertAction(_ context.Context, cmd *cli.Command) error {
	app, err := NewAppContext(cmd)
	if err != nil {
		return err
	}
	table, err := readSSPFile(cmd.String("ssp"))
	if err != nil {
		return err
	}

	path := cmd.String("out")
	asJSON := isJSON(path)
	if path == "" || path == "-" {
		asJSON = cmd.Bool("to-json")
	}

	w, closeFn, err := createOutput(app, path)
	if err != nil {
		return err
	}
	if asJSON {
		err = spectrum.WriteJSON(w, table)
	} else {
		err = spectrum.FormatSSP(w, table)
	}
	if cerr := closeFn(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	app.Logger.Info("SSP table converted", "rows", table.Len(), "out", path, "json", asJSON)

	return nil
}
