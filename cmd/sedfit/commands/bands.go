package commands

import (
	"context"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/sedfit/spectrum"
)

func bandsCommand() *cli.Command {
	return &cli.Command{
		Name:  "bands",
		Usage: "list the SDSS ugriz bands, optionally with the mean observed luminosity per band",
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:  "start",
				Usage: "lower edge of the first band interval (Å)",
				Value: 3000,
			},
			&cli.StringFlag{
				Name:  "observed",
				Usage: "observed spectrum to average per band",
			},
		},
		Action: BandsAction,
	}
}

// BandsAction prints one row per band.
func BandsAction(_ context.Context, cmd *cli.Command) error {
	var observed []spectrum.SpectralPoint
	if path := cmd.String("observed"); path != "" {
		var err error
		if observed, err = readObservedFile(path); err != nil {
			return err
		}
	}

	tw := tablewriter.NewWriter(cmd.Root().Writer)
	if observed != nil {
		tw.Header("Band", "λeff", "From", "To", "Points", "Mean")
	} else {
		tw.Header("Band", "λeff", "From", "To")
	}
	for _, iv := range spectrum.BandIntervals(spectrum.SDSSBands(), cmd.Float("start")) {
		row := []any{iv.Band.Name, formatFloat(iv.Band.Wavelength), formatFloat(iv.Lo), formatFloat(iv.Hi)}
		if observed != nil {
			mean, n, ok := spectrum.MeanIn(observed, iv)
			m := "-"
			if ok {
				m = formatFloat(mean)
			}
			row = append(row, n, m)
		}
		_ = tw.Append(row...)
	}

	return tw.Render()
}
