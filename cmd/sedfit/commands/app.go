// Package commands implements the sedfit command-line actions.
package commands

import "github.com/urfave/cli/v3"

// NewApp returns the root command.
func NewApp() *cli.Command {
	return &cli.Command{
		Name:  "sedfit",
		Usage: "evaluate and fit galaxy spectral energy distributions against SSP model grids",
		Commands: []*cli.Command{
			fitCommand(),
			evaluateCommand(),
			convertCommand(),
			attenuateCommand(),
			bandsCommand(),
		},
	}
}
