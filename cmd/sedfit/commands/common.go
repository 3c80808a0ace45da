package commands

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/sedfit/internal/config"
	"github.com/katalvlaran/sedfit/internal/logger"
	"github.com/katalvlaran/sedfit/spectrum"
)

// AppContext holds what every command needs.
type AppContext struct {
	Config *config.Config
	Logger *slog.Logger
	Out    io.Writer
	Err    io.Writer
}

// NewAppContext loads the configuration named by --env and builds the logger.
// Logs go to the command's error writer so stdout stays machine readable.
func NewAppContext(cmd *cli.Command) (*AppContext, error) {
	cfg, err := config.Load(cmd.String("env"))
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	root := cmd.Root()
	out, errw := root.Writer, root.ErrWriter
	if out == nil {
		out = os.Stdout
	}
	if errw == nil {
		errw = os.Stderr
	}

	log := logger.New(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
		Output: errw,
	})

	return &AppContext{Config: cfg, Logger: log, Out: out, Err: errw}, nil
}

func envFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "env",
		Usage: "path of a .env file with SEDFIT_* settings",
		Value: ".env",
	}
}

func sspFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "ssp",
		Usage:    "SSP table (7-column text, or .json from convert)",
		Required: true,
	}
}

// readObservedFile parses a 2-column observed spectrum.
func readObservedFile(path string) ([]spectrum.SpectralPoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pts, err := spectrum.ReadObserved(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return pts, nil
}

// readSSPFile parses an SSP table; files ending in .json use the JSON form.
func readSSPFile(path string) (*spectrum.SSPTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var t *spectrum.SSPTable
	if isJSON(path) {
		t, err = spectrum.ReadSSPJSON(f)
	} else {
		t, err = spectrum.ReadSSP(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// createOutput opens path for writing; "" or "-" is the command's stdout.
func createOutput(app *AppContext, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return app.Out, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}

	return f, f.Close, nil
}

// finiteOrNil keeps NaN and ±Inf out of JSON output.
func finiteOrNil(x float64) *float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil
	}

	return &x
}

func formatFloat(x float64) string {
	return fmt.Sprintf("%.6g", x)
}
