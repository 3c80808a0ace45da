package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sedfit/fit"
	"github.com/katalvlaran/sedfit/model"
	"github.com/katalvlaran/sedfit/session"
	"github.com/katalvlaran/sedfit/spectrum"
)

// FitReport is the outcome for one observed spectrum.
type FitReport struct {
	File             string             `json:"file"`
	RunID            string             `json:"run_id"`
	Parameters       map[string]float64 `json:"parameters"`
	ChiSquare        float64            `json:"chi_square"`
	ReducedChiSquare *float64           `json:"reduced_chi_square"`
	RMS              float64            `json:"rms"`
	Points           int                `json:"points"`
	Iterations       int                `json:"iterations"`
	ElapsedMS        int64              `json:"elapsed_ms"`
}

func fitCommand() *cli.Command {
	return &cli.Command{
		Name:  "fit",
		Usage: "grid-search the best parameters for one or more observed spectra",
		Flags: []cli.Flag{
			envFlag(),
			sspFlag(),
			&cli.StringSliceFlag{
				Name:     "observed",
				Usage:    "observed spectrum (repeatable; files are fitted concurrently)",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "grid-size",
				Usage: "values per tunable parameter (overrides SEDFIT_GRID_SIZE)",
			},
			&cli.IntFlag{
				Name:  "jobs",
				Usage: "maximum concurrent fits (0 = number of CPUs)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print reports as JSON",
			},
			&cli.BoolFlag{
				Name:  "progress",
				Usage: "draw a progress bar on stderr",
				Value: true,
			},
		},
		Action: FitAction,
	}
}

// FitAction fits every --observed file against the --ssp table.
func FitAction(ctx context.Context, cmd *cli.Command) error {
	app, err := NewAppContext(cmd)
	if err != nil {
		return err
	}

	table, err := readSSPFile(cmd.String("ssp"))
	if err != nil {
		return err
	}

	opts := app.Config.FitOptions()
	if cmd.IsSet("grid-size") {
		opts.GridSize = cmd.Int("grid-size")
	}
	ranges := app.Config.Ranges

	paths := cmd.StringSlice("observed")
	observed := make([][]spectrum.SpectralPoint, len(paths))
	for i, p := range paths {
		if observed[i], err = readObservedFile(p); err != nil {
			return err
		}
	}

	grid, err := fit.NewGrid(ranges, opts.GridSize)
	if err != nil {
		return err
	}
	var bar *progressbar.ProgressBar
	if cmd.Bool("progress") {
		bar = progressbar.NewOptions64(int64(grid.Total()*len(paths)),
			progressbar.OptionSetWriter(app.Err),
			progressbar.OptionSetDescription("fitting"),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
	}

	jobs := cmd.Int("jobs")
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	app.Logger.Info("fit started", "files", len(paths), "grid_size", opts.GridSize, "combinations", grid.Total())

	reports := make([]FitReport, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i := range paths {
		g.Go(func() error {
			r, err := fitOne(gctx, app, table, ranges, opts, paths[i], observed[i], bar)
			if err != nil {
				return fmt.Errorf("%s: %w", paths[i], err)
			}
			reports[i] = r

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if bar != nil {
		_ = bar.Finish()
	}

	if cmd.Bool("json") {
		enc := json.NewEncoder(app.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}
	renderFitReports(app, reports)

	return nil
}

// fitOne runs one session fit and feeds the shared progress bar.
func fitOne(
	ctx context.Context,
	app *AppContext,
	table *spectrum.SSPTable,
	ranges model.Ranges,
	opts fit.Options,
	path string,
	observed []spectrum.SpectralPoint,
	bar *progressbar.ProgressBar,
) (FitReport, error) {
	sess := session.New(
		session.WithLogger(app.Logger.With("file", filepath.Base(path))),
		session.WithRanges(ranges),
	)
	sess.SetTable(table)
	sess.SetObserved(observed)

	opts.Ctx = ctx
	if bar != nil {
		last := 0
		opts.OnProgress = func(p fit.Progress) {
			_ = bar.Add(p.Checked - last)
			last = p.Checked
		}
	}

	run, err := sess.Fit(opts)
	if err != nil {
		return FitReport{}, err
	}
	sum, err := sess.Summary()
	if err != nil {
		return FitReport{}, err
	}

	params := make(map[string]float64, model.NumParams)
	for _, p := range model.Params() {
		params[p.String()] = run.Result.Parameters.Get(p)
	}

	return FitReport{
		File:             path,
		RunID:            run.ID,
		Parameters:       params,
		ChiSquare:        run.Result.ChiSquare,
		ReducedChiSquare: finiteOrNil(sum.ReducedChiSquare),
		RMS:              sum.RMS,
		Points:           sum.Points,
		Iterations:       run.Result.Iterations,
		ElapsedMS:        run.Duration().Milliseconds(),
	}, nil
}

func renderFitReports(app *AppContext, reports []FitReport) {
	header := []any{"File"}
	for _, p := range model.Params() {
		header = append(header, p.String())
	}
	header = append(header, "χ²", "χ²/dof", "Iterations")

	table := tablewriter.NewWriter(app.Out)
	table.Header(header...)
	for _, r := range reports {
		row := []any{filepath.Base(r.File)}
		for _, p := range model.Params() {
			row = append(row, formatFloat(r.Parameters[p.String()]))
		}
		reduced := "-"
		if r.ReducedChiSquare != nil {
			reduced = formatFloat(*r.ReducedChiSquare)
		}
		row = append(row, formatFloat(r.ChiSquare), reduced, fmt.Sprintf("%d", r.Iterations))
		_ = table.Append(row...)
	}
	_ = table.Render()
}
