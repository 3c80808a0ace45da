// Package session holds the mutable state of one interactive fitting session:
// the loaded observed spectrum and SSP table, the current parameter vector and
// the most recent grid-search run.
//
// A Session is safe for concurrent use. Loads replace data atomically: a file
// that fails to parse leaves the previous data in place. Fit runs the search
// on a snapshot without holding the lock and commits only its result.
package session

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/sedfit/fit"
	"github.com/katalvlaran/sedfit/model"
	"github.com/katalvlaran/sedfit/spectrum"
)

var (
	// ErrNotReady indicates that observed data or the SSP table is missing.
	ErrNotReady = errors.New("session: observed spectrum and SSP table required")

	// ErrInvalidValue indicates a NaN or infinite parameter value.
	ErrInvalidValue = errors.New("session: parameter value must be finite")

	// ErrStaleFit indicates that the data changed while a fit was running; the
	// result is returned but not applied.
	ErrStaleFit = errors.New("session: data changed during fit")
)

// Run records one completed grid search.
type Run struct {
	ID       string
	Result   fit.FitResult
	GridSize int
	Started  time.Time
	Finished time.Time
}

// Duration returns the wall time of the run.
func (r Run) Duration() time.Duration { return r.Finished.Sub(r.Started) }

// Session is the state behind one UI. Create it with New.
type Session struct {
	mu         sync.RWMutex
	observed   []spectrum.SpectralPoint
	table      *spectrum.SSPTable
	params     model.ParameterVector
	ranges     model.Ranges
	generation uint64
	last       *Run

	log   *slog.Logger
	newID func() string
	now   func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger for load failures and fit runs.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRanges replaces the slider bounds (model.DefaultRanges by default).
// It panics if ranges do not validate.
func WithRanges(ranges model.Ranges) Option {
	if err := ranges.Validate(); err != nil {
		panic(fmt.Sprintf("session: WithRanges: %v", err))
	}
	r := ranges.Clone()

	return func(s *Session) { s.ranges = r }
}

// WithParameters sets the initial parameter vector (clamped to the ranges).
func WithParameters(p model.ParameterVector) Option {
	return func(s *Session) { s.params = p }
}

// New returns an empty session with default parameters and ranges.
func New(opts ...Option) *Session {
	s := &Session{
		params: model.DefaultParameters(),
		ranges: model.DefaultRanges(),
		log:    slog.New(slog.DiscardHandler),
		newID:  uuid.NewString,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.params = s.ranges.Clamp(s.params)

	return s
}

// LoadObserved parses an observed spectrum and replaces the current one.
func (s *Session) LoadObserved(text string) error {
	pts, err := spectrum.ParseObserved(text)
	if err != nil {
		s.log.Warn("observed spectrum rejected, keeping previous data", "error", err)
		return err
	}
	s.SetObserved(pts)

	return nil
}

// ReadObserved is LoadObserved for a stream.
func (s *Session) ReadObserved(r io.Reader) error {
	pts, err := spectrum.ReadObserved(r)
	if err != nil {
		s.log.Warn("observed spectrum rejected, keeping previous data", "error", err)
		return err
	}
	s.SetObserved(pts)

	return nil
}

// LoadSSP parses an SSP table and replaces the current one.
func (s *Session) LoadSSP(text string) error {
	t, err := spectrum.ParseSSP(text)
	if err != nil {
		s.log.Warn("SSP table rejected, keeping previous data", "error", err)
		return err
	}
	s.SetTable(t)

	return nil
}

// ReadSSP is LoadSSP for a stream.
func (s *Session) ReadSSP(r io.Reader) error {
	t, err := spectrum.ReadSSP(r)
	if err != nil {
		s.log.Warn("SSP table rejected, keeping previous data", "error", err)
		return err
	}
	s.SetTable(t)

	return nil
}

// SetObserved replaces the observed spectrum with a copy of pts.
func (s *Session) SetObserved(pts []spectrum.SpectralPoint) {
	cp := append([]spectrum.SpectralPoint(nil), pts...)

	s.mu.Lock()
	s.observed = cp
	s.generation++
	s.mu.Unlock()

	s.log.Info("observed spectrum loaded", "points", len(cp))
}

// SetTable replaces the SSP table. The table must not be modified afterwards.
func (s *Session) SetTable(t *spectrum.SSPTable) {
	s.mu.Lock()
	s.table = t
	s.generation++
	s.mu.Unlock()

	s.log.Info("SSP table loaded", "rows", t.Len())
}

// Observed returns a copy of the observed spectrum.
func (s *Session) Observed() []spectrum.SpectralPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]spectrum.SpectralPoint(nil), s.observed...)
}

// Table returns the current SSP table, or nil.
func (s *Session) Table() *spectrum.SSPTable {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.table
}

// Ready reports whether both inputs are loaded.
func (s *Session) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.ready()
}

func (s *Session) ready() bool { return len(s.observed) > 0 && s.table != nil }

// Ranges returns a copy of the slider bounds.
func (s *Session) Ranges() model.Ranges {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.ranges.Clone()
}

// Parameters returns the current parameter vector.
func (s *Session) Parameters() model.ParameterVector {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.params
}

// SetParameter sets one parameter, clamped to its range, and returns the value
// actually stored.
func (s *Session) SetParameter(p model.Param, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s: %w", p, ErrInvalidValue)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.ranges[p]
	if !ok {
		return 0, fmt.Errorf("%s: %w", p, model.ErrUnknownParam)
	}
	v = r.Clamp(v)
	s.params = s.params.With(p, v)

	return v, nil
}

// SetParameters replaces the whole vector, clamped to the ranges.
func (s *Session) SetParameters(v model.ParameterVector) error {
	for _, x := range v.Array() {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return ErrInvalidValue
		}
	}

	s.mu.Lock()
	s.params = s.ranges.Clamp(v)
	s.mu.Unlock()

	return nil
}

type snapshot struct {
	observed   []spectrum.SpectralPoint
	table      *spectrum.SSPTable
	params     model.ParameterVector
	ranges     model.Ranges
	generation uint64
}

func (s *Session) snapshot() (snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.ready() {
		return snapshot{}, ErrNotReady
	}

	return snapshot{
		observed:   s.observed,
		table:      s.table,
		params:     s.params,
		ranges:     s.ranges.Clone(),
		generation: s.generation,
	}, nil
}

// Model evaluates the current parameters against the observed spectrum.
func (s *Session) Model() ([]spectrum.ModelPoint, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	return model.Evaluate(snap.observed, snap.table, snap.params)
}

// Residuals returns observed − model for the current parameters.
func (s *Session) Residuals() ([]model.ResidualPoint, error) {
	pts, err := s.Model()
	if err != nil {
		return nil, err
	}

	return model.Residuals(pts), nil
}

// Summary returns fit statistics for the current parameters.
func (s *Session) Summary() (fit.Summary, error) {
	snap, err := s.snapshot()
	if err != nil {
		return fit.Summary{}, err
	}
	pts, err := model.Evaluate(snap.observed, snap.table, snap.params)
	if err != nil {
		return fit.Summary{}, err
	}

	return fit.Summarize(pts, len(snap.ranges.Free())), nil
}

// Fit runs a grid search over the session ranges. On success the best
// parameters become the current ones and the run is recorded as LastRun.
// A canceled or failed search changes nothing. If new data was loaded while
// the search ran, the run is returned with ErrStaleFit and not applied.
func (s *Session) Fit(opts fit.Options) (Run, error) {
	snap, err := s.snapshot()
	if err != nil {
		return Run{}, err
	}

	run := Run{ID: s.newID(), GridSize: opts.GridSize, Started: s.now()}
	if run.GridSize == 0 {
		run.GridSize = fit.DefaultGridSize
	}
	if opts.Logger == nil {
		opts.Logger = s.log.With("run", run.ID)
	}
	s.log.Info("fit started", "run", run.ID, "grid_size", run.GridSize, "points", len(snap.observed))

	res, err := fit.Optimize(snap.observed, snap.table, snap.ranges, opts)
	run.Result, run.Finished = res, s.now()
	if err != nil {
		s.log.Warn("fit failed", "run", run.ID, "checked", res.Iterations, "error", err)
		return run, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != snap.generation {
		s.log.Warn("fit result discarded, data changed", "run", run.ID)
		return run, ErrStaleFit
	}
	s.params = res.Parameters
	s.last = &run

	s.log.Info("fit finished",
		"run", run.ID,
		"chi_square", res.ChiSquare,
		"iterations", res.Iterations,
		"elapsed", run.Duration())

	return run, nil
}

// LastRun returns the most recent applied fit.
func (s *Session) LastRun() (Run, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last == nil {
		return Run{}, false
	}

	return *s.last, true
}
