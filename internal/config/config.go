// Package config loads sedfit settings from the environment and an optional
// .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/sedfit/fit"
	"github.com/katalvlaran/sedfit/model"
)

// Config holds all settings of the sedfit command.
type Config struct {
	Fit    FitConfig
	Ranges model.Ranges
	Log    LogConfig
}

// FitConfig holds grid-search settings.
type FitConfig struct {
	GridSize        int
	MaxGridSize     int
	MaxCombinations int
	UnitError       float64
	ProgressEvery   int
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string
	Format string // "json" or "text"
}

// rangePrefix + upper-case parameter name, e.g. SEDFIT_RANGE_TAUV="0,3".
const rangePrefix = "SEDFIT_RANGE_"

// Load reads envFilePath (if non-empty and present) into the environment and
// builds a Config. Variables already set in the environment win over the file.
func Load(envFilePath string) (*Config, error) {
	if envFilePath != "" {
		if err := godotenv.Load(envFilePath); err != nil {
			// a missing file is fine; the environment alone is enough
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to load .env file: %w", err)
			}
		}
	}

	cfg := &Config{
		Fit: FitConfig{
			GridSize:        getEnvAsInt("SEDFIT_GRID_SIZE", fit.DefaultGridSize),
			MaxGridSize:     getEnvAsInt("SEDFIT_MAX_GRID_SIZE", fit.DefaultMaxGridSize),
			MaxCombinations: getEnvAsInt("SEDFIT_MAX_COMBINATIONS", fit.DefaultMaxCombinations),
			UnitError:       getEnvAsFloat("SEDFIT_UNIT_ERROR", fit.DefaultUnitError),
			ProgressEvery:   getEnvAsInt("SEDFIT_PROGRESS_EVERY", fit.DefaultProgressEvery),
		},
		Ranges: model.DefaultRanges(),
		Log: LogConfig{
			Level:  getEnv("SEDFIT_LOG_LEVEL", "info"),
			Format: getEnv("SEDFIT_LOG_FORMAT", "text"),
		},
	}

	for _, p := range model.Params() {
		key := rangePrefix + strings.ToUpper(p.String())
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		r, err := parseRange(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		cfg.Ranges[p] = r
	}
	if err := cfg.Ranges.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameter ranges: %w", err)
	}

	return cfg, nil
}

// FitOptions converts the settings into fit.Options.
func (c *Config) FitOptions() fit.Options {
	opts := fit.DefaultOptions()
	opts.GridSize = c.Fit.GridSize
	opts.MaxGridSize = c.Fit.MaxGridSize
	opts.MaxCombinations = c.Fit.MaxCombinations
	opts.UnitError = c.Fit.UnitError
	opts.ProgressEvery = c.Fit.ProgressEvery

	return opts
}

// parseRange parses "min,max".
func parseRange(s string) (model.Range, error) {
	lo, hi, ok := strings.Cut(s, ",")
	if !ok {
		return model.Range{}, fmt.Errorf("want \"min,max\", got %q", s)
	}
	minV, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return model.Range{}, err
	}
	maxV, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err != nil {
		return model.Range{}, err
	}
	r := model.Range{Min: minV, Max: maxV}

	return r, r.Validate()
}

// getEnv returns the variable or defaultValue when unset.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the variable as an int, or defaultValue when unset or malformed.
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsFloat returns the variable as a float64, or defaultValue when unset or malformed.
func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}
