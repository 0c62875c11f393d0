// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/animerec/internal/recommend"
)

// Load stages reported in catalog_load_errors_total.
const (
	StageOpen  = "open"
	StageRead  = "read"
	StageClean = "clean"
	StageBuild = "build"
)

// ErrMissingPath is returned when no catalog file is configured.
var ErrMissingPath = errors.New("catalog path is required")

// Config configures catalog loading.
type Config struct {
	// Path is the CSV file with name, genre, type, rating and members columns.
	Path string

	// MinRating drops rows rated below this value.
	MinRating float64

	// Threads limits DuckDB worker threads. Zero uses all CPUs.
	Threads int

	// MaxMemory caps DuckDB memory, e.g. "512MB".
	MaxMemory string
}

// DefaultConfig returns the loader defaults.
func DefaultConfig() Config {
	return Config{
		Path:      "data/anime.csv",
		MinRating: 1,
		MaxMemory: "512MB",
	}
}

// LoadResult is the output of one catalog load.
type LoadResult struct {
	// Items are the cleaned rows in file order.
	Items []recommend.Item

	// Rows is the number of rows read from the file.
	Rows int

	// Dropped counts rows removed by cleaning.
	Dropped int

	// Duration is the wall time of the load.
	Duration time.Duration
}

// Loader produces a cleaned catalog.
type Loader interface {
	Load(ctx context.Context) (*LoadResult, error)
}

// StageError tags a load failure with the stage that produced it.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return "catalog " + e.Stage + ": " + e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// stageOf extracts the failing stage from err, or "" when untagged.
func stageOf(err error) string {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage
	}
	return ""
}
