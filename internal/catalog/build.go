// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package catalog

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/animerec/internal/metrics"
	"github.com/tomtom215/animerec/internal/recommend"
)

// Build loads the catalog and fits a new Engine on it. Duration, item counts
// and failures are recorded in the catalog metrics.
func Build(ctx context.Context, loader Loader, cfg *recommend.Config, logger zerolog.Logger) (*recommend.Engine, *LoadResult, error) {
	start := time.Now()

	res, err := loader.Load(ctx)
	if err != nil {
		stage := stageOf(err)
		if stage == "" {
			stage = StageRead
		}
		metrics.RecordCatalogLoad(time.Since(start), 0, 0, 0, stage, err)
		return nil, nil, err
	}

	engine, err := recommend.NewEngine(res.Items, cfg, logger)
	if err != nil {
		metrics.RecordCatalogLoad(time.Since(start), 0, 0, 0, StageBuild, err)
		return nil, res, &StageError{Stage: StageBuild, Err: err}
	}

	stats := engine.Stats()
	metrics.RecordCatalogLoad(time.Since(start), stats.Items, res.Dropped+stats.Dropped, stats.Vocabulary, "", nil)
	return engine, res, nil
}
