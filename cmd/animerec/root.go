// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tomtom215/animerec/internal/catalog"
	"github.com/tomtom215/animerec/internal/config"
	"github.com/tomtom215/animerec/internal/history"
	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/recommend"
	"github.com/tomtom215/animerec/internal/render"
)

// cliSession is the history session used for every CLI query.
const cliSession = "cli"

// app carries state shared by all subcommands of one invocation.
type app struct {
	out    io.Writer
	errOut io.Writer

	catalogPath string
	format      string
	verbose     bool

	// newLoader builds the catalog loader. Tests replace it.
	newLoader func(cfg catalog.Config) catalog.Loader

	logger   zerolog.Logger
	engine   *recommend.Engine
	renderer render.Renderer
	history  *history.SessionLog
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	return newApp(out, errOut).rootCmd()
}

func newApp(out, errOut io.Writer) *app {
	return &app{
		out:    out,
		errOut: errOut,
		newLoader: func(cfg catalog.Config) catalog.Loader {
			return catalog.NewDuckDBLoader(cfg)
		},
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "animerec",
		Short:         "Content-based anime recommendations from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.catalogPath, "catalog", "", "catalog CSV file (overrides CATALOG_PATH)")
	flags.StringVarP(&a.format, "format", "f", "text", "output format: text, json or html")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log catalog loading to stderr")

	root.AddCommand(
		a.resolveCmd(),
		a.similarCmd(),
		a.genreCmd(),
		a.topCmd(),
		a.listCmd("genres", "List the genre vocabulary", func(e *recommend.Engine) []string { return e.Genres() }),
		a.listCmd("types", "List the media types in the catalog", func(e *recommend.Engine) []string { return e.Types() }),
		a.batchCmd(),
	)

	return root
}

// setup loads configuration and the catalog. Subcommands call it from RunE
// so that --help never touches the catalog.
func (a *app) setup(ctx context.Context) error {
	renderer, err := render.ForFormat(a.format)
	if err != nil {
		return err
	}
	a.renderer = renderer

	cfg, err := config.LoadWithKoanf()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if a.catalogPath != "" {
		cfg.Catalog.Path = a.catalogPath
	}

	logCfg := cfg.LoggerConfig()
	logCfg.Output = a.errOut
	logCfg.Format = "console"
	logCfg.Service = "animerec-cli"
	if !a.verbose {
		logCfg.Level = "warn"
	}
	logging.Init(logCfg)
	a.logger = logging.Logger()

	engine, res, err := catalog.Build(ctx, a.newLoader(cfg.CatalogLoaderConfig()), cfg.EngineConfig(), a.logger)
	if err != nil {
		return fmt.Errorf("load catalog %s: %w", cfg.Catalog.Path, err)
	}
	a.logger.Info().
		Int("items", engine.Len()).
		Int("dropped", res.Dropped).
		Dur("duration", res.Duration).
		Msg("Catalog loaded")
	a.engine = engine

	a.history = history.ForSession(history.NewMemoryStore(cfg.History.MaxEntries), cliSession)
	return nil
}
