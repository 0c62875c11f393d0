// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/animerec/internal/history"
	"github.com/tomtom215/animerec/internal/recommend"
)

func (a *app) batchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch",
		Short: "Run queries read from stdin, one per line",
		Long: `Run several queries against one catalog load.

Each line is one of:

  similar <title>[ | <type>]
  genre <label>[ | rating|members]

Blank lines and lines starting with # are skipped. A failing query is
reported on stderr and does not stop the batch. The session's recent
queries are printed at the end.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.setup(cmd.Context()); err != nil {
				return err
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			lineNo := 0
			for scanner.Scan() {
				lineNo++
				line := strings.TrimSpace(scanner.Text())
				if line == "" || strings.HasPrefix(line, "#") {
					continue
				}
				if err := a.runLine(cmd, line); err != nil {
					fmt.Fprintf(a.errOut, "line %d: %v\n", lineNo, err)
				}
				fmt.Fprintln(a.out)
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read queries: %w", err)
			}

			queries, err := a.history.Queries(cmd.Context(), history.DefaultQueries)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Recent queries:")
			for _, q := range queries {
				fmt.Fprintf(a.out, "  %s\n", q)
			}
			return nil
		},
	}
}

func (a *app) runLine(cmd *cobra.Command, line string) error {
	verb, rest, _ := strings.Cut(line, " ")
	arg, opt, _ := strings.Cut(rest, "|")
	arg = strings.TrimSpace(arg)
	opt = strings.TrimSpace(opt)
	if arg == "" {
		return fmt.Errorf("%w: %q needs an argument", recommend.ErrInvalidRequest, verb)
	}

	switch strings.ToLower(verb) {
	case "similar":
		return a.runSimilar(cmd, arg, opt, 0)
	case "genre":
		key, err := recommend.ParseSortKey(strings.ToLower(opt))
		if err != nil {
			return err
		}
		return a.runGenre(cmd, arg, key, 0)
	default:
		return fmt.Errorf("%w: unknown query %q", recommend.ErrInvalidRequest, verb)
	}
}
