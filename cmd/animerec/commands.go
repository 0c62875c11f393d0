// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/animerec/internal/recommend"
	"github.com/tomtom215/animerec/internal/render"
)

// errAmbiguous is returned when a partial title matches several titles.
var errAmbiguous = errors.New("title is ambiguous")

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	switch {
	case errors.Is(err, recommend.ErrNotFound), errors.Is(err, errAmbiguous):
		return 3
	case errors.Is(err, recommend.ErrInvalidRequest), errors.Is(err, render.ErrUnknownFormat):
		return 2
	default:
		return 1
	}
}

func (a *app) resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <partial title>",
		Short: "List catalog titles containing the given text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd.Context()); err != nil {
				return err
			}
			query := strings.Join(args, " ")
			matches := a.engine.ResolveTitle(query)
			if len(matches) == 0 {
				return fmt.Errorf("%w: no title contains %q", recommend.ErrNotFound, query)
			}
			for _, m := range matches {
				fmt.Fprintln(a.out, m)
			}
			return nil
		},
	}
}

func (a *app) similarCmd() *cobra.Command {
	var (
		typ   string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "similar <title>",
		Short: "Titles with the most similar genre composition",
		Long: `Recommend titles whose genres are closest to the seed title.

The title may be partial when it identifies exactly one catalog entry.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd.Context()); err != nil {
				return err
			}
			return a.runSimilar(cmd, strings.Join(args, " "), typ, limit)
		},
	}
	cmd.Flags().StringVarP(&typ, "type", "t", "", "only recommend this media type (All disables the filter)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "number of results (default from configuration)")
	return cmd
}

func (a *app) runSimilar(cmd *cobra.Command, query, typ string, limit int) error {
	start := time.Now()
	title, err := a.pickTitle(query)
	if err != nil {
		return err
	}

	res, err := a.engine.RecommendSimilar(cmd.Context(), recommend.SimilarRequest{
		Title: title,
		Type:  typ,
		Limit: limit,
	}, a.history)
	if err != nil {
		return err
	}

	v := render.SimilarView(res)
	v.QueryTime = time.Since(start)
	return a.renderer.RenderList(a.out, v)
}

// pickTitle returns the exact title for query. A query that is not an exact
// title must resolve to a single match.
func (a *app) pickTitle(query string) (string, error) {
	if it, err := a.engine.Lookup(query); err == nil {
		return it.Name, nil
	}
	matches := a.engine.ResolveTitle(query)
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: no title contains %q", recommend.ErrNotFound, query)
	case 1:
		return matches[0], nil
	default:
		fmt.Fprintf(a.errOut, "%q matches %d titles:\n", query, len(matches))
		for _, m := range matches {
			fmt.Fprintf(a.errOut, "  %s\n", m)
		}
		return "", fmt.Errorf("%w: %q", errAmbiguous, query)
	}
}

func (a *app) genreCmd() *cobra.Command {
	var (
		sortBy string
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "genre <label>",
		Short: "Titles tagged with a genre, ranked by rating or members",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := recommend.ParseSortKey(strings.ToLower(sortBy))
			if err != nil {
				return err
			}
			if err := a.setup(cmd.Context()); err != nil {
				return err
			}
			return a.runGenre(cmd, strings.Join(args, " "), key, limit)
		},
	}
	cmd.Flags().StringVarP(&sortBy, "sort", "s", string(recommend.SortByRating), "rank by rating or members")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "number of results (default from configuration)")
	return cmd
}

func (a *app) runGenre(cmd *cobra.Command, genre string, key recommend.SortKey, limit int) error {
	start := time.Now()
	res, err := a.engine.RecommendByGenre(cmd.Context(), recommend.GenreRequest{
		Genre:  genre,
		SortBy: key,
		Limit:  limit,
	}, a.history)
	if err != nil {
		return err
	}

	v := render.GenreView(res)
	v.QueryTime = time.Since(start)
	return a.renderer.RenderList(a.out, v)
}

func (a *app) topCmd() *cobra.Command {
	var (
		by    string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "top",
		Short: "Most popular or highest rated titles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := recommend.ParseSortKey(strings.ToLower(by))
			if err != nil {
				return err
			}
			if err := a.setup(cmd.Context()); err != nil {
				return err
			}
			title := "Most popular titles"
			if key == recommend.SortByRating {
				title = "Highest rated titles"
			}
			return a.renderer.RenderList(a.out, render.TopView(title, a.engine.Top(key, limit)))
		},
	}
	cmd.Flags().StringVar(&by, "by", string(recommend.SortByMembers), "rank by members or rating")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "number of results (default from configuration)")
	return cmd
}

func (a *app) listCmd(use, short string, list func(*recommend.Engine) []string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.setup(cmd.Context()); err != nil {
				return err
			}
			for _, s := range list(a.engine) {
				fmt.Fprintln(a.out, s)
			}
			return nil
		},
	}
}
