// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/recommend"
)

// cleanQuery applies the catalog cleaning rules to raw_catalog. rowid follows
// insertion order, which is file order. Deduplication runs after the rating
// filter and keeps the lowest rowid.
const cleanQuery = `
SELECT name, genre, "type", rating, members
FROM (
	SELECT
		rowid AS rn,
		trim(name) AS name,
		genre,
		COALESCE("type", '') AS "type",
		TRY_CAST(rating AS DOUBLE) AS rating,
		TRY_CAST(members AS BIGINT) AS members
	FROM raw_catalog
) typed
WHERE name IS NOT NULL
	AND name <> ''
	AND genre IS NOT NULL
	AND rating IS NOT NULL
	AND members IS NOT NULL
	AND rating >= ?
QUALIFY row_number() OVER (PARTITION BY name, genre ORDER BY rn) = 1
ORDER BY rn`

// DuckDBLoader reads the catalog CSV through an in-memory DuckDB.
type DuckDBLoader struct {
	cfg Config
}

// NewDuckDBLoader creates a loader for cfg.
func NewDuckDBLoader(cfg Config) *DuckDBLoader {
	return &DuckDBLoader{cfg: cfg}
}

// Path returns the configured catalog file.
func (l *DuckDBLoader) Path() string {
	return l.cfg.Path
}

func (l *DuckDBLoader) connString() string {
	threads := l.cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	maxMemory := l.cfg.MaxMemory
	if maxMemory == "" {
		maxMemory = DefaultConfig().MaxMemory
	}
	// Auto-install stays off so loads never block on the network.
	return fmt.Sprintf(":memory:?threads=%d&max_memory=%s&preserve_insertion_order=true&autoinstall_known_extensions=false&autoload_known_extensions=false",
		threads, maxMemory)
}

// quoteLiteral returns s as a single-quoted SQL string literal.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// Load reads and cleans the catalog file.
func (l *DuckDBLoader) Load(ctx context.Context) (*LoadResult, error) {
	start := time.Now()

	if l.cfg.Path == "" {
		return nil, &StageError{Stage: StageOpen, Err: ErrMissingPath}
	}
	if _, err := os.Stat(l.cfg.Path); err != nil {
		return nil, &StageError{Stage: StageOpen, Err: err}
	}

	db, err := sql.Open("duckdb", l.connString())
	if err != nil {
		return nil, &StageError{Stage: StageOpen, Err: fmt.Errorf("open duckdb: %w", err)}
	}
	defer closeQuietly(db)

	// raw_catalog is a temp table, so every statement must share one connection.
	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, &StageError{Stage: StageOpen, Err: fmt.Errorf("acquire connection: %w", err)}
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			logging.Debug().Err(cerr).Msg("Failed to close catalog connection")
		}
	}()

	createRaw := fmt.Sprintf(`CREATE TEMP TABLE raw_catalog AS
SELECT name, genre, "type", rating, members
FROM read_csv_auto(%s, header = true, all_varchar = true)`, quoteLiteral(l.cfg.Path))
	if _, err := conn.ExecContext(ctx, createRaw); err != nil {
		return nil, &StageError{Stage: StageRead, Err: fmt.Errorf("read %s: %w", l.cfg.Path, err)}
	}

	var rows int
	if err := conn.QueryRowContext(ctx, "SELECT count(*) FROM raw_catalog").Scan(&rows); err != nil {
		return nil, &StageError{Stage: StageRead, Err: fmt.Errorf("count rows: %w", err)}
	}

	items, err := l.clean(ctx, conn)
	if err != nil {
		return nil, &StageError{Stage: StageClean, Err: err}
	}

	res := &LoadResult{
		Items:    items,
		Rows:     rows,
		Dropped:  rows - len(items),
		Duration: time.Since(start),
	}

	logging.Info().
		Str("path", l.cfg.Path).
		Int("rows", res.Rows).
		Int("items", len(res.Items)).
		Int("dropped", res.Dropped).
		Dur("duration", res.Duration).
		Msg("Catalog loaded")

	return res, nil
}

func (l *DuckDBLoader) clean(ctx context.Context, conn *sql.Conn) ([]recommend.Item, error) {
	rows, err := conn.QueryContext(ctx, cleanQuery, l.cfg.MinRating)
	if err != nil {
		return nil, fmt.Errorf("clean catalog: %w", err)
	}
	defer rows.Close()

	var items []recommend.Item
	for rows.Next() {
		var (
			name, genre, typ string
			rating           float64
			members          int64
		)
		if err := rows.Scan(&name, &genre, &typ, &rating, &members); err != nil {
			return nil, fmt.Errorf("scan catalog row: %w", err)
		}

		item := recommend.NewItem(name, genre, rating, members, typ)
		if !item.Valid() {
			continue
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog rows: %w", err)
	}
	return items, nil
}

func closeQuietly(db *sql.DB) {
	if err := db.Close(); err != nil {
		logging.Debug().Err(err).Msg("Failed to close duckdb")
	}
}
