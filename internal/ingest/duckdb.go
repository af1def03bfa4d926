// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	// DuckDB driver - in-memory engine for reading CSV and Parquet files
	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/digitaltwin/internal/persona"
)

// fileFormat selects the DuckDB table function used to read a file.
type fileFormat string

const (
	formatCSV     fileFormat = "csv"
	formatParquet fileFormat = "parquet"
)

// FileReader reads interaction events from a CSV or Parquet file through an
// in-memory DuckDB connection. The file must provide the columns user_id,
// category, format and time_spent; extra columns are ignored.
type FileReader struct {
	path   string
	format fileFormat
}

// NewCSV returns a reader for a CSV file with a header row.
func NewCSV(path string) *FileReader {
	return &FileReader{path: path, format: formatCSV}
}

// NewParquet returns a reader for a Parquet file.
func NewParquet(path string) *FileReader {
	return &FileReader{path: path, format: formatParquet}
}

// Name returns "csv" or "parquet".
func (r *FileReader) Name() string {
	return string(r.format)
}

// Load reads all rows in file order.
func (r *FileReader) Load(ctx context.Context) ([]persona.InteractionEvent, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	defer db.Close() //nolint:errcheck // in-memory connection, nothing to flush

	rows, err := db.QueryContext(ctx, r.query())
	if err != nil {
		return nil, fmt.Errorf("read %s %s: %w", r.format, r.path, err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	var events []persona.InteractionEvent
	for row := 1; rows.Next(); row++ {
		var (
			userID, category, format sql.NullString
			timeSpent                sql.NullFloat64
		)
		if err := rows.Scan(&userID, &category, &format, &timeSpent); err != nil {
			return nil, fmt.Errorf("scan row %d: %w", row, err)
		}
		if !userID.Valid || !category.Valid || !format.Valid || !timeSpent.Valid {
			return nil, fmt.Errorf("row %d: null value in required column", row)
		}
		events = append(events, persona.InteractionEvent{
			UserID:    userID.String,
			Category:  category.String,
			Format:    format.String,
			TimeSpent: timeSpent.Float64,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", r.format, err)
	}
	return events, nil
}

func (r *FileReader) query() string {
	fn := "read_csv_auto"
	if r.format == formatParquet {
		fn = "read_parquet"
	}
	return fmt.Sprintf(`
		SELECT
			CAST(user_id AS VARCHAR),
			CAST(category AS VARCHAR),
			CAST(format AS VARCHAR),
			CAST(time_spent AS DOUBLE)
		FROM %s(%s)`, fn, quoteLiteral(r.path))
}

// quoteLiteral renders s as a SQL string literal.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
