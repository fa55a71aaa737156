// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/SamJ33/Research-on-ASD/pkg/types"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS papers (
		position INTEGER PRIMARY KEY,
		title TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		year TEXT NOT NULL DEFAULT '',
		authors TEXT NOT NULL DEFAULT '',
		keywords TEXT NOT NULL DEFAULT '',
		abstract_text TEXT NOT NULL DEFAULT '',
		url TEXT NOT NULL DEFAULT '',
		doi TEXT NOT NULL DEFAULT '',
		openalex_id TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_papers_category ON papers(category)`,
	`CREATE INDEX IF NOT EXISTS idx_papers_year ON papers(year)`,
}

func openIndex(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

// WriteIndex stores records in the SQLite database at path, replacing any
// records already there. Dataset order is kept in the position column so
// Load returns the records in the same order.
func WriteIndex(ctx context.Context, path string, records []types.Record) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating index directory: %w", err)
		}
	}

	db, err := openIndex(path)
	if err != nil {
		return err
	}
	defer db.Close()

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM papers`); err != nil {
		return fmt.Errorf("clearing papers: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO papers (position, title, category, year, authors, keywords, abstract_text, url, doi, openalex_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		_, err := stmt.ExecContext(ctx,
			i, r.Title, r.Category, r.Year, r.Authors, r.Keywords,
			r.AbstractText, r.URL, r.DOI, r.OpenAlexID,
		)
		if err != nil {
			return fmt.Errorf("inserting %q: %w", r.Title, err)
		}
	}

	return tx.Commit()
}

// readSQLite reads the papers table written by WriteIndex.
func readSQLite(path string) ([]types.Record, error) {
	// sql.Open would create an empty database for a missing file.
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	db, err := openIndex(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(
		`SELECT title, category, year, authors, keywords, abstract_text, url, doi, openalex_id
		 FROM papers ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying papers: %v", ErrMalformed, err)
	}
	defer rows.Close()

	var records []types.Record
	for rows.Next() {
		var (
			r                    types.Record
			url, doi, openalexID sql.NullString
		)
		if err := rows.Scan(
			&r.Title, &r.Category, &r.Year, &r.Authors, &r.Keywords,
			&r.AbstractText, &url, &doi, &openalexID,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning row: %v", ErrMalformed, err)
		}
		r.URL = url.String
		r.DOI = doi.String
		r.OpenAlexID = openalexID.String
		records = append(records, r)
	}

	return records, rows.Err()
}
