// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog loads the paper dataset and answers filter and selection
// queries over it. A Catalog is loaded once and never modified; every query
// returns a fresh slice so callers cannot alter the loaded records.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/SamJ33/Research-on-ASD/pkg/types"
)

// ErrMalformed is wrapped by load errors caused by content rather than I/O.
var ErrMalformed = errors.New("malformed dataset")

// LoadError reports a dataset that could not be read or parsed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading catalog %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Catalog is the ordered, immutable set of records loaded from a dataset.
type Catalog struct {
	records []types.Record
}

// New builds a Catalog from records, normalizing each one. The slice is
// copied.
func New(records []types.Record) *Catalog {
	c := &Catalog{records: make([]types.Record, len(records))}
	for i, r := range records {
		c.records[i] = normalize(r)
	}
	return c
}

// Load reads every record from the dataset at path. The format follows the
// file extension: .yaml/.yml, .json, .db/.sqlite, and CSV for anything else.
// Any failure is returned as a *LoadError.
func Load(path string) (*Catalog, error) {
	var (
		records []types.Record
		err     error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		records, err = readSQLite(path)
	default:
		records, err = readFile(path)
	}
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return New(records), nil
}

func readFile(path string) ([]types.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return readYAML(f)
	case ".json":
		return readJSON(f)
	default:
		return readCSV(f)
	}
}

// Len returns the number of records.
func (c *Catalog) Len() int { return len(c.records) }

// Records returns a copy of every record in dataset order.
func (c *Catalog) Records() []types.Record {
	return slices.Clone(c.records)
}

// normalize trims whitespace from every field and rewrites float-formatted
// years ("2019.0") in integer form.
func normalize(r types.Record) types.Record {
	r.Title = strings.TrimSpace(r.Title)
	r.Category = strings.TrimSpace(r.Category)
	r.Year = normalizeYear(r.Year)
	r.Authors = strings.TrimSpace(r.Authors)
	r.Keywords = strings.TrimSpace(r.Keywords)
	r.AbstractText = strings.TrimSpace(r.AbstractText)
	r.URL = strings.TrimSpace(r.URL)
	r.DOI = strings.TrimSpace(r.DOI)
	r.OpenAlexID = strings.TrimSpace(r.OpenAlexID)
	return r
}

func normalizeYear(y string) string {
	y = strings.TrimSpace(y)
	if strings.EqualFold(y, "nan") {
		return ""
	}
	whole, frac, ok := strings.Cut(y, ".")
	if !ok || whole == "" || strings.Trim(frac, "0") != "" {
		return y
	}
	for _, r := range whole {
		if r < '0' || r > '9' {
			return y
		}
	}
	return whole
}
