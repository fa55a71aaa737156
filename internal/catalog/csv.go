// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/SamJ33/Research-on-ASD/pkg/types"
)

// readCSV parses a CSV dataset whose header row names the columns. Required
// columns must be present; optional and unknown columns may be missing or
// extra. Rows must have as many fields as the header. A file without a header
// is malformed; a header with no rows is an empty dataset.
func readCSV(r io.Reader) ([]types.Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty file, no header", ErrMalformed)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrMalformed, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	var missing []string
	for _, col := range types.RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing columns %s", ErrMalformed, strings.Join(missing, ", "))
	}

	field := func(row []string, col string) string {
		i, ok := index[col]
		if !ok {
			return ""
		}
		return row[i]
	}

	var records []types.Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		records = append(records, types.Record{
			Title:        field(row, types.ColumnTitle),
			Category:     field(row, types.ColumnCategory),
			Year:         field(row, types.ColumnYear),
			Authors:      field(row, types.ColumnAuthors),
			Keywords:     field(row, types.ColumnKeywords),
			AbstractText: field(row, types.ColumnAbstractText),
			URL:          field(row, types.ColumnURL),
			DOI:          field(row, types.ColumnDOI),
			OpenAlexID:   field(row, types.ColumnOpenAlexID),
		})
	}
	return records, nil
}
