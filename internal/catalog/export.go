// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/SamJ33/Research-on-ASD/pkg/types"
)

// Format selects the encoding of an export.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat converts a format name into a Format. The empty name is YAML.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatYAML, "":
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	}
	return "", fmt.Errorf("unsupported format %q: use yaml, json, or csv", name)
}

// Export writes records to w in the given format. Every format reads back
// through Load with the matching file extension.
func Export(w io.Writer, format Format, records []types.Record) error {
	switch format {
	case FormatYAML, "":
		return ExportYAML(w, records)
	case FormatJSON:
		return ExportJSON(w, records)
	case FormatCSV:
		return ExportCSV(w, records)
	}
	return fmt.Errorf("unsupported format %q", format)
}

// ExportYAML writes records as a YAML sequence.
func ExportYAML(w io.Writer, records []types.Record) error {
	if records == nil {
		records = []types.Record{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}

// ExportJSON writes records as an indented JSON array.
func ExportJSON(w io.Writer, records []types.Record) error {
	if records == nil {
		records = []types.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return nil
}

// ExportCSV writes records as CSV with a header row of every column.
func ExportCSV(w io.Writer, records []types.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(types.Columns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(r.Row()); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
