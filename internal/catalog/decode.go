// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/SamJ33/Research-on-ASD/pkg/types"
)

// scalar decodes any YAML or JSON scalar (string, number, bool, null) into
// its text form, so a year written as 2020 or "2020" reads the same.
type scalar string

func (s *scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar value", node.Line)
	}
	if node.Tag == "!!null" {
		*s = ""
		return nil
	}
	*s = scalar(node.Value)
	return nil
}

func (s *scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
	case len(data) > 0 && data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = scalar(v)
	case len(data) > 0 && (data[0] == '{' || data[0] == '['):
		return fmt.Errorf("expected a scalar value, got %s", data[:1])
	default:
		*s = scalar(data)
	}
	return nil
}

// document is the on-disk shape of a record in YAML and JSON datasets.
type document struct {
	Title        scalar `json:"title" yaml:"title"`
	Category     scalar `json:"category" yaml:"category"`
	Year         scalar `json:"year" yaml:"year"`
	Authors      scalar `json:"authors" yaml:"authors"`
	Keywords     scalar `json:"keywords" yaml:"keywords"`
	AbstractText scalar `json:"abstract_text" yaml:"abstract_text"`
	URL          scalar `json:"url" yaml:"url"`
	DOI          scalar `json:"doi" yaml:"doi"`
	OpenAlexID   scalar `json:"openalex_id" yaml:"openalex_id"`
}

func (d document) record() types.Record {
	return types.Record{
		Title:        string(d.Title),
		Category:     string(d.Category),
		Year:         string(d.Year),
		Authors:      string(d.Authors),
		Keywords:     string(d.Keywords),
		AbstractText: string(d.AbstractText),
		URL:          string(d.URL),
		DOI:          string(d.DOI),
		OpenAlexID:   string(d.OpenAlexID),
	}
}

func records(docs []document) []types.Record {
	out := make([]types.Record, len(docs))
	for i, d := range docs {
		out[i] = d.record()
	}
	return out
}

// readYAML parses a YAML sequence of records.
func readYAML(r io.Reader) ([]types.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, nil
	}
	var docs []document
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return records(docs), nil
}

// readJSON parses a JSON array of records.
func readJSON(r io.Reader) ([]types.Record, error) {
	dec := json.NewDecoder(r)

	var docs []document
	if err := dec.Decode(&docs); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	// The array must be the only value in the file.
	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after the record array", ErrMalformed)
	}
	return records(docs), nil
}
