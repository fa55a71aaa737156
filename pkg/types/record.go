// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the research portal.
// Record is one row of the paper dataset; FilterCriteria narrows the catalog.
package types

// Column names of the tabular dataset, in canonical order.
const (
	ColumnTitle        = "title"
	ColumnCategory     = "category"
	ColumnYear         = "year"
	ColumnAuthors      = "authors"
	ColumnKeywords     = "keywords"
	ColumnAbstractText = "abstract_text"
	ColumnURL          = "url"
	ColumnDOI          = "doi"
	ColumnOpenAlexID   = "openalex_id"
)

// Columns lists every dataset column in canonical order.
var Columns = []string{
	ColumnTitle, ColumnCategory, ColumnYear, ColumnAuthors, ColumnKeywords,
	ColumnAbstractText, ColumnURL, ColumnDOI, ColumnOpenAlexID,
}

// RequiredColumns must be present in a tabular source. The remaining columns
// (url, doi, openalex_id) are optional.
var RequiredColumns = []string{
	ColumnTitle, ColumnCategory, ColumnYear, ColumnAuthors, ColumnKeywords, ColumnAbstractText,
}

// Record holds the metadata of one research paper. Absent values are the
// empty string; the optional link fields are checked with HasURL, HasDOI and
// HasOpenAlexID before rendering.
type Record struct {
	// Title is the paper title and the display key for selection.
	Title string `json:"title" yaml:"title"`

	// Category is the topical category assigned by the dataset.
	Category string `json:"category" yaml:"category"`

	// Year is the publication year as written in the dataset (e.g. "2020").
	Year string `json:"year" yaml:"year"`

	// Authors is the author list as a single display string.
	Authors string `json:"authors" yaml:"authors"`

	// Keywords is a comma-separated keyword list.
	Keywords string `json:"keywords" yaml:"keywords"`

	// AbstractText is the full abstract or content text.
	AbstractText string `json:"abstract_text" yaml:"abstract_text"`

	URL        string `json:"url,omitempty" yaml:"url,omitempty"`
	DOI        string `json:"doi,omitempty" yaml:"doi,omitempty"`
	OpenAlexID string `json:"openalex_id,omitempty" yaml:"openalex_id,omitempty"`
}

// HasURL reports whether the record carries a landing page URL.
func (r Record) HasURL() bool { return r.URL != "" }

// HasDOI reports whether the record carries a DOI.
func (r Record) HasDOI() bool { return r.DOI != "" }

// HasOpenAlexID reports whether the record carries an OpenAlex work ID.
func (r Record) HasOpenAlexID() bool { return r.OpenAlexID != "" }

// Value returns the record's value for a dataset column. The boolean is false
// for an unknown column name.
func (r Record) Value(column string) (string, bool) {
	switch column {
	case ColumnTitle:
		return r.Title, true
	case ColumnCategory:
		return r.Category, true
	case ColumnYear:
		return r.Year, true
	case ColumnAuthors:
		return r.Authors, true
	case ColumnKeywords:
		return r.Keywords, true
	case ColumnAbstractText:
		return r.AbstractText, true
	case ColumnURL:
		return r.URL, true
	case ColumnDOI:
		return r.DOI, true
	case ColumnOpenAlexID:
		return r.OpenAlexID, true
	}
	return "", false
}

// Row returns the record's values in Columns order.
func (r Record) Row() []string {
	return []string{
		r.Title, r.Category, r.Year, r.Authors, r.Keywords,
		r.AbstractText, r.URL, r.DOI, r.OpenAlexID,
	}
}
