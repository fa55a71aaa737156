// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/SamJ33/Research-on-ASD/pkg/types"
)

func TestKeywords(t *testing.T) {
	tests := []struct {
		name  string
		field string
		want  []string
	}{
		{"trims entries", "a, b ,c", []string{"a", "b", "c"}},
		{"empty field", "", []string{}},
		{"blank field", "   ", []string{}},
		{"drops blank entries", "autism,, ,screening,", []string{"autism", "screening"}},
		{"single keyword", "genetics", []string{"genetics"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Keywords(tt.field))
		})
	}
}

func TestSummary(t *testing.T) {
	exact := strings.Repeat("a", SummaryLimit)
	long := strings.Repeat("b", SummaryLimit+1)
	wide := strings.Repeat("é", SummaryLimit+10)

	tests := []struct {
		name     string
		abstract string
		want     string
	}{
		{"empty", "", ""},
		{"short verbatim", "Short abstract.", "Short abstract."},
		{"exactly at limit", exact, exact},
		{"one over limit", long, strings.Repeat("b", SummaryLimit) + Ellipsis},
		{"counts characters not bytes", wide, strings.Repeat("é", SummaryLimit) + Ellipsis},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summary(tt.abstract)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestLinks(t *testing.T) {
	tests := []struct {
		name   string
		record types.Record
		want   []Link
	}{
		{
			name:   "no optional fields",
			record: types.Record{Title: "Bare"},
			want:   nil,
		},
		{
			name: "all optional fields",
			record: types.Record{
				URL:        "https://openalex.org/W1",
				DOI:        "10.1000/xyz",
				OpenAlexID: "W1",
			},
			want: []Link{
				{Label: "OpenAlex Page", Href: "https://openalex.org/W1", Text: "https://openalex.org/W1"},
				{Label: "DOI Link", Href: "https://doi.org/10.1000/xyz", Text: "https://doi.org/10.1000/xyz"},
				{Label: "OpenAlex ID", Text: "W1"},
			},
		},
		{
			name:   "doi only",
			record: types.Record{DOI: "10.1/a"},
			want: []Link{
				{Label: "DOI Link", Href: "https://doi.org/10.1/a", Text: "https://doi.org/10.1/a"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Links(tt.record))
		})
	}
}

func TestDOIURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"10.1000/xyz", "https://doi.org/10.1000/xyz"},
		{"https://doi.org/10.1000/xyz", "https://doi.org/10.1000/xyz"},
		{"HTTPS://DOI.ORG/10.1000/xyz", "https://doi.org/10.1000/xyz"},
		{"doi:10.1000/xyz", "https://doi.org/10.1000/xyz"},
		{"https://dx.doi.org/10.1000/xyz", "https://doi.org/10.1000/xyz"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DOIURL(tt.in), "DOIURL(%q)", tt.in)
	}
}

func TestCount(t *testing.T) {
	assert.Equal(t, "0 studies found", Count(0))
	assert.Equal(t, "12 studies found", Count(12))
}
