// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"fmt"
	"strings"

	"github.com/SamJ33/Research-on-ASD/pkg/types"
)

// SummaryLimit is the number of characters of an abstract shown as its
// summary.
const SummaryLimit = 500

// Ellipsis marks a truncated summary.
const Ellipsis = "..."

const doiResolver = "https://doi.org/"

// Keywords splits a comma-separated keyword field into trimmed keywords.
// Blank entries are dropped, so an empty field yields an empty list.
func Keywords(field string) []string {
	keywords := []string{}
	for _, kw := range strings.Split(field, ",") {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

// Summary returns the first SummaryLimit characters of abstract followed by
// Ellipsis, or abstract unchanged when it is not longer than the limit.
// Characters are Unicode code points.
func Summary(abstract string) string {
	runes := []rune(abstract)
	if len(runes) <= SummaryLimit {
		return abstract
	}
	return string(runes[:SummaryLimit]) + Ellipsis
}

// Link is an external reference derived from a record's optional fields.
// Href is empty for identifiers that are shown literally.
type Link struct {
	Label string `json:"label" yaml:"label"`
	Href  string `json:"href,omitempty" yaml:"href,omitempty"`
	Text  string `json:"text" yaml:"text"`
}

// Links returns the external links for r in display order: landing page,
// DOI, then the OpenAlex identifier. Absent fields contribute nothing.
func Links(r types.Record) []Link {
	var links []Link
	if r.HasURL() {
		links = append(links, Link{Label: "OpenAlex Page", Href: r.URL, Text: r.URL})
	}
	if r.HasDOI() {
		href := DOIURL(r.DOI)
		links = append(links, Link{Label: "DOI Link", Href: href, Text: href})
	}
	if r.HasOpenAlexID() {
		links = append(links, Link{Label: "OpenAlex ID", Text: r.OpenAlexID})
	}
	return links
}

// DOIURL returns the resolver URL for doi. A DOI that already carries the
// resolver or a "doi:" prefix is not prefixed twice.
func DOIURL(doi string) string {
	bare := strings.TrimSpace(doi)
	for _, prefix := range []string{doiResolver, "http://doi.org/", "https://dx.doi.org/", "doi:"} {
		if len(bare) >= len(prefix) && strings.EqualFold(bare[:len(prefix)], prefix) {
			bare = bare[len(prefix):]
			break
		}
	}
	return doiResolver + bare
}

// Count returns the result headline for n matching records.
func Count(n int) string {
	return fmt.Sprintf("%d studies found", n)
}
