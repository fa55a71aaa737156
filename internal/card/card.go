// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package card renders a paper record as a Markdown research card and
// formats it for the terminal with glamour.
package card

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/SamJ33/Research-on-ASD/internal/catalog"
	"github.com/SamJ33/Research-on-ASD/pkg/types"
)

// NoMatches is shown instead of a card when the filters select nothing.
const NoMatches = "No studies match your selected filters."

// Section headings of the card.
const (
	HeadingKeywords = "🔖 Keywords"
	HeadingSummary  = "📝 Summary"
	HeadingAbstract = "📄 Full Abstract / Content"
	HeadingLinks    = "🔗 External Links"
)

// Markdown builds the card for r: title, year and category badges, authors,
// keyword tags, summary, full abstract, and external links. The year badge,
// keyword section, and links section are left out when r has no data for
// them.
func Markdown(r types.Record) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", r.Title)

	var badges []string
	if r.Year != "" {
		badges = append(badges, fmt.Sprintf("`📅 %s`", r.Year))
	}
	if r.Category != "" {
		badges = append(badges, fmt.Sprintf("`🏷️ %s`", r.Category))
	}
	if len(badges) > 0 {
		b.WriteString(strings.Join(badges, "  "))
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "**👥 Authors:** %s\n\n", r.Authors)

	if keywords := catalog.Keywords(r.Keywords); len(keywords) > 0 {
		fmt.Fprintf(&b, "### %s\n\n", HeadingKeywords)
		tags := make([]string, len(keywords))
		for i, kw := range keywords {
			tags[i] = "`" + kw + "`"
		}
		b.WriteString(strings.Join(tags, " "))
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "### %s\n\n%s\n\n", HeadingSummary, catalog.Summary(r.AbstractText))
	fmt.Fprintf(&b, "### %s\n\n%s\n\n", HeadingAbstract, r.AbstractText)

	if links := catalog.Links(r); len(links) > 0 {
		fmt.Fprintf(&b, "---\n\n### %s\n\n", HeadingLinks)
		for _, l := range links {
			if l.Href != "" {
				fmt.Fprintf(&b, "- **[%s](%s)**\n", l.Label, l.Href)
			} else {
				fmt.Fprintf(&b, "- **%s:** `%s`\n", l.Label, l.Text)
			}
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// Renderer formats cards for the terminal.
type Renderer struct {
	term *glamour.TermRenderer
}

// New creates a Renderer using a glamour style name ("auto", "dark",
// "light", "notty", ...) and wrapping at wordWrap columns.
func New(style string, wordWrap int) (*Renderer, error) {
	var styleOpt glamour.TermRendererOption
	if style == "" || style == "auto" {
		styleOpt = glamour.WithAutoStyle()
	} else {
		styleOpt = glamour.WithStandardStyle(style)
	}

	term, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(wordWrap))
	if err != nil {
		return nil, fmt.Errorf("creating card renderer: %w", err)
	}
	return &Renderer{term: term}, nil
}

// Render returns the terminal-formatted card for r.
func (rn *Renderer) Render(r types.Record) (string, error) {
	return rn.RenderMarkdown(Markdown(r))
}

// RenderMarkdown formats arbitrary card Markdown, such as the NoMatches
// notice.
func (rn *Renderer) RenderMarkdown(md string) (string, error) {
	out, err := rn.term.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering card: %w", err)
	}
	return out, nil
}
