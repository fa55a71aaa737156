// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package browse

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamJ33/Research-on-ASD/internal/card"
	"github.com/SamJ33/Research-on-ASD/internal/catalog"
	"github.com/SamJ33/Research-on-ASD/pkg/types"
)

// markdownRenderer returns card Markdown without terminal formatting.
type markdownRenderer struct{}

func (markdownRenderer) Render(r types.Record) (string, error) { return card.Markdown(r), nil }
func (markdownRenderer) RenderMarkdown(md string) (string, error) {
	return md, nil
}

func testModel(t *testing.T, criteria types.FilterCriteria) Model {
	t.Helper()
	c := catalog.New([]types.Record{
		{Title: "Early Screening", Category: "Diagnosis", Year: "2019"},
		{Title: "Gut Microbiome", Category: "Biology", Year: "2020"},
		{Title: "Parent Intervention", Category: "Intervention", Year: "2020"},
		{Title: "Genetic Architecture", Category: "Biology", Year: "2021"},
	})
	m, err := New(c, markdownRenderer{}, criteria)
	require.NoError(t, err)
	return send(m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func resultTitles(m Model) []string {
	return catalog.Titles(m.Results())
}

func selectedTitle(m Model) string {
	if m.selected < 0 {
		return ""
	}
	return m.Results()[m.selected].Title
}

func TestNewShowsFirstStudy(t *testing.T) {
	m := testModel(t, types.AllCriteria())

	assert.Len(t, m.Results(), 4)
	assert.Equal(t, "4 studies found", m.list.Title)
	assert.Equal(t, "Early Screening", selectedTitle(m))
	assert.Contains(t, m.card, "# Early Screening")
}

func TestCycleCategory(t *testing.T) {
	m := testModel(t, types.AllCriteria())

	// Options are All, Biology, Diagnosis, Intervention.
	m = send(m, key("c"))
	assert.Equal(t, "Biology", m.Criteria().Category)
	assert.Equal(t, []string{"Gut Microbiome", "Genetic Architecture"}, resultTitles(m))
	assert.Equal(t, "2 studies found · category=Biology", m.list.Title)
	assert.Contains(t, m.card, "# Gut Microbiome")

	m = send(m, key("C"))
	assert.Equal(t, types.All, m.Criteria().Category)

	m = send(m, key("C"))
	assert.Equal(t, "Intervention", m.Criteria().Category, "cycling back wraps to the last option")
}

func TestCycleYearAndReset(t *testing.T) {
	m := testModel(t, types.AllCriteria())

	m = send(m, key("y"))
	m = send(m, key("y"))
	assert.Equal(t, "2020", m.Criteria().Year)
	assert.Equal(t, []string{"Gut Microbiome", "Parent Intervention"}, resultTitles(m))

	m = send(m, key("r"))
	assert.True(t, m.Criteria().IsAll())
	assert.Len(t, m.Results(), 4)
}

func TestNoMatchesNotice(t *testing.T) {
	m := testModel(t, types.FilterCriteria{Category: "Diagnosis", Title: types.All, Year: "2021"})

	assert.Empty(t, m.Results())
	assert.Equal(t, card.NoMatches, m.card)
	assert.Contains(t, m.list.Title, "0 studies found")

	// Leaving the empty state renders a card again.
	m = send(m, key("r"))
	assert.Contains(t, m.card, "# Early Screening")
}

func TestSelectionFollowsList(t *testing.T) {
	m := testModel(t, types.AllCriteria())

	m = send(m, key("j"))
	assert.Equal(t, "Gut Microbiome", selectedTitle(m))
	assert.Contains(t, m.card, "# Gut Microbiome")
}

func TestDuplicateTitlesRenderEachCard(t *testing.T) {
	c := catalog.New([]types.Record{
		{Title: "Autism Review", Category: "Diagnosis", Year: "2019"},
		{Title: "Autism Review", Category: "Genetics", Year: "2022"},
	})
	m, err := New(c, markdownRenderer{}, types.AllCriteria())
	require.NoError(t, err)
	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Contains(t, m.card, "Diagnosis")

	m = send(m, key("j"))
	assert.Equal(t, 1, m.selected)
	assert.Contains(t, m.card, "Genetics")
	assert.NotContains(t, m.card, "Diagnosis")
}

func TestTabMovesKeysToCard(t *testing.T) {
	m := testModel(t, types.AllCriteria())

	m = send(m, key("tab"))
	assert.True(t, m.focusCard)

	m = send(m, key("j"))
	assert.Equal(t, "Early Screening", selectedTitle(m), "list selection unchanged while card has focus")
}

func TestQuitKeys(t *testing.T) {
	m := testModel(t, types.AllCriteria())

	for _, k := range []string{"q", "ctrl+c"} {
		_, cmd := m.Update(key(k))
		require.NotNil(t, cmd, k)
		assert.IsType(t, tea.QuitMsg{}, cmd(), k)
	}
}

func TestViewIncludesHelp(t *testing.T) {
	m := testModel(t, types.AllCriteria())
	assert.Contains(t, m.View(), "c/C: category")
}

func TestCycle(t *testing.T) {
	opts := []string{types.All, "a", "b"}

	assert.Equal(t, "a", cycle(opts, types.All, 1))
	assert.Equal(t, types.All, cycle(opts, "b", 1))
	assert.Equal(t, "b", cycle(opts, types.All, -1))
	assert.Equal(t, "a", cycle(opts, "unknown", 1))
	assert.Equal(t, types.All, cycle(nil, "a", 1))
}
