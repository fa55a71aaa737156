// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package browse is the interactive terminal explorer: a filtered list of
// studies beside the card of the selected one.
package browse

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SamJ33/Research-on-ASD/internal/card"
	"github.com/SamJ33/Research-on-ASD/internal/catalog"
	"github.com/SamJ33/Research-on-ASD/pkg/types"
)

// CardRenderer formats records and notices for the card pane.
type CardRenderer interface {
	Render(r types.Record) (string, error)
	RenderMarkdown(md string) (string, error)
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	paneStyle    = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())
	focusedColor = lipgloss.Color("63")
	blurredColor = lipgloss.Color("240")
)

const helpLine = " c/C: category • y/Y: year • r: reset • tab: focus card • /: search titles • q: quit"

// studyItem adapts a record to list.Item.
type studyItem struct {
	record types.Record
}

func (i studyItem) Title() string { return i.record.Title }
func (i studyItem) Description() string {
	year := i.record.Year
	if year == "" {
		year = "n.d."
	}
	return fmt.Sprintf("%s · %s", year, i.record.Category)
}
func (i studyItem) FilterValue() string { return i.record.Title + " " + i.record.Keywords }

// Model is the bubbletea model of the explorer.
type Model struct {
	catalog  *catalog.Catalog
	renderer CardRenderer

	criteria   types.FilterCriteria
	categories []string
	years      []string
	results    []types.Record

	list      list.Model
	viewport  viewport.Model
	focusCard bool
	width     int
	height    int

	// selected is the index in results of the study whose card is in the
	// viewport, or -1; card is that card's rendered text.
	selected int
	card     string
}

// New creates an explorer over c starting from criteria.
func New(c *catalog.Catalog, renderer CardRenderer, criteria types.FilterCriteria) (Model, error) {
	categories, err := c.Options(types.FieldCategory)
	if err != nil {
		return Model{}, err
	}
	years, err := c.Options(types.FieldYear)
	if err != nil {
		return Model{}, err
	}

	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	m := Model{
		catalog:    c,
		renderer:   renderer,
		criteria:   criteria,
		categories: categories,
		years:      years,
		list:       l,
		viewport:   viewport.New(0, 0),
	}
	m.applyFilters()
	return m, nil
}

// Run starts the explorer in the alternate screen and blocks until it quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// Criteria returns the active filter criteria.
func (m Model) Criteria() types.FilterCriteria { return m.criteria }

// Results returns the records matching the active criteria.
func (m Model) Results() []types.Record { return m.results }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "tab":
				m.focusCard = !m.focusCard
				return m, nil
			case "c":
				m.criteria.Category = cycle(m.categories, m.criteria.Category, 1)
				m.applyFilters()
				return m, nil
			case "C":
				m.criteria.Category = cycle(m.categories, m.criteria.Category, -1)
				m.applyFilters()
				return m, nil
			case "y":
				m.criteria.Year = cycle(m.years, m.criteria.Year, 1)
				m.applyFilters()
				return m, nil
			case "Y":
				m.criteria.Year = cycle(m.years, m.criteria.Year, -1)
				m.applyFilters()
				return m, nil
			case "r":
				m.criteria = types.AllCriteria()
				m.applyFilters()
				return m, nil
			}
		}
	}

	_, isKey := msg.(tea.KeyMsg)
	filtering := m.list.FilterState() == list.Filtering

	if !isKey || !m.focusCard || filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
	}
	if !isKey || (m.focusCard && !filtering) {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.refreshCard()
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	listWidth := int(float64(m.width) * 0.4)
	cardWidth := m.width - listWidth

	listBorder, cardBorder := focusedColor, blurredColor
	if m.focusCard {
		listBorder, cardBorder = blurredColor, focusedColor
	}

	listView := paneStyle.BorderForeground(listBorder).Width(max(listWidth-4, 0)).Render(m.list.View())
	cardView := paneStyle.BorderForeground(cardBorder).Width(max(cardWidth-4, 0)).Render(m.viewport.View())

	main := lipgloss.JoinHorizontal(lipgloss.Top, listView, cardView)
	return lipgloss.JoinVertical(lipgloss.Left, main, mutedStyle.Render(helpLine))
}

func (m *Model) setSize(w, h int) {
	m.width = w
	m.height = h

	// Border(2) + Padding(2) per pane, border top/bottom, help line.
	const chromeW, chromeH = 4, 2
	paneH := max(h-chromeH-2, 1)
	listWidth := int(float64(w) * 0.4)

	m.list.SetSize(max(listWidth-chromeW, 1), paneH)
	m.viewport.Width = max(w-listWidth-chromeW, 1)
	m.viewport.Height = paneH
}

// applyFilters recomputes the results for the active criteria and resets
// the list to the first study.
func (m *Model) applyFilters() {
	m.results = m.catalog.ApplyFilters(m.criteria)

	items := make([]list.Item, len(m.results))
	for i, r := range m.results {
		items[i] = studyItem{record: r}
	}
	m.list.ResetFilter()
	m.list.SetItems(items)
	m.list.ResetSelected()

	m.list.Title = catalog.Count(len(m.results))
	if !m.criteria.IsAll() {
		m.list.Title += " · " + m.criteria.String()
	}

	m.selected, m.card = -1, ""
	m.refreshCard()
}

// refreshCard renders the selected study into the viewport when the
// selection moved to another position. An empty card forces a render.
func (m *Model) refreshCard() {
	if len(m.results) == 0 {
		if m.card == "" {
			m.setCard(m.renderer.RenderMarkdown(card.NoMatches))
		}
		return
	}

	if _, ok := m.list.SelectedItem().(studyItem); !ok {
		return
	}
	idx := m.list.GlobalIndex()
	if idx < 0 || idx >= len(m.results) {
		return
	}
	if idx == m.selected && m.card != "" {
		return
	}
	m.selected = idx
	m.setCard(m.renderer.Render(m.results[idx]))
}

func (m *Model) setCard(content string, err error) {
	if err != nil {
		content = fmt.Sprintf("error: %v", err)
	}
	m.card = content
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
}

// cycle returns the option delta steps from current, wrapping around. A
// current value not among options starts from the first option.
func cycle(options []string, current string, delta int) string {
	if len(options) == 0 {
		return types.All
	}
	idx := 0
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	idx = ((idx+delta)%len(options) + len(options)) % len(options)
	return options[idx]
}
