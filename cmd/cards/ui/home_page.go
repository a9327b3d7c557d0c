package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/phoenixlwpapix/math-toolkit/internal/catalog"
	"github.com/phoenixlwpapix/math-toolkit/internal/logging"
	"github.com/phoenixlwpapix/math-toolkit/internal/problem"
)

// OpenCardMsg asks the app to show the card page for a problem.
type OpenCardMsg struct {
	ID string
}

// HomePageModel is the searchable, filterable list of problem cards.
type HomePageModel struct {
	catalog *catalog.Catalog
	search  textinput.Model
	query   catalog.Query
	results []problem.Definition
	cursor  int
	styles  Styles
	width   int
	height  int
}

// NewHomePageModel creates the home page showing every problem.
func NewHomePageModel(cat *catalog.Catalog, styles Styles) HomePageModel {
	ti := textinput.New()
	ti.Placeholder = "Search problems"
	ti.Prompt = "/ "
	ti.CharLimit = 64

	m := HomePageModel{
		catalog: cat,
		search:  ti,
		styles:  styles,
	}
	m.refresh()
	return m
}

// SetSize updates the page size.
func (m *HomePageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.search.Width = max(10, w-8)
}

// SetStyles swaps the palette.
func (m *HomePageModel) SetStyles(s Styles) {
	m.styles = s
}

// Searching reports whether keystrokes go to the search box.
func (m HomePageModel) Searching() bool {
	return m.search.Focused()
}

// Results returns the problems currently listed.
func (m HomePageModel) Results() []problem.Definition {
	return m.results
}

// Selected returns the highlighted problem, if any.
func (m HomePageModel) Selected() (problem.Definition, bool) {
	if m.cursor < 0 || m.cursor >= len(m.results) {
		return problem.Definition{}, false
	}
	return m.results[m.cursor], true
}

// Query returns the active filters.
func (m HomePageModel) Query() catalog.Query {
	return m.query
}

func (m *HomePageModel) refresh() {
	m.query.Text = m.search.Value()
	m.results = m.catalog.Filter(m.query)
	if m.cursor >= len(m.results) {
		m.cursor = max(0, len(m.results)-1)
	}
}

// Update handles messages.
func (m HomePageModel) Update(msg tea.Msg) (HomePageModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.search.Focused() {
		switch key.Type {
		case tea.KeyEsc, tea.KeyEnter:
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.refresh()
		return m, cmd
	}

	switch key.String() {
	case "/":
		return m, m.search.Focus()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.results)-1 {
			m.cursor++
		}
	case "1", "2", "3":
		c := catalog.Categories[int(key.Runes[0]-'1')]
		m.query.Categories = catalog.Toggle(m.query.Categories, c)
		logging.UIDebug("category filter: %v", m.query.Categories)
		m.refresh()
	case "4", "5", "6":
		l := catalog.Levels[int(key.Runes[0]-'4')]
		m.query.Levels = catalog.Toggle(m.query.Levels, l)
		logging.UIDebug("level filter: %v", m.query.Levels)
		m.refresh()
	case "enter":
		if d, ok := m.Selected(); ok {
			id := d.ID
			return m, func() tea.Msg { return OpenCardMsg{ID: id} }
		}
	}
	return m, nil
}

func (m HomePageModel) toggles() string {
	var parts []string
	for i, c := range catalog.Categories {
		parts = append(parts, m.toggle(fmt.Sprintf("%d %s", i+1, c), containsCategory(m.query.Categories, c)))
	}
	parts = append(parts, m.styles.Muted.Render("│"))
	for i, l := range catalog.Levels {
		parts = append(parts, m.toggle(fmt.Sprintf("%d %s", i+4, l), containsLevel(m.query.Levels, l)))
	}
	return strings.Join(parts, " ")
}

func (m HomePageModel) toggle(label string, on bool) string {
	if on {
		return m.styles.ToggleOn.Render(label)
	}
	return m.styles.Toggle.Render(label)
}

func containsCategory(set []problem.Category, c problem.Category) bool {
	for _, s := range set {
		if s == c {
			return true
		}
	}
	return false
}

func containsLevel(set []problem.Level, l problem.Level) bool {
	for _, s := range set {
		if s == l {
			return true
		}
	}
	return false
}

// View renders the page.
func (m HomePageModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render("Math Toolkit"))
	sb.WriteString("\n\n")
	sb.WriteString(m.search.View())
	sb.WriteString("\n")
	sb.WriteString(m.toggles())
	sb.WriteString("\n\n")

	if len(m.results) == 0 {
		sb.WriteString(m.styles.Muted.Render("No matching problems."))
		sb.WriteString("\n")
	}

	cardWidth := max(30, m.width-6)
	for i, d := range m.results {
		style := m.styles.Card
		if i == m.cursor {
			style = m.styles.SelectedCard
		}
		body := fmt.Sprintf("%s %s\n%s",
			m.styles.Title.Render(d.Title),
			m.styles.LevelBadge(string(d.Level)),
			m.styles.Muted.Render(d.Description))
		sb.WriteString(style.Width(cardWidth).Render(body))
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.Footer.Render("/ search • 1-3 category • 4-6 level • ↑/↓ move • enter open • q quit"))
	return sb.String()
}
