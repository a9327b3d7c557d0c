package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/phoenixlwpapix/math-toolkit/internal/catalog"
	"github.com/phoenixlwpapix/math-toolkit/internal/config"
	"github.com/phoenixlwpapix/math-toolkit/internal/logging"
)

// ConfigReloadedMsg carries a configuration picked up by the file watcher.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// Page identifies which screen is showing.
type Page int

const (
	PageHome Page = iota
	PageCard
)

// AppModel is the root model. It owns the home page and at most one open
// card; closing a card discards its form.
type AppModel struct {
	catalog *catalog.Catalog
	cfg     *config.Config
	styles  Styles
	home    HomePageModel
	card    *CardPageModel
	width   int
	height  int
}

// NewApp builds the root model for cat using cfg's display settings.
func NewApp(cat *catalog.Catalog, cfg *config.Config) AppModel {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	styles := NewStyles(ThemeFor(cfg.Display.Theme))
	return AppModel{
		catalog: cat,
		cfg:     cfg,
		styles:  styles,
		home:    NewHomePageModel(cat, styles),
	}
}

// Page reports the visible screen.
func (m AppModel) Page() Page {
	if m.card != nil {
		return PageCard
	}
	return PageHome
}

// Home returns the home page state.
func (m AppModel) Home() HomePageModel {
	return m.home
}

// Card returns the open card, or nil on the home page.
func (m AppModel) Card() *CardPageModel {
	return m.card
}

// Styles returns the active styles.
func (m AppModel) Styles() Styles {
	return m.styles
}

// Init implements tea.Model.
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.home.SetSize(msg.Width, msg.Height)
		if m.card != nil {
			m.card.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case ConfigReloadedMsg:
		if msg.Config == nil {
			return m, nil
		}
		m.cfg = msg.Config
		m.styles = NewStyles(ThemeFor(m.cfg.Display.Theme))
		m.home.SetStyles(m.styles)
		if m.card != nil {
			m.card.SetStyles(m.styles, m.cfg.UI)
		}
		logging.UI("applied reloaded config (theme=%s)", m.cfg.Display.Theme)
		return m, nil

	case OpenCardMsg:
		def, ok := m.catalog.Lookup(msg.ID)
		if !ok {
			logging.UIWarn("open card: unknown problem %q", msg.ID)
			return m, nil
		}
		card := NewCardPageModel(def, m.styles, m.cfg.UI)
		if m.width > 0 {
			card.SetSize(m.width, m.height)
		}
		m.card = &card
		return m, nil

	case BackHomeMsg:
		m.card = nil
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.card == nil && msg.String() == "q" && !m.home.Searching() {
			return m, tea.Quit
		}
	}

	if m.card != nil {
		card, cmd := m.card.Update(msg)
		m.card = &card
		return m, cmd
	}
	var cmd tea.Cmd
	m.home, cmd = m.home.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m AppModel) View() string {
	if m.card != nil {
		return m.styles.Content.Render(m.card.View())
	}
	return m.styles.Content.Render(m.home.View())
}
