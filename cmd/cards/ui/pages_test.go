package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phoenixlwpapix/math-toolkit/internal/catalog"
	"github.com/phoenixlwpapix/math-toolkit/internal/config"
	"github.com/phoenixlwpapix/math-toolkit/internal/problem"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeCard(m CardPageModel, s string) CardPageModel {
	for _, r := range s {
		m, _ = m.Update(runes(string(r)))
	}
	return m
}

func typeHome(m HomePageModel, s string) HomePageModel {
	for _, r := range s {
		m, _ = m.Update(runes(string(r)))
	}
	return m
}

func openCard(t *testing.T, id string) CardPageModel {
	t.Helper()
	def, ok := catalog.Default().Lookup(id)
	require.True(t, ok, "missing problem %s", id)
	return NewCardPageModel(def, NewStyles(LightTheme()), config.DefaultConfig().UI)
}

func TestHomePage_ShowsEveryProblem(t *testing.T) {
	cat := catalog.Default()
	m := NewHomePageModel(cat, DefaultStyles())
	m.SetSize(160, 50)

	assert.Len(t, m.Results(), cat.Len())
	assert.False(t, m.Searching())
	view := m.View()
	for _, d := range cat.All() {
		assert.Contains(t, view, d.Title)
	}
}

func TestHomePage_Search(t *testing.T) {
	m := NewHomePageModel(catalog.Default(), DefaultStyles())

	m, _ = m.Update(runes("/"))
	require.True(t, m.Searching())

	m = typeHome(m, "prime")
	assert.Equal(t, "prime", m.Query().Text)
	require.NotEmpty(t, m.Results())
	for _, d := range m.Results() {
		text := strings.ToLower(d.Title + d.ID + d.Description)
		assert.Contains(t, text, "prime")
	}

	// Letters typed while searching never toggle filters or quit.
	m = typeHome(m, "zzzz")
	assert.Empty(t, m.Results())
	assert.Contains(t, m.View(), "No matching problems.")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.Searching())
}

func TestHomePage_FilterToggles(t *testing.T) {
	m := NewHomePageModel(catalog.Default(), DefaultStyles())
	all := len(m.Results())

	// 2 toggles physics
	m, _ = m.Update(runes("2"))
	require.Len(t, m.Results(), 1)
	assert.Equal(t, "lever-balance", m.Results()[0].ID)

	m, _ = m.Update(runes("2"))
	assert.Len(t, m.Results(), all)

	// 6 toggles hard
	m, _ = m.Update(runes("6"))
	var ids []string
	for _, d := range m.Results() {
		ids = append(ids, d.ID)
	}
	assert.ElementsMatch(t, []string{"greatest-common-divisor", "least-common-multiple"}, ids)

	// hard physics has nothing
	m, _ = m.Update(runes("2"))
	assert.Empty(t, m.Results())
	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestHomePage_NavigateAndOpen(t *testing.T) {
	m := NewHomePageModel(catalog.Default(), DefaultStyles())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(runes("j"))
	m, _ = m.Update(runes("k"))
	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, m.Results()[1].ID, sel.ID)

	// Cursor stops at the top.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	sel, _ = m.Selected()
	assert.Equal(t, m.Results()[0].ID, sel.ID)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, OpenCardMsg{ID: sel.ID}, cmd())
}

func TestCardPage_SubmitDecimalMultiplication(t *testing.T) {
	m := openCard(t, "decimal-mul")
	assert.False(t, m.Form().CanSubmit())

	m = typeCard(m, "2.5")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.Focus())
	m = typeCard(m, "0.4")

	assert.Equal(t, "2.5", m.InputValue(0))
	assert.Equal(t, "0.4", m.InputValue(1))
	require.True(t, m.Form().CanSubmit())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotEmpty(t, m.Form().Result())
	assert.Empty(t, m.Form().Error())
	assert.Contains(t, m.View(), m.Form().Result())
}

func TestCardPage_RejectedKeystrokeNeverAppears(t *testing.T) {
	m := openCard(t, "chicken-rabbit")

	m = typeCard(m, "1")
	m = typeCard(m, "x")
	assert.Equal(t, "1", m.InputValue(0))
	assert.Equal(t, "1", m.Form().Value("heads"))
	assert.Contains(t, m.Form().Error(), "must be a valid number.")
	assert.Contains(t, m.View(), "must be a valid number.")
	assert.False(t, m.Form().CanSubmit())

	// A minus sign in the middle of a number is rejected too.
	m = typeCard(m, "-")
	assert.Equal(t, "1", m.InputValue(0))

	// The next accepted keystroke clears the error.
	m = typeCard(m, "0")
	assert.Equal(t, "10", m.InputValue(0))
	assert.Empty(t, m.Form().Error())
}

func TestCardPage_SubmitDisabledUntilComplete(t *testing.T) {
	m := openCard(t, "chicken-rabbit")
	m = typeCard(m, "10")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Empty(t, m.Form().Result())
	assert.Empty(t, m.Form().Error())
	assert.Contains(t, m.View(), "Fill in every field to solve.")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = typeCard(m, "28")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.NotEmpty(t, m.Form().Result())
	view := m.View()
	assert.NotContains(t, view, "Fill in every field to solve.")
	assert.Contains(t, view, strings.Repeat("─", 10))
}

func TestCardPage_SolveErrorShown(t *testing.T) {
	m := openCard(t, "decimal-div")
	m = typeCard(m, "1")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeCard(m, "0")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Empty(t, m.Form().Result())
	assert.Equal(t, "The divisor cannot be 0.", m.Form().Error())
	assert.Contains(t, m.View(), "The divisor cannot be 0.")
}

func TestCardPage_FocusWraps(t *testing.T) {
	m := openCard(t, "decimal-mul")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 1, m.Focus())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.Focus())
}

func TestCardPage_Reset(t *testing.T) {
	m := openCard(t, "decimal-mul")
	m = typeCard(m, "3")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeCard(m, "4")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotEmpty(t, m.Form().Result())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Equal(t, 0, m.Focus())
	assert.Empty(t, m.InputValue(0))
	assert.Empty(t, m.InputValue(1))
	assert.Empty(t, m.Form().Result())
}

func TestCardPage_ChoiceCycling(t *testing.T) {
	m := openCard(t, "rectangle-cal")
	require.Equal(t, problem.KindChoice, m.fields[0].Kind)
	options := m.fields[0].Options

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, options[0], m.InputValue(0))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, options[1], m.InputValue(0))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, options[0], m.InputValue(0))

	// Typed aliases resolve to the canonical option.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m = typeCard(m, "p")
	assert.Equal(t, "perimeter", m.InputValue(0))
}

func TestCardPage_BackspaceClearsChoice(t *testing.T) {
	m := openCard(t, "rectangle-cal")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, "area", m.InputValue(0))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Empty(t, m.InputValue(0))
	assert.Empty(t, m.Form().Value(m.fields[0].Key))
	assert.Empty(t, m.Form().Error())

	m = typeCard(m, "p")
	assert.Equal(t, "perimeter", m.InputValue(0))
}

func TestCardPage_FigureShown(t *testing.T) {
	m := openCard(t, "square-cal")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeCard(m, "3")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	require.NotNil(t, m.Form().Solution())
	require.NotNil(t, m.Form().Solution().Figure)
	assert.Contains(t, m.View(), "Area = 9")
	assert.Contains(t, m.View(), "┌")
}

func TestCardPage_ListEntries(t *testing.T) {
	m := openCard(t, "average-cal")
	require.Len(t, m.inputs, 2)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	require.Len(t, m.inputs, 3)
	assert.Equal(t, 2, m.Focus())

	// Removes the focused entry.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	require.Len(t, m.inputs, 2)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	require.Len(t, m.inputs, 1)

	// The last entry cannot be removed.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	require.Len(t, m.inputs, 1)
	assert.Equal(t, "At least one data point is required.", m.Form().Error())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	m.focusInput(0)
	m = typeCard(m, "2")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeCard(m, "4")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Equal(t, "Average = 3", m.Form().Result())
	require.NotNil(t, m.Form().Solution().Chart)
	assert.Contains(t, m.View(), "┄ average 3")
}

func TestCardPage_ListLimit(t *testing.T) {
	m := openCard(t, "average-cal")
	for i := 0; i < 20; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	}
	assert.Len(t, m.inputs, 10)
	assert.Equal(t, "At most 10 data points.", m.Form().Error())
}

func TestCardPage_ListKeysIgnoredWithoutList(t *testing.T) {
	m := openCard(t, "decimal-mul")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	assert.Len(t, m.inputs, 2)
	assert.Empty(t, m.Form().Error())
}

func TestCardPage_EscGoesHome(t *testing.T) {
	m := openCard(t, "decimal-mul")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, BackHomeMsg{}, cmd())
}

func TestApp_OpenAndClose(t *testing.T) {
	app := NewApp(catalog.Default(), config.DefaultConfig())
	assert.Equal(t, PageHome, app.Page())

	model, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	model, _ = model.Update(OpenCardMsg{ID: "prime-check"})
	app = model.(AppModel)
	require.Equal(t, PageCard, app.Page())
	assert.Equal(t, "prime-check", app.Card().Form().Definition().ID)

	// q goes to the card instead of quitting.
	model, _ = app.Update(runes("q"))
	app = model.(AppModel)
	assert.Equal(t, PageCard, app.Page())

	model, _ = app.Update(BackHomeMsg{})
	app = model.(AppModel)
	assert.Equal(t, PageHome, app.Page())
	assert.Nil(t, app.Card())
}

func TestApp_UnknownCardStaysHome(t *testing.T) {
	app := NewApp(catalog.Default(), nil)
	model, _ := app.Update(OpenCardMsg{ID: "nope"})
	assert.Equal(t, PageHome, model.(AppModel).Page())
}

func TestApp_Quit(t *testing.T) {
	app := NewApp(catalog.Default(), config.DefaultConfig())

	_, cmd := app.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	// While searching, q is text.
	model, _ := app.Update(runes("/"))
	model, _ = model.Update(runes("q"))
	assert.True(t, model.(AppModel).Home().Searching())
	assert.Equal(t, "q", model.(AppModel).Home().Query().Text)
}

func TestApp_ConfigReload(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Display.Theme = config.ThemeLight
	app := NewApp(catalog.Default(), cfg)
	require.False(t, app.Styles().Theme.IsDark)

	model, _ := app.Update(OpenCardMsg{ID: "average-cal"})
	reloaded := config.DefaultConfig()
	reloaded.Display.Theme = config.ThemeDark
	reloaded.UI.ChartHeight = 4
	model, _ = model.Update(ConfigReloadedMsg{Config: reloaded})

	app = model.(AppModel)
	assert.True(t, app.Styles().Theme.IsDark)
	assert.Equal(t, 4, app.Card().sizes.ChartHeight)

	model, _ = model.Update(ConfigReloadedMsg{})
	assert.True(t, model.(AppModel).Styles().Theme.IsDark)
}
