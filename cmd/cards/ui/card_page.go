package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/phoenixlwpapix/math-toolkit/internal/config"
	"github.com/phoenixlwpapix/math-toolkit/internal/logging"
	"github.com/phoenixlwpapix/math-toolkit/internal/problem"
)

// BackHomeMsg asks the app to return to the home page.
type BackHomeMsg struct{}

// CardPageModel is one open problem: a text input per field wired to a
// problem.Form, plus the rendered outcome.
type CardPageModel struct {
	form     *problem.Form
	fields   []problem.Field
	inputs   []textinput.Model
	focus    int
	styles   Styles
	sizes    config.UIConfig
	renderer *glamour.TermRenderer
	width    int
}

// NewCardPageModel opens def with empty inputs.
func NewCardPageModel(def problem.Definition, styles Styles, sizes config.UIConfig) CardPageModel {
	m := CardPageModel{
		form:   problem.NewForm(def),
		styles: styles,
		sizes:  sizes,
		width:  80,
	}
	m.renderer = newMarkdownRenderer(styles.Theme, m.width)
	m.syncInputs()
	logging.UI("opened card %s", def.ID)
	return m
}

func newMarkdownRenderer(theme Theme, width int) *glamour.TermRenderer {
	style := "light"
	if theme.IsDark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(max(20, width-4)),
	)
	if err != nil {
		logging.UIWarn("markdown renderer unavailable: %v", err)
		return nil
	}
	return r
}

// Form exposes the underlying form.
func (m CardPageModel) Form() *problem.Form {
	return m.form
}

// Focus is the index of the focused input.
func (m CardPageModel) Focus() int {
	return m.focus
}

// InputValue is the text shown in input i.
func (m CardPageModel) InputValue(i int) string {
	if i < 0 || i >= len(m.inputs) {
		return ""
	}
	return m.inputs[i].Value()
}

// SetSize updates the page width.
func (m *CardPageModel) SetSize(w, h int) {
	if w == m.width {
		return
	}
	m.width = w
	m.renderer = newMarkdownRenderer(m.styles.Theme, w)
	for i := range m.inputs {
		m.inputs[i].Width = max(10, w/2)
	}
}

// SetStyles swaps the palette and UI sizes after a config reload.
func (m *CardPageModel) SetStyles(s Styles, sizes config.UIConfig) {
	themeChanged := s.Theme.IsDark != m.styles.Theme.IsDark
	m.styles = s
	m.sizes = sizes
	if themeChanged {
		m.renderer = newMarkdownRenderer(s.Theme, m.width)
	}
}

// syncInputs rebuilds the inputs from the form's current fields and values.
func (m *CardPageModel) syncInputs() {
	m.fields = m.form.Fields()
	m.inputs = make([]textinput.Model, len(m.fields))
	for i, f := range m.fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = f.PlaceholderText()
		ti.CharLimit = 32
		ti.Width = max(10, m.width/2)
		ti.SetValue(m.form.Value(f.Key))
		m.inputs[i] = ti
	}
	if m.focus >= len(m.inputs) {
		m.focus = len(m.inputs) - 1
	}
	if m.focus < 0 {
		m.focus = 0
	}
	m.focusInput(m.focus)
}

func (m *CardPageModel) focusInput(i int) {
	if len(m.inputs) == 0 {
		return
	}
	m.inputs[m.focus].Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

// isEntry reports whether input i is a list entry rather than a static field.
func (m CardPageModel) isEntry(i int) bool {
	return i >= len(m.form.Definition().Fields)
}

// Update handles messages.
func (m CardPageModel) Update(msg tea.Msg) (CardPageModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(m.inputs) == 0 {
		return m, nil
	}

	switch key.String() {
	case "esc":
		return m, func() tea.Msg { return BackHomeMsg{} }
	case "tab", "down":
		m.focusInput(m.focus + 1)
		return m, nil
	case "shift+tab", "up":
		m.focusInput(m.focus - 1)
		return m, nil
	case "ctrl+s":
		if m.form.CanSubmit() {
			_, _ = m.form.Submit()
		}
		return m, nil
	case "ctrl+r":
		m.form.Reset()
		m.focus = 0
		m.syncInputs()
		return m, nil
	case "ctrl+n":
		if m.form.Definition().List == nil {
			return m, nil
		}
		if _, err := m.form.AddEntry(); err == nil {
			m.syncInputs()
			m.focusInput(len(m.inputs) - 1)
		}
		return m, nil
	case "ctrl+d":
		if m.form.Definition().List == nil {
			return m, nil
		}
		target := len(m.inputs) - 1
		if m.isEntry(m.focus) {
			target = m.focus
		}
		if err := m.form.RemoveEntry(m.fields[target].Key); err == nil {
			m.syncInputs()
		}
		return m, nil
	case "left", "right":
		if f := m.fields[m.focus]; f.Kind == problem.KindChoice {
			m.cycleChoice(f, key.String() == "right")
			return m, nil
		}
	}

	return m.edit(msg)
}

// edit forwards a keystroke to the focused input and pushes the new text
// through the form. A rejected value is reverted so the character never
// appears.
func (m CardPageModel) edit(msg tea.Msg) (CardPageModel, tea.Cmd) {
	in := m.inputs[m.focus]
	before, pos := in.Value(), in.Position()

	var cmd tea.Cmd
	in, cmd = in.Update(msg)
	after := in.Value()
	if after == before {
		m.inputs[m.focus] = in
		return m, cmd
	}

	f := m.fields[m.focus]
	// Deleting from a choice clears it; a partial option name is never valid.
	if f.Kind == problem.KindChoice && len(after) < len(before) {
		after = ""
		in.SetValue("")
	}
	if err := m.form.UpdateField(f.Key, after); err != nil {
		in.SetValue(before)
		in.SetCursor(pos)
	} else if canonical := m.form.Value(f.Key); canonical != after {
		in.SetValue(canonical)
		in.CursorEnd()
	}
	m.inputs[m.focus] = in
	return m, cmd
}

func (m *CardPageModel) cycleChoice(f problem.Field, forward bool) {
	if len(f.Options) == 0 {
		return
	}
	current := -1
	for i, opt := range f.Options {
		if opt == m.form.Value(f.Key) {
			current = i
		}
	}
	next := 0
	switch {
	case current < 0 && !forward:
		next = len(f.Options) - 1
	case current >= 0 && forward:
		next = (current + 1) % len(f.Options)
	case current >= 0:
		next = (current - 1 + len(f.Options)) % len(f.Options)
	}
	if err := m.form.UpdateField(f.Key, f.Options[next]); err == nil {
		m.inputs[m.focus].SetValue(f.Options[next])
		m.inputs[m.focus].CursorEnd()
	}
}

func (m CardPageModel) renderSteps(sol *problem.Solution) string {
	if len(sol.Steps) == 0 {
		return ""
	}
	md := sol.StepsMarkdown()
	key := ComputeKey(md, m.width, m.styles.Theme.IsDark, m.renderer != nil)
	return DefaultRenderCache.GetOrCompute(key, func() string {
		if m.renderer != nil {
			if out, err := m.renderer.Render(md); err == nil {
				return strings.TrimRight(out, "\n")
			}
		}
		return strings.TrimRight(md, "\n")
	})
}

// View renders the page.
func (m CardPageModel) View() string {
	def := m.form.Definition()
	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render(def.Title))
	sb.WriteString(" ")
	sb.WriteString(m.styles.LevelBadge(string(def.Level)))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Subtitle.Render(def.Description))
	sb.WriteString("\n\n")

	labelWidth := 0
	for _, f := range m.fields {
		labelWidth = max(labelWidth, len([]rune(f.Label)))
	}
	for i, f := range m.fields {
		label := m.styles.Label
		if i == m.focus {
			label = m.styles.FocusedLabel
		}
		sb.WriteString(label.Render(fmt.Sprintf("%-*s", labelWidth, f.Label)))
		sb.WriteString("  ")
		sb.WriteString(m.inputs[i].View())
		if f.Kind == problem.KindChoice {
			sb.WriteString(m.styles.Muted.Render("  ←/→ " + strings.Join(f.Options, " ")))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	if m.form.Error() != "" || m.form.Solution() != nil {
		sb.WriteString(m.styles.RenderDivider(min(60, max(10, m.width-4))))
		sb.WriteString("\n\n")
	}

	if msg := m.form.Error(); msg != "" {
		sb.WriteString(m.styles.Error.Render(msg))
		sb.WriteString("\n\n")
	}

	if sol := m.form.Solution(); sol != nil {
		sb.WriteString(m.styles.Answer.Render(sol.Answer))
		sb.WriteString("\n")
		if steps := m.renderSteps(sol); steps != "" {
			sb.WriteString(steps)
			sb.WriteString("\n")
		}
		if sol.Chart != nil {
			sb.WriteString("\n")
			sb.WriteString(RenderChart(sol.Chart, m.sizes.ChartHeight, m.sizes.ChartWidth, m.styles))
			sb.WriteString("\n")
		}
		if sol.Figure != nil {
			sb.WriteString("\n")
			sb.WriteString(RenderFigure(sol.Figure, m.sizes.FigureWidth, m.styles))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	help := []string{"ctrl+s solve", "tab/↑/↓ field", "ctrl+r reset", "esc back"}
	if !m.form.CanSubmit() && m.form.Error() == "" && m.form.Solution() == nil {
		hint := "Fill in every field to solve."
		if def.List != nil {
			hint = "Enter at least one number to solve."
		}
		sb.WriteString(m.styles.Hint.Render(hint))
		sb.WriteString("\n")
	}
	if def.List != nil {
		help = append(help, "ctrl+n add value", "ctrl+d remove value")
	}
	sb.WriteString(m.styles.Footer.Render(strings.Join(help, " • ")))
	return sb.String()
}
