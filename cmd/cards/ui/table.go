package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/phoenixlwpapix/math-toolkit/internal/problem"
)

// Table renders fixed rows in aligned, padded columns.
type Table struct {
	Headers []string
	Rows    [][]string
}

// NewTable creates an empty table.
func NewTable(headers ...string) *Table {
	return &Table{Headers: headers}
}

// CatalogTable lists problems by id, title, category and level.
func CatalogTable(defs []problem.Definition) *Table {
	t := NewTable("ID", "TITLE", "CATEGORY", "LEVEL")
	for _, d := range defs {
		t.AddRow(d.ID, d.Title, string(d.Category), string(d.Level))
	}
	return t
}

// AddRow appends a row. Cells past the last header are dropped.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// View renders the table. An empty table renders nothing.
func (t *Table) View(styles Styles) string {
	if len(t.Rows) == 0 {
		return ""
	}

	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}
	// lipgloss widths include the padding
	for i := range widths {
		widths[i] += 2
	}

	header := styles.Bold.Padding(0, 1)
	cell := styles.Body.Padding(0, 1)
	sep := styles.Muted

	var sb strings.Builder
	writeRow := func(cells []string, style lipgloss.Style) {
		for i, w := range widths {
			text := ""
			if i < len(cells) {
				text = cells[i]
			}
			sb.WriteString(style.Width(w).Render(text))
			if i < len(widths)-1 {
				sb.WriteString(sep.Render("│"))
			}
		}
		sb.WriteString("\n")
	}

	writeRow(t.Headers, header)
	total := len(widths) - 1
	for _, w := range widths {
		total += w
	}
	sb.WriteString(sep.Render(strings.Repeat("─", total)))
	sb.WriteString("\n")
	for _, row := range t.Rows {
		writeRow(row, cell)
	}
	return sb.String()
}
