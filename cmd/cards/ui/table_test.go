package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/phoenixlwpapix/math-toolkit/internal/catalog"
)

func TestTable(t *testing.T) {
	table := NewTable("Col1", "Col2")
	table.AddRow("Row1Col1", "Row1Col2")
	table.AddRow("short")

	view := table.View(DefaultStyles())
	t.Logf("View:\n%s", view)

	if !strings.Contains(view, "Row1Col1") {
		t.Error("View missing cell content")
	}
	lines := strings.Split(strings.TrimRight(view, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, divider and 2 rows, got %d lines", len(lines))
	}
	if lipgloss.Width(lines[0]) != lipgloss.Width(lines[3]) {
		t.Error("short rows should be padded to the full width")
	}
}

func TestTable_Empty(t *testing.T) {
	if got := NewTable("A").View(DefaultStyles()); got != "" {
		t.Errorf("expected empty view, got %q", got)
	}
}

func TestCatalogTable(t *testing.T) {
	cat := catalog.Default()
	table := CatalogTable(cat.All())
	if len(table.Rows) != cat.Len() {
		t.Fatalf("expected %d rows, got %d", cat.Len(), len(table.Rows))
	}
	if table.Rows[0][0] != "chicken-rabbit" {
		t.Errorf("expected catalog order, got %q first", table.Rows[0][0])
	}
}
