package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/phoenixlwpapix/math-toolkit/internal/problem"
	"github.com/phoenixlwpapix/math-toolkit/internal/solvers"
)

// RenderChart draws the average card's bars as columns of height rows. The
// dotted row marks the average.
func RenderChart(c *problem.Chart, height, width int, s Styles) string {
	if c == nil || len(c.Bars) == 0 {
		return ""
	}
	if height < 2 {
		height = 2
	}

	axisLabels := make(map[int]string, len(c.Ticks))
	labelWidth := 1
	for _, tick := range c.Ticks {
		row := rowFor(tick/c.Max, height)
		label := solvers.FormatNumber(tick, solvers.PrecisionShort)
		if _, taken := axisLabels[row]; !taken {
			axisLabels[row] = label
		}
		labelWidth = max(labelWidth, lipgloss.Width(label))
	}

	col := 3
	if n := len(c.Bars); n > 0 && width > 0 {
		col = (width - labelWidth - 2) / n
		col = max(3, min(7, col-1))
	}
	avgRow := rowFor(c.Average/c.Max, height)

	var sb strings.Builder
	for row := height; row >= 1; row-- {
		sb.WriteString(fmt.Sprintf("%*s │", labelWidth, axisLabels[row]))
		for _, b := range c.Bars {
			sb.WriteString(" ")
			switch {
			case rowFor(b.Ratio, height) >= row:
				sb.WriteString(s.Bar.Render(strings.Repeat("█", col)))
			case row == avgRow:
				sb.WriteString(s.Average.Render(strings.Repeat("┄", col)))
			default:
				sb.WriteString(strings.Repeat(" ", col))
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("%*s └", labelWidth, axisLabels[0]))
	sb.WriteString(strings.Repeat("─", len(c.Bars)*(col+1)))
	sb.WriteString("\n")

	sb.WriteString(strings.Repeat(" ", labelWidth+2))
	for _, b := range c.Bars {
		sb.WriteString(" ")
		sb.WriteString(center(b.Label, col))
	}
	sb.WriteString("\n")
	sb.WriteString(s.Average.Render(fmt.Sprintf("┄ average %s", solvers.FormatNumber(c.Average, solvers.PrecisionShort))))
	return sb.String()
}

// rowFor maps a ratio in [0,1] onto a row in 0..height.
func rowFor(ratio float64, height int) int {
	if math.IsNaN(ratio) || ratio <= 0 {
		return 0
	}
	return int(math.Round(math.Min(ratio, 1) * float64(height)))
}

func center(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}
