package ui

import (
	"math"

	"github.com/phoenixlwpapix/math-toolkit/internal/problem"
)

// RenderFigure draws a shape's outline with its longer side width cells
// across. Terminal cells are about twice as tall as wide, so rows are halved.
func RenderFigure(f *problem.Figure, width int, s Styles) string {
	if f == nil || width <= 0 {
		return ""
	}
	cols := max(1, int(math.Round(f.Width*float64(width))))
	rows := max(1, int(math.Round(f.Height*float64(width)/2)))
	return s.Figure.Width(cols).Height(rows).Render("")
}
