package solvers

import (
	"fmt"

	"github.com/phoenixlwpapix/math-toolkit/internal/problem"
)

// Shape measures.
const (
	MeasureArea      = "area"
	MeasurePerimeter = "perimeter"
)

// Measures lists the shape measures in display order.
var Measures = []string{MeasureArea, MeasurePerimeter}

// MeasureAliases maps short spellings onto measures.
var MeasureAliases = map[string]string{
	"a": MeasureArea,
	"p": MeasurePerimeter,
}

func measureOf(v problem.Values) (string, error) {
	if m, ok := v.Choice("measure", Measures, MeasureAliases); ok {
		return m, nil
	}
	return "", problem.Errorf("Please choose area or perimeter.")
}

// Rectangle computes the area or perimeter of a length × width rectangle.
func Rectangle(v problem.Values) (problem.Solution, error) {
	measure, err := measureOf(v)
	if err != nil {
		return problem.Solution{}, err
	}
	nums, err := positiveFloats(v, "Please enter a valid length and width (both greater than 0).", "length", "width")
	if err != nil {
		return problem.Solution{}, err
	}
	l, w := nums[0], nums[1]
	f := func(x float64) string { return FormatNumber(x, PrecisionShort) }

	var answer, formula string
	var result float64
	if measure == MeasureArea {
		result = l * w
		formula = fmt.Sprintf("Area = length × width = %s × %s", f(l), f(w))
		answer = fmt.Sprintf("Area = %s", f(result))
	} else {
		result = 2 * (l + w)
		formula = fmt.Sprintf("Perimeter = 2 × (length + width) = 2 × (%s + %s)", f(l), f(w))
		answer = fmt.Sprintf("Perimeter = %s", f(result))
	}
	if !finite(result) {
		return problem.Solution{}, problem.Errorf(TooLargeMessage)
	}

	fig := &problem.Figure{Width: 1, Height: w / l}
	if l < w {
		fig = &problem.Figure{Width: l / w, Height: 1}
	}
	return problem.Solution{Answer: answer, Steps: []string{formula}, Figure: fig}, nil
}

// Square computes the area or perimeter of a square.
func Square(v problem.Values) (problem.Solution, error) {
	measure, err := measureOf(v)
	if err != nil {
		return problem.Solution{}, err
	}
	nums, err := positiveFloats(v, "Please enter a valid side length (greater than 0).", "side")
	if err != nil {
		return problem.Solution{}, err
	}
	s := nums[0]
	f := func(x float64) string { return FormatNumber(x, PrecisionShort) }

	var answer, formula string
	result := 4 * s
	if measure == MeasureArea {
		result = s * s
		formula = fmt.Sprintf("Area = side × side = %s × %s", f(s), f(s))
		answer = fmt.Sprintf("Area = %s", f(result))
	} else {
		formula = fmt.Sprintf("Perimeter = 4 × side = 4 × %s", f(s))
		answer = fmt.Sprintf("Perimeter = %s", f(result))
	}
	if !finite(result) {
		return problem.Solution{}, problem.Errorf(TooLargeMessage)
	}
	return problem.Solution{
		Answer: answer,
		Steps:  []string{formula},
		Figure: &problem.Figure{Width: 1, Height: 1},
	}, nil
}
