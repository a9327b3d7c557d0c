package solvers

import (
	"fmt"
	"math"

	"github.com/phoenixlwpapix/math-toolkit/internal/problem"
)

// Lever compares the moments on both arms of a lever.
func Lever(v problem.Values) (problem.Solution, error) {
	nums, err := positiveFloats(v, "Please enter positive forces and distances.", "f1", "d1", "f2", "d2")
	if err != nil {
		return problem.Solution{}, err
	}
	f1, d1, f2, d2 := nums[0], nums[1], nums[2], nums[3]
	f := func(x float64) string { return FormatNumber(x, PrecisionShort) }

	left, right := f1*d1, f2*d2
	if !finite(left, right, left/d2) {
		return problem.Solution{}, problem.Errorf(TooLargeMessage)
	}
	steps := []string{
		fmt.Sprintf("Left moment = F₁ × d₁ = %s × %s = %s", f(f1), f(d1), f(left)),
		fmt.Sprintf("Right moment = F₂ × d₂ = %s × %s = %s", f(f2), f(d2), f(right)),
	}

	tolerance := 1e-9 * math.Max(1, math.Max(left, right))
	if math.Abs(left-right) <= tolerance {
		return problem.Solution{Answer: "The lever is balanced.", Steps: steps}, nil
	}

	answer := "The lever is not balanced: the right side goes down."
	if left > right {
		answer = "The lever is not balanced: the left side goes down."
	}
	steps = append(steps, fmt.Sprintf("To balance it, the right force should be %s ÷ %s = %s.", f(left), f(d2), f(left/d2)))
	return problem.Solution{Answer: answer, Steps: steps}, nil
}
