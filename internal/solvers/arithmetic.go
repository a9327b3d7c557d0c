package solvers

import (
	"fmt"

	"github.com/phoenixlwpapix/math-toolkit/internal/problem"
)

// ChickenRabbit solves the classic cage puzzle: heads and legs are counted,
// chickens have two legs and rabbits four.
func ChickenRabbit(v problem.Values) (problem.Solution, error) {
	heads, err := v.Int("heads")
	if err != nil {
		return problem.Solution{}, problem.Errorf("Please enter whole numbers for heads and legs.")
	}
	legs, err := v.Int("legs")
	if err != nil {
		return problem.Solution{}, problem.Errorf("Please enter whole numbers for heads and legs.")
	}

	extra := legs - 2*heads
	if extra < 0 || extra%2 != 0 {
		return problem.Solution{}, problem.Errorf("No solution. Please check that the inputs are reasonable.")
	}
	rabbits := extra / 2
	chickens := heads - rabbits
	if chickens < 0 {
		return problem.Solution{}, problem.Errorf("No solution. Please check that the inputs are reasonable.")
	}

	return problem.Solution{
		Answer: fmt.Sprintf("%d chickens and %d rabbits.", chickens, rabbits),
		Steps: []string{
			fmt.Sprintf("If all %d animals were chickens there would be %d × 2 = %d legs.", heads, heads, 2*heads),
			fmt.Sprintf("There are %d − %d = %d extra legs.", legs, 2*heads, extra),
			fmt.Sprintf("Each rabbit adds 2 legs, so rabbits = %d ÷ 2 = %d.", extra, rabbits),
			fmt.Sprintf("Chickens = %d − %d = %d.", heads, rabbits, chickens),
		},
	}, nil
}

// DecimalMultiply returns a × b.
func DecimalMultiply(v problem.Values) (problem.Solution, error) {
	nums, err := floats(v, "Please enter two valid decimals.", "a", "b")
	if err != nil {
		return problem.Solution{}, err
	}
	a, b := nums[0], nums[1]
	product := a * b
	if !finite(product) {
		return problem.Solution{}, problem.Errorf(TooLargeMessage)
	}
	return problem.Solution{
		Answer: fmt.Sprintf("%s × %s = %s", operand(a), operand(b), FormatNumber(product, PrecisionLong)),
	}, nil
}

// DecimalDivide returns a ÷ b.
func DecimalDivide(v problem.Values) (problem.Solution, error) {
	nums, err := floats(v, "Please enter two valid decimals.", "a", "b")
	if err != nil {
		return problem.Solution{}, err
	}
	a, b := nums[0], nums[1]
	if b == 0 {
		return problem.Solution{}, problem.Errorf("The divisor cannot be 0.")
	}
	quotient := a / b
	if !finite(quotient) {
		return problem.Solution{}, problem.Errorf(TooLargeMessage)
	}
	return problem.Solution{
		Answer: fmt.Sprintf("%s ÷ %s = %s", operand(a), operand(b), FormatNumber(quotient, PrecisionLong)),
	}, nil
}
