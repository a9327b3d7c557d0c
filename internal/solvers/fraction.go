package solvers

import (
	"fmt"
	"math/big"

	"github.com/phoenixlwpapix/math-toolkit/internal/problem"
)

// Fraction operators, as shown on the card.
const (
	OpAdd = "+"
	OpSub = "-"
	OpMul = "×"
	OpDiv = "÷"
)

// FractionOperators lists the operators in display order.
var FractionOperators = []string{OpAdd, OpSub, OpMul, OpDiv}

// FractionAliases maps keyboard spellings onto the display operators.
var FractionAliases = map[string]string{
	"−": OpSub,
	"*": OpMul,
	"x": OpMul,
	"/": OpDiv,
	":": OpDiv,
}

// Fraction applies op to n1/d1 and n2/d2 and reduces the result to lowest
// terms with the sign carried by the numerator.
func Fraction(v problem.Values) (problem.Solution, error) {
	op, ok := v.Choice("op", FractionOperators, FractionAliases)
	if !ok {
		return problem.Solution{}, problem.Errorf("Please choose an operator: + - × ÷")
	}

	var raw [4]int64
	for i, key := range []string{"n1", "d1", "n2", "d2"} {
		n, err := v.Int(key)
		if err != nil || n < 0 {
			return problem.Solution{}, problem.Errorf("Please enter non-negative whole numbers.")
		}
		raw[i] = n
	}
	n1, d1, n2, d2 := raw[0], raw[1], raw[2], raw[3]

	if (d1 == 0 || d2 == 0) && op == OpDiv && n2 == 0 {
		return problem.Solution{}, problem.Errorf("The divisor's numerator and denominator cannot both be 0.")
	}
	if d1 == 0 || d2 == 0 {
		return problem.Solution{}, problem.Errorf("Denominators cannot be 0.")
	}
	if op == OpDiv && n2 == 0 {
		return problem.Solution{}, problem.Errorf("Cannot divide by zero (%d/%d is 0).", n2, d2)
	}

	steps := []string{fmt.Sprintf("Expression: (%d/%d) %s (%d/%d)", n1, d1, op, n2, d2)}
	num, den := new(big.Int), new(big.Int)
	bn1, bd1, bn2, bd2 := big.NewInt(n1), big.NewInt(d1), big.NewInt(n2), big.NewInt(d2)

	switch op {
	case OpAdd, OpSub:
		common := LCMOf(d1, d2)
		m1 := new(big.Int).Mul(bn1, new(big.Int).Quo(common, bd1))
		m2 := new(big.Int).Mul(bn2, new(big.Int).Quo(common, bd2))
		steps = append(steps, fmt.Sprintf("Common denominator: %d/%d → %s/%s, %d/%d → %s/%s", n1, d1, m1, common, n2, d2, m2, common))
		if op == OpAdd {
			num.Add(m1, m2)
		} else {
			num.Sub(m1, m2)
		}
		den.Set(common)
		steps = append(steps, fmt.Sprintf("Combine numerators: %s %s %s = %s", m1, op, m2, num))
	case OpMul:
		num.Mul(bn1, bn2)
		den.Mul(bd1, bd2)
		steps = append(steps,
			fmt.Sprintf("Multiply numerators: %d × %d = %s", n1, n2, num),
			fmt.Sprintf("Multiply denominators: %d × %d = %s", d1, d2, den),
		)
	case OpDiv:
		num.Mul(bn1, bd2)
		den.Mul(bd1, bn2)
		steps = append(steps,
			fmt.Sprintf("Division becomes multiplication by the reciprocal: (%d/%d) × (%d/%d)", n1, d1, d2, n2),
			fmt.Sprintf("(%d × %d) / (%d × %d) = %s/%s", n1, d2, d1, n2, num, den),
		)
	}

	expr := fmt.Sprintf("%d/%d %s %d/%d", n1, d1, op, n2, d2)

	if den.Sign() == 0 {
		steps = append(steps, "The result's denominator is 0, so the fraction is undefined.")
		return problem.Solution{Answer: expr + " = undefined", Steps: steps}, nil
	}
	if num.Sign() == 0 {
		steps = append(steps, "The numerator is 0, so the result is 0.")
		return problem.Solution{Answer: expr + " = 0", Steps: steps}, nil
	}

	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), new(big.Int).Abs(den))
	steps = append(steps, fmt.Sprintf("Reduce: the greatest common divisor of numerator and denominator is %s", g))
	num.Quo(num, g)
	den.Quo(den, g)
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
		steps = append(steps, fmt.Sprintf("Move the sign to the numerator: %s/%s", num, den))
	}

	return problem.Solution{Answer: expr + " = " + fractionString(num, den), Steps: steps}, nil
}

func fractionString(num, den *big.Int) string {
	if den.Cmp(big.NewInt(1)) == 0 {
		return num.String()
	}
	return num.String() + "/" + den.String()
}
