package solvers

import (
	"fmt"
	"math"

	"github.com/phoenixlwpapix/math-toolkit/internal/problem"
)

// RootKind classifies the solution set of ax² + bx + c = d.
type RootKind int

const (
	RootsTwoReal RootKind = iota
	RootsRepeated
	RootsComplex
	RootsLinear
	RootsInfinite
	RootsNone
)

// Roots is the numeric outcome of QuadraticRoots. For complex roots X1 is
// the real part and Imag the (non-negative) imaginary part.
type Roots struct {
	Kind         RootKind
	X1, X2, Imag float64
	A, B, C      float64
	Discriminant float64
}

// QuadraticRoots reduces ax² + bx + c = d to Ax² + Bx + C = 0 and solves it,
// degrading to the linear case when A is 0.
func QuadraticRoots(a, b, c, d float64) Roots {
	r := Roots{A: a, B: b, C: c - d}
	if r.A == 0 {
		switch {
		case r.B == 0 && r.C == 0:
			r.Kind = RootsInfinite
		case r.B == 0:
			r.Kind = RootsNone
		default:
			r.Kind = RootsLinear
			r.X1 = -r.C / r.B
		}
		return r
	}

	r.Discriminant = r.B*r.B - 4*r.A*r.C
	switch {
	case r.Discriminant > 0:
		r.Kind = RootsTwoReal
		sq := math.Sqrt(r.Discriminant)
		r.X1 = (-r.B + sq) / (2 * r.A)
		r.X2 = (-r.B - sq) / (2 * r.A)
	case r.Discriminant == 0:
		r.Kind = RootsRepeated
		r.X1 = -r.B / (2 * r.A)
		r.X2 = r.X1
	default:
		r.Kind = RootsComplex
		r.X1 = -r.B / (2 * r.A)
		r.Imag = math.Abs(math.Sqrt(-r.Discriminant) / (2 * r.A))
	}
	return r
}

// Quadratic solves ax² + bx + c = d and shows its working.
func Quadratic(v problem.Values) (problem.Solution, error) {
	nums, err := floats(v, "Please enter valid numbers for a, b, c and d.", "a", "b", "c", "d")
	if err != nil {
		return problem.Solution{}, err
	}
	a, b, c, d := nums[0], nums[1], nums[2], nums[3]
	f := func(x float64) string { return FormatNumber(x, PrecisionLong) }

	r := QuadraticRoots(a, b, c, d)
	if !finite(r.C, r.Discriminant, r.X1, r.X2, r.Imag) {
		return problem.Solution{}, problem.Errorf(TooLargeMessage)
	}
	steps := []string{
		fmt.Sprintf("Original equation: %sx² + %sx + %s = %s", f(a), f(b), f(c), f(d)),
		"Rewrite in standard form Ax² + Bx + C = 0:",
		fmt.Sprintf("A = %s, B = %s, C = c − d = %s − %s = %s", f(r.A), f(r.B), f(c), f(d), f(r.C)),
		fmt.Sprintf("Standard form: %sx² + %sx + %s = 0", f(r.A), f(r.B), f(r.C)),
	}

	var answer string
	switch r.Kind {
	case RootsInfinite:
		steps = append(steps,
			"A = 0, so the equation degrades to the linear equation Bx + C = 0.",
			"B = 0 and C = 0, so the equation reads 0 = 0.")
		answer = "Infinitely many solutions (identity)."
	case RootsNone:
		steps = append(steps,
			"A = 0, so the equation degrades to the linear equation Bx + C = 0.",
			fmt.Sprintf("B = 0 and C = %s ≠ 0, so the equation reads %s = 0.", f(r.C), f(r.C)))
		answer = "No solution (contradiction)."
	case RootsLinear:
		steps = append(steps,
			"A = 0, so the equation degrades to the linear equation Bx + C = 0.",
			fmt.Sprintf("x = −C / B = −(%s) / %s = %s", f(r.C), f(r.B), f(r.X1)))
		answer = fmt.Sprintf("x = %s", f(r.X1))
	default:
		steps = append(steps,
			"Compute the discriminant Δ = B² − 4AC:",
			fmt.Sprintf("Δ = (%s)² − 4 × (%s) × (%s) = %s", f(r.B), f(r.A), f(r.C), f(r.Discriminant)))
		switch r.Kind {
		case RootsTwoReal:
			steps = append(steps,
				"Δ > 0, so there are two distinct real roots.",
				fmt.Sprintf("x₁ = (−B + √Δ) / (2A) = %s", f(r.X1)),
				fmt.Sprintf("x₂ = (−B − √Δ) / (2A) = %s", f(r.X2)))
			answer = fmt.Sprintf("x₁ = %s, x₂ = %s", f(r.X1), f(r.X2))
		case RootsRepeated:
			steps = append(steps,
				"Δ = 0, so there are two equal real roots.",
				fmt.Sprintf("x₁ = x₂ = −B / (2A) = %s", f(r.X1)))
			answer = fmt.Sprintf("x₁ = x₂ = %s", f(r.X1))
		case RootsComplex:
			steps = append(steps,
				"Δ < 0, so there are two complex conjugate roots.",
				"x = (−B ± i√(−Δ)) / (2A)",
				fmt.Sprintf("Real part = −B / (2A) = %s", f(r.X1)),
				fmt.Sprintf("Imaginary part = ±√(−Δ) / (2A) = ±%s", f(r.Imag)))
			answer = fmt.Sprintf("x₁ = %s + %si, x₂ = %s - %si", f(r.X1), f(r.Imag), f(r.X1), f(r.Imag))
		}
	}

	return problem.Solution{Answer: answer, Steps: steps}, nil
}
