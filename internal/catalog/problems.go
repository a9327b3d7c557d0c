package catalog

import (
	"github.com/phoenixlwpapix/math-toolkit/internal/problem"
	"github.com/phoenixlwpapix/math-toolkit/internal/solvers"
)

func decimal(key, label, placeholder string) problem.Field {
	return problem.Field{Key: key, Label: label, Placeholder: placeholder, Kind: problem.KindDecimal}
}

func positive(key, label, placeholder string) problem.Field {
	return problem.Field{Key: key, Label: label, Placeholder: placeholder, Kind: problem.KindUnsignedDecimal}
}

func digits(key, label, placeholder string) problem.Field {
	return problem.Field{Key: key, Label: label, Placeholder: placeholder, Kind: problem.KindDigits}
}

var measureField = problem.Field{
	Key:     "measure",
	Label:   "Measure",
	Kind:    problem.KindChoice,
	Options: solvers.Measures,
	Aliases: solvers.MeasureAliases,
}

// Definitions returns the built-in problem cards in home page order.
func Definitions() []problem.Definition {
	return []problem.Definition{
		{
			ID:          "chicken-rabbit",
			Title:       "Chickens and Rabbits",
			Description: "Work out how many chickens and rabbits share a cage from the heads and legs.",
			Category:    problem.CategoryMath,
			Level:       problem.LevelEasy,
			Fields: []problem.Field{
				decimal("heads", "Total heads", "e.g. 10"),
				decimal("legs", "Total legs", "e.g. 28"),
			},
			Solve: solvers.ChickenRabbit,
		},
		{
			ID:          "decimal-mul",
			Title:       "Decimal Multiplication",
			Description: "Enter two decimals and compute their product.",
			Category:    problem.CategoryMath,
			Level:       problem.LevelEasy,
			Fields: []problem.Field{
				decimal("a", "First decimal", "e.g. 2.5"),
				decimal("b", "Second decimal", "e.g. 0.4"),
			},
			Solve: solvers.DecimalMultiply,
		},
		{
			ID:          "decimal-div",
			Title:       "Decimal Division",
			Description: "Enter two decimals and compute their quotient.",
			Category:    problem.CategoryMath,
			Level:       problem.LevelEasy,
			Fields: []problem.Field{
				decimal("a", "Dividend", "e.g. 2.4"),
				decimal("b", "Divisor", "e.g. 0.6"),
			},
			Solve: solvers.DecimalDivide,
		},
		{
			ID:          "simple-eq",
			Title:       "Equation Solver",
			Description: "Solve ax² + bx + c = d, including linear and complex cases.",
			Category:    problem.CategoryMath,
			Level:       problem.LevelMedium,
			Fields: []problem.Field{
				decimal("a", "a (x² coefficient)", "e.g. 2"),
				decimal("b", "b (x coefficient)", "e.g. -3"),
				decimal("c", "c (constant)", "e.g. 1"),
				decimal("d", "d (right-hand side)", "e.g. 5"),
			},
			Solve: solvers.Quadratic,
		},
		{
			ID:          "list-factors",
			Title:       "List Factors",
			Description: "List every factor of a positive integer.",
			Category:    problem.CategoryMath,
			Level:       problem.LevelMedium,
			Fields: []problem.Field{
				decimal("num", "A positive integer", "e.g. 12"),
			},
			Solve: solvers.ListFactors,
		},
		{
			ID:          "fraction-cal",
			Title:       "Fraction Arithmetic",
			Description: "Add, subtract, multiply and divide fractions, reduced to lowest terms.",
			Category:    problem.CategoryMath,
			Level:       problem.LevelMedium,
			Fields: []problem.Field{
				digits("n1", "First numerator", "numerator"),
				digits("d1", "First denominator", "denominator"),
				{
					Key:     "op",
					Label:   "Operator",
					Kind:    problem.KindChoice,
					Options: solvers.FractionOperators,
					Aliases: solvers.FractionAliases,
				},
				digits("n2", "Second numerator", "numerator"),
				digits("d2", "Second denominator", "denominator"),
			},
			Solve: solvers.Fraction,
		},
		{
			ID:          "average-cal",
			Title:       "Average Calculator",
			Description: "Compute the average of up to ten numbers and chart them.",
			Category:    problem.CategoryMath,
			Level:       problem.LevelMedium,
			List: &problem.ListSpec{
				Prefix:  solvers.AveragePrefix,
				Label:   "Value",
				Kind:    problem.KindUnsignedDecimal,
				Min:     1,
				Max:     10,
				Initial: 2,
			},
			Solve: solvers.Average,
		},
		{
			ID:          "prime-check",
			Title:       "Prime Check",
			Description: "Decide whether a positive integer is prime.",
			Category:    problem.CategoryMath,
			Level:       problem.LevelMedium,
			Fields: []problem.Field{
				decimal("num", "A positive integer", "e.g. 97"),
			},
			Solve: solvers.PrimeCheck,
		},
		{
			ID:          "greatest-common-divisor",
			Title:       "Greatest Common Divisor",
			Description: "Find the greatest common divisor of two numbers.",
			Category:    problem.CategoryMath,
			Level:       problem.LevelHard,
			Fields: []problem.Field{
				decimal("a", "Number 1", "first positive integer"),
				decimal("b", "Number 2", "second positive integer"),
			},
			Solve: solvers.GCD,
		},
		{
			ID:          "least-common-multiple",
			Title:       "Least Common Multiple",
			Description: "Find the least common multiple of two numbers.",
			Category:    problem.CategoryMath,
			Level:       problem.LevelHard,
			Fields: []problem.Field{
				decimal("a", "Number 1", "first positive integer"),
				decimal("b", "Number 2", "second positive integer"),
			},
			Solve: solvers.LCM,
		},
		{
			ID:          "rectangle-cal",
			Title:       "Rectangle Area and Perimeter",
			Description: "Compute the area or perimeter of a rectangle.",
			Category:    problem.CategoryMath,
			Level:       problem.LevelMedium,
			Fields: []problem.Field{
				measureField,
				positive("length", "Length", "e.g. 6"),
				positive("width", "Width", "e.g. 4"),
			},
			Solve: solvers.Rectangle,
		},
		{
			ID:          "square-cal",
			Title:       "Square Area and Perimeter",
			Description: "Compute the area or perimeter of a square.",
			Category:    problem.CategoryMath,
			Level:       problem.LevelMedium,
			Fields: []problem.Field{
				measureField,
				positive("side", "Side", "e.g. 5"),
			},
			Solve: solvers.Square,
		},
		{
			ID:          "lever-balance",
			Title:       "Lever Balance",
			Description: "Check whether a lever balances from its forces and arm lengths.",
			Category:    problem.CategoryPhysics,
			Level:       problem.LevelMedium,
			Fields: []problem.Field{
				positive("f1", "Left force (N)", "e.g. 10"),
				positive("d1", "Left arm (m)", "e.g. 2"),
				positive("f2", "Right force (N)", "e.g. 5"),
				positive("d2", "Right arm (m)", "e.g. 4"),
			},
			Solve: solvers.Lever,
		},
	}
}

// Default builds the catalog of built-in problems.
func Default() *Catalog {
	c, err := New(Definitions()...)
	if err != nil {
		panic(err) // the built-in list is static
	}
	return c
}
