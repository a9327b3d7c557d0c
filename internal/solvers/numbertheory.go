package solvers

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/phoenixlwpapix/math-toolkit/internal/problem"
)

const msgTwoPositiveInts = "Please enter two valid positive integers."

// GCDOf is the iterative Euclidean algorithm on absolute values.
func GCDOf(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCMOf returns a·b/gcd(a,b). It is computed in big integers since the
// product of two 53-bit inputs does not fit in an int64.
func LCMOf(a, b int64) *big.Int {
	if a == 0 || b == 0 {
		return big.NewInt(0)
	}
	g := GCDOf(a, b)
	out := big.NewInt(a / g)
	out.Mul(out, big.NewInt(b))
	return out.Abs(out)
}

// euclidSteps records each division of the Euclidean algorithm.
func euclidSteps(a, b int64) []string {
	var steps []string
	for b != 0 {
		q, r := a/b, a%b
		steps = append(steps, fmt.Sprintf("%d = %d × %d + %d", a, q, b, r))
		a, b = b, r
	}
	return steps
}

// GCD reports the greatest common divisor of a and b.
func GCD(v problem.Values) (problem.Solution, error) {
	nums, err := positiveInts(v, msgTwoPositiveInts, "a", "b")
	if err != nil {
		return problem.Solution{}, err
	}
	a, b := nums[0], nums[1]
	g := GCDOf(a, b)
	steps := euclidSteps(a, b)
	steps = append(steps, fmt.Sprintf("The last non-zero remainder is %d.", g))
	return problem.Solution{
		Answer: fmt.Sprintf("The greatest common divisor is %d", g),
		Steps:  steps,
	}, nil
}

// LCM reports the least common multiple of a and b.
func LCM(v problem.Values) (problem.Solution, error) {
	nums, err := positiveInts(v, msgTwoPositiveInts, "a", "b")
	if err != nil {
		return problem.Solution{}, err
	}
	a, b := nums[0], nums[1]
	g := GCDOf(a, b)
	l := LCMOf(a, b)
	return problem.Solution{
		Answer: fmt.Sprintf("The least common multiple is %s", l),
		Steps: []string{
			fmt.Sprintf("gcd(%d, %d) = %d", a, b, g),
			fmt.Sprintf("lcm = %d × %d ÷ %d = %s", a, b, g, l),
		},
	}, nil
}

// Divisors returns every positive divisor of n in ascending order. Only
// candidates up to √n are tried; each hit contributes its cofactor too.
func Divisors(n int64) []int64 {
	if n <= 0 {
		return nil
	}
	var low, high []int64
	for i := int64(1); i*i <= n; i++ {
		if n%i != 0 {
			continue
		}
		low = append(low, i)
		if j := n / i; j != i {
			high = append(high, j)
		}
	}
	for i := len(high) - 1; i >= 0; i-- {
		low = append(low, high[i])
	}
	return low
}

// ListFactors lists every factor of num.
func ListFactors(v problem.Values) (problem.Solution, error) {
	nums, err := positiveInts(v, "Please enter a valid positive integer.", "num")
	if err != nil {
		return problem.Solution{}, err
	}
	n := nums[0]
	divs := Divisors(n)
	parts := make([]string, len(divs))
	for i, d := range divs {
		parts[i] = strconv.FormatInt(d, 10)
	}
	return problem.Solution{
		Answer: fmt.Sprintf("The factors of %d are: %s", n, strings.Join(parts, ", ")),
		Steps:  []string{fmt.Sprintf("%d has %d factors.", n, len(divs))},
	}, nil
}

// SmallestFactor returns the smallest divisor of n greater than 1 found by
// trial division up to √n, or 0 when n is 1 or prime.
func SmallestFactor(n int64) int64 {
	for i := int64(2); i*i <= n; i++ {
		if n%i == 0 {
			return i
		}
	}
	return 0
}

// IsPrime reports whether n is prime.
func IsPrime(n int64) bool {
	return n >= 2 && SmallestFactor(n) == 0
}

// PrimeCheck reports whether num is prime, with a factor pair when not.
func PrimeCheck(v problem.Values) (problem.Solution, error) {
	nums, err := positiveInts(v, "Please enter a valid positive integer.", "num")
	if err != nil {
		return problem.Solution{}, err
	}
	n := nums[0]
	if n == 1 {
		return problem.Solution{Answer: "1 is not a prime number."}, nil
	}
	if f := SmallestFactor(n); f != 0 {
		return problem.Solution{
			Answer: fmt.Sprintf("%d is not a prime number, e.g. %d × %d = %d", n, f, n/f, n),
		}, nil
	}
	return problem.Solution{Answer: fmt.Sprintf("%d is a prime number 🎉", n)}, nil
}
