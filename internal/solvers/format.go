// Package solvers contains one pure function per calculator card. Every
// solver takes the raw input mapping collected by a problem.Form and returns
// either a Solution or a problem.SolveError describing why the inputs have no
// valid answer.
package solvers

import (
	"math"
	"strconv"
	"strings"

	"github.com/phoenixlwpapix/math-toolkit/internal/problem"
)

// Display precisions.
const (
	PrecisionShort = 2 // shapes, averages
	PrecisionLong  = 4 // decimals, equations
)

// TooLargeMessage is reported when a result leaves the float64 range.
const TooLargeMessage = "The result is too large to compute."

// finite reports whether every value is an ordinary number.
func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// FormatNumber renders v with a fixed number of decimals, then trims trailing
// zeros. Negative zero is shown as "0".
func FormatNumber(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// operand renders a user-supplied number exactly as parsed.
func operand(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if s == "-0" {
		return "0"
	}
	return s
}

// floats parses every key or reports the generic message.
func floats(v problem.Values, msg string, keys ...string) ([]float64, error) {
	out := make([]float64, len(keys))
	for i, k := range keys {
		f, err := v.Float(k)
		if err != nil {
			return nil, problem.Errorf("%s", msg)
		}
		out[i] = f
	}
	return out, nil
}

// positiveFloats is floats plus a > 0 check on each value.
func positiveFloats(v problem.Values, msg string, keys ...string) ([]float64, error) {
	out, err := floats(v, msg, keys...)
	if err != nil {
		return nil, err
	}
	for _, f := range out {
		if f <= 0 {
			return nil, problem.Errorf("%s", msg)
		}
	}
	return out, nil
}

// positiveInts parses every key as a whole number greater than zero.
func positiveInts(v problem.Values, msg string, keys ...string) ([]int64, error) {
	out := make([]int64, len(keys))
	for i, k := range keys {
		n, err := v.Int(k)
		if err != nil || n <= 0 {
			return nil, problem.Errorf("%s", msg)
		}
		out[i] = n
	}
	return out, nil
}
