package solvers

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/phoenixlwpapix/math-toolkit/internal/problem"
)

// AveragePrefix is the key prefix of the average card's entries.
const AveragePrefix = "value"

// chartTicks is the number of intervals on the chart's value axis.
const chartTicks = 5

// ChartScale picks a rounded axis maximum at least as large as every value.
func ChartScale(values []float64) float64 {
	if len(values) == 0 {
		return 10
	}
	allZero := true
	maxVal := 0.0
	for _, v := range values {
		if v != 0 {
			allZero = false
		}
		maxVal = math.Max(maxVal, v)
	}
	if allZero {
		return 1
	}

	top := 10.0
	if maxVal > 0 {
		mag := math.Pow(10, math.Floor(math.Log10(maxVal)))
		top = math.Ceil(maxVal/mag) * mag
		if maxVal > top*0.95 {
			top = math.Ceil(maxVal*1.1/mag) * mag
		}
		if top == 0 {
			top = maxVal * 1.2
		}
		if top < 5 {
			top = 5
		} else if top < 10 && maxVal > 5 {
			top = 10
		}
	}
	return top
}

// Average computes the mean of every entry that parses as a number; the rest
// are ignored.
func Average(v problem.Values) (problem.Solution, error) {
	var nums []float64
	for _, raw := range v.List(AveragePrefix) {
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		nums = append(nums, f)
	}
	if len(nums) == 0 {
		return problem.Solution{}, problem.Errorf("Please enter at least one valid number.")
	}

	sum := 0.0
	for _, n := range nums {
		sum += n
	}
	avg := sum / float64(len(nums))
	if !finite(sum, avg) {
		return problem.Solution{}, problem.Errorf(TooLargeMessage)
	}
	f := func(x float64) string { return FormatNumber(x, PrecisionShort) }

	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = f(n)
	}

	return problem.Solution{
		Answer: fmt.Sprintf("Average = %s", f(avg)),
		Steps: []string{
			fmt.Sprintf("Sum = %s = %s", strings.Join(parts, " + "), f(sum)),
			fmt.Sprintf("Count = %d", len(nums)),
			fmt.Sprintf("Average = %s ÷ %d = %s", f(sum), len(nums), f(avg)),
		},
		Chart: buildChart(nums, avg),
	}, nil
}

func buildChart(nums []float64, avg float64) *problem.Chart {
	top := ChartScale(nums)
	chart := &problem.Chart{Max: top, Average: avg}
	for i := 0; i <= chartTicks; i++ {
		chart.Ticks = append(chart.Ticks, top/chartTicks*float64(i))
	}
	for _, n := range nums {
		ratio := n / top
		ratio = math.Max(0, math.Min(1, ratio))
		chart.Bars = append(chart.Bars, problem.Bar{
			Label: FormatNumber(n, PrecisionShort),
			Value: n,
			Ratio: ratio,
		})
	}
	return chart
}
