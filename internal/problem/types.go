// Package problem holds the generic problem form shared by every calculator
// card: the field definitions, the raw input values, the solver contract and
// the validate-then-dispatch Form itself.
package problem

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Kind selects the keystroke pattern a field accepts.
type Kind int

const (
	KindDecimal         Kind = iota // signed decimal: -1.5
	KindUnsignedDecimal             // 2.75
	KindDigits                      // 42
	KindChoice                      // one of Field.Options
)

var kindPatterns = map[Kind]*regexp.Regexp{
	KindDecimal:         regexp.MustCompile(`^-?\d*\.?\d*$`),
	KindUnsignedDecimal: regexp.MustCompile(`^\d*\.?\d*$`),
	KindDigits:          regexp.MustCompile(`^\d*$`),
}

func (k Kind) String() string {
	switch k {
	case KindDecimal:
		return "decimal"
	case KindUnsignedDecimal:
		return "unsigned_decimal"
	case KindDigits:
		return "digits"
	case KindChoice:
		return "choice"
	default:
		return "unknown"
	}
}

// Field is one labeled input on a card.
type Field struct {
	Key         string
	Label       string
	Placeholder string
	Kind        Kind

	// Options and Aliases only apply to KindChoice. Aliases map alternate
	// spellings (e.g. "*") onto a canonical option (e.g. "×").
	Options []string
	Aliases map[string]string

	// Optional fields may be left empty on submit.
	Optional bool
}

// Accepts reports whether raw is an acceptable keystroke state for the field.
// The empty string is always accepted.
func (f Field) Accepts(raw string) bool {
	if raw == "" {
		return true
	}
	if f.Kind == KindChoice {
		_, ok := f.Canonical(raw)
		return ok
	}
	pattern, ok := kindPatterns[f.Kind]
	if !ok {
		return false
	}
	return pattern.MatchString(raw)
}

// Canonical resolves raw to one of the field's options.
func (f Field) Canonical(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	for _, opt := range f.Options {
		if opt == raw {
			return opt, true
		}
	}
	if alias, ok := f.Aliases[strings.ToLower(raw)]; ok {
		return alias, true
	}
	return "", false
}

// PlaceholderText returns the placeholder or the default prompt.
func (f Field) PlaceholderText() string {
	if f.Placeholder != "" {
		return f.Placeholder
	}
	if f.Kind == KindChoice {
		return strings.Join(f.Options, " ")
	}
	return "Enter a number"
}

// ListSpec describes a variable-length run of entries (the average card).
type ListSpec struct {
	Prefix  string // solver keys are Prefix1..PrefixN
	Label   string // entry labels are "Label N"
	Kind    Kind
	Min     int
	Max     int
	Initial int
}

// Category groups problems on the home page.
type Category string

const (
	CategoryMath      Category = "math"
	CategoryPhysics   Category = "physics"
	CategoryChemistry Category = "chemistry"
)

// Level is the difficulty badge shown on a card.
type Level string

const (
	LevelEasy   Level = "easy"
	LevelMedium Level = "medium"
	LevelHard   Level = "hard"
)

// Definition is everything a surface needs to present and solve one problem.
type Definition struct {
	ID          string
	Title       string
	Description string
	Category    Category
	Level       Level
	Fields      []Field
	List        *ListSpec
	Solve       Solver
}

// Field returns the static field with the given key.
func (d Definition) Field(key string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Solver maps validated raw inputs to a solution or a solve-time error.
type Solver func(Values) (Solution, error)

// Solution is what a solver hands back to the form.
type Solution struct {
	Answer string   `json:"answer"`
	Steps  []string `json:"steps,omitempty"`
	Chart  *Chart   `json:"chart,omitempty"`
	Figure *Figure  `json:"figure,omitempty"`
}

// Chart is the bar visualization of the average card.
type Chart struct {
	Max     float64   `json:"max"`
	Ticks   []float64 `json:"ticks"`
	Bars    []Bar     `json:"bars"`
	Average float64   `json:"average"`
}

// Bar is a single chart column. Ratio is Value/Max clamped to [0,1].
type Bar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Ratio float64 `json:"ratio"`
}

// Figure is a rectangle scaled so its longer side is 1.
type Figure struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Values maps field keys to raw strings.
type Values map[string]string

// Float parses a key as a finite decimal.
func (v Values) Float(key string) (float64, error) {
	raw := strings.TrimSpace(v[key])
	if raw == "" {
		return 0, fmt.Errorf("%s is empty", key)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s is not a number: %w", key, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s is not finite", key)
	}
	return f, nil
}

// maxExactInt is the largest integer a float64 represents exactly.
const maxExactInt = 1 << 53

// Int parses a key as a whole number. "12.0" is accepted, "12.5" is not.
func (v Values) Int(key string) (int64, error) {
	f, err := v.Float(key)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%s is not a whole number", key)
	}
	if math.Abs(f) > maxExactInt {
		return 0, fmt.Errorf("%s is too large", key)
	}
	return int64(f), nil
}

// Choice resolves a key against options and their aliases the same way a
// choice field does.
func (v Values) Choice(key string, options []string, aliases map[string]string) (string, bool) {
	return Field{Kind: KindChoice, Options: options, Aliases: aliases}.Canonical(v[key])
}

// List returns the non-empty values stored under prefix1..prefixN in index
// order.
func (v Values) List(prefix string) []string {
	type indexed struct {
		n   int
		raw string
	}
	var items []indexed
	for key, raw := range v {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(key, prefix))
		if err != nil || n < 1 {
			continue
		}
		if strings.TrimSpace(raw) == "" {
			continue
		}
		items = append(items, indexed{n: n, raw: raw})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].n < items[j].n })

	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.raw
	}
	return out
}

// Clone returns an independent copy.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}
