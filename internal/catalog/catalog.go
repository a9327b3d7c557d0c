// Package catalog is the registry behind the home page: every problem card,
// its route id, metadata, input fields and solver.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/phoenixlwpapix/math-toolkit/internal/logging"
	"github.com/phoenixlwpapix/math-toolkit/internal/problem"
)

// Categories in display order.
var Categories = []problem.Category{
	problem.CategoryMath,
	problem.CategoryPhysics,
	problem.CategoryChemistry,
}

// Levels in display order.
var Levels = []problem.Level{
	problem.LevelEasy,
	problem.LevelMedium,
	problem.LevelHard,
}

// Catalog is an ordered, immutable set of problem definitions.
type Catalog struct {
	problems []problem.Definition
	byID     map[string]int
}

// New builds a catalog. IDs must be unique and every problem needs a solver.
func New(defs ...problem.Definition) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]int, len(defs))}
	for _, d := range defs {
		if d.ID == "" {
			return nil, fmt.Errorf("problem %q has no id", d.Title)
		}
		if _, dup := c.byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate problem id %q", d.ID)
		}
		if d.Solve == nil {
			return nil, fmt.Errorf("problem %q has no solver", d.ID)
		}
		c.byID[d.ID] = len(c.problems)
		c.problems = append(c.problems, d)
	}
	logging.Catalog("registered %d problems", len(c.problems))
	return c, nil
}

// All returns every problem in catalog order.
func (c *Catalog) All() []problem.Definition {
	out := make([]problem.Definition, len(c.problems))
	copy(out, c.problems)
	return out
}

// Len is the number of problems.
func (c *Catalog) Len() int { return len(c.problems) }

// Lookup finds a problem by id.
func (c *Catalog) Lookup(id string) (problem.Definition, bool) {
	i, ok := c.byID[id]
	if !ok {
		return problem.Definition{}, false
	}
	return c.problems[i], true
}

// IDs returns every id, sorted.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.problems))
	for _, p := range c.problems {
		ids = append(ids, p.ID)
	}
	sort.Strings(ids)
	return ids
}

// Query filters the home page list. Empty sets match everything.
type Query struct {
	Text       string
	Categories []problem.Category
	Levels     []problem.Level
}

// Filter returns the problems matching q, in catalog order. Text matches
// case-insensitively against title, id and description.
func (c *Catalog) Filter(q Query) []problem.Definition {
	text := strings.ToLower(strings.TrimSpace(q.Text))
	var out []problem.Definition
	for _, p := range c.problems {
		haystack := strings.ToLower(p.Title + p.ID + p.Description)
		if text != "" && !strings.Contains(haystack, text) {
			continue
		}
		if len(q.Categories) > 0 && !containsCategory(q.Categories, p.Category) {
			continue
		}
		if len(q.Levels) > 0 && !containsLevel(q.Levels, p.Level) {
			continue
		}
		out = append(out, p)
	}
	logging.CatalogDebug("filter %+v matched %d/%d", q, len(out), len(c.problems))
	return out
}

func containsCategory(set []problem.Category, c problem.Category) bool {
	for _, s := range set {
		if s == c {
			return true
		}
	}
	return false
}

func containsLevel(set []problem.Level, l problem.Level) bool {
	for _, s := range set {
		if s == l {
			return true
		}
	}
	return false
}

// Toggle adds v to set, or removes it if already present.
func Toggle[T comparable](set []T, v T) []T {
	for i, s := range set {
		if s == v {
			out := make([]T, 0, len(set)-1)
			out = append(out, set[:i]...)
			return append(out, set[i+1:]...)
		}
	}
	return append(append([]T(nil), set...), v)
}

// ParseCategory accepts a category name in any case.
func ParseCategory(s string) (problem.Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q (valid: %v)", s, Categories)
}

// ParseLevel accepts a level name in any case.
func ParseLevel(s string) (problem.Level, error) {
	for _, l := range Levels {
		if strings.EqualFold(string(l), s) {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown level %q (valid: %v)", s, Levels)
}
