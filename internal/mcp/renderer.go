package mcp

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/phoenixlwpapix/math-toolkit/internal/problem"
)

// Renderer turns catalog entries and solutions into tool-result text.
type Renderer struct {
	includeSteps bool
}

// NewRenderer creates a renderer that includes working steps.
func NewRenderer() *Renderer {
	return &Renderer{includeSteps: true}
}

// SetIncludeSteps sets whether solutions carry their working.
func (r *Renderer) SetIncludeSteps(include bool) {
	r.includeSteps = include
}

// RenderSolution renders a solution as markdown, titled by its problem.
func (r *Renderer) RenderSolution(def problem.Definition, sol problem.Solution) string {
	if !r.includeSteps {
		sol.Steps = nil
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## %s\n\n", def.Title))
	sb.WriteString(sol.Markdown())
	if sol.Chart != nil {
		sb.WriteString(fmt.Sprintf("\nChart scale: 0 to %s\n", trimFloat(sol.Chart.Max)))
	}
	return sb.String()
}

// RenderCatalog renders every problem as a markdown section.
func (r *Renderer) RenderCatalog(defs []problem.Definition) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Available Problems (%d)\n\n", len(defs)))
	for _, d := range defs {
		sb.WriteString(fmt.Sprintf("### %s (`%s`)\n", d.Title, ToolName(d.ID)))
		sb.WriteString(fmt.Sprintf("%s\n\n", d.Description))
		sb.WriteString(fmt.Sprintf("**Category:** %s · **Level:** %s\n", d.Category, d.Level))
		if params := paramNames(d); len(params) > 0 {
			sb.WriteString(fmt.Sprintf("**Parameters:** %s\n", strings.Join(params, ", ")))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ProblemJSONEntry represents a problem in JSON output.
type ProblemJSONEntry struct {
	ID          string   `json:"id"`
	Tool        string   `json:"tool"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Level       string   `json:"level"`
	Parameters  []string `json:"parameters"`
}

// RenderJSON renders the problems as a JSON array.
func (r *Renderer) RenderJSON(defs []problem.Definition) (string, error) {
	out := make([]ProblemJSONEntry, 0, len(defs))
	for _, d := range defs {
		out = append(out, ProblemJSONEntry{
			ID:          d.ID,
			Tool:        ToolName(d.ID),
			Title:       d.Title,
			Description: d.Description,
			Category:    string(d.Category),
			Level:       string(d.Level),
			Parameters:  paramNames(d),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func paramNames(d problem.Definition) []string {
	names := make([]string, 0, len(d.Fields)+1)
	for _, f := range d.Fields {
		names = append(names, f.Key)
	}
	if d.List != nil {
		names = append(names, valuesParam)
	}
	return names
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
