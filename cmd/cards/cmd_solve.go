package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phoenixlwpapix/math-toolkit/internal/catalog"
	"github.com/phoenixlwpapix/math-toolkit/internal/mcp"
	"github.com/phoenixlwpapix/math-toolkit/internal/problem"
)

var (
	solveJSON    bool
	solvePlain   bool
	solveNoSteps bool
)

// listKey collects the entries of a list problem on the command line.
const listKey = "value"

// solveCmd runs one problem non-interactively
var solveCmd = &cobra.Command{
	Use:   "solve <problem-id> [key=value...]",
	Short: "Solve a problem from the command line",
	Long: `Fills a problem's fields from key=value pairs and prints the answer.

Each value goes through the same checks as typing it into the card, so
"heads=1x" is rejected. For the average card repeat value=N once per data
point. Run "cards list" for the ids.

Examples:
  cards solve chicken-rabbit heads=10 legs=28
  cards solve fraction-cal n1=1 d1=2 op=+ n2=1 d2=3
  cards solve average-cal value=2 value=4 value=9`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&solveJSON, "json", false, "Output the solution as JSON")
	solveCmd.Flags().BoolVar(&solvePlain, "plain", false, "Print markdown without terminal styling")
	solveCmd.Flags().BoolVar(&solveNoSteps, "no-steps", false, "Print only the answer")
}

// parseAssignments splits key=value arguments into field values and the
// ordered list entries.
func parseAssignments(args []string) (map[string]string, []string, error) {
	fields := make(map[string]string, len(args))
	var list []string
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, nil, fmt.Errorf("expected key=value, got %q", arg)
		}
		if key == listKey {
			list = append(list, value)
			continue
		}
		if _, dup := fields[key]; dup {
			return nil, nil, fmt.Errorf("%s given more than once", key)
		}
		fields[key] = value
	}
	return fields, list, nil
}

// fillForm applies the assignments in field order so the first rejection is
// reported the way the card would.
func fillForm(form *problem.Form, fields map[string]string, list []string) error {
	def := form.Definition()
	for key := range fields {
		if _, ok := def.Field(key); !ok {
			return fmt.Errorf("unknown field %q for %s (fields: %s)", key, def.ID, fieldKeys(def))
		}
	}
	for _, f := range def.Fields {
		raw, ok := fields[f.Key]
		if !ok {
			continue
		}
		if err := form.UpdateField(f.Key, strings.TrimSpace(raw)); err != nil {
			return err
		}
	}

	if len(list) > 0 && def.List == nil {
		return fmt.Errorf("%s does not take %s= entries", def.ID, listKey)
	}
	for i, raw := range list {
		if i >= form.EntryCount() {
			if _, err := form.AddEntry(); err != nil {
				return err
			}
		}
		key := form.Fields()[len(def.Fields)+i].Key
		if err := form.UpdateField(key, strings.TrimSpace(raw)); err != nil {
			return err
		}
	}
	return nil
}

func fieldKeys(def problem.Definition) string {
	keys := make([]string, 0, len(def.Fields)+1)
	for _, f := range def.Fields {
		keys = append(keys, f.Key)
	}
	if def.List != nil {
		keys = append(keys, listKey)
	}
	return strings.Join(keys, ", ")
}

func runSolve(cmd *cobra.Command, args []string) error {
	def, ok := catalog.Default().Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown problem %q (see \"cards list\")", args[0])
	}
	fields, list, err := parseAssignments(args[1:])
	if err != nil {
		return err
	}

	form := problem.NewForm(def)
	if err := fillForm(form, fields, list); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	sol, err := form.Submit()
	if err != nil {
		var inErr *problem.InputError
		var solveErr *problem.SolveError
		switch {
		case errors.As(err, &inErr):
			return fmt.Errorf("invalid input: %w", err)
		case errors.As(err, &solveErr):
			return fmt.Errorf("no solution: %w", err)
		default:
			return err
		}
	}
	logger.Debug("solved", zap.String("problem", def.ID), zap.String("answer", sol.Answer))

	out := cmd.OutOrStdout()
	if solveNoSteps {
		sol.Steps = nil
	}
	if solveJSON {
		data, err := json.MarshalIndent(struct {
			ID string `json:"id"`
			problem.Solution
		}{def.ID, sol}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	md := mcp.NewRenderer().RenderSolution(def, sol)
	if solvePlain {
		fmt.Fprint(out, md)
		return nil
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		fmt.Fprint(out, md)
		return nil
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		fmt.Fprint(out, md)
		return nil
	}
	fmt.Fprint(out, rendered)
	return nil
}
