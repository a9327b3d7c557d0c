package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phoenixlwpapix/math-toolkit/cmd/cards/ui"
	"github.com/phoenixlwpapix/math-toolkit/internal/catalog"
	"github.com/phoenixlwpapix/math-toolkit/internal/mcp"
)

var (
	listQuery      string
	listCategories []string
	listLevels     []string
	listJSON       bool
)

// listCmd prints the problem catalog, optionally filtered.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available problem cards",
	Long: `Lists every problem card with its id, category and level.

Filters combine: --query matches the title, id and description; --category
and --level may be repeated and match any of the given values.

Example:
  cards list --category math --level hard`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Case-insensitive text search")
	listCmd.Flags().StringSliceVar(&listCategories, "category", nil, "Filter by category (math, physics, chemistry)")
	listCmd.Flags().StringSliceVar(&listLevels, "level", nil, "Filter by level (easy, medium, hard)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	q := catalog.Query{Text: listQuery}
	for _, raw := range listCategories {
		c, err := catalog.ParseCategory(raw)
		if err != nil {
			return err
		}
		q.Categories = append(q.Categories, c)
	}
	for _, raw := range listLevels {
		l, err := catalog.ParseLevel(raw)
		if err != nil {
			return err
		}
		q.Levels = append(q.Levels, l)
	}

	defs := catalog.Default().Filter(q)
	out := cmd.OutOrStdout()

	if listJSON {
		data, err := mcp.NewRenderer().RenderJSON(defs)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, data)
		return nil
	}

	if len(defs) == 0 {
		fmt.Fprintln(out, "No matching problems.")
		return nil
	}
	fmt.Fprint(out, ui.CatalogTable(defs).View(ui.NewStyles(ui.ThemeFor(cfg.Display.Theme))))
	return nil
}
