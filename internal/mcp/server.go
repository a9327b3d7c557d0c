// Package mcp exposes the problem catalog as Model Context Protocol tools:
// one tool per problem plus a catalog listing, served over stdio or
// streamable HTTP.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/phoenixlwpapix/math-toolkit/internal/catalog"
	"github.com/phoenixlwpapix/math-toolkit/internal/logging"
	"github.com/phoenixlwpapix/math-toolkit/internal/problem"
)

const (
	// ServerName is reported to clients during initialize.
	ServerName = "math-toolkit"

	listToolName = "list_problems"
	valuesParam  = "values"
	catalogURI   = "catalog://problems"
)

// ToolName maps a problem id onto its tool name.
func ToolName(id string) string {
	return strings.ReplaceAll(id, "-", "_")
}

// Server wires a catalog into an MCP server.
type Server struct {
	catalog  *catalog.Catalog
	renderer *Renderer
	mcp      *server.MCPServer
}

// NewServer registers every problem in cat as a tool.
func NewServer(cat *catalog.Catalog, version string) *Server {
	s := &Server{
		catalog:  cat,
		renderer: NewRenderer(),
		mcp: server.NewMCPServer(
			ServerName,
			version,
			server.WithToolCapabilities(false),
			server.WithResourceCapabilities(false, false),
			server.WithLogging(),
			server.WithRecovery(),
		),
	}

	for _, def := range cat.All() {
		s.mcp.AddTool(solveTool(def), s.solveHandler(def))
	}
	s.mcp.AddTool(listTool(), s.listHandler)
	s.mcp.AddResource(
		mcp.NewResource(catalogURI, "Problem Catalog",
			mcp.WithResourceDescription("Every calculator with its parameters"),
			mcp.WithMIMEType("text/markdown"),
		),
		s.catalogResource,
	)

	logging.MCP("registered %d problem tools", cat.Len())
	return s
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func solveTool(def problem.Definition) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(def.Description)}
	for _, f := range def.Fields {
		propOpts := []mcp.PropertyOption{mcp.Description(fieldDescription(f))}
		if !f.Optional {
			propOpts = append(propOpts, mcp.Required())
		}
		if f.Kind == problem.KindChoice {
			propOpts = append(propOpts, mcp.Enum(f.Options...))
		}
		opts = append(opts, mcp.WithString(f.Key, propOpts...))
	}
	if def.List != nil {
		opts = append(opts, mcp.WithArray(valuesParam,
			mcp.Required(),
			mcp.Description(fmt.Sprintf("Between %d and %d numbers", def.List.Min, def.List.Max)),
			mcp.Items(map[string]any{"type": "number"}),
		))
	}
	return mcp.NewTool(ToolName(def.ID), opts...)
}

func fieldDescription(f problem.Field) string {
	switch f.Kind {
	case problem.KindChoice:
		aliases := make([]string, 0, len(f.Aliases))
		for a := range f.Aliases {
			aliases = append(aliases, a)
		}
		sort.Strings(aliases)
		if len(aliases) == 0 {
			return f.Label
		}
		return fmt.Sprintf("%s (also accepts %s)", f.Label, strings.Join(aliases, " "))
	case problem.KindDigits:
		return f.Label + " (whole number)"
	case problem.KindUnsignedDecimal:
		return f.Label + " (non-negative number)"
	default:
		return f.Label + " (number)"
	}
}

func listTool() mcp.Tool {
	return mcp.NewTool(listToolName,
		mcp.WithDescription("List the available calculators, optionally filtered"),
		mcp.WithString("query", mcp.Description("Case-insensitive text to match against title, id and description")),
		mcp.WithString("category", mcp.Description("Category filter"), mcp.Enum("math", "physics", "chemistry")),
		mcp.WithString("level", mcp.Description("Difficulty filter"), mcp.Enum("easy", "medium", "hard")),
	)
}

// argString converts one JSON argument to the raw text a form field expects.
func argString(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("unsupported value %v", v)
	}
}

// fill copies tool arguments into a form, stopping at the first rejection.
func fill(form *problem.Form, args map[string]any) error {
	def := form.Definition()
	for key := range args {
		if _, ok := def.Field(key); ok {
			continue
		}
		if key == valuesParam && def.List != nil {
			continue
		}
		return fmt.Errorf("unknown parameter %q", key)
	}

	for _, f := range def.Fields {
		raw, err := argString(args[f.Key])
		if err != nil {
			return fmt.Errorf("%s: %w", f.Key, err)
		}
		if err := form.UpdateField(f.Key, raw); err != nil {
			return err
		}
	}

	if def.List == nil {
		return nil
	}
	var items []any
	switch v := args[valuesParam].(type) {
	case []any:
		items = v
	case nil:
	default:
		return fmt.Errorf("%s must be an array", valuesParam)
	}
	for i, item := range items {
		raw, err := argString(item)
		if err != nil {
			return fmt.Errorf("%s[%d]: %w", valuesParam, i, err)
		}
		if i >= form.EntryCount() {
			if _, err := form.AddEntry(); err != nil {
				return err
			}
		}
		key := form.Fields()[len(def.Fields)+i].Key
		if err := form.UpdateField(key, raw); err != nil {
			return err
		}
	}
	return nil
}

func (s *Server) solveHandler(def problem.Definition) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		timer := logging.StartTimer(logging.CategoryMCP, req.Params.Name)
		defer timer.Stop()

		form := problem.NewForm(def)
		if err := fill(form, req.GetArguments()); err != nil {
			logging.MCPDebug("%s: rejected arguments: %v", def.ID, err)
			return mcp.NewToolResultError(err.Error()), nil
		}

		sol, err := form.Submit()
		if err != nil {
			var inErr *problem.InputError
			if errors.As(err, &inErr) {
				logging.MCPDebug("%s: %v", def.ID, err)
			} else {
				logging.MCPWarn("%s: %v", def.ID, err)
			}
			return mcp.NewToolResultError(form.Error()), nil
		}
		return mcp.NewToolResultText(s.renderer.RenderSolution(def, sol)), nil
	}
}

func (s *Server) listHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	q := catalog.Query{}
	if text, ok := args["query"].(string); ok {
		q.Text = text
	}
	if raw, ok := args["category"].(string); ok && raw != "" {
		c, err := catalog.ParseCategory(raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		q.Categories = append(q.Categories, c)
	}
	if raw, ok := args["level"].(string); ok && raw != "" {
		l, err := catalog.ParseLevel(raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		q.Levels = append(q.Levels, l)
	}

	out, err := s.renderer.RenderJSON(s.catalog.Filter(q))
	if err != nil {
		logging.MCPError("render catalog: %v", err)
		return mcp.NewToolResultError(fmt.Sprintf("Error rendering catalog: %v", err)), nil
	}
	return mcp.NewToolResultText(out), nil
}

func (s *Server) catalogResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      catalogURI,
			MIMEType: "text/markdown",
			Text:     s.renderer.RenderCatalog(s.catalog.All()),
		},
	}, nil
}
