package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phoenixlwpapix/math-toolkit/internal/catalog"
	"github.com/phoenixlwpapix/math-toolkit/internal/config"
	"github.com/phoenixlwpapix/math-toolkit/internal/mcp"
)

var (
	serveTransport string
	serveAddr      string
)

// serveCmd exposes every problem card as an MCP tool
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculators to MCP clients",
	Long: `Runs an MCP server with one tool per problem card plus list_problems
and a catalog://problems resource.

The stdio transport is what desktop MCP clients launch. The http transport
serves the streamable HTTP endpoint at /mcp. Flags override mcp.transport and
mcp.addr from the config file, which is watched for logging changes.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveTransport, "transport", "", "Transport: stdio or http (default from config)")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address for the http transport (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	opts := mcp.ServeOptions{
		Transport: cfg.MCP.Transport,
		Addr:      cfg.MCP.Addr,
		Stdin:     cmd.InOrStdin(),
		Stdout:    cmd.OutOrStdout(),
	}
	if serveTransport != "" {
		opts.Transport = serveTransport
	}
	if serveAddr != "" {
		opts.Addr = serveAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := mcp.NewServer(catalog.Default(), cfg.Version)
	logger.Info("starting MCP server",
		zap.String("transport", opts.Transport),
		zap.String("addr", opts.Addr))

	return srv.Serve(ctx, opts, watchConfig)
}

// watchConfig keeps logging in step with the config file until ctx ends. A
// missing config directory only disables the reload.
func watchConfig(ctx context.Context) error {
	w, err := startWatcher(ctx, func(c *config.Config) {
		logger.Info("config reloaded", zap.String("path", configPath))
	})
	if err != nil {
		logger.Debug("config hot reload disabled", zap.Error(err))
		<-ctx.Done()
		return nil
	}
	<-ctx.Done()
	w.Stop()
	return nil
}
