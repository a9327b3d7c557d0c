package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/phoenixlwpapix/math-toolkit/cmd/cards/ui"
	"github.com/phoenixlwpapix/math-toolkit/internal/catalog"
	"github.com/phoenixlwpapix/math-toolkit/internal/config"
	"github.com/phoenixlwpapix/math-toolkit/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string
	openCard   string

	// Resolved by PersistentPreRunE
	cfg *config.Config

	// Logger for command-line progress on stderr
	logger = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cards",
	Short: "Math Toolkit - calculator cards for school math and physics",
	Long: `Math Toolkit is a collection of small calculators: chickens and rabbits,
decimals, fractions, equations, factors, primes, averages, shapes and levers.

Run without arguments to browse the cards in the terminal UI. The same
calculators are available one-shot with "cards solve" and to MCP clients
with "cards serve".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath == "" {
			configPath = config.DefaultPath()
		}
		// config init must work even when the existing file is broken
		if cmd.Parent() == configCmd {
			return nil
		}

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if verbose {
			loaded.Logging.DebugMode = true
			loaded.Logging.Level = "debug"
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", configPath, err)
		}
		cfg = loaded

		if err := logging.Initialize(config.LogsDir(configPath), cfg.Logging.Options()); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		logging.Boot("%s %s starting: %s", cfg.Name, cfg.Version, cmd.CommandPath())
		logging.BootDebug("config %s: theme=%s transport=%s", configPath, cfg.Display.Theme, cfg.MCP.Transport)

		// The TUI owns the terminal; only subcommands log to stderr.
		if cmd.HasParent() {
			zcfg := zap.NewDevelopmentConfig()
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if verbose {
				zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			zcfg.OutputPaths = []string{"stderr"}
			zcfg.DisableStacktrace = true
			if logger, err = zcfg.Build(); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			if logging.IsDebugMode() {
				logger.Debug("debug logs enabled", zap.String("dir", config.LogsDir(configPath)))
			}
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		logging.CloseAll()
	},
	RunE: runInteractive,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: ./.mathcards/config.yaml)")
	rootCmd.Flags().StringVar(&openCard, "open", "", "Open a problem card directly by id")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runInteractive launches the card browser and hot-reloads the config file
// while it runs.
func runInteractive(cmd *cobra.Command, args []string) error {
	cat := catalog.Default()
	app := ui.NewApp(cat, cfg)
	if openCard != "" {
		if _, ok := cat.Lookup(openCard); !ok {
			return fmt.Errorf("unknown problem %q (see \"cards list\")", openCard)
		}
		model, _ := app.Update(ui.OpenCardMsg{ID: openCard})
		app = model.(ui.AppModel)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if w, err := startWatcher(ctx, func(c *config.Config) {
		p.Send(ui.ConfigReloadedMsg{Config: c})
	}); err != nil {
		logging.BootWarn("config hot reload disabled: %v", err)
	} else {
		defer w.Stop()
	}

	if _, err := p.Run(); err != nil {
		logging.BootError("terminal UI exited: %v", err)
		return err
	}
	return nil
}

// startWatcher watches configPath and re-initializes logging before calling
// onChange with each valid reload.
func startWatcher(ctx context.Context, onChange func(*config.Config)) (*config.Watcher, error) {
	w, err := config.NewWatcher(configPath, func(c *config.Config) {
		if verbose {
			c.Logging.DebugMode = true
			c.Logging.Level = "debug"
		}
		if err := logging.Initialize(config.LogsDir(configPath), c.Logging.Options()); err != nil {
			logger.Warn("failed to re-initialize logging", zap.Error(err))
		}
		if onChange != nil {
			onChange(c)
		}
	})
	if err != nil {
		return nil, err
	}
	if err := w.Start(ctx); err != nil {
		w.Stop()
		return nil, err
	}
	return w, nil
}
