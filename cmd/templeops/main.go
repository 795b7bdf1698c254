package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/csheth/templeops/internal/config"
	"github.com/csheth/templeops/internal/logging"
	"github.com/csheth/templeops/internal/simulation"
	"github.com/csheth/templeops/internal/tui"
)

type app struct {
	configPath  string
	verbose     bool
	noAltScreen bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "templeops",
		Short: "TempleOps - planning assistant for temple administration",
		Long: `TempleOps answers operational questions about VIP visits, rituals,
festivals and stores, and keeps a running planner of follow-up actions.

Run without arguments to start the interactive interface.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.runTUI,
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file (default: $XDG_CONFIG_HOME/templeops/config.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.Flags().BoolVar(&a.noAltScreen, "no-alt-screen", false, "disable the alternate screen buffer")

	root.AddCommand(
		newAskCmd(a),
		newParseCmd(a),
		newSummarizeCmd(a),
		newConfigCmd(a),
	)
	return root
}

// setup loads the config and builds the logger. Headless commands log to
// stderr when verbose; the TUI keeps logging to the configured file.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	logCfg := cfg.Logging
	if a.verbose {
		logCfg.Level = "debug"
		if cmd != cmd.Root() {
			logCfg.File = ""
		}
	} else if cmd != cmd.Root() {
		logCfg.Level = "off"
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

func (a *app) newSession() *simulation.Session {
	return simulation.NewSession(a.cfg.Pacing(), simulation.WithLogger(a.logger))
}

func (a *app) runTUI(cmd *cobra.Command, args []string) error {
	opts := []tea.ProgramOption{tea.WithContext(cmd.Context()), tea.WithMouseCellMotion()}
	if a.cfg.UI.AltScreen && !a.noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Session: a.newSession(),
			Logger:  a.logger,
		}),
		opts...,
	)
	a.logger.Info("tui started", zap.Bool("alt_screen", a.cfg.UI.AltScreen && !a.noAltScreen))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
