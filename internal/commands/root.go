package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bueno-budget/bueno/internal/buildinfo"
	"github.com/bueno-budget/bueno/internal/config"
	"github.com/bueno-budget/bueno/internal/ledger"
	"github.com/bueno-budget/bueno/internal/logging"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	dir      string
	logLevel string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:     "bueno",
		Short:   "Personal budget dashboard: expected vs. actual income and expenses",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.dir, "dir", "", "data directory (default $"+config.EnvDir+" or the working directory)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newInitCommand(&flags),
		newIncomeCommand(&flags),
		newExpenseCommand(&flags),
		newSuggestCommand(&flags),
		newDashboardCommand(&flags),
	)

	return rootCmd
}

// app is what a command needs once flags, environment and config are resolved.
type app struct {
	dir    string
	cfg    *config.Config
	ledger *ledger.Service
}

// resolveDir applies flag > environment > working directory.
func resolveDir(flags *globalFlags) (string, error) {
	dir := flags.dir
	if dir == "" {
		dir = os.Getenv(config.EnvDir)
	}
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	return abs, nil
}

// loadConfig reads .env and bueno.yaml for dir and applies overrides.
func loadConfig(flags *globalFlags, dir string) (*config.Config, error) {
	cfg, err := config.LoadDir(dir)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openApp resolves configuration and opens the ledger, creating missing tables.
func openApp(cmd *cobra.Command, flags *globalFlags) (*app, error) {
	if err := config.LoadEnv(); err != nil {
		return nil, err
	}
	dir, err := resolveDir(flags)
	if err != nil {
		return nil, err
	}
	cfg, err := loadConfig(flags, dir)
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	log = log.With().Str("dir", dir).Logger()

	svc, err := ledger.Open(dir, cfg.LedgerFiles(), log)
	if err != nil {
		return nil, err
	}
	return &app{dir: dir, cfg: cfg, ledger: svc}, nil
}
