package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bueno-budget/bueno/internal/config"
)

func newInitCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "init [directory]",
		Short: "Create the config file and empty tables",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				flags.dir = args[0]
			}
			dir, err := resolveDir(flags)
			if err != nil {
				return err
			}
			return runInit(cmd, flags, dir)
		},
	}
}

func runInit(cmd *cobra.Command, flags *globalFlags, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	// Write bueno.yaml unless one is already there.
	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); errors.Is(err, fs.ErrNotExist) {
		if err := config.Save(cfgPath, config.Default()); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
	}

	// Opening the ledger creates any missing table file.
	flags.dir = dir
	a, err := openApp(cmd, flags)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized bueno ledger at %s\n", a.dir)
	return nil
}
