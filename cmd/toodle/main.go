// Package main implements the toodle CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"toodle/internal/config"
	"toodle/internal/paths"
	"toodle/internal/ui"
	"toodle/shell"
	"toodle/storage"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var (
	flagFile    string
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "toodle",
	Short: "Toodle - a conversational task tracker",
	Long: `Toodle tracks todos, deadlines, and events through a line-based
conversation. Type 'help' inside the session for the command reference.`,
	Args:         cobra.NoArgs,
	RunE:         runShell,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&flagFile, "file", "", "task file location (default ~/.local/share/toodle/tasks.jsonl)")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "disable terminal styling")
	setFlagAliases(rootCmd.Flags(), map[string]string{"data": "file"})
}

func runShell(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return err
	}

	path, err := resolveDataFile(cfg)
	if err != nil {
		return err
	}

	console := ui.NewConsole(cmd.OutOrStdout(), ui.Options{
		NoColor:     flagNoColor || cfg.UI.NoColor,
		Interactive: ui.StdinIsTerminal(),
	})

	session, err := shell.New(storage.NewFile(path), console)
	if err != nil {
		return err
	}

	return session.Run(cmd.InOrStdin())
}

// resolveDataFile picks the task file location: flag, then config, then the
// default under the user's data directory.
func resolveDataFile(cfg *config.Config) (string, error) {
	if flagFile != "" {
		return flagFile, nil
	}
	if cfg.Storage.Path != "" {
		return cfg.Storage.Path, nil
	}
	return paths.DefaultDataFile()
}
