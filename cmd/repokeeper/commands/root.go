package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/repokeeper/repokeeper/pkg/config"
	"github.com/repokeeper/repokeeper/pkg/telemetry"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// Execute runs the root command
func Execute(ctx context.Context, version, commit, buildDate string) error {
	rootCmd := newRootCommand(version, commit, buildDate)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCommand(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "repokeeper",
		Short: "repokeeper - repository scaffolding and configuration sync",
		Long: `repokeeper generates and keeps in sync the managed files of a Python
project repository from a declarative repokeeper.yml configuration:
README badges, license text, CI pipeline definitions, linter
configuration, pre-commit hook manifests and packaging metadata.

Fully-managed files are overwritten whole; the README and the docs
index are updated in place between '.. start <block>' / '.. end <block>'
sentinel lines, preserving all surrounding hand-written content.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	}

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path (default <repo>/repokeeper.yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newSyncCommand())
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newShowCommand())

	return rootCmd
}

// newLogger builds the logger shared by the subcommands.
func newLogger() (*telemetry.Logger, error) {
	level := "info"
	if verbose {
		level = "debug"
	}
	return telemetry.NewLogger(telemetry.LoggingConfig{
		Level:  level,
		Format: "console",
		Output: "stderr",
	})
}

// loadConfig loads the project configuration for a repository root,
// honouring the --config override.
func loadConfig(repoRoot string) (*config.Project, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load(repoRoot)
}

// repoRootArg resolves the optional repository-root positional argument.
func repoRootArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
