package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [dir]",
		Short: "Validate the configuration file",
		Long: `Load repokeeper.yml, apply defaults and run validation without
touching any file. Exits non-zero and prints the offending options on
failure.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(repoRootArg(args))
			if err != nil {
				return err
			}

			fmt.Printf("✓ Configuration valid: %s v%s by %s\n", cfg.ModName, cfg.Version, cfg.Author)
			return nil
		},
	}

	return cmd
}
