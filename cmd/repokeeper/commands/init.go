package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/repokeeper/repokeeper/pkg/blocks"
	"github.com/repokeeper/repokeeper/pkg/engine"
	"github.com/repokeeper/repokeeper/pkg/files"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Initialize a new managed repository",
		Long: `Initialize a new repository: create the package skeleton (package
directory, tests/, empty requirements files) and run a full
reconciliation so every managed file exists.

The target directory must already contain a repokeeper.yml.`,
		Example: `  # Initialize the current directory
  repokeeper init

  # Initialize another directory with an explicit config
  repokeeper init ~/projects/hello-world --config ./repokeeper.yml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := repoRootArg(args)

			logger, err := newLogger()
			if err != nil {
				return err
			}
			ctx := logger.WithContext(cmd.Context())

			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}

			skeleton, err := files.Skeleton(ctx, root, cfg)
			if err != nil {
				return fmt.Errorf("failed to create skeleton: %w", err)
			}
			for _, path := range skeleton {
				fmt.Printf("✓ Created %s\n", path)
			}

			registry := files.NewRegistry(blocks.NewRenderer())
			reconciler := engine.NewReconciler(registry, logger)

			manifest, err := reconciler.Reconcile(ctx, root, cfg)
			if err != nil {
				return err
			}
			for _, path := range manifest {
				fmt.Printf("✓ Wrote %s\n", path)
			}

			fmt.Printf("\nInitialized %s (%d managed files)\n", cfg.ModName, len(manifest))
			return nil
		},
	}

	return cmd
}
