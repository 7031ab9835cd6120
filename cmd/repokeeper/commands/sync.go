package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/repokeeper/repokeeper/pkg/blocks"
	"github.com/repokeeper/repokeeper/pkg/config"
	"github.com/repokeeper/repokeeper/pkg/engine"
	"github.com/repokeeper/repokeeper/pkg/files"
	"github.com/repokeeper/repokeeper/pkg/telemetry"
)

func newSyncCommand() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "sync [dir]",
		Short: "Bring the managed files in line with the configuration",
		Long: `Re-run the reconciliation against an existing repository. Fully-managed
files are rewritten; the sentinel-delimited blocks of the README and
the docs index are updated in place.

With --watch, repokeeper stays running and re-syncs whenever
repokeeper.yml changes.`,
		Example: `  # One-shot sync of the current directory
  repokeeper sync

  # Keep the repository in sync while editing the config
  repokeeper sync --watch`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := repoRootArg(args)

			logger, err := newLogger()
			if err != nil {
				return err
			}
			ctx := logger.WithContext(cmd.Context())

			registry := files.NewRegistry(blocks.NewRenderer())
			reconciler := engine.NewReconciler(registry, logger)

			if err := syncOnce(ctx, reconciler, root); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			return watchConfig(ctx, logger, reconciler, root)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-sync whenever the config file changes")

	return cmd
}

// syncOnce loads the configuration and runs a single reconciliation.
func syncOnce(ctx context.Context, reconciler *engine.Reconciler, root string) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	manifest, err := reconciler.Reconcile(ctx, root, cfg)
	if err != nil {
		return err
	}

	for _, path := range manifest {
		fmt.Printf("✓ Wrote %s\n", path)
	}
	fmt.Printf("\nSynced %d managed files\n", len(manifest))
	return nil
}

// watchConfig re-runs the reconciliation whenever the configuration file
// is written, until the context is cancelled. Editors replace files on
// save, so the watch is on the directory and filtered by name.
func watchConfig(ctx context.Context, logger *telemetry.Logger, reconciler *engine.Reconciler, root string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	cfgPath := configPath
	if cfgPath == "" {
		cfgPath = filepath.Join(root, config.FileName)
	}
	if err := watcher.Add(filepath.Dir(cfgPath)); err != nil {
		return fmt.Errorf("failed to watch config directory: %w", err)
	}

	log := logger.NewComponentLogger("watch")
	log.Infof("watching %s", cfgPath)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(cfgPath) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			log.Debug("config changed, re-syncing")
			if err := syncOnce(ctx, reconciler, root); err != nil {
				// Keep watching; a half-saved config should not kill the loop.
				log.WithError(err).Error("sync failed")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("watch error")
		}
	}
}
