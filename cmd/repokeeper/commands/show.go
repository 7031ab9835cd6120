package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/repokeeper/repokeeper/pkg/blocks"
	"github.com/repokeeper/repokeeper/pkg/files"
	"github.com/repokeeper/repokeeper/pkg/matrix"
)

func newShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [dir]",
		Short: "Show the computed matrices and managed-file listing",
		Long: `Print the version matrices computed for each CI backend and the
managed files with their gating evaluation, without writing anything.
Useful when debugging a configuration.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(repoRootArg(args))
			if err != nil {
				return err
			}

			toxVersions, err := matrix.Tox(cfg.PythonVersions)
			if err != nil {
				return err
			}

			fmt.Printf("Version matrices for %s:\n", cfg.ModName)
			fmt.Printf("  tox:     %s\n", strings.Join(matrix.ToxEnvs(toxVersions), ", "))
			fmt.Printf("  travis:  %s\n", strings.Join(matrix.TravisSubset(cfg.PythonVersions, toxVersions), ", "))
			fmt.Printf("  actions: %s\n", strings.Join(matrix.ActionsMatrix(cfg.PythonVersions, toxVersions), ", "))

			fmt.Println("\nManaged files:")
			registry := files.NewRegistry(blocks.NewRenderer())
			for _, desc := range registry.Descriptors() {
				status := "enabled"
				for _, flag := range desc.Flags {
					value, known := cfg.Flag(flag)
					if !known {
						status = fmt.Sprintf("unknown flag %q", flag)
						break
					}
					if !value {
						status = fmt.Sprintf("disabled (%s=false)", flag)
						break
					}
				}
				fmt.Printf("  %-14s %s\n", desc.Name, status)
			}

			return nil
		},
	}

	return cmd
}
