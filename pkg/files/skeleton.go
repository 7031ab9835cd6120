package files

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/repokeeper/repokeeper/pkg/config"
)

// Skeleton lays down the initial repository structure for a new project:
// the package directory, the tests directory and the empty requirements
// files. It never overwrites an existing file, so running init over a
// populated repository is safe. Not registry-managed; the init flow calls
// it once before the first reconciliation.
func Skeleton(ctx context.Context, root string, cfg *config.Project) ([]string, error) {
	initPy := fmt.Sprintf("#!/usr/bin/env python\n\"\"\"\n%s\n\"\"\"\n\n__author__ = %q\n__version__ = %q\n",
		cfg.ShortDesc, cfg.Author, cfg.Version)

	entries := []struct {
		rel     string
		content string
	}{
		{cfg.ImportName + "/__init__.py", initPy},
		{"requirements.txt", ""},
		{"tests/__init__.py", ""},
		{"tests/requirements.txt", "pytest\npytest-cov\n"},
	}

	var written []string
	for _, entry := range entries {
		abs := filepath.Join(root, filepath.FromSlash(entry.rel))
		if _, err := os.Stat(abs); err == nil {
			continue
		}
		if err := write(root, entry.rel, entry.content); err != nil {
			return written, err
		}
		written = append(written, entry.rel)
	}

	return written, nil
}
