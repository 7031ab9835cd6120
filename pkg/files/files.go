// Package files implements the generators for every file managed by
// repokeeper and assembles them into the reconciliation registry.
package files

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/repokeeper/repokeeper/pkg/blocks"
	"github.com/repokeeper/repokeeper/pkg/config"
	"github.com/repokeeper/repokeeper/pkg/engine"
)

// Generators bundles the managed-file generators around a shared template
// renderer.
type Generators struct {
	renderer blocks.Renderer
}

// NewGenerators creates the generator set.
func NewGenerators(renderer blocks.Renderer) *Generators {
	return &Generators{renderer: renderer}
}

// NewRegistry builds the managed-file registry in its canonical order.
// Ordering matters: the README and docs generators read files written
// earlier in the same run only through the configuration, but the listing
// order is also the order callers see in manifests and logs.
func NewRegistry(renderer blocks.Renderer) *engine.Registry {
	g := NewGenerators(renderer)

	registry := engine.NewRegistry()
	registry.MustRegister("readme", g.Readme)
	registry.MustRegister("license", g.License)
	registry.MustRegister("gitignore", g.Gitignore)
	registry.MustRegister("lint", g.Lint)
	registry.MustRegister("tox", g.Tox)
	registry.MustRegister("actions", g.Actions)
	registry.MustRegister("travis", g.Travis, "enable_travis")
	registry.MustRegister("pre_commit", g.PreCommit, "enable_pre_commit")
	registry.MustRegister("conda_recipe", g.CondaRecipe, "enable_conda")
	registry.MustRegister("docs", g.Docs, "enable_docs")

	return registry
}

// write materializes a relative POSIX path under the repository root,
// creating parent directories as needed.
func write(root, rel, content string) error {
	abs := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return err
	}
	return os.WriteFile(abs, []byte(content), 0o644)
}

// writeExecutable is write with the executable bit set, for generated
// shell scripts.
func writeExecutable(root, rel, content string) error {
	abs := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return err
	}
	return os.WriteFile(abs, []byte(content), 0o755)
}

// read returns the current content of a relative path, with a found flag.
func read(root, rel string) (string, bool, error) {
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

// maintainedYear extracts the most recent year from copyright_years,
// e.g. "2020-2021" -> "2021".
func maintainedYear(cfg *config.Project) string {
	parts := strings.Split(cfg.CopyrightYears, "-")
	return strings.TrimSpace(parts[len(parts)-1])
}

// shieldsOptions projects the configuration onto the shields block options.
func shieldsOptions(cfg *config.Project) blocks.ShieldsOptions {
	return blocks.ShieldsOptions{
		Username:       cfg.Username,
		RepoName:       cfg.RepoName,
		Version:        cfg.Version,
		Conda:          cfg.EnableConda,
		Tests:          cfg.EnableTests,
		Docs:           cfg.EnableDocs,
		TravisSite:     cfg.TravisSite,
		PyPIName:       cfg.PyPIName,
		DockerShields:  cfg.DockerShields,
		DockerName:     cfg.DockerName,
		Platforms:      cfg.Platforms,
		PreCommit:      cfg.EnablePreCommit,
		OnPyPI:         cfg.OnPyPI,
		MaintainedYear: maintainedYear(cfg),
	}
}

// installOptions projects the configuration onto the installation block
// options.
func installOptions(cfg *config.Project) blocks.InstallOptions {
	return blocks.InstallOptions{
		ModName:       cfg.ModName,
		PyPIName:      cfg.PyPIName,
		PyPI:          cfg.OnPyPI,
		Conda:         cfg.EnableConda,
		CondaChannels: cfg.CondaChannels,
	}
}
