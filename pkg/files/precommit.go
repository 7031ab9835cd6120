package files

import (
	"context"

	"gopkg.in/yaml.v3"

	"github.com/repokeeper/repokeeper/pkg/config"
)

const preCommitPath = ".pre-commit-config.yaml"

// Hook represents one pre-commit hook inside a repository entry.
type Hook struct {
	// ID selects which hook from the repository to use.
	ID string `yaml:"id"`

	// Args are additional arguments passed to the hook.
	Args []string `yaml:"args,omitempty"`

	// Exclude is a pattern of files the hook skips.
	Exclude string `yaml:"exclude,omitempty"`
}

// Repo represents one repository entry in the pre-commit manifest.
type Repo struct {
	// Repo is the repository URL the hooks are fetched from.
	Repo string `yaml:"repo"`

	// Rev is the revision or tag to clone at.
	Rev string `yaml:"rev"`

	// Hooks lists the hooks used from this repository.
	Hooks []Hook `yaml:"hooks"`
}

// preCommitDocument models the .pre-commit-config.yaml file.
type preCommitDocument struct {
	Repos []Repo `yaml:"repos"`
}

// githubURL joins a username and repository into a GitHub URL.
func githubURL(username, repository string) string {
	return "https://github.com/" + username + "/" + repository
}

// PreCommit writes the pre-commit hook manifest. Gated on
// enable_pre_commit; fully managed.
func (g *Generators) PreCommit(ctx context.Context, root string, cfg *config.Project) ([]string, error) {
	doc := preCommitDocument{
		Repos: []Repo{
			{
				Repo: githubURL("pre-commit", "pre-commit-hooks"),
				Rev:  "v3.4.0",
				Hooks: []Hook{
					{ID: "check-added-large-files"},
					{ID: "check-ast"},
					{ID: "check-byte-order-marker"},
					{ID: "check-case-conflict"},
					{ID: "check-executables-have-shebangs"},
					{ID: "check-json"},
					{ID: "check-toml"},
					{ID: "check-yaml"},
					{ID: "end-of-file-fixer"},
					{ID: "trailing-whitespace"},
				},
			},
			{
				Repo: githubURL("pre-commit", "pygrep-hooks"),
				Rev:  "v1.7.1",
				Hooks: []Hook{
					{ID: "python-no-eval"},
					{ID: "rst-backticks"},
					{ID: "rst-directive-colons"},
					{ID: "rst-inline-touching-normal"},
				},
			},
			{
				Repo: githubURL("PyCQA", "flake8"),
				Rev:  "3.8.4",
				Hooks: []Hook{
					{ID: "flake8"},
				},
			},
		},
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, err
	}

	content := "# This file is managed by 'repokeeper'.\n" + string(data)
	if err := write(root, preCommitPath, content); err != nil {
		return nil, err
	}
	return []string{preCommitPath}, nil
}
