package files

import (
	"context"

	"gopkg.in/yaml.v3"

	"github.com/repokeeper/repokeeper/pkg/config"
	"github.com/repokeeper/repokeeper/pkg/matrix"
)

const actionsWorkflowPath = ".github/workflows/python_ci.yml"

// workflow models a GitHub Actions workflow document.
type workflow struct {
	Name string                 `yaml:"name"`
	On   workflowTriggers       `yaml:"on"`
	Jobs map[string]workflowJob `yaml:"jobs"`
}

type workflowTriggers struct {
	Push        struct{} `yaml:"push"`
	PullRequest struct{} `yaml:"pull_request"`
}

type workflowJob struct {
	Name     string           `yaml:"name"`
	RunsOn   string           `yaml:"runs-on"`
	Strategy workflowStrategy `yaml:"strategy"`
	Steps    []workflowStep   `yaml:"steps"`
}

type workflowStrategy struct {
	FailFast bool           `yaml:"fail-fast"`
	Matrix   workflowMatrix `yaml:"matrix"`
}

type workflowMatrix struct {
	PythonVersion []string `yaml:"python-version"`
}

type workflowStep struct {
	Name string            `yaml:"name,omitempty"`
	Uses string            `yaml:"uses,omitempty"`
	With map[string]string `yaml:"with,omitempty"`
	Run  string            `yaml:"run,omitempty"`
}

// Actions writes the GitHub Actions CI pipeline, parametrized by the
// Actions projection of the version matrix. Fully managed.
func (g *Generators) Actions(ctx context.Context, root string, cfg *config.Project) ([]string, error) {
	toxVersions, err := matrix.Tox(cfg.PythonVersions)
	if err != nil {
		return nil, err
	}
	versions := matrix.ActionsMatrix(cfg.PythonVersions, toxVersions)

	doc := workflow{
		Name: "Python CI",
		Jobs: map[string]workflowJob{
			"tests": {
				Name:   "Tests",
				RunsOn: "ubuntu-latest",
				Strategy: workflowStrategy{
					FailFast: false,
					Matrix:   workflowMatrix{PythonVersion: versions},
				},
				Steps: []workflowStep{
					{Name: "Checkout", Uses: "actions/checkout@v2"},
					{
						Name: "Set up Python",
						Uses: "actions/setup-python@v2",
						With: map[string]string{"python-version": "${{ matrix.python-version }}"},
					},
					{Name: "Install dependencies", Run: "python -m pip install --upgrade pip tox tox-gh-actions"},
					{Name: "Run tests", Run: "python -m tox"},
				},
			},
		},
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, err
	}

	content := "# This file is managed by 'repokeeper'.\n" + string(data)
	if err := write(root, actionsWorkflowPath, content); err != nil {
		return nil, err
	}
	return []string{actionsWorkflowPath}, nil
}
