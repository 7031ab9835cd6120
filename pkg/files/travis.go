package files

import (
	"context"

	"gopkg.in/yaml.v3"

	"github.com/repokeeper/repokeeper/pkg/config"
	"github.com/repokeeper/repokeeper/pkg/matrix"
)

const travisPath = ".travis.yml"

// travisDocument models the Travis CI pipeline definition.
type travisDocument struct {
	Language string   `yaml:"language"`
	Dist     string   `yaml:"dist"`
	Cache    string   `yaml:"cache"`
	Python   []string `yaml:"python"`
	Install  []string `yaml:"install"`
	Script   []string `yaml:"script"`
}

// Travis writes the Travis CI pipeline, parametrized by the Travis
// projection of the version matrix. Gated on enable_travis.
func (g *Generators) Travis(ctx context.Context, root string, cfg *config.Project) ([]string, error) {
	toxVersions, err := matrix.Tox(cfg.PythonVersions)
	if err != nil {
		return nil, err
	}
	versions := matrix.TravisSubset(cfg.PythonVersions, toxVersions)

	doc := travisDocument{
		Language: "python",
		Dist:     "xenial",
		Cache:    "pip",
		Python:   versions,
		Install: []string{
			"pip install --upgrade pip setuptools wheel",
			"pip install tox",
		},
		Script: []string{"tox"},
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, err
	}

	content := "# This file is managed by 'repokeeper'.\n" + string(data)
	if err := write(root, travisPath, content); err != nil {
		return nil, err
	}
	return []string{travisPath}, nil
}
