package files

import (
	"context"

	"gopkg.in/yaml.v3"

	"github.com/repokeeper/repokeeper/pkg/config"
	"github.com/repokeeper/repokeeper/pkg/engine"
)

const condaRecipePath = "conda/meta.yaml"

// condaRecipe models the conda-build recipe document.
type condaRecipe struct {
	Package struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"package"`
	Source struct {
		URL string `yaml:"url"`
	} `yaml:"source"`
	Build struct {
		Noarch string `yaml:"noarch"`
		Script string `yaml:"script"`
	} `yaml:"build"`
	Requirements struct {
		Host []string `yaml:"host"`
		Run  []string `yaml:"run"`
	} `yaml:"requirements"`
	About struct {
		Home    string `yaml:"home"`
		License string `yaml:"license"`
		Summary string `yaml:"summary"`
	} `yaml:"about"`
	Extra struct {
		Channels []string `yaml:"channels"`
	} `yaml:"extra"`
}

// CondaRecipe writes the conda-build recipe. Gated on enable_conda; fully
// managed. The channels the package depends on are a hard requirement.
func (g *Generators) CondaRecipe(ctx context.Context, root string, cfg *config.Project) ([]string, error) {
	if len(cfg.CondaChannels) == 0 {
		return nil, engine.NewConfigurationError(
			"conda builds require a list of conda channels", nil).
			WithOption("conda_channels")
	}

	var doc condaRecipe
	doc.Package.Name = cfg.PyPIName
	doc.Package.Version = cfg.Version
	doc.Source.URL = "https://pypi.io/packages/source/" + cfg.PyPIName[:1] + "/" + cfg.PyPIName
	doc.Build.Noarch = "python"
	doc.Build.Script = "python -m pip install . --no-deps --ignore-installed"
	doc.Requirements.Host = []string{"python", "pip"}
	doc.Requirements.Run = []string{"python"}
	doc.About.Home = githubURL(cfg.Username, cfg.RepoName)
	doc.About.License = cfg.License
	doc.About.Summary = cfg.ShortDesc
	doc.Extra.Channels = cfg.CondaChannels

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, err
	}

	content := "# This file is managed by 'repokeeper'.\n" + string(data)
	if err := write(root, condaRecipePath, content); err != nil {
		return nil, err
	}
	return []string{condaRecipePath}, nil
}
