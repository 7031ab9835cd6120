package files

import (
	"context"
	"fmt"
	"strings"

	"github.com/repokeeper/repokeeper/pkg/config"
	"github.com/repokeeper/repokeeper/pkg/matrix"
)

const toxPath = "tox.ini"

// Tox writes the tox configuration parametrized by the version matrix.
// Fully managed, full overwrite.
func (g *Generators) Tox(ctx context.Context, root string, cfg *config.Project) ([]string, error) {
	toxVersions, err := matrix.Tox(cfg.PythonVersions)
	if err != nil {
		return nil, err
	}

	envs := matrix.ToxEnvs(toxVersions)
	actionsVersions := matrix.ActionsMatrix(cfg.PythonVersions, toxVersions)

	var b strings.Builder
	b.WriteString("# This file is managed by 'repokeeper'.\n")
	b.WriteString("[tox]\n")
	b.WriteString(fmt.Sprintf("envlist = %s, mypy\n", strings.Join(envs, ", ")))
	b.WriteString("skip_missing_interpreters = True\n")
	b.WriteString("isolated_build = True\n")
	b.WriteString("\n[testenv]\n")
	b.WriteString("deps = -r{toxinidir}/tests/requirements.txt\n")
	b.WriteString(fmt.Sprintf("commands = python -m pytest --cov=%s tests/\n", cfg.ImportName))
	b.WriteString("\n[testenv:mypy]\n")
	b.WriteString("basepython = python3\n")
	b.WriteString("deps = mypy\n")
	b.WriteString(fmt.Sprintf("commands = mypy %s\n", cfg.ImportName))
	b.WriteString("\n[gh-actions]\n")
	b.WriteString("python =\n")
	for _, v := range actionsVersions {
		b.WriteString(fmt.Sprintf("\t%s: %s\n", v, matrix.ToxEnv(v)))
	}

	if err := write(root, toxPath, b.String()); err != nil {
		return nil, err
	}
	return []string{toxPath}, nil
}
