package files

import (
	"context"
	"strings"

	"github.com/repokeeper/repokeeper/pkg/config"
)

const gitignorePath = ".gitignore"

// gitignoreEntries is the base ignore list for a Python project.
var gitignoreEntries = []string{
	"__pycache__/",
	"*.py[cod]",
	"*$py.class",
	"*.so",
	".Python",
	"build/",
	"develop-eggs/",
	"dist/",
	"downloads/",
	"eggs/",
	".eggs/",
	"lib/",
	"lib64/",
	"parts/",
	"sdist/",
	"var/",
	"wheels/",
	"*.egg-info/",
	".installed.cfg",
	"*.egg",
	"*.manifest",
	"*.spec",
	"pip-log.txt",
	"pip-delete-this-directory.txt",
	"htmlcov/",
	".tox/",
	".coverage",
	".coverage.*",
	".cache",
	"nosetests.xml",
	"coverage.xml",
	"*.cover",
	".hypothesis/",
	".pytest_cache/",
	"docs/_build/",
	"doc-source/build/",
	".mypy_cache/",
	".venv",
	"env/",
	"venv/",
	"ENV/",
	".idea",
	"*.iml",
	"cover/",
}

// Gitignore writes the ignore file. Fully managed, full overwrite.
func (g *Generators) Gitignore(ctx context.Context, root string, cfg *config.Project) ([]string, error) {
	content := "# This file is managed by 'repokeeper'.\n" +
		strings.Join(gitignoreEntries, "\n") + "\n"

	if err := write(root, gitignorePath, content); err != nil {
		return nil, err
	}
	return []string{gitignorePath}, nil
}
