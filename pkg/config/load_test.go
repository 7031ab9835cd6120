package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `modname: hello-world
username: octocat
author: Joe Bloggs
email: j.bloggs@example.com
version: 1.2.3
copyright_years: 2020-2021
license: MIT
short_desc: a friendly greeter
python_versions:
  - "3.6"
  - "3.7"
  - "3.8"
  - "3.9-dev"
enable_docs: true
enable_tests: true
on_pypi: true
`

func TestParseValidConfig(t *testing.T) {
	cfg, err := Parse([]byte(validConfig))
	require.NoError(t, err)

	assert.Equal(t, "hello-world", cfg.ModName)
	assert.Equal(t, "octocat", cfg.Username)
	assert.Equal(t, []string{"3.6", "3.7", "3.8", "3.9-dev"}, cfg.PythonVersions)
	assert.True(t, cfg.EnableDocs)
	assert.False(t, cfg.EnableConda)
}

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(validConfig))
	require.NoError(t, err)

	assert.Equal(t, "hello-world", cfg.RepoName)
	assert.Equal(t, "hello-world", cfg.PyPIName)
	assert.Equal(t, "hello_world", cfg.ImportName)
	assert.Equal(t, "com", cfg.TravisSite)
	assert.Equal(t, []string{"Windows", "macOS", "Linux"}, cfg.Platforms)
}

func TestParseExplicitNamesWin(t *testing.T) {
	doc := validConfig + "pypi_name: HelloWorld\nrepo_name: hello_world_repo\n"

	cfg, err := Parse([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, "HelloWorld", cfg.PyPIName)
	assert.Equal(t, "hello_world_repo", cfg.RepoName)
}

func TestParseMissingRequiredOption(t *testing.T) {
	doc := `modname: hello-world
username: octocat
`
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "author is required")
	assert.Contains(t, err.Error(), "python_versions")
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	doc := validConfig + "no_such_option: true\n"

	_, err := Parse([]byte(doc))
	require.Error(t, err)
}

func TestParseRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"bad travis site", validConfig + "travis_site: net\n", "travis_site"},
		{"bad platform", validConfig + "platforms: [Amiga]\n", "platforms"},
		{"bad email", "modname: x\nusername: u\nauthor: a\nemail: not-an-email\nversion: 1\ncopyright_years: 2021\nlicense: MIT\nshort_desc: d\npython_versions: [\"3.8\"]\n", "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFlagLookup(t *testing.T) {
	cfg := &Project{EnableDocs: true, EnablePreCommit: false}

	value, known := cfg.Flag("enable_docs")
	assert.True(t, known)
	assert.True(t, value)

	value, known = cfg.Flag("enable_pre_commit")
	assert.True(t, known)
	assert.False(t, value)

	_, known = cfg.Flag("no_such_flag")
	assert.False(t, known)
}

func TestLoadFromRepoRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte(validConfig), 0o644))

	cfg, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, "hello-world", cfg.ModName)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
}
