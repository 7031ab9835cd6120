package config

// Project is the fully-validated configuration for a managed repository.
// It is constructed once per invocation, by Load or by a test, and is
// read-only thereafter. Generators address fields by name and never invent
// defaults; defaulting happens in Load before validation.
type Project struct {
	// ModName is the name of the program / library.
	ModName string `yaml:"modname" validate:"required"`

	// ImportName is the name the package is imported as. Defaults to
	// ModName with hyphens replaced by underscores.
	ImportName string `yaml:"import_name,omitempty"`

	// PyPIName is the name of the project on PyPI. Defaults to ModName.
	PyPIName string `yaml:"pypi_name,omitempty"`

	// RepoName is the name of the repository on GitHub. Defaults to ModName.
	RepoName string `yaml:"repo_name,omitempty"`

	// Username is the GitHub account that owns the repository.
	Username string `yaml:"username" validate:"required"`

	// Author is the name of the package author.
	Author string `yaml:"author" validate:"required"`

	// Email is the contact address of the package author.
	Email string `yaml:"email" validate:"required,email"`

	// Version is the current version of the package.
	Version string `yaml:"version" validate:"required"`

	// CopyrightYears is the years shown in the license, e.g. "2020-2021".
	CopyrightYears string `yaml:"copyright_years" validate:"required"`

	// License is the license identifier (e.g. "MIT").
	License string `yaml:"license" validate:"required"`

	// ShortDesc is a one-line description of the package.
	ShortDesc string `yaml:"short_desc" validate:"required"`

	// PythonVersions lists the supported Python versions, each either
	// "X.Y" or "X.Y-<suffix>" for a pre-release channel.
	PythonVersions []string `yaml:"python_versions" validate:"required,min=1"`

	// Platforms lists the supported platforms ("Windows", "macOS", "Linux").
	Platforms []string `yaml:"platforms,omitempty" validate:"dive,oneof=Windows macOS Linux"`

	// CondaChannels lists the Anaconda channels required to install the
	// package. Required when EnableConda is true.
	CondaChannels []string `yaml:"conda_channels,omitempty"`

	// TravisSite selects the Travis CI site, "com" or "org".
	TravisSite string `yaml:"travis_site,omitempty" validate:"omitempty,oneof=com org"`

	// DockerName is the name of the Docker image on DockerHub.
	DockerName string `yaml:"docker_name,omitempty"`

	// EnableDocs enables the documentation sources and docs shields.
	EnableDocs bool `yaml:"enable_docs"`

	// EnableTests enables the coverage shields.
	EnableTests bool `yaml:"enable_tests"`

	// EnableConda enables the conda recipe and Anaconda shields.
	EnableConda bool `yaml:"enable_conda"`

	// EnableTravis enables the Travis CI pipeline definition.
	EnableTravis bool `yaml:"enable_travis"`

	// EnablePreCommit enables the pre-commit hook manifest.
	EnablePreCommit bool `yaml:"enable_pre_commit"`

	// DockerShields enables the DockerHub shields.
	DockerShields bool `yaml:"docker_shields"`

	// OnPyPI indicates whether the package is published on PyPI.
	OnPyPI bool `yaml:"on_pypi"`
}

// Flag looks up a named gating boolean. The second return reports whether
// the name is a declared flag at all; gating on an undeclared name is a
// caller error, surfaced by the reconciliation driver.
func (p *Project) Flag(name string) (bool, bool) {
	switch name {
	case "enable_docs":
		return p.EnableDocs, true
	case "enable_tests":
		return p.EnableTests, true
	case "enable_conda":
		return p.EnableConda, true
	case "enable_travis":
		return p.EnableTravis, true
	case "enable_pre_commit":
		return p.EnablePreCommit, true
	case "docker_shields":
		return p.DockerShields, true
	case "on_pypi":
		return p.OnPyPI, true
	default:
		return false, false
	}
}

// HasPlatform reports whether a platform is listed in Platforms.
func (p *Project) HasPlatform(name string) bool {
	for _, plat := range p.Platforms {
		if plat == name {
			return true
		}
	}
	return false
}
