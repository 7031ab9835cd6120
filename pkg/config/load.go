package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked for at the repository root.
const FileName = "repokeeper.yml"

var validate = validator.New()

// Load reads and validates the configuration file at the repository root.
func Load(repoRoot string) (*Project, error) {
	return LoadFile(filepath.Join(repoRoot, FileName))
}

// LoadFile reads and validates the configuration from an explicit path.
func LoadFile(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes, defaults and validates a raw YAML configuration document.
func Parse(data []byte) (*Project, error) {
	var project Project

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&project); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyDefaults(&project)

	if err := validate.Struct(&project); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, fmt.Errorf("invalid config: %s", formatValidationErrors(verrs))
		}
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &project, nil
}

// applyDefaults fills in the derived names before validation.
func applyDefaults(p *Project) {
	if p.RepoName == "" {
		p.RepoName = p.ModName
	}
	if p.PyPIName == "" {
		p.PyPIName = p.ModName
	}
	if p.ImportName == "" {
		p.ImportName = strings.ReplaceAll(p.ModName, "-", "_")
	}
	if p.TravisSite == "" {
		p.TravisSite = "com"
	}
	if len(p.Platforms) == 0 {
		p.Platforms = []string{"Windows", "macOS", "Linux"}
	}
}

// formatValidationErrors renders validator errors with the YAML option
// names a user would recognise from the config file.
func formatValidationErrors(verrs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		option := optionName(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", option))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s]", option, fe.Param()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must have at least %s entries", option, fe.Param()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid email address", option))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s validation", option, fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}

// optionName maps a Go struct field name to its YAML option name.
func optionName(field string) string {
	switch field {
	case "ModName":
		return "modname"
	case "ImportName":
		return "import_name"
	case "PyPIName":
		return "pypi_name"
	case "RepoName":
		return "repo_name"
	case "CopyrightYears":
		return "copyright_years"
	case "PythonVersions":
		return "python_versions"
	case "CondaChannels":
		return "conda_channels"
	case "TravisSite":
		return "travis_site"
	case "DockerName":
		return "docker_name"
	case "ShortDesc":
		return "short_desc"
	case "EnableDocs":
		return "enable_docs"
	case "EnableTests":
		return "enable_tests"
	case "EnableConda":
		return "enable_conda"
	case "EnableTravis":
		return "enable_travis"
	case "EnablePreCommit":
		return "enable_pre_commit"
	case "DockerShields":
		return "docker_shields"
	case "OnPyPI":
		return "on_pypi"
	default:
		return strings.ToLower(field)
	}
}
