// Package blocks renders the reusable managed blocks of reStructuredText
// (shields, installation instructions, short description, links) and
// merges them into partially-managed files between sentinel marker lines.
package blocks

import (
	"fmt"
	"strings"

	"github.com/repokeeper/repokeeper/pkg/engine"
)

// ShieldsOptions are the recognized options of the shields block.
type ShieldsOptions struct {
	Username string
	RepoName string
	Version  string

	Conda      bool
	Tests      bool
	Docs       bool
	TravisSite string
	PyPIName   string

	// UniqueName suffixes every substitution identifier in the block so
	// multiple instances (e.g. nested projects) do not collide. A leading
	// underscore is added when supplied without one.
	UniqueName string

	DockerShields bool
	DockerName    string
	Platforms     []string
	PreCommit     bool
	OnPyPI        bool

	// MaintainedYear parametrizes the maintained shield, keeping the
	// block a pure function of its options.
	MaintainedYear string
}

// InstallOptions are the recognized options of the installation blocks.
type InstallOptions struct {
	ModName       string
	PyPIName      string
	PyPI          bool
	Conda         bool
	CondaChannels []string
}

// LinksOptions are the recognized options of the links blocks.
type LinksOptions struct {
	Username string
	RepoName string
	Docs     bool
}

// Shields renders the shields block for insertion into the README.
func Shields(r Renderer, opts ShieldsOptions) (string, error) {
	if opts.UniqueName != "" && !strings.HasPrefix(opts.UniqueName, "_") {
		opts.UniqueName = "_" + opts.UniqueName
	}
	if opts.PyPIName == "" {
		opts.PyPIName = opts.RepoName
	}
	return r.Render("shields", opts)
}

// ReadmeInstall renders the installation instructions for the README.
// Conda instructions require the conda channels to be supplied.
func ReadmeInstall(r Renderer, opts InstallOptions) (string, error) {
	if opts.Conda && len(opts.CondaChannels) == 0 {
		return "", engine.NewConfigurationError(
			"conda builds require a list of conda channels", nil).
			WithOption("conda_channels")
	}
	if opts.PyPIName == "" {
		opts.PyPIName = opts.ModName
	}
	if !opts.PyPI {
		return StartMarker("installation") + "\n" + EndMarker("installation"), nil
	}
	return r.Render("install", opts)
}

// ShortDesc renders the short description block.
func ShortDesc(shortDesc string) string {
	return fmt.Sprintf(".. start short_desc\n\n**%s**\n\n.. end short_desc", shortDesc)
}

// Links renders the links block for the README.
func Links(r Renderer, opts LinksOptions) (string, error) {
	return r.Render("links", opts)
}

// DocsInstall renders the installation directive for the documentation.
func DocsInstall(r Renderer, opts InstallOptions) (string, error) {
	if opts.Conda && len(opts.CondaChannels) == 0 {
		return "", engine.NewConfigurationError(
			"conda builds require a list of conda channels", nil).
			WithOption("conda_channels")
	}
	if opts.PyPIName == "" {
		opts.PyPIName = opts.ModName
	}
	return r.Render("docs_install", opts)
}

// DocsLinks renders the links block for the documentation.
func DocsLinks(r Renderer, opts LinksOptions) (string, error) {
	return r.Render("docs_links", opts)
}
