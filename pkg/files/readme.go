package files

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/repokeeper/repokeeper/pkg/blocks"
	"github.com/repokeeper/repokeeper/pkg/config"
	"github.com/repokeeper/repokeeper/pkg/engine"
)

// readmePath is the README at the repository root.
const readmePath = "README.rst"

// Readme keeps the README in sync. The file is partially managed: only
// the short_desc, shields, installation and links blocks are regenerated,
// every byte outside the sentinel markers is user-owned and preserved.
// A missing README is created whole; a README missing one of its marker
// pairs fails with a marker_not_found error rather than guessing where
// the block belongs.
func (g *Generators) Readme(ctx context.Context, root string, cfg *config.Project) ([]string, error) {
	rendered, err := g.readmeBlocks(cfg)
	if err != nil {
		return nil, err
	}

	existing, found, err := read(root, readmePath)
	if err != nil {
		return nil, err
	}

	var content string
	if !found {
		content = freshReadme(cfg, rendered)
	} else {
		content = existing
		for _, block := range rendered {
			merged, ok := blocks.MergeRegex(content, block.re, block.body)
			if !ok {
				return nil, engine.NewMarkerNotFoundError(
					fmt.Sprintf("marker pair for %q block not found", block.name)).
					WithFile(readmePath)
			}
			content = merged
		}
	}

	if err := write(root, readmePath, content); err != nil {
		return nil, err
	}
	return []string{readmePath}, nil
}

// renderedBlock pairs a managed README block with its marker pattern.
type renderedBlock struct {
	name string
	re   *regexp.Regexp
	body string
}

// readmeBlocks renders every managed README block from the configuration.
func (g *Generators) readmeBlocks(cfg *config.Project) ([]renderedBlock, error) {
	shieldsBlock, err := blocks.Shields(g.renderer, shieldsOptions(cfg))
	if err != nil {
		return nil, err
	}

	installBlock, err := blocks.ReadmeInstall(g.renderer, installOptions(cfg))
	if err != nil {
		return nil, err
	}

	linksBlock, err := blocks.Links(g.renderer, blocks.LinksOptions{
		Username: cfg.Username,
		RepoName: cfg.RepoName,
		Docs:     cfg.EnableDocs,
	})
	if err != nil {
		return nil, err
	}

	return []renderedBlock{
		{name: "short_desc", re: blocks.ShortDescRegex, body: blocks.ShortDesc(cfg.ShortDesc)},
		{name: "shields", re: blocks.ShieldsRegex, body: shieldsBlock},
		{name: "installation", re: blocks.InstallationRegex, body: installBlock},
		{name: "links", re: blocks.LinksRegex, body: linksBlock},
	}, nil
}

// freshReadme composes a brand-new README containing every managed block.
func freshReadme(cfg *config.Project, rendered []renderedBlock) string {
	rule := strings.Repeat("=", len(cfg.ModName))

	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString(cfg.ModName + "\n")
	b.WriteString(rule + "\n")
	for _, block := range rendered {
		b.WriteString("\n" + block.body + "\n")
	}
	return b.String()
}
