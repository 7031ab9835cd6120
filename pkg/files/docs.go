package files

import (
	"context"
	"fmt"
	"strings"

	"github.com/repokeeper/repokeeper/pkg/blocks"
	"github.com/repokeeper/repokeeper/pkg/config"
	"github.com/repokeeper/repokeeper/pkg/engine"
)

const docsIndexPath = "doc-source/index.rst"

// Docs keeps the documentation entry point and the API page in sync.
// Gated on enable_docs. The index is partially managed like the README;
// the API page is fully managed.
func (g *Generators) Docs(ctx context.Context, root string, cfg *config.Project) ([]string, error) {
	rendered, err := g.docsBlocks(cfg)
	if err != nil {
		return nil, err
	}

	existing, found, err := read(root, docsIndexPath)
	if err != nil {
		return nil, err
	}

	var content string
	if !found {
		content = freshDocsIndex(cfg, rendered)
	} else {
		content = existing
		for _, block := range rendered {
			merged, ok := blocks.MergeRegex(content, block.re, block.body)
			if !ok {
				return nil, engine.NewMarkerNotFoundError(
					fmt.Sprintf("marker pair for %q block not found", block.name)).
					WithFile(docsIndexPath)
			}
			content = merged
		}
	}

	if err := write(root, docsIndexPath, content); err != nil {
		return nil, err
	}

	apiPath := "doc-source/api/" + cfg.ImportName + ".rst"
	if err := write(root, apiPath, apiPage(cfg)); err != nil {
		return nil, err
	}

	return []string{docsIndexPath, apiPath}, nil
}

// docsBlocks renders the managed blocks of the documentation index.
func (g *Generators) docsBlocks(cfg *config.Project) ([]renderedBlock, error) {
	opts := shieldsOptions(cfg)
	opts.UniqueName = "docs"

	shieldsBlock, err := blocks.Shields(g.renderer, opts)
	if err != nil {
		return nil, err
	}

	installBlock, err := blocks.DocsInstall(g.renderer, installOptions(cfg))
	if err != nil {
		return nil, err
	}

	linksBlock, err := blocks.DocsLinks(g.renderer, blocks.LinksOptions{
		Username: cfg.Username,
		RepoName: cfg.RepoName,
		Docs:     true,
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

// freshDocsIndex composes a brand-new documentation index.
func freshDocsIndex(cfg *config.Project, rendered []renderedBlock) string {
	rule := strings.Repeat("=", len(cfg.ModName))

	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString(cfg.ModName + "\n")
	b.WriteString(rule + "\n")
	for _, block := range rendered {
		b.WriteString("\n" + block.body + "\n")
	}
	b.WriteString("\n.. toctree::\n")
	b.WriteString("\t:hidden:\n")
	b.WriteString("\n\tHome<self>\n")
	b.WriteString("\tapi/" + cfg.ImportName + "\n")
	return b.String()
}

// apiPage composes the automodule page for the package.
func apiPage(cfg *config.Project) string {
	rule := strings.Repeat("=", len(cfg.ModName))
	return rule + "\n" +
		cfg.ModName + "\n" +
		rule + "\n" +
		"\n.. automodule:: " + cfg.ImportName + "\n" +
		"\t:members:\n" +
		"\t:undoc-members:\n"
}
