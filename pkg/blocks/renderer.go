package blocks

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/repokeeper/repokeeper/pkg/engine"
	"github.com/repokeeper/repokeeper/pkg/shields"
)

// Renderer renders a named template with a context value. The blocks
// package depends on this capability but does not own template discovery;
// swapping the engine does not touch the merger or the generators.
type Renderer interface {
	Render(name string, data interface{}) (string, error)
}

// templateRenderer is the default Renderer, backed by text/template with
// every block template parsed once at construction.
type templateRenderer struct {
	templates *template.Template
}

// NewRenderer creates the default template renderer. Template bodies are
// compiled in; a parse failure is a build bug and panics.
func NewRenderer() Renderer {
	root := template.New("blocks").Funcs(template.FuncMap{
		"hasPlatform": func(platforms []string, name string) bool {
			for _, p := range platforms {
				if p == name {
					return true
				}
			}
			return false
		},
		"join":       strings.Join,
		"trimPrefix": func(s, prefix string) string { return strings.TrimPrefix(s, prefix) },

		"docsShield":                  shields.Docs,
		"docsCheckShield":             shields.DocsCheck,
		"travisShield":                shields.Travis,
		"actionsWindowsShield":        shields.ActionsWindows,
		"actionsMacOSShield":          shields.ActionsMacOS,
		"requiresShield":              shields.Requires,
		"coverallsShield":             shields.Coveralls,
		"codefactorShield":            shields.CodeFactor,
		"pypiVersionShield":           shields.PyPIVersion,
		"pythonVersionsShield":        shields.PythonVersions,
		"pythonImplementationsShield": shields.PythonImplementations,
		"wheelShield":                 shields.Wheel,
		"condaVersionShield":          shields.CondaVersion,
		"condaPlatformShield":         shields.CondaPlatform,
		"licenseShield":               shields.License,
		"languageShield":              shields.Language,
		"activityShield":              shields.Activity,
		"lastCommitShield":            shields.LastCommit,
		"maintainedShield":            shields.Maintained,
		"dockerBuildShield":           shields.DockerBuild,
		"dockerAutomatedShield":       shields.DockerAutomated,
		"dockerSizeShield":            shields.DockerSize,
		"preCommitShield":             shields.PreCommit,
	})

	for name, body := range blockTemplates {
		template.Must(root.New(name).Parse(body))
	}

	return &templateRenderer{templates: root}
}

// Render implements Renderer. Engine failures surface as template_render
// errors, never swallowed.
func (r *templateRenderer) Render(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", engine.NewTemplateRenderError(
			fmt.Sprintf("failed to render block template %q", name), err)
	}
	return buf.String(), nil
}
