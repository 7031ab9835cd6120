package files

import (
	"context"
	"fmt"
	"strings"

	"github.com/repokeeper/repokeeper/pkg/config"
)

const (
	pylintrcPath   = ".pylintrc"
	lintRollerPath = "lint_roller.sh"
)

// lintFixList are the flake8 codes autopep8 is allowed to fix in place.
var lintFixList = []string{
	"E301", "E303", "E304", "E305", "E306", "E502",
	"W291", "W293", "W391",
	"E226", "E225", "E241", "E231",
}

// lintBelligerentList are fixed even in aggressive mode only.
var lintBelligerentList = []string{"W292", "E265"}

// lintWarnList are reported but never auto-fixed.
var lintWarnList = []string{
	"E101", "E111", "E112", "E113",
	"E121", "E122", "E125", "E127", "E128", "E129", "E131", "E133",
	"E201", "E202", "E203", "E211", "E222", "E223", "E224", "E225",
	"E227", "E228", "E242", "E251", "E261", "E262", "E271", "E272",
	"E302", "E402", "E703", "E711", "E712", "E713", "E714", "E721",
	"W504",
}

// Lint writes the pylint configuration and the lint_roller helper script.
// Both are fully managed.
func (g *Generators) Lint(ctx context.Context, root string, cfg *config.Project) ([]string, error) {
	if err := write(root, pylintrcPath, pylintrc()); err != nil {
		return nil, err
	}
	if err := writeExecutable(root, lintRollerPath, lintRoller(cfg)); err != nil {
		return nil, err
	}
	return []string{pylintrcPath, lintRollerPath}, nil
}

func pylintrc() string {
	return `[MASTER]
persistent=yes
jobs=0
unsafe-load-any-extension=no

[MESSAGES CONTROL]
disable=all
enable=assert-on-tuple,astroid-error,bad-except-order,bad-inline-option,
	bad-option-value,bad-reversed-sequence,bare-except,broad-except,
	cell-var-from-loop,dangerous-default-value,duplicate-argument-name,
	duplicate-bases,duplicate-except,duplicate-key,function-redefined,
	global-at-module-level,init-is-generator,invalid-all-object,
	misplaced-bare-raise,missing-kwoa,mixed-line-endings,
	nonexistent-operator,not-in-loop,notimplemented-raised,
	raising-bad-type,redundant-keyword-arg,return-in-init,
	return-outside-function,syntax-error,too-many-function-args,
	undefined-variable,unexpected-keyword-arg,unreachable,unredefined-loop-name

[REPORTS]
output-format=text
reports=no
score=yes

[FORMAT]
max-line-length=120
indent-string='\t'
`
}

func lintRoller(cfg *config.Project) string {
	var b strings.Builder
	b.WriteString("#!/bin/bash\n")
	b.WriteString("# This file is managed by 'repokeeper'.\n\n")
	b.WriteString(fmt.Sprintf("modname=%q\n\n", cfg.ImportName))
	b.WriteString("autopep8 --in-place --select " + strings.Join(lintFixList, ",") + " -a --recursive \"${modname}\"\n")
	b.WriteString("autopep8 --in-place --select " + strings.Join(lintBelligerentList, ",") + " -a -a --recursive \"${modname}\"\n\n")
	b.WriteString("flake8 --select " + strings.Join(lintWarnList, ",") + " \"${modname}\" tests\n")
	b.WriteString("\nexit 0\n")
	return b.String()
}
