// Package matrix computes the version matrices used to parametrize the
// generated CI files: the tox environment list, the Travis-compatible
// subset and the GitHub Actions matrix.
package matrix

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/repokeeper/repokeeper/pkg/engine"
)

// versionRe matches "X.Y" with an optional pre-release channel suffix.
// Anything else in a python_versions entry is a configuration error.
var versionRe = regexp.MustCompile(`^(\d+)\.(\d+)(?:-(dev|alpha\d*|beta\d*|rc\d*))?$`)

// Tox maps the supported Python versions into a deduplicated,
// deterministically ordered sequence suitable for a tox-style environment
// list. A concrete release sorts before a pre-release of the same minor
// version; otherwise the first-appearance input order is preserved, so
// equal-rank entries are stable.
func Tox(versions []string) ([]string, error) {
	type entry struct {
		version string
		pre     bool
	}

	var baseOrder []string
	grouped := make(map[string][]entry)
	seen := make(map[string]struct{})

	for _, v := range versions {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}

		base, pre, err := parse(v)
		if err != nil {
			return nil, err
		}

		if _, known := grouped[base]; !known {
			baseOrder = append(baseOrder, base)
		}
		grouped[base] = append(grouped[base], entry{version: v, pre: pre})
	}

	out := make([]string, 0, len(seen))
	for _, base := range baseOrder {
		for _, e := range grouped[base] {
			if !e.pre {
				out = append(out, e.version)
			}
		}
		for _, e := range grouped[base] {
			if e.pre {
				out = append(out, e.version)
			}
		}
	}

	return out, nil
}

// TravisSubset filters the tox sequence to the versions meaningful for
// Travis CI, preserving the relative order of tox. Travis provides images
// for pre-release channels, so every tox entry listed in all survives.
func TravisSubset(all, tox []string) []string {
	listed := make(map[string]struct{}, len(all))
	for _, v := range all {
		listed[v] = struct{}{}
	}

	out := make([]string, 0, len(tox))
	for _, v := range tox {
		if _, ok := listed[v]; ok {
			out = append(out, v)
		}
	}
	return out
}

// ActionsMatrix projects the tox sequence onto the GitHub Actions runner
// matrix, preserving the relative order of tox. Hosted runners only carry
// concrete releases, so pre-release entries are dropped; if every listed
// version is a pre-release the matrix falls back to keeping them so it is
// never empty.
func ActionsMatrix(all, tox []string) []string {
	subset := TravisSubset(all, tox)

	out := make([]string, 0, len(subset))
	for _, v := range subset {
		if !IsPreRelease(v) {
			out = append(out, v)
		}
	}

	if len(out) == 0 {
		return subset
	}
	return out
}

// ToxEnv converts a Python version string into its tox environment name,
// e.g. "3.6" -> "py36" and "3.9-dev" -> "py39-dev".
func ToxEnv(version string) string {
	base, suffix, _ := strings.Cut(version, "-")
	env := "py" + strings.ReplaceAll(base, ".", "")
	if suffix != "" {
		env += "-" + suffix
	}
	return env
}

// ToxEnvs converts a version sequence into tox environment names.
func ToxEnvs(versions []string) []string {
	envs := make([]string, len(versions))
	for i, v := range versions {
		envs[i] = ToxEnv(v)
	}
	return envs
}

// IsPreRelease reports whether a version string carries a pre-release suffix.
func IsPreRelease(version string) bool {
	return strings.Contains(version, "-")
}

// parse splits a version into its X.Y base and pre-release flag, rejecting
// unknown suffix formats.
func parse(version string) (base string, pre bool, err error) {
	m := versionRe.FindStringSubmatch(version)
	if m == nil {
		return "", false, engine.NewConfigurationError(
			fmt.Sprintf("unsupported Python version %q", version), nil).
			WithOption("python_versions")
	}
	return m[1] + "." + m[2], m[3] != "", nil
}
