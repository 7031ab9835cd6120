// Package shields builds the reStructuredText badge substitution bodies
// referenced by the shields block: image directives pointing at
// img.shields.io and the various CI and packaging services.
//
// Each builder returns the directive without the leading ".. " so the
// caller can prefix it with a substitution definition such as
// ".. |docs| ".
package shields

import "fmt"

// image assembles a reST image directive body with target and alt text.
// The tab indentation matches the surrounding block templates.
func image(url, target, alt string) string {
	return fmt.Sprintf("image:: %s\n\t:target: %s\n\t:alt: %s", url, target, alt)
}

// Docs builds the Read the Docs build-status shield.
func Docs(repoName string) string {
	return image(
		fmt.Sprintf("https://img.shields.io/readthedocs/%s/latest?logo=read-the-docs", repoName),
		fmt.Sprintf("https://%s.readthedocs.io/en/latest/?badge=latest", repoName),
		"Documentation Build Status",
	)
}

// DocsCheck builds the docs-check workflow shield.
func DocsCheck(repoName, username string) string {
	return image(
		fmt.Sprintf("https://github.com/%s/%s/workflows/Docs%%20Check/badge.svg", username, repoName),
		fmt.Sprintf("https://github.com/%s/%s/actions?query=workflow%%3A%%22Docs+Check%%22", username, repoName),
		"Docs Check Status",
	)
}

// Travis builds the Travis CI build shield. site selects travis-ci.com
// or travis-ci.org.
func Travis(repoName, username, site string) string {
	var url string
	if site == "org" {
		url = fmt.Sprintf("https://img.shields.io/travis/%s/%s/master?logo=travis", username, repoName)
	} else {
		url = fmt.Sprintf("https://img.shields.io/travis/com/%s/%s/master?logo=travis", username, repoName)
	}
	return image(
		url,
		fmt.Sprintf("https://travis-ci.%s/%s/%s", site, username, repoName),
		"Travis Build Status",
	)
}

// ActionsWindows builds the Windows tests workflow shield.
func ActionsWindows(repoName, username string) string {
	return image(
		fmt.Sprintf("https://github.com/%s/%s/workflows/Windows%%20Tests/badge.svg", username, repoName),
		fmt.Sprintf("https://github.com/%s/%s/actions?query=workflow%%3A%%22Windows+Tests%%22", username, repoName),
		"Windows Tests Status",
	)
}

// ActionsMacOS builds the macOS tests workflow shield.
func ActionsMacOS(repoName, username string) string {
	return image(
		fmt.Sprintf("https://github.com/%s/%s/workflows/macOS%%20Tests/badge.svg", username, repoName),
		fmt.Sprintf("https://github.com/%s/%s/actions?query=workflow%%3A%%22macOS+Tests%%22", username, repoName),
		"macOS Tests Status",
	)
}

// Requires builds the requires.io requirements-status shield.
func Requires(repoName, username string) string {
	return image(
		fmt.Sprintf("https://requires.io/github/%s/%s/requirements.svg?branch=master", username, repoName),
		fmt.Sprintf("https://requires.io/github/%s/%s/requirements/?branch=master", username, repoName),
		"Requirements Status",
	)
}

// Coveralls builds the test coverage shield.
func Coveralls(repoName, username string) string {
	return image(
		fmt.Sprintf("https://img.shields.io/coveralls/github/%s/%s/master?logo=coveralls", username, repoName),
		fmt.Sprintf("https://coveralls.io/github/%s/%s?branch=master", username, repoName),
		"Coverage",
	)
}

// CodeFactor builds the CodeFactor grade shield.
func CodeFactor(repoName, username string) string {
	return image(
		fmt.Sprintf("https://img.shields.io/codefactor/grade/github/%s/%s?logo=codefactor", username, repoName),
		fmt.Sprintf("https://www.codefactor.io/repository/github/%s/%s", username, repoName),
		"CodeFactor Grade",
	)
}

// PyPIVersion builds the PyPI package-version shield.
func PyPIVersion(pypiName string) string {
	return image(
		fmt.Sprintf("https://img.shields.io/pypi/v/%s", pypiName),
		fmt.Sprintf("https://pypi.org/project/%s/", pypiName),
		"PyPI - Package Version",
	)
}

// PythonVersions builds the supported-Python-versions shield.
func PythonVersions(pypiName string) string {
	return image(
		fmt.Sprintf("https://img.shields.io/pypi/pyversions/%s?logo=python&logoColor=white", pypiName),
		fmt.Sprintf("https://pypi.org/project/%s/", pypiName),
		"PyPI - Supported Python Versions",
	)
}

// PythonImplementations builds the supported-implementations shield.
func PythonImplementations(pypiName string) string {
	return image(
		fmt.Sprintf("https://img.shields.io/pypi/implementation/%s", pypiName),
		fmt.Sprintf("https://pypi.org/project/%s/", pypiName),
		"PyPI - Supported Implementations",
	)
}

// Wheel builds the wheel-availability shield.
func Wheel(pypiName string) string {
	return image(
		fmt.Sprintf("https://img.shields.io/pypi/wheel/%s", pypiName),
		fmt.Sprintf("https://pypi.org/project/%s/", pypiName),
		"PyPI - Wheel",
	)
}

// CondaVersion builds the Anaconda package-version shield.
func CondaVersion(pypiName, username string) string {
	return image(
		fmt.Sprintf("https://img.shields.io/conda/v/%s/%s?logo=anaconda", username, pypiName),
		fmt.Sprintf("https://anaconda.org/%s/%s", username, pypiName),
		"Conda - Package Version",
	)
}

// CondaPlatform builds the Anaconda platform shield.
func CondaPlatform(pypiName, username string) string {
	return image(
		fmt.Sprintf("https://img.shields.io/conda/pn/%s/%s?label=conda%%7Cplatform", username, pypiName),
		fmt.Sprintf("https://anaconda.org/%s/%s", username, pypiName),
		"Conda - Platform",
	)
}

// License builds the license shield.
func License(repoName, username string) string {
	return image(
		fmt.Sprintf("https://img.shields.io/github/license/%s/%s", username, repoName),
		fmt.Sprintf("https://github.com/%s/%s/blob/master/LICENSE", username, repoName),
		"License",
	)
}

// Language builds the top-language shield.
func Language(repoName, username string) string {
	return image(
		fmt.Sprintf("https://img.shields.io/github/languages/top/%s/%s", username, repoName),
		fmt.Sprintf("https://github.com/%s/%s", username, repoName),
		"GitHub top language",
	)
}

// Activity builds the commits-since-release shield.
func Activity(repoName, username, version string) string {
	return image(
		fmt.Sprintf("https://img.shields.io/github/commits-since/%s/%s/v%s", username, repoName, version),
		fmt.Sprintf("https://github.com/%s/%s/pulse", username, repoName),
		"GitHub commits since tagged version",
	)
}

// LastCommit builds the last-commit shield.
func LastCommit(repoName, username string) string {
	return image(
		fmt.Sprintf("https://img.shields.io/github/last-commit/%s/%s", username, repoName),
		fmt.Sprintf("https://github.com/%s/%s/commit/master", username, repoName),
		"GitHub last commit",
	)
}

// Maintained builds the maintained-in-year shield.
func Maintained(year string) string {
	return image(
		fmt.Sprintf("https://img.shields.io/maintenance/yes/%s", year),
		"https://github.com/",
		"Maintenance",
	)
}

// DockerBuild builds the DockerHub build-status shield.
func DockerBuild(dockerName, username string) string {
	return image(
		fmt.Sprintf("https://img.shields.io/docker/cloud/build/%s/%s?label=build&logo=docker", username, dockerName),
		fmt.Sprintf("https://hub.docker.com/r/%s/%s", username, dockerName),
		"Docker Hub Build Status",
	)
}

// DockerAutomated builds the DockerHub automated-build shield.
func DockerAutomated(dockerName, username string) string {
	return image(
		fmt.Sprintf("https://img.shields.io/docker/cloud/automated/%s/%s?label=build&logo=docker", username, dockerName),
		fmt.Sprintf("https://hub.docker.com/r/%s/%s/builds", username, dockerName),
		"Docker Hub Automated build",
	)
}

// DockerSize builds the Docker image-size shield.
func DockerSize(dockerName, username string) string {
	return image(
		fmt.Sprintf("https://img.shields.io/docker/image-size/%s/%s?label=image%%20size&logo=docker", username, dockerName),
		fmt.Sprintf("https://hub.docker.com/r/%s/%s", username, dockerName),
		"Docker Image Size",
	)
}

// PreCommit builds the pre-commit-enabled shield.
func PreCommit() string {
	return image(
		"https://img.shields.io/badge/pre--commit-enabled-brightgreen?logo=pre-commit&logoColor=white",
		"https://github.com/pre-commit/pre-commit",
		"pre-commit",
	)
}
