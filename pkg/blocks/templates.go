package blocks

// blockTemplates holds the body of every block template, keyed by block
// kind. Every body starts with its start-sentinel line and ends with its
// end-sentinel line so rendered output round-trips through Merge.
var blockTemplates = map[string]string{
	"shields":      shieldsTemplate,
	"install":      installTemplate,
	"links":        linksTemplate,
	"docs_install": docsInstallTemplate,
	"docs_links":   docsLinksTemplate,
}

// shieldsTemplate renders the badge table plus the reST substitution
// definitions backing it. Optional rows are gated by the shield options;
// UniqueName suffixes every substitution identifier so multiple instances
// of the block do not collide.
const shieldsTemplate = `.. start shields{{if .UniqueName}} {{trimPrefix .UniqueName "_"}}{{end}}

.. list-table::
	:stub-columns: 1
	:widths: 10 90

{{if .Docs}}	* - Docs
	  - |docs{{.UniqueName}}| |docs_check{{.UniqueName}}|
{{end}}	* - Tests
	  - |travis{{.UniqueName}}|{{if hasPlatform .Platforms "Windows"}} |actions_windows{{.UniqueName}}|{{end}}{{if hasPlatform .Platforms "macOS"}} |actions_macos{{.UniqueName}}|{{end}}{{if .Tests}} |coveralls{{.UniqueName}}|{{end}} |codefactor{{.UniqueName}}|
{{if .OnPyPI}}	* - PyPI
	  - |pypi-version{{.UniqueName}}| |supported-versions{{.UniqueName}}| |supported-implementations{{.UniqueName}}| |wheel{{.UniqueName}}|
{{end}}{{if .Conda}}	* - Anaconda
	  - |conda-version{{.UniqueName}}| |conda-platform{{.UniqueName}}|
{{end}}	* - Activity
	  - |commits-latest{{.UniqueName}}| |commits-since{{.UniqueName}}| |maintained{{.UniqueName}}|
{{if .DockerShields}}	* - Docker
	  - |docker_build{{.UniqueName}}| |docker_automated{{.UniqueName}}| |docker_size{{.UniqueName}}|
{{end}}	* - Other
	  - |license{{.UniqueName}}| |language{{.UniqueName}}| |requires{{.UniqueName}}|{{if .PreCommit}} |pre_commit{{.UniqueName}}|{{end}}

{{if .Docs}}.. |docs{{.UniqueName}}| {{docsShield .RepoName}}

.. |docs_check{{.UniqueName}}| {{docsCheckShield .RepoName .Username}}

{{end}}.. |travis{{.UniqueName}}| {{travisShield .RepoName .Username .TravisSite}}

{{if hasPlatform .Platforms "Windows"}}.. |actions_windows{{.UniqueName}}| {{actionsWindowsShield .RepoName .Username}}

{{end}}{{if hasPlatform .Platforms "macOS"}}.. |actions_macos{{.UniqueName}}| {{actionsMacOSShield .RepoName .Username}}

{{end}}.. |requires{{.UniqueName}}| {{requiresShield .RepoName .Username}}

{{if .Tests}}.. |coveralls{{.UniqueName}}| {{coverallsShield .RepoName .Username}}

{{end}}.. |codefactor{{.UniqueName}}| {{codefactorShield .RepoName .Username}}

{{if .OnPyPI}}.. |pypi-version{{.UniqueName}}| {{pypiVersionShield .PyPIName}}

.. |supported-versions{{.UniqueName}}| {{pythonVersionsShield .PyPIName}}

.. |supported-implementations{{.UniqueName}}| {{pythonImplementationsShield .PyPIName}}

.. |wheel{{.UniqueName}}| {{wheelShield .PyPIName}}

{{end}}{{if .Conda}}.. |conda-version{{.UniqueName}}| {{condaVersionShield .PyPIName .Username}}

.. |conda-platform{{.UniqueName}}| {{condaPlatformShield .PyPIName .Username}}

{{end}}.. |license{{.UniqueName}}| {{licenseShield .RepoName .Username}}

.. |language{{.UniqueName}}| {{languageShield .RepoName .Username}}

.. |commits-since{{.UniqueName}}| {{activityShield .RepoName .Username .Version}}

.. |commits-latest{{.UniqueName}}| {{lastCommitShield .RepoName .Username}}

.. |maintained{{.UniqueName}}| {{maintainedShield .MaintainedYear}}

{{if .DockerShields}}.. |docker_build{{.UniqueName}}| {{dockerBuildShield .DockerName .Username}}

.. |docker_automated{{.UniqueName}}| {{dockerAutomatedShield .DockerName .Username}}

.. |docker_size{{.UniqueName}}| {{dockerSizeShield .DockerName .Username}}

{{end}}{{if .PreCommit}}.. |pre_commit{{.UniqueName}}| {{preCommitShield}}

{{end}}.. end shields`

// installTemplate renders the README installation instructions.
const installTemplate = ".. start installation\n" +
	"\n" +
	"``{{.ModName}}`` can be installed from PyPI{{if .Conda}} or Anaconda{{end}}.\n" +
	"\n" +
	"To install with ``pip``:\n" +
	"\n" +
	".. code-block:: bash\n" +
	"\n" +
	"\t$ python -m pip install {{.PyPIName}}\n" +
	"{{if .Conda}}\n" +
	"To install with ``conda``:\n" +
	"\n" +
	"\t* First add the required channels\n" +
	"\n" +
	"\t.. code-block:: bash\n" +
	"{{range .CondaChannels}}\n" +
	"\t\t$ conda config --add channels https://conda.anaconda.org/{{.}}{{end}}\n" +
	"\n" +
	"\t* Then install\n" +
	"\n" +
	"\t.. code-block:: bash\n" +
	"\n" +
	"\t\t$ conda install {{.PyPIName}}\n" +
	"{{end}}\n" +
	".. end installation"

// linksTemplate renders the README links block.
const linksTemplate = ".. start links\n" +
	"\n" +
	"{{if .Docs}}View the `documentation <https://{{.RepoName}}.readthedocs.io/en/latest/>`__ or browse" +
	" the `GitHub Repository <https://github.com/{{.Username}}/{{.RepoName}}>`__.\n" +
	"{{else}}`Browse the GitHub Repository <https://github.com/{{.Username}}/{{.RepoName}}>`__\n" +
	"{{end}}\n" +
	".. end links"

// docsInstallTemplate renders the documentation installation directive.
const docsInstallTemplate = `.. start installation

.. installation:: {{.PyPIName}}
{{if .PyPI}}	:pypi:
{{end}}	:github:
{{if .Conda}}	:anaconda:
	:conda-channels: {{join .CondaChannels ", "}}
{{end}}
.. end installation`

// docsLinksTemplate renders the documentation links block.
const docsLinksTemplate = ".. start links\n" +
	"\n" +
	"View the :ref:`Function Index <genindex>` or browse the `Source Code <_modules/index.html>`__.\n" +
	"\n" +
	"`Browse the GitHub Repository <https://github.com/{{.Username}}/{{.RepoName}}>`__\n" +
	"\n" +
	".. end links"
