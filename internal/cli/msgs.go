package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Install Claude Code hooks and config into your projects"

	MsgInstallShort    = "Install the kit into a project"
	MsgStatusShort     = "Show how a project compares to the kit"
	MsgListShort       = "List the kit's groups and assets"
	MsgGenConfigShort  = "Generate the default configuration file"
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview changes without writing anything"
	MsgFlagForce   = "Overwrite files and settings the target already has"
	MsgFlagFormat  = "Output format: auto, term, text, or json"
	MsgFlagConfig  = "Config file to use instead of the default lookup"
	MsgFlagKit     = "Kit directory to install from instead of the configured one"
	MsgFlagAppName = "Value for the managed CLAWKIT_APP_NAME settings entry (default: target directory name)"
	MsgFlagAll     = "Select every optional group"
	MsgFlagWrite   = "Write the config to the user config path instead of stdout"
)

// Long messages and examples
const (
	MsgRootLong = `clawkit installs a curated kit of Claude Code hooks, settings, and
helper assets into a project's .claude directory.

Installs are idempotent and non-destructive: files the project already
has are left alone unless --force is given, and settings.json is merged
additively so your own hooks and env entries survive.`

	MsgInstallLong = `Install merges the kit's settings.json into the target project and
copies the kit's assets into <target>/.claude/.

The settings merge runs first; if the target's settings.json cannot be
parsed the run aborts before any file is copied. Hook scripts, utils/,
and statusline/ always install; other groups only with their flag,
--all, or install.optional_groups in the config.`

	MsgInstallExample = `  # Install the core kit into the current project
  clawkit install .

  # Preview what a full install would do
  clawkit install ~/src/myproject --all --dry-run

  # Install with agents and commands, overwriting local edits
  clawkit install . --agents --commands --force`

	MsgStatusLong = `Status compares every kit asset against the target's .claude directory
and reports each one as installed, missing, or modified, plus whether
an install would change settings.json. Nothing is written.

By default the whole kit is compared; group flags restrict the report
to the core groups plus the named ones.`

	MsgStatusExample = `  # Compare the current project against the kit
  clawkit status .

  # Only look at the core groups and validators
  clawkit status . --validators`

	MsgListLong = `List resolves the kit the same way install would and prints its
manifest plus every group's assets, marking the optional groups.`

	MsgListExample = `  # Show the embedded kit
  clawkit list

  # Show a kit checkout
  clawkit list --kit ~/src/claude-kit`

	MsgGenConfigLong = `Output the commented default configuration to stdout, or write it to
the user config path with --write. An existing config file is left in
place unless --force is given.`

	MsgGenConfigExample = `  # Inspect the defaults
  clawkit gen-config

  # Create $XDG_CONFIG_HOME/clawkit/config.toml
  clawkit gen-config --write`

	MsgCompletionLong = `To load completions:

Bash:
  $ source <(clawkit completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ clawkit completion bash > /etc/bash_completion.d/clawkit
  # macOS:
  $ clawkit completion bash > /usr/local/etc/bash_completion.d/clawkit

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it.  You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  # To load completions for each session, execute once:
  $ clawkit completion zsh > "${fpath[1]}/_clawkit"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ clawkit completion fish | source
  # To load completions for each session, execute once:
  $ clawkit completion fish > ~/.config/fish/completions/clawkit.fish

PowerShell:
  PS> clawkit completion powershell | Out-String | Invoke-Expression
  # To load completions for every new session, run:
  PS> clawkit completion powershell > clawkit.ps1
  # and source this file from your PowerShell profile.`
)

// msgUsageTemplate is cobra's default usage template with emphasized
// section labels. The bold/boldUpper functions degrade to plain text
// when stdout is not a terminal.
const msgUsageTemplate = `{{boldUpper "Usage:"}}{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "Aliases:"}}
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{boldUpper "Examples:"}}
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{if eq (len .Groups) 0}}

{{boldUpper "Available Commands:"}}{{range $cmds}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{else}}{{range $group := .Groups}}

{{bold .Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if not .AllChildCommandsHaveGroup}}

{{boldUpper "Additional Commands:"}}{{range $cmds}}{{if (and (eq .GroupID "") (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "Flags:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "Global Flags:"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasHelpSubCommands}}

{{boldUpper "Additional help topics:"}}{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{rpad .CommandPath .CommandPathPadding}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
