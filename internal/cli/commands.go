package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/clawkit/internal/version"
	"github.com/arthur-debert/clawkit/pkg/cobrax/topics"
	"github.com/arthur-debert/clawkit/pkg/commands/genconfig"
	"github.com/arthur-debert/clawkit/pkg/commands/install"
	"github.com/arthur-debert/clawkit/pkg/commands/list"
	"github.com/arthur-debert/clawkit/pkg/commands/status"
	"github.com/arthur-debert/clawkit/pkg/kit"
	"github.com/arthur-debert/clawkit/pkg/logging"
	"github.com/arthur-debert/clawkit/pkg/output"
	"github.com/arthur-debert/clawkit/pkg/paths"
	"github.com/arthur-debert/clawkit/pkg/style"
	"github.com/arthur-debert/clawkit/pkg/types"
	"github.com/arthur-debert/clawkit/pkg/ui"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		dryRun     bool
		force      bool
		formatStr  string
		configFile string
	)

	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "clawkit",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().BoolVar(&force, "force", false, MsgFlagForce)
	rootCmd.PersistentFlags().StringVar(&formatStr, "format", "auto", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", MsgFlagConfig)

	// Disable automatic help command (we'll use our custom one from topics)
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(msgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Initialize topic-based help system
	// Try to find help topics relative to the executable location
	exe, err := os.Executable()
	if err == nil {
		// Look for help topics in various locations
		possiblePaths := []string{
			filepath.Join(filepath.Dir(exe), "topics"),                               // Same directory as binary (production)
			filepath.Join(filepath.Dir(exe), "..", "..", "cmd", "clawkit", "topics"), // Development
			"cmd/clawkit/topics", // Current directory fallback
		}

		for _, helpPath := range possiblePaths {
			if _, err := os.Stat(helpPath); err == nil {
				opts := topics.Options{
					Extensions: []string{".txt", ".md"},
					// Always use Glamour renderer for markdown files
					Renderer: topics.NewGlamourRenderer(),
				}

				if err := topics.InitializeWithOptions(rootCmd, helpPath, opts); err == nil {
					break
				}
			}
		}
	}

	return rootCmd
}

// outputFormat resolves the --format flag against stdout and switches
// pterm's color state to match, so the per-asset lines and the summary
// agree on styling.
func outputFormat(cmd *cobra.Command) (ui.Format, error) {
	raw, _ := cmd.Root().PersistentFlags().GetString("format")
	format, err := ui.ParseFormat(raw)
	if err != nil {
		return ui.FormatText, err
	}
	format = ui.Resolve(format, os.Stdout)
	if format == ui.FormatTerminal {
		pterm.EnableColor()
	} else {
		pterm.DisableColor()
	}
	return format, nil
}

// addGroupFlags registers one boolean flag per optional asset group.
// Flag names match the group names, so --agents selects the agents group.
func addGroupFlags(cmd *cobra.Command, descFormat string) {
	for _, name := range kit.OptionalGroupNames() {
		cmd.Flags().Bool(name, false, fmt.Sprintf(descFormat, name))
	}
}

// selectedGroups returns the optional group names whose flags are set.
func selectedGroups(cmd *cobra.Command) []string {
	var groups []string
	for _, name := range kit.OptionalGroupNames() {
		if on, _ := cmd.Flags().GetBool(name); on {
			groups = append(groups, name)
		}
	}
	return groups
}

func newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "install TARGET",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")
			force, _ := cmd.Root().PersistentFlags().GetBool("force")
			configFile, _ := cmd.Root().PersistentFlags().GetString("config")

			appName, _ := cmd.Flags().GetString("app-name")
			kitDir, _ := cmd.Flags().GetString("kit")
			all, _ := cmd.Flags().GetBool("all")

			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			log.Info().
				Str("target", args[0]).
				Bool("dryRun", dryRun).
				Bool("force", force).
				Msg("Installing kit")

			result, err := install.Install(install.InstallOptions{
				TargetDir:  args[0],
				AppName:    appName,
				Groups:     selectedGroups(cmd),
				All:        all,
				KitDir:     kitDir,
				ConfigFile: configFile,
				Version:    version.Version,
				DryRun:     dryRun,
				Force:      force,
			})
			if err != nil {
				return err
			}

			return renderInstall(cmd, format, result)
		},
	}

	cmd.Flags().String("app-name", "", MsgFlagAppName)
	cmd.Flags().String("kit", "", MsgFlagKit)
	cmd.Flags().Bool("all", false, MsgFlagAll)
	addGroupFlags(cmd, "Install the optional %s group")

	return cmd
}

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "status TARGET",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		Example: MsgStatusExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, _ := cmd.Root().PersistentFlags().GetString("config")

			appName, _ := cmd.Flags().GetString("app-name")
			kitDir, _ := cmd.Flags().GetString("kit")
			all, _ := cmd.Flags().GetBool("all")

			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			result, err := status.Status(status.StatusOptions{
				TargetDir:  args[0],
				AppName:    appName,
				KitDir:     kitDir,
				ConfigFile: configFile,
				Version:    version.Version,
			})
			if err != nil {
				return err
			}

			filterGroups(result, selectedGroups(cmd), all)
			return renderStatus(cmd, format, result)
		},
	}

	cmd.Flags().String("app-name", "", MsgFlagAppName)
	cmd.Flags().String("kit", "", MsgFlagKit)
	cmd.Flags().Bool("all", false, MsgFlagAll)
	addGroupFlags(cmd, "Include the optional %s group in the report")

	return cmd
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, _ := cmd.Root().PersistentFlags().GetString("config")
			kitDir, _ := cmd.Flags().GetString("kit")

			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			result, err := list.List(list.ListOptions{
				KitDir:     kitDir,
				ConfigFile: configFile,
				Version:    version.Version,
			})
			if err != nil {
				return err
			}

			renderer := output.NewRenderer(cmd.OutOrStdout(), format != ui.FormatTerminal)
			if format == ui.FormatJSON {
				return renderer.RenderJSON(result)
			}
			return renderer.RenderList(result)
		},
	}

	cmd.Flags().String("kit", "", MsgFlagKit)

	return cmd
}

func newGenConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")
			force, _ := cmd.Root().PersistentFlags().GetBool("force")
			write, _ := cmd.Flags().GetBool("write")

			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			result, err := genconfig.GenConfig(genconfig.GenConfigOptions{
				Write:  write,
				Force:  force,
				DryRun: dryRun,
			})
			if err != nil {
				return err
			}

			renderer := output.NewRenderer(cmd.OutOrStdout(), format != ui.FormatTerminal)
			if format == ui.FormatJSON {
				return renderer.RenderJSON(result)
			}
			return renderer.RenderGenConfig(result)
		},
	}

	cmd.Flags().BoolP("write", "w", false, MsgFlagWrite)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Long:    MsgVersionLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "clawkit %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Find the help command and execute it with "topics" argument
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil {
				if helpCmd.RunE != nil {
					return helpCmd.RunE(helpCmd, []string{"topics"})
				} else if helpCmd.Run != nil {
					helpCmd.Run(helpCmd, []string{"topics"})
					return nil
				}
			}
			return fmt.Errorf("help command not found")
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

// filterGroups narrows a status report to the core groups plus the named
// optional ones. No selection (and no --all) leaves the full kit report.
func filterGroups(res *types.StatusResult, selected []string, all bool) {
	if all || len(selected) == 0 {
		return
	}
	keep := make(map[string]bool)
	for _, g := range kit.CoreGroups() {
		keep[g.Name] = true
	}
	for _, name := range selected {
		keep[name] = true
	}
	assets := res.Assets[:0]
	for _, a := range res.Assets {
		if keep[a.Group] {
			assets = append(assets, a)
		}
	}
	res.Assets = assets
}

// installLines converts an install result into per-asset display lines,
// installed files first, then skipped ones, each block in discovery order.
func installLines(res *types.InstallResult) []style.AssetLine {
	lines := make([]style.AssetLine, 0, res.Installed+res.Skipped)
	for _, rel := range res.InstalledPaths {
		line := style.AssetLine{
			Group:   style.GroupLabel(rel),
			RelPath: rel,
			Status:  style.StatusInstalled,
		}
		if res.DryRun {
			line.Status = style.StatusPlanned
		}
		if rel == paths.SettingsFileName {
			line.Note = "merged"
			if res.DryRun {
				line.Note = "would be merged"
			}
		}
		lines = append(lines, line)
	}
	for _, rel := range res.SkippedPaths {
		line := style.AssetLine{
			Group:   style.GroupLabel(rel),
			RelPath: rel,
			Status:  style.StatusSkipped,
		}
		if rel == paths.SettingsFileName {
			line.Note = "already merged, left alone"
		}
		lines = append(lines, line)
	}
	return lines
}

// statusLines converts status assets into display lines.
func statusLines(assets []types.AssetStatus) []style.AssetLine {
	lines := make([]style.AssetLine, 0, len(assets))
	for _, a := range assets {
		lines = append(lines, style.AssetLine{
			Group:   a.Group,
			RelPath: a.RelPath,
			Status:  style.StatusForState(a.State),
		})
	}
	return lines
}

func renderInstall(cmd *cobra.Command, format ui.Format, res *types.InstallResult) error {
	w := cmd.OutOrStdout()
	renderer := output.NewRenderer(w, format != ui.FormatTerminal)
	if format == ui.FormatJSON {
		return renderer.RenderJSON(res)
	}
	if lines := installLines(res); len(lines) > 0 {
		if _, err := fmt.Fprint(w, style.RenderAssetLines(lines)); err != nil {
			return err
		}
	}
	return renderer.RenderInstall(res)
}

func renderStatus(cmd *cobra.Command, format ui.Format, res *types.StatusResult) error {
	w := cmd.OutOrStdout()
	renderer := output.NewRenderer(w, format != ui.FormatTerminal)
	if format == ui.FormatJSON {
		return renderer.RenderJSON(res)
	}
	if lines := statusLines(res.Assets); len(lines) > 0 {
		if _, err := fmt.Fprint(w, style.RenderAssetLines(lines)); err != nil {
			return err
		}
	}
	return renderer.RenderStatus(res)
}
