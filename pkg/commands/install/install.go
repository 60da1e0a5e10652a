package install

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/clawkit/pkg/config"
	"github.com/arthur-debert/clawkit/pkg/executor"
	"github.com/arthur-debert/clawkit/pkg/filesystem"
	"github.com/arthur-debert/clawkit/pkg/installer"
	"github.com/arthur-debert/clawkit/pkg/kit"
	"github.com/arthur-debert/clawkit/pkg/logging"
	"github.com/arthur-debert/clawkit/pkg/paths"
	"github.com/arthur-debert/clawkit/pkg/settings"
	"github.com/arthur-debert/clawkit/pkg/types"
)

// InstallOptions defines the options for the Install command.
type InstallOptions struct {
	// TargetDir is the project directory receiving the kit.
	TargetDir string
	// AppName is the value for the managed env entry. Empty means the
	// target directory's base name.
	AppName string
	// Groups names optional asset groups to install on top of the core set.
	Groups []string
	// All installs every optional group.
	All bool
	// KitDir overrides the configured kit directory.
	KitDir string
	// ConfigFile is an explicit config file path. Empty uses the default
	// lookup.
	ConfigFile string
	// Version keys the embedded kit's cache directory. The CLI passes the
	// build version.
	Version string
	// DryRun reports what would change without writing.
	DryRun bool
	// Force overwrites files and settings the target already has.
	Force bool
}

// Install merges the kit's settings into the target project and copies the
// kit's assets into its config directory.
//
// The settings merge runs first and its failures abort the run, so a
// target whose settings file cannot be parsed is never half-installed.
// File copies then proceed in group order; the first failure stops the
// run with the counts accumulated so far discarded alongside the error.
func Install(opts InstallOptions) (*types.InstallResult, error) {
	log := logging.GetLogger("commands.install")
	log.Debug().Str("command", "Install").Msg("Executing command")

	p, err := paths.New()
	if err != nil {
		return nil, err
	}

	var overrides map[string]interface{}
	if opts.KitDir != "" {
		overrides = map[string]interface{}{"kit.dir": opts.KitDir}
	}
	configFile := opts.ConfigFile
	if configFile == "" {
		configFile = p.ConfigFilePath()
	}
	cfg, err := config.Load(configFile, overrides)
	if err != nil {
		return nil, err
	}

	projectDir, err := paths.ResolveTargetDir(opts.TargetDir)
	if err != nil {
		return nil, err
	}
	configDir := paths.TargetConfigDir(projectDir)

	appName := opts.AppName
	if appName == "" {
		appName = paths.DefaultAppName(projectDir)
	}

	loc, err := kit.Locate(cfg, p, opts.Version)
	if err != nil {
		return nil, err
	}

	groups, err := kit.SelectGroups(append(cfg.Install.OptionalGroups, opts.Groups...), opts.All)
	if err != nil {
		return nil, err
	}

	result := types.NewInstallResult(configDir, loc.Root)
	result.AppName = appName
	result.DryRun = opts.DryRun
	result.Force = opts.Force

	ctx := context.Background()
	fs := filesystem.NewOS()
	exec := executor.New(executor.Options{
		DryRun:      opts.DryRun,
		Permissions: cfg.Permissions,
	})

	// Settings merge first: its failures must stop the run before any
	// asset lands in the project.
	outcome, err := settings.Merge(ctx, fs, exec, settings.MergeOptions{
		SourcePath: filepath.Join(loc.Root, paths.SettingsFileName),
		TargetPath: filepath.Join(configDir, paths.SettingsFileName),
		AppName:    appName,
		Force:      opts.Force,
	})
	if err != nil {
		return nil, err
	}
	result.Settings = outcome
	switch outcome {
	case types.MergeApplied:
		result.RecordInstalled(paths.SettingsFileName)
	case types.MergeUnchanged:
		result.RecordSkipped(paths.SettingsFileName)
	}

	inst := installer.New(installer.Options{
		FS:       fs,
		Executor: exec,
		Force:    opts.Force,
		DryRun:   opts.DryRun,
	})
	for _, group := range groups {
		if err := inst.CopyGroup(ctx, loc.Root, configDir, group, cfg.Install.Exclude, result); err != nil {
			return nil, err
		}
	}

	log.Info().
		Str("command", "Install").
		Int("installed", result.Installed).
		Int("skipped", result.Skipped).
		Bool("dryRun", opts.DryRun).
		Msg("Command finished")
	return result, nil
}
