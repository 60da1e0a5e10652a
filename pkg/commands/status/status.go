// Package status implements the status command: it reports how a
// project's Claude Code configuration compares to the kit, answering
// two questions without changing anything:
//   - Which kit assets are missing, installed, or locally modified?
//   - Would an install touch settings.json, or is it already merged?
package status

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/clawkit/pkg/config"
	"github.com/arthur-debert/clawkit/pkg/errors"
	"github.com/arthur-debert/clawkit/pkg/executor"
	"github.com/arthur-debert/clawkit/pkg/filesystem"
	"github.com/arthur-debert/clawkit/pkg/kit"
	"github.com/arthur-debert/clawkit/pkg/logging"
	"github.com/arthur-debert/clawkit/pkg/paths"
	"github.com/arthur-debert/clawkit/pkg/settings"
	"github.com/arthur-debert/clawkit/pkg/types"
	"github.com/arthur-debert/clawkit/pkg/utils"
)

// StatusOptions defines the options for the Status command.
type StatusOptions struct {
	// TargetDir is the project directory to inspect.
	TargetDir string
	// AppName is the value the managed env entry is expected to carry.
	// Empty means the target directory's base name.
	AppName string
	// KitDir overrides the configured kit directory.
	KitDir string
	// ConfigFile is an explicit config file path. Empty uses the default
	// lookup.
	ConfigFile string
	// Version keys the embedded kit's cache directory. The CLI passes the
	// build version.
	Version string
}

// Status compares every kit asset, optional groups included, against the
// target's config directory and reports per-asset state plus whether the
// settings merge would change anything. It never writes.
func Status(opts StatusOptions) (*types.StatusResult, error) {
	log := logging.GetLogger("commands.status")
	log.Debug().Str("command", "Status").Msg("Executing command")

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

	result := &types.StatusResult{
		Target:    configDir,
		KitRoot:   loc.Root,
		Timestamp: time.Now(),
	}

	ctx := context.Background()
	fs := filesystem.NewOS()

	// Running the merge against a dry-run executor yields the same
	// applied/unchanged outcome the install command would see, without
	// touching the target.
	peek := executor.New(executor.Options{DryRun: true, Permissions: cfg.Permissions})
	outcome, err := settings.Merge(ctx, fs, peek, settings.MergeOptions{
		SourcePath: filepath.Join(loc.Root, paths.SettingsFileName),
		TargetPath: filepath.Join(configDir, paths.SettingsFileName),
		AppName:    appName,
	})
	if err != nil {
		return nil, err
	}
	result.Settings = outcome

	assets, err := kit.DiscoverAssets(fs, loc.Root, kit.AllGroups(), cfg.Install.Exclude)
	if err != nil {
		return nil, err
	}
	for _, asset := range assets {
		state, err := compareAsset(fs, loc.Root, configDir, asset.RelPath)
		if err != nil {
			return nil, err
		}
		result.Assets = append(result.Assets, types.AssetStatus{
			RelPath: asset.RelPath,
			Group:   asset.Group,
			State:   state,
		})
	}

	missing, installed, modified := result.Counts()
	log.Info().
		Str("command", "Status").
		Int("missing", missing).
		Int("installed", installed).
		Int("modified", modified).
		Msg("Command finished")
	return result, nil
}

// compareAsset classifies one kit asset against its target counterpart.
func compareAsset(fsys types.FS, kitRoot, targetDir, relPath string) (types.AssetState, error) {
	target := filepath.Join(targetDir, relPath)
	if _, err := fsys.Stat(target); err != nil {
		if os.IsNotExist(err) {
			return types.StateMissing, nil
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", target).
			WithDetail("path", target)
	}

	sourceSum, err := utils.CalculateFileChecksum(filepath.Join(kitRoot, relPath))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrKitAccess, "cannot hash kit file %s", relPath).
			WithDetail("path", relPath)
	}
	targetSum, err := utils.CalculateFileChecksum(target)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "cannot hash %s", target).
			WithDetail("path", target)
	}

	if sourceSum == targetSum {
		return types.StateInstalled, nil
	}
	return types.StateModified, nil
}
