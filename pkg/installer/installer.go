package installer

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/clawkit/pkg/errors"
	"github.com/arthur-debert/clawkit/pkg/executor"
	"github.com/arthur-debert/clawkit/pkg/filesystem"
	"github.com/arthur-debert/clawkit/pkg/kit"
	"github.com/arthur-debert/clawkit/pkg/logging"
	"github.com/arthur-debert/clawkit/pkg/types"
)

// Options contains configuration for the installer
type Options struct {
	// FS is the filesystem used for checks. Defaults to the real one.
	FS types.FS
	// Executor performs the writes.
	Executor *executor.Executor
	// Force overwrites files the target already has.
	Force bool
	// DryRun counts and reports without writing.
	DryRun bool
}

// Installer copies kit assets into a target config directory, one file at
// a time and in order. The first failure stops the run.
type Installer struct {
	fs     types.FS
	exec   *executor.Executor
	force  bool
	dryRun bool
	logger zerolog.Logger
}

// New creates a new installer instance
func New(opts Options) *Installer {
	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	exec := opts.Executor
	if exec == nil {
		exec = executor.New(executor.Options{DryRun: opts.DryRun})
	}

	return &Installer{
		fs:     fs,
		exec:   exec,
		force:  opts.Force,
		dryRun: opts.DryRun,
		logger: logging.GetLogger("installer"),
	}
}

// CopyAsset installs one kit file at relPath into targetDir.
//
// An absent source is nothing to do. An existing target without force is
// recorded as skipped and left alone. In dry-run mode the install is
// counted and announced but nothing is written. Otherwise the file is
// copied byte for byte, creating parent directories, replacing the target
// when force is set.
func (i *Installer) CopyAsset(ctx context.Context, kitRoot, targetDir, relPath string, result *types.InstallResult) error {
	source := filepath.Join(kitRoot, relPath)
	target := filepath.Join(targetDir, relPath)

	if _, err := i.fs.Stat(source); err != nil {
		if os.IsNotExist(err) {
			i.logger.Trace().
				Str("source", source).
				Msg("source file absent, nothing to install")
			return nil
		}
		return errors.Wrap(err, errors.ErrFileAccess, "cannot access kit file").
			WithDetail("path", source)
	}

	if _, err := i.fs.Stat(target); err == nil {
		if !i.force {
			result.RecordSkipped(relPath)
			i.logger.Debug().
				Str("target", target).
				Msg("target exists, skipping (use force to overwrite)")
			return nil
		}
	} else if !os.IsNotExist(err) {
		return errors.Wrap(err, errors.ErrFileAccess, "cannot check target file").
			WithDetail("path", target)
	}

	if i.dryRun {
		result.RecordInstalled(relPath)
		i.logger.Info().
			Str("source", source).
			Str("target", target).
			Msg("Would install file")
		return nil
	}

	if err := i.exec.CopyFile(ctx, source, target, i.force); err != nil {
		return err
	}

	result.RecordInstalled(relPath)
	i.logger.Debug().
		Str("relPath", relPath).
		Str("target", target).
		Msg("file installed")
	return nil
}

// CopyGroup installs every file a group contributes, in discovery order.
// A group whose directory is absent from the kit installs nothing.
func (i *Installer) CopyGroup(ctx context.Context, kitRoot, targetDir string, group types.Group, exclude []string, result *types.InstallResult) error {
	assets, err := kit.DiscoverGroup(i.fs, kitRoot, group, exclude)
	if err != nil {
		return err
	}

	for _, asset := range assets {
		if err := i.CopyAsset(ctx, kitRoot, targetDir, asset.RelPath, result); err != nil {
			return err
		}
	}

	i.logger.Debug().
		Str("group", group.Name).
		Int("assets", len(assets)).
		Msg("group processed")
	return nil
}
