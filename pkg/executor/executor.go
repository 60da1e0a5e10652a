package executor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/clawkit/pkg/config"
	"github.com/arthur-debert/clawkit/pkg/errors"
	"github.com/arthur-debert/clawkit/pkg/logging"
)

// Options contains configuration for the executor
type Options struct {
	DryRun      bool
	Permissions config.FilePermissions
}

// Executor applies file mutations through synthfs pipelines. In dry-run
// mode every method logs what it would do and touches nothing.
type Executor struct {
	logger zerolog.Logger
	dryRun bool
	fs     filesystem.FullFileSystem
	perms  config.FilePermissions
}

// New creates an executor rooted at the real filesystem.
func New(opts Options) *Executor {
	// PathAwareFileSystem handles absolute paths directly
	osfs := filesystem.NewOSFileSystem("/")
	pathAwareFS := synthfs.NewPathAwareFileSystem(osfs, "/").WithAbsolutePaths()

	perms := opts.Permissions
	if perms.File == 0 {
		perms.File = 0o644
	}
	if perms.Dir == 0 {
		perms.Dir = 0o755
	}

	return &Executor{
		logger: logging.GetLogger("executor"),
		dryRun: opts.DryRun,
		fs:     pathAwareFS,
		perms:  perms,
	}
}

// CopyFile copies source to target byte for byte, creating parent
// directories as needed. With replace set, an existing target is removed
// first; without it the target must not exist.
func (e *Executor) CopyFile(ctx context.Context, source, target string, replace bool) error {
	if e.dryRun {
		e.logger.Info().
			Str("source", source).
			Str("target", target).
			Msg("Would copy file")
		return nil
	}

	sfs := synthfs.New()
	var ops []synthfs.Operation

	if op := e.parentDirOp(sfs, target); op != nil {
		ops = append(ops, op)
	}

	copyID := fmt.Sprintf("copy_%s_%d", filepath.Base(target), time.Now().UnixNano())
	if replace {
		// Synthfs validation refuses existing targets, so forced copies
		// remove then rewrite inside one operation.
		ops = append(ops, sfs.CustomOperationWithID(copyID, func(ctx context.Context, fs filesystem.FileSystem) error {
			if err := fs.Remove(target); err != nil && !os.IsNotExist(err) {
				return err
			}
			return copyFileContents(fs, source, target, e.perms.File)
		}))
	} else {
		ops = append(ops, sfs.CopyWithID(copyID, source, target))
	}

	if err := e.run(ctx, ops); err != nil {
		return errors.Wrap(err, errors.ErrFileCopy, "failed to copy file").
			WithDetail("source", source).
			WithDetail("target", target)
	}

	e.logger.Debug().
		Str("source", source).
		Str("target", target).
		Bool("replace", replace).
		Msg("File copied")
	return nil
}

// WriteFile writes content to target, creating parent directories and
// replacing any existing file.
func (e *Executor) WriteFile(ctx context.Context, target string, content []byte) error {
	if e.dryRun {
		e.logger.Info().
			Str("target", target).
			Int("contentLen", len(content)).
			Msg("Would write file")
		return nil
	}

	sfs := synthfs.New()
	id := fmt.Sprintf("write_%s_%d", filepath.Base(target), time.Now().UnixNano())

	op := sfs.CustomOperationWithID(id, func(ctx context.Context, fs filesystem.FileSystem) error {
		parent := filepath.Dir(target)
		if parent != "." && parent != "/" {
			if err := fs.MkdirAll(parent, e.perms.Dir); err != nil {
				return err
			}
		}
		return fs.WriteFile(target, content, e.perms.File)
	})

	if err := e.run(ctx, []synthfs.Operation{op}); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write file").
			WithDetail("target", target)
	}

	e.logger.Debug().
		Str("target", target).
		Int("contentLen", len(content)).
		Msg("File written")
	return nil
}

// parentDirOp returns an operation creating target's parent directory, or
// nil when the parent already exists.
func (e *Executor) parentDirOp(sfs *synthfs.SynthFS, target string) synthfs.Operation {
	parent := filepath.Dir(target)
	if parent == "." || parent == "/" {
		return nil
	}
	if _, err := os.Stat(parent); err == nil {
		return nil
	}

	id := fmt.Sprintf("mkdir_%s_%d", filepath.Base(parent), time.Now().UnixNano())
	return sfs.CreateDirWithID(id, parent, e.perms.Dir)
}

func (e *Executor) run(ctx context.Context, ops []synthfs.Operation) error {
	options := synthfs.DefaultPipelineOptions()
	options.RollbackOnError = true

	result, err := synthfs.RunWithOptions(ctx, e.fs, options, ops...)
	if err != nil {
		return err
	}

	e.logger.Trace().
		Int("operationCount", len(result.GetOperations())).
		Msg("Pipeline executed")
	return nil
}

// copyFileContents copies one file through the filesystem interface,
// keeping the source mode when it can be read.
func copyFileContents(fs filesystem.FileSystem, source, target string, fallbackMode os.FileMode) error {
	srcFile, err := fs.Open(source)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", source, err)
	}
	defer func() { _ = srcFile.Close() }()

	content, err := io.ReadAll(srcFile)
	if err != nil {
		return fmt.Errorf("failed to read source file %s: %w", source, err)
	}

	mode := fallbackMode
	if fullFS, ok := fs.(filesystem.FullFileSystem); ok {
		if srcInfo, err := fullFS.Stat(source); err == nil {
			mode = srcInfo.Mode()
		}
	}

	if err := fs.WriteFile(target, content, mode); err != nil {
		return fmt.Errorf("failed to write target file %s: %w", target, err)
	}
	return nil
}
