package kit

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/clawkit/pkg/errors"
	"github.com/arthur-debert/clawkit/pkg/logging"
)

// The default kit ships inside the binary so clawkit works with no
// network and no checkout.
//
//go:embed all:vendored
var vendoredKit embed.FS

const vendoredRoot = "vendored"

// EnsureEmbedded materializes the embedded kit under dir and returns dir.
// The directory is version keyed by the caller, so an existing one is
// reused as is. Materialization goes through a sibling staging directory
// and a rename, so a partial write never masquerades as a kit.
func EnsureEmbedded(dir string) (string, error) {
	logger := logging.GetLogger("kit.embedded")

	if _, err := os.Stat(dir); err == nil {
		logger.Trace().Str("dir", dir).Msg("embedded kit already materialized")
		return dir, nil
	} else if !os.IsNotExist(err) {
		return "", errors.Wrap(err, errors.ErrKitAccess,
			"cannot access kit cache directory").
			WithDetail("path", dir)
	}

	staging := dir + ".partial"
	if err := os.RemoveAll(staging); err != nil {
		return "", errors.Wrap(err, errors.ErrKitAccess,
			"cannot clear kit staging directory").
			WithDetail("path", staging)
	}

	if err := writeEmbedded(staging); err != nil {
		os.RemoveAll(staging)
		return "", err
	}

	if err := os.Rename(staging, dir); err != nil {
		os.RemoveAll(staging)
		// A concurrent run may have won the rename.
		if _, statErr := os.Stat(dir); statErr == nil {
			return dir, nil
		}
		return "", errors.Wrap(err, errors.ErrKitAccess,
			"cannot finalize kit cache directory").
			WithDetail("path", dir)
	}

	logger.Info().Str("dir", dir).Msg("embedded kit materialized")
	return dir, nil
}

func writeEmbedded(dst string) error {
	return fs.WalkDir(vendoredKit, vendoredRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "embedded kit walk failed").
				WithDetail("path", path)
		}

		rel, err := filepath.Rel(vendoredRoot, path)
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "embedded kit path error").
				WithDetail("path", path)
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return errors.Wrap(err, errors.ErrDirCreate,
					"cannot create kit cache directory").
					WithDetail("path", target)
			}
			return nil
		}

		data, err := vendoredKit.ReadFile(path)
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "cannot read embedded kit file").
				WithDetail("path", path)
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return errors.Wrap(err, errors.ErrFileWrite,
				"cannot write kit cache file").
				WithDetail("path", target)
		}
		return nil
	})
}
