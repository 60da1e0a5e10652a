package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/clawkit/pkg/errors"
)

// ValidatePath performs basic validation on a path.
// It checks for:
// - Empty paths
// - Null bytes
// - Excessive path length
func ValidatePath(path string) error {
	if path == "" {
		return errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}

	// Check for null bytes
	if strings.Contains(path, "\x00") {
		return errors.New(errors.ErrInvalidInput, "path contains null bytes")
	}

	// Check path length (common filesystem limit)
	if len(path) > 4096 {
		return errors.New(errors.ErrInvalidInput, "path exceeds maximum length")
	}

	return nil
}

// ResolveTargetDir validates that the given path names an existing
// directory and returns its absolute form. Installing into a nonexistent
// project is always a caller mistake, never something to create silently.
func ResolveTargetDir(path string) (string, error) {
	if err := ValidatePath(path); err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrTargetInvalid,
			"failed to resolve target path %q", path)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Newf(errors.ErrTargetInvalid,
				"target directory does not exist: %s", abs).
				WithDetail("path", abs)
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess,
			"failed to stat target directory %s", abs)
	}

	if !info.IsDir() {
		return "", errors.Newf(errors.ErrTargetInvalid,
			"target path is not a directory: %s", abs).
			WithDetail("path", abs)
	}

	return abs, nil
}

// DefaultAppName derives the app name recorded in the merged settings
// from the target project directory.
func DefaultAppName(targetDir string) string {
	return filepath.Base(filepath.Clean(targetDir))
}
