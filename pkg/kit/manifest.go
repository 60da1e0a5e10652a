package kit

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/clawkit/pkg/errors"
	"github.com/arthur-debert/clawkit/pkg/logging"
	"github.com/arthur-debert/clawkit/pkg/paths"
	"github.com/arthur-debert/clawkit/pkg/types"
)

// Manifest is the kit's own metadata, read from kit.toml at the kit root.
type Manifest struct {
	Name        string `toml:"name"`
	Version     string `toml:"version"`
	Description string `toml:"description"`
}

// LoadManifest reads kit.toml from the kit root. A missing manifest is not
// an error; the kit is then named after its directory. A malformed manifest
// is a config error.
func LoadManifest(fsys types.FS, kitRoot string) (Manifest, error) {
	logger := logging.GetLogger("kit.manifest")
	manifestPath := filepath.Join(kitRoot, paths.ManifestFileName)

	data, err := fsys.ReadFile(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Trace().
				Str("path", manifestPath).
				Msg("no kit manifest, using defaults")
			return Manifest{Name: filepath.Base(kitRoot)}, nil
		}
		return Manifest{}, errors.Wrap(err, errors.ErrKitAccess,
			"cannot read kit manifest").
			WithDetail("path", manifestPath)
	}

	var manifest Manifest
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return Manifest{}, errors.Wrap(err, errors.ErrConfigParse,
			"failed to parse kit manifest").
			WithDetail("path", manifestPath)
	}

	if manifest.Name == "" {
		manifest.Name = filepath.Base(kitRoot)
	}

	logger.Trace().
		Str("name", manifest.Name).
		Str("version", manifest.Version).
		Msg("kit manifest loaded")
	return manifest, nil
}
