package kit

import (
	"os"

	"github.com/arthur-debert/clawkit/pkg/config"
	"github.com/arthur-debert/clawkit/pkg/errors"
	"github.com/arthur-debert/clawkit/pkg/logging"
	"github.com/arthur-debert/clawkit/pkg/paths"
)

// Location is a resolved kit root.
type Location struct {
	Root     string
	Embedded bool
}

// Locate resolves which kit a run installs from. An explicitly configured
// directory (flag, CLAWKIT_KIT_DIR, or config file, already folded into
// cfg) wins; otherwise the embedded kit is materialized into the cache
// directory for this version and used from there.
func Locate(cfg *config.Config, p *paths.Paths, version string) (Location, error) {
	logger := logging.GetLogger("kit.locate")

	if cfg.Kit.Dir != "" {
		info, err := os.Stat(cfg.Kit.Dir)
		if err != nil {
			if os.IsNotExist(err) {
				return Location{}, errors.Newf(errors.ErrKitNotFound,
					"kit directory does not exist: %s", cfg.Kit.Dir).
					WithDetail("path", cfg.Kit.Dir)
			}
			return Location{}, errors.Wrap(err, errors.ErrKitAccess,
				"cannot access kit directory").
				WithDetail("path", cfg.Kit.Dir)
		}
		if !info.IsDir() {
			return Location{}, errors.Newf(errors.ErrKitInvalid,
				"kit path is not a directory: %s", cfg.Kit.Dir).
				WithDetail("path", cfg.Kit.Dir)
		}

		logger.Debug().Str("root", cfg.Kit.Dir).Msg("using configured kit directory")
		return Location{Root: cfg.Kit.Dir}, nil
	}

	root, err := EnsureEmbedded(p.KitCacheDir(version))
	if err != nil {
		return Location{}, err
	}

	logger.Debug().Str("root", root).Msg("using embedded kit")
	return Location{Root: root, Embedded: true}, nil
}
