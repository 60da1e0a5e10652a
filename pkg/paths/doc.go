// Package paths provides centralized path handling for clawkit.
//
// This package implements the XDG Base Directory specification and provides
// a consistent API for all path operations throughout the clawkit codebase.
// It handles:
//
//   - XDG directory structure (data, config, cache, state)
//   - The fixed kit and install-target layout constants
//   - Path validation and home expansion
//   - Target directory resolution for the install and status commands
//
// # Environment Variables
//
// The package respects the following environment variables:
//
//   - CLAWKIT_KIT_DIR: Use an on-disk kit instead of the embedded one
//   - CLAWKIT_DATA_DIR: Override XDG data directory (default: $XDG_DATA_HOME/clawkit)
//   - CLAWKIT_CONFIG_DIR: Override XDG config directory (default: $XDG_CONFIG_HOME/clawkit)
//   - CLAWKIT_CACHE_DIR: Override XDG cache directory (default: $XDG_CACHE_HOME/clawkit)
//
// # Usage
//
//	import "github.com/arthur-debert/clawkit/pkg/paths"
//
//	p, err := paths.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cfg := p.ConfigFilePath()           // $XDG_CONFIG_HOME/clawkit/config.toml
//	cache := p.KitCacheDir("1.2.0")     // $XDG_CACHE_HOME/clawkit/kit-1.2.0
//	target := paths.TargetConfigDir(dir) // <dir>/.claude
//
// Kit root resolution (flag, environment, config file, embedded kit) is
// pkg/kit's job; this package only supplies the locations involved.
package paths
