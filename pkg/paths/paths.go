// Package paths provides centralized path handling for clawkit.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvKitDir points clawkit at an on-disk kit instead of the embedded one
	EnvKitDir = "CLAWKIT_KIT_DIR"

	// EnvDataDir overrides the XDG data directory for clawkit
	EnvDataDir = "CLAWKIT_DATA_DIR"

	// EnvConfigDir overrides the XDG config directory for clawkit
	EnvConfigDir = "CLAWKIT_CONFIG_DIR"

	// EnvCacheDir overrides the XDG cache directory for clawkit
	EnvCacheDir = "CLAWKIT_CACHE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
// IMPORTANT: These constants define the fixed layout of a kit and its
// install target. They are NOT user-configurable; a kit produced for one
// clawkit build must install identically everywhere. User-configurable
// paths belong in pkg/config instead.
const (
	// ClawkitDirName is the directory name for clawkit-specific files
	ClawkitDirName = "clawkit"

	// TargetDirName is the configuration directory created inside a target project
	TargetDirName = ".claude"

	// SettingsFileName is the settings document at the kit root and in the target
	SettingsFileName = "settings.json"

	// ManifestFileName is the optional kit manifest at the kit root
	ManifestFileName = "kit.toml"

	// ConfigFileName is the user configuration file name
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "clawkit.log"

	// kitCachePrefix namespaces materialized embedded kits by version
	kitCachePrefix = "kit-"
)

// Paths provides centralized path management for clawkit
type Paths struct {
	// xdgData is the XDG data directory
	xdgData string

	// xdgConfig is the XDG config directory
	xdgConfig string

	// xdgCache is the XDG cache directory
	xdgCache string

	// xdgState is the XDG state directory
	xdgState string
}

// New creates a new Paths instance. XDG directories are resolved once,
// respecting the CLAWKIT_* environment overrides.
func New() (*Paths, error) {
	p := &Paths{}
	p.setupXDGDirs()
	return p, nil
}

// setupXDGDirs initializes XDG directories, respecting environment overrides
func (p *Paths) setupXDGDirs() {
	// Data directory
	if dataDir := os.Getenv(EnvDataDir); dataDir != "" {
		p.xdgData = expandHome(dataDir)
	} else {
		p.xdgData = filepath.Join(xdg.DataHome, ClawkitDirName)
	}

	// Config directory
	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.xdgConfig = expandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, ClawkitDirName)
	}

	// Cache directory
	if cacheDir := os.Getenv(EnvCacheDir); cacheDir != "" {
		p.xdgCache = expandHome(cacheDir)
	} else {
		p.xdgCache = filepath.Join(xdg.CacheHome, ClawkitDirName)
	}

	// State directory - checked manually so test overrides take effect
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		p.xdgState = filepath.Join(stateDir, ClawkitDirName)
	} else {
		homeDir, _ := os.UserHomeDir()
		p.xdgState = filepath.Join(homeDir, ".local", "state", ClawkitDirName)
	}
}

// DataDir returns the XDG data directory for clawkit
func (p *Paths) DataDir() string {
	return p.xdgData
}

// ConfigDir returns the XDG config directory for clawkit
func (p *Paths) ConfigDir() string {
	return p.xdgConfig
}

// CacheDir returns the XDG cache directory for clawkit
func (p *Paths) CacheDir() string {
	return p.xdgCache
}

// StateDir returns the XDG state directory for clawkit
func (p *Paths) StateDir() string {
	return p.xdgState
}

// ConfigFilePath returns the path to the user configuration file
func (p *Paths) ConfigFilePath() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

// LogFilePath returns the path to the log file
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// KitCacheDir returns the directory a given embedded-kit version is
// materialized into.
func (p *Paths) KitCacheDir(version string) string {
	return filepath.Join(p.xdgCache, kitCachePrefix+version)
}

// TargetConfigDir returns the configuration directory inside a target
// project, i.e. where kit assets are installed.
func TargetConfigDir(projectDir string) string {
	return filepath.Join(projectDir, TargetDirName)
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to HOME env var
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		// Handle both ~/ and ~
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}
