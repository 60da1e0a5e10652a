package config

import (
	"os"
)

// Kit holds settings about where the source kit lives.
type Kit struct {
	// Dir is an on-disk kit root. Empty means the embedded kit.
	Dir string `koanf:"dir"`
}

// Install holds settings for the copy engine.
type Install struct {
	// Exclude lists base-name patterns (filepath.Match) that directory
	// traversal skips, for files and directories alike. Tooling
	// byproducts like __pycache__ belong here, not real assets.
	Exclude []string `koanf:"exclude"`

	// OptionalGroups pre-selects optional asset groups so they install
	// without per-run flags.
	OptionalGroups []string `koanf:"optional_groups"`
}

// FilePermissions holds the modes applied to files and directories the
// installer creates.
type FilePermissions struct {
	File os.FileMode `koanf:"file"`
	Dir  os.FileMode `koanf:"dir"`
}

// Config is the merged clawkit configuration.
type Config struct {
	Kit         Kit             `koanf:"kit"`
	Install     Install         `koanf:"install"`
	Permissions FilePermissions `koanf:"permissions"`
}

// Default returns the default configuration
func Default() *Config {
	cfg, err := Load("", nil)
	if err != nil {
		// Fallback to minimal config if loading fails
		return &Config{
			Install: Install{
				Exclude: []string{"__pycache__", "*.pyc", ".DS_Store"},
			},
			Permissions: FilePermissions{
				File: 0o644,
				Dir:  0o755,
			},
		}
	}
	return cfg
}
