package config

import (
	"fmt"
	"os"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces clawkit's environment overrides.
const envPrefix = "CLAWKIT_"

// envKeys maps recognized environment variables (sans prefix) to config
// keys. Unlisted CLAWKIT_* variables are ignored rather than guessed at,
// since underscores are ambiguous between word breaks and key separators.
var envKeys = map[string]string{
	"KIT_DIR":                 "kit.dir",
	"INSTALL_EXCLUDE":         "install.exclude",
	"INSTALL_OPTIONAL_GROUPS": "install.optional_groups",
}

// Load builds the merged configuration. Layers, lowest to highest
// precedence:
//
//  1. embedded defaults.toml
//  2. the user config file at configPath (skipped when absent or empty)
//  3. recognized CLAWKIT_* environment variables
//  4. explicit overrides (flag values supplied by the CLI)
func Load(configPath string, overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	// 1. Load system defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Load the user config file if it exists
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
			}
		}
	}

	// 3. Environment overrides
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return envKeys[s[len(envPrefix):]]
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	// 4. Flag overrides win over everything
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load overrides: %w", err)
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return &cfg, nil
}
