// Package config loads clawkit's merged configuration.
//
// Configuration is layered with koanf: embedded defaults, then the user
// config file, then CLAWKIT_* environment variables, then explicit flag
// overrides. Only knobs that genuinely vary per user live here (kit
// location, traversal excludes, pre-selected optional groups, created
// file modes); the kit and target layout are fixed in pkg/paths.
package config
