// Package genconfig implements the gen-config command: it emits the
// default configuration, either to stdout or straight into the user's
// config file, so a starting point never has to be written by hand.
package genconfig

import (
	"context"
	"os"

	"github.com/arthur-debert/clawkit/pkg/config"
	"github.com/arthur-debert/clawkit/pkg/errors"
	"github.com/arthur-debert/clawkit/pkg/executor"
	"github.com/arthur-debert/clawkit/pkg/logging"
	"github.com/arthur-debert/clawkit/pkg/paths"
	"github.com/arthur-debert/clawkit/pkg/types"
)

// GenConfigOptions defines the options for the GenConfig command.
type GenConfigOptions struct {
	// Write persists the default config to the user config path instead of
	// only returning it.
	Write bool
	// Force replaces an existing config file when writing.
	Force bool
	// DryRun previews the write without touching the filesystem.
	DryRun bool
}

// GenConfig returns the default configuration. With Write set it also
// creates the user config file, leaving an existing one untouched unless
// Force is set.
func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	log := logging.GetLogger("commands.genconfig")
	log.Debug().
		Str("command", "GenConfig").
		Bool("write", opts.Write).
		Bool("force", opts.Force).
		Bool("dryRun", opts.DryRun).
		Msg("Executing command")

	result := &types.GenConfigResult{Content: config.DefaultConfigContent()}

	if !opts.Write {
		log.Info().Str("command", "GenConfig").Msg("Command finished")
		return result, nil
	}

	p, err := paths.New()
	if err != nil {
		return nil, err
	}
	result.Path = p.ConfigFilePath()

	if _, statErr := os.Stat(result.Path); statErr == nil {
		if !opts.Force {
			log.Info().
				Str("path", result.Path).
				Msg("Config file already exists, leaving it in place")
			return result, nil
		}
	} else if !os.IsNotExist(statErr) {
		return nil, errors.Wrap(statErr, errors.ErrFileAccess, "failed to check config file").
			WithDetail("path", result.Path)
	}

	exec := executor.New(executor.Options{DryRun: opts.DryRun})
	if err := exec.WriteFile(context.Background(), result.Path, []byte(result.Content)); err != nil {
		return nil, err
	}
	result.Written = true
	result.DryRun = opts.DryRun

	log.Info().
		Str("command", "GenConfig").
		Str("path", result.Path).
		Bool("written", result.Written).
		Msg("Command finished")
	return result, nil
}
