// Package list implements the list command: it resolves the kit the same
// way install would and reports its manifest plus every group's assets.
package list

import (
	"github.com/arthur-debert/clawkit/pkg/config"
	"github.com/arthur-debert/clawkit/pkg/filesystem"
	"github.com/arthur-debert/clawkit/pkg/kit"
	"github.com/arthur-debert/clawkit/pkg/logging"
	"github.com/arthur-debert/clawkit/pkg/paths"
	"github.com/arthur-debert/clawkit/pkg/types"
)

// ListOptions defines the options for the List command.
type ListOptions struct {
	// KitDir overrides the configured kit directory.
	KitDir string
	// ConfigFile is an explicit config file path. Empty uses the default
	// lookup.
	ConfigFile string
	// Version keys the embedded kit's cache directory. The CLI passes the
	// build version.
	Version string
}

// List resolves the kit and returns its manifest and the assets each
// group would install. Groups with no assets in this kit are omitted.
func List(opts ListOptions) (*types.ListResult, error) {
	log := logging.GetLogger("commands.list")
	log.Debug().Str("command", "List").Msg("Executing command")

	p, err := paths.New()
	if err != nil {
		return nil, err
	}

	var overrides map[string]interface{}
	if opts.KitDir != "" {
		overrides = map[string]interface{}{"kit.dir": opts.KitDir}
	}
	configFile := opts.ConfigFile
	if configFile == "" {
		configFile = p.ConfigFilePath()
	}
	cfg, err := config.Load(configFile, overrides)
	if err != nil {
		return nil, err
	}

	loc, err := kit.Locate(cfg, p, opts.Version)
	if err != nil {
		return nil, err
	}

	fs := filesystem.NewOS()
	manifest, err := kit.LoadManifest(fs, loc.Root)
	if err != nil {
		return nil, err
	}

	info := types.KitInfo{
		Root:        loc.Root,
		Name:        manifest.Name,
		Version:     manifest.Version,
		Description: manifest.Description,
		Embedded:    loc.Embedded,
	}

	for _, group := range kit.AllGroups() {
		assets, err := kit.DiscoverGroup(fs, loc.Root, group, cfg.Install.Exclude)
		if err != nil {
			return nil, err
		}
		if len(assets) == 0 {
			continue
		}
		gi := types.GroupInfo{Name: group.Name, Optional: group.Optional}
		for _, asset := range assets {
			gi.Assets = append(gi.Assets, asset.RelPath)
		}
		info.Groups = append(info.Groups, gi)
	}

	log.Info().
		Str("command", "List").
		Str("kit", info.Name).
		Int("groupCount", len(info.Groups)).
		Msg("Command finished")
	return &types.ListResult{Kit: info}, nil
}
