package kit

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/clawkit/pkg/errors"
	"github.com/arthur-debert/clawkit/pkg/logging"
	"github.com/arthur-debert/clawkit/pkg/types"
)

// DiscoverAssets lists the installable files of the given groups, in group
// order and sorted by path within each group. Every file appears exactly
// once. A group whose directory is absent contributes nothing.
func DiscoverAssets(fsys types.FS, kitRoot string, groups []types.Group, exclude []string) ([]types.Asset, error) {
	logger := logging.GetLogger("kit.discovery")
	logger.Trace().
		Str("kitRoot", kitRoot).
		Int("groups", len(groups)).
		Msg("discovering kit assets")

	var assets []types.Asset
	for _, group := range groups {
		found, err := DiscoverGroup(fsys, kitRoot, group, exclude)
		if err != nil {
			return nil, err
		}
		assets = append(assets, found...)
	}

	logger.Info().
		Str("kitRoot", kitRoot).
		Int("assets", len(assets)).
		Msg("kit assets discovered")
	return assets, nil
}

// DiscoverGroup lists one group's installable files, sorted by relative
// path. Exclusion patterns match base names of both files and directories;
// excluded directories are not descended into.
func DiscoverGroup(fsys types.FS, kitRoot string, group types.Group, exclude []string) ([]types.Asset, error) {
	logger := logging.GetLogger("kit.discovery")

	groupRoot := kitRoot
	if group.Dir != "" {
		groupRoot = filepath.Join(kitRoot, group.Dir)
	}

	if _, err := fsys.Stat(groupRoot); err != nil {
		if os.IsNotExist(err) {
			logger.Trace().
				Str("group", group.Name).
				Str("path", groupRoot).
				Msg("group directory absent, skipping")
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrKitAccess,
			"cannot access kit group %q", group.Name).
			WithDetail("path", groupRoot)
	}

	var relPaths []string
	var err error
	switch group.Kind {
	case types.GroupFiles:
		relPaths, err = listFiles(fsys, groupRoot, group.Pattern, exclude)
	case types.GroupTree:
		relPaths, err = walkTree(fsys, groupRoot, "", exclude)
	default:
		return nil, errors.Newf(errors.ErrInternal, "unknown group kind %q", group.Kind)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrKitAccess,
			"cannot read kit group %q", group.Name).
			WithDetail("path", groupRoot)
	}

	sort.Strings(relPaths)

	assets := make([]types.Asset, 0, len(relPaths))
	for _, rel := range relPaths {
		if group.Dir != "" {
			rel = filepath.Join(group.Dir, rel)
		}
		assets = append(assets, types.Asset{RelPath: rel, Group: group.Name})
	}

	logger.Trace().
		Str("group", group.Name).
		Int("assets", len(assets)).
		Msg("group discovered")
	return assets, nil
}

// listFiles returns the regular files directly under dir whose base names
// match pattern, minus excluded and test-only names.
func listFiles(fsys types.FS, dir, pattern string, exclude []string) ([]string, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			continue
		}
		if name == TestOnlyHookFile {
			continue
		}
		if strings.HasPrefix(name, ".") {
			continue
		}
		if shouldIgnoreWithPatterns(name, exclude) {
			continue
		}
		if pattern != "" {
			matched, err := filepath.Match(pattern, name)
			if err != nil {
				return nil, err
			}
			if !matched {
				continue
			}
		}
		names = append(names, name)
	}
	return names, nil
}

// walkTree collects the regular files under dir recursively, as paths
// relative to the walk root.
func walkTree(fsys types.FS, dir, rel string, exclude []string) ([]string, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if shouldIgnoreWithPatterns(name, exclude) {
			continue
		}

		entryRel := name
		if rel != "" {
			entryRel = filepath.Join(rel, name)
		}

		if entry.IsDir() {
			sub, err := walkTree(fsys, filepath.Join(dir, name), entryRel, exclude)
			if err != nil {
				return nil, err
			}
			paths = append(paths, sub...)
			continue
		}
		if name == TestOnlyHookFile {
			continue
		}
		paths = append(paths, entryRel)
	}
	return paths, nil
}
