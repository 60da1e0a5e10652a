package kit

import (
	"path/filepath"
	"sort"

	"github.com/arthur-debert/clawkit/pkg/errors"
	"github.com/arthur-debert/clawkit/pkg/types"
)

// TestOnlyHookFile is the one kit file that is never installed. It exists
// so the kit's hooks can be exercised in place; the exclusion is a fixed
// rule on this literal name, not a naming convention.
const TestOnlyHookFile = "test_hooks.py"

// coreGroups are always installed.
var coreGroups = []types.Group{
	{Name: "hooks", Dir: "", Kind: types.GroupFiles, Pattern: "*.py"},
	{Name: "utils", Dir: "utils", Kind: types.GroupTree},
	{Name: "statusline", Dir: "statusline", Kind: types.GroupTree},
}

// optionalGroups are installed only when selected.
var optionalGroups = []types.Group{
	{Name: "agents", Dir: "agents", Kind: types.GroupTree, Optional: true},
	{Name: "commands", Dir: "commands", Kind: types.GroupTree, Optional: true},
	{Name: "validators", Dir: "validators", Kind: types.GroupTree, Optional: true},
	{Name: "skills", Dir: "skills", Kind: types.GroupTree, Optional: true},
	{Name: "output-styles", Dir: "output-styles", Kind: types.GroupTree, Optional: true},
}

// CoreGroups returns the mandatory asset groups.
func CoreGroups() []types.Group {
	out := make([]types.Group, len(coreGroups))
	copy(out, coreGroups)
	return out
}

// OptionalGroups returns the optional asset groups.
func OptionalGroups() []types.Group {
	out := make([]types.Group, len(optionalGroups))
	copy(out, optionalGroups)
	return out
}

// OptionalGroupNames returns the optional group names, sorted.
func OptionalGroupNames() []string {
	names := make([]string, 0, len(optionalGroups))
	for _, g := range optionalGroups {
		names = append(names, g.Name)
	}
	sort.Strings(names)
	return names
}

// AllGroups returns every group, core first.
func AllGroups() []types.Group {
	return append(CoreGroups(), OptionalGroups()...)
}

// SelectGroups resolves the groups one run processes: all core groups,
// plus the named optional ones (or every optional group when all is set).
// Unknown names are an input error.
func SelectGroups(selected []string, all bool) ([]types.Group, error) {
	groups := CoreGroups()

	if all {
		return append(groups, OptionalGroups()...), nil
	}

	byName := make(map[string]types.Group, len(optionalGroups))
	for _, g := range optionalGroups {
		byName[g.Name] = g
	}

	seen := make(map[string]bool, len(selected))
	for _, name := range selected {
		if seen[name] {
			continue
		}
		seen[name] = true

		g, ok := byName[name]
		if !ok {
			return nil, errors.Newf(errors.ErrInvalidInput,
				"unknown asset group %q", name).
				WithDetail("group", name)
		}
		groups = append(groups, g)
	}

	return groups, nil
}

// shouldIgnoreWithPatterns checks if a base name matches any ignore pattern
func shouldIgnoreWithPatterns(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
