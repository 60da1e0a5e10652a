package kit

// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem (temp dirs), embedded kit
// PURPOSE: Embedded kit materialization into the cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/clawkit/pkg/filesystem"
	"github.com/arthur-debert/clawkit/pkg/testutil"
)

func TestEnsureEmbedded_Materializes(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "kit-1.0.0")

	root, err := EnsureEmbedded(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, root)

	testutil.AssertFileExists(t, filepath.Join(root, "settings.json"))
	testutil.AssertFileExists(t, filepath.Join(root, "kit.toml"))
	testutil.AssertFileExists(t, filepath.Join(root, "bash_guard.py"))
	testutil.AssertFileExists(t, filepath.Join(root, "test_hooks.py"))
	testutil.AssertFileExists(t, filepath.Join(root, "utils", "hookio.py"))
	testutil.AssertFileExists(t, filepath.Join(root, "statusline", "statusline.py"))
	testutil.AssertFileExists(t, filepath.Join(root, "skills", "debugging", "SKILL.md"))

	// No staging leftovers.
	_, statErr := os.Stat(dir + ".partial")
	assert.True(t, os.IsNotExist(statErr))
}

func TestEnsureEmbedded_ReusesExisting(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "kit-1.0.0")

	_, err := EnsureEmbedded(dir)
	require.NoError(t, err)

	marker := filepath.Join(dir, "marker.txt")
	require.NoError(t, os.WriteFile(marker, []byte("kept"), 0o644))

	root, err := EnsureEmbedded(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, root)
	testutil.AssertFileContent(t, marker, "kept")
}

func TestEnsureEmbedded_KitIsDiscoverable(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "kit-1.0.0")

	root, err := EnsureEmbedded(dir)
	require.NoError(t, err)

	assets, err := DiscoverAssets(filesystem.NewOS(), root, AllGroups(), defaultExcludes)
	require.NoError(t, err)
	require.NotEmpty(t, assets)

	for _, a := range assets {
		assert.NotEqual(t, TestOnlyHookFile, filepath.Base(a.RelPath))
		assert.NotEqual(t, "settings.json", a.RelPath)
		assert.NotEqual(t, "kit.toml", a.RelPath)
	}
}
