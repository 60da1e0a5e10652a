package kit

// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem (temp dirs), CLAWKIT_* env overrides
// PURPOSE: Kit root resolution order

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/clawkit/pkg/config"
	"github.com/arthur-debert/clawkit/pkg/errors"
	"github.com/arthur-debert/clawkit/pkg/paths"
	"github.com/arthur-debert/clawkit/pkg/testutil"
)

func testPaths(t *testing.T) *paths.Paths {
	t.Helper()
	base := t.TempDir()
	// CLAWKIT_* overrides are read per call, unlike XDG_* which the xdg
	// package resolves once at startup.
	t.Setenv("CLAWKIT_DATA_DIR", filepath.Join(base, "data"))
	t.Setenv("CLAWKIT_CONFIG_DIR", filepath.Join(base, "config"))
	t.Setenv("CLAWKIT_CACHE_DIR", filepath.Join(base, "cache"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(base, "state"))

	p, err := paths.New()
	require.NoError(t, err)
	return p
}

func TestLocate_ExplicitDir(t *testing.T) {
	p := testPaths(t)
	kitDir := t.TempDir()
	testutil.CreateFile(t, kitDir, "settings.json", "{}\n")

	loc, err := Locate(&config.Config{Kit: config.Kit{Dir: kitDir}}, p, "1.0.0")
	require.NoError(t, err)
	assert.Equal(t, kitDir, loc.Root)
	assert.False(t, loc.Embedded)
}

func TestLocate_ExplicitDirMissing(t *testing.T) {
	p := testPaths(t)
	missing := filepath.Join(t.TempDir(), "nope")

	_, err := Locate(&config.Config{Kit: config.Kit{Dir: missing}}, p, "1.0.0")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrKitNotFound))
}

func TestLocate_ExplicitPathIsFile(t *testing.T) {
	p := testPaths(t)
	dir := t.TempDir()
	testutil.CreateFile(t, dir, "kit.txt", "not a dir")

	_, err := Locate(&config.Config{Kit: config.Kit{Dir: filepath.Join(dir, "kit.txt")}}, p, "1.0.0")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrKitInvalid))
}

func TestLocate_FallsBackToEmbedded(t *testing.T) {
	p := testPaths(t)

	loc, err := Locate(&config.Config{}, p, "1.2.3")
	require.NoError(t, err)
	assert.True(t, loc.Embedded)
	assert.True(t, strings.HasSuffix(loc.Root, "kit-1.2.3"),
		"expected version-keyed cache dir, got %s", loc.Root)
	testutil.AssertFileExists(t, filepath.Join(loc.Root, "settings.json"))
}
