package status

// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem (temp dirs)
// PURPOSE: Status reporting: per-asset missing/installed/modified
// classification and the read-only settings peek

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/clawkit/pkg/commands/install"
	"github.com/arthur-debert/clawkit/pkg/errors"
	"github.com/arthur-debert/clawkit/pkg/testutil"
	"github.com/arthur-debert/clawkit/pkg/types"
)

const kitSettings = `{
  "hooks": {
    "PreToolUse": [
      {"matcher": "Bash", "hooks": [{"type": "command", "command": "python3 bash_guard.py"}]}
    ]
  },
  "env": {}
}`

func setupKit(t *testing.T) string {
	t.Helper()
	// Keep a developer's real config file out of the run.
	t.Setenv("CLAWKIT_CONFIG_DIR", t.TempDir())
	kitDir := t.TempDir()
	testutil.CreateFile(t, kitDir, "settings.json", kitSettings)
	testutil.CreateFile(t, kitDir, "bash_guard.py", "# guard\n")
	testutil.CreateFile(t, kitDir, "utils/hookio.py", "# io\n")
	testutil.CreateFile(t, kitDir, "statusline/statusline.py", "# status\n")
	testutil.CreateFile(t, kitDir, "agents/code-reviewer.md", "agent\n")
	return kitDir
}

func stateOf(t *testing.T, result *types.StatusResult, relPath string) types.AssetState {
	t.Helper()
	for _, a := range result.Assets {
		if a.RelPath == relPath {
			return a.State
		}
	}
	t.Fatalf("asset %s not in status result", relPath)
	return ""
}

func TestStatus_FreshProjectAllMissing(t *testing.T) {
	kitDir := setupKit(t)
	projectDir := testutil.CreateDir(t, t.TempDir(), "proj")

	result, err := Status(StatusOptions{TargetDir: projectDir, KitDir: kitDir, Version: "test"})
	require.NoError(t, err)

	assert.Equal(t, types.MergeApplied, result.Settings)
	missing, installed, modified := result.Counts()
	assert.Equal(t, len(result.Assets), missing)
	assert.Equal(t, 0, installed)
	assert.Equal(t, 0, modified)

	// Optional groups show up too, so the report covers the whole kit.
	assert.Equal(t, types.StateMissing, stateOf(t, result, filepath.Join("agents", "code-reviewer.md")))
}

func TestStatus_AfterInstallReportsInstalled(t *testing.T) {
	kitDir := setupKit(t)
	projectDir := testutil.CreateDir(t, t.TempDir(), "proj")

	_, err := install.Install(install.InstallOptions{TargetDir: projectDir, KitDir: kitDir, Version: "test"})
	require.NoError(t, err)

	result, err := Status(StatusOptions{TargetDir: projectDir, KitDir: kitDir, Version: "test"})
	require.NoError(t, err)

	assert.Equal(t, types.MergeUnchanged, result.Settings)
	assert.Equal(t, types.StateInstalled, stateOf(t, result, "bash_guard.py"))
	assert.Equal(t, types.StateInstalled, stateOf(t, result, filepath.Join("utils", "hookio.py")))
	// agents is optional and was not selected for install.
	assert.Equal(t, types.StateMissing, stateOf(t, result, filepath.Join("agents", "code-reviewer.md")))
}

func TestStatus_LocalEditReportsModified(t *testing.T) {
	kitDir := setupKit(t)
	projectDir := testutil.CreateDir(t, t.TempDir(), "proj")
	configDir := filepath.Join(projectDir, ".claude")

	_, err := install.Install(install.InstallOptions{TargetDir: projectDir, KitDir: kitDir, Version: "test"})
	require.NoError(t, err)

	testutil.CreateFile(t, configDir, "bash_guard.py", "# user edited\n")

	result, err := Status(StatusOptions{TargetDir: projectDir, KitDir: kitDir, Version: "test"})
	require.NoError(t, err)

	assert.Equal(t, types.StateModified, stateOf(t, result, "bash_guard.py"))
	assert.Equal(t, types.StateInstalled, stateOf(t, result, filepath.Join("statusline", "statusline.py")))
}

func TestStatus_NeverWrites(t *testing.T) {
	kitDir := setupKit(t)
	projectDir := testutil.CreateDir(t, t.TempDir(), "proj")
	configDir := filepath.Join(projectDir, ".claude")

	_, err := Status(StatusOptions{TargetDir: projectDir, KitDir: kitDir, Version: "test"})
	require.NoError(t, err)

	testutil.AssertNoFile(t, filepath.Join(configDir, "settings.json"))
	testutil.AssertNoFile(t, filepath.Join(configDir, "bash_guard.py"))
}

func TestStatus_ForeignSettingsStayUnchangedOutcome(t *testing.T) {
	kitDir := setupKit(t)
	projectDir := testutil.CreateDir(t, t.TempDir(), "proj")

	_, err := install.Install(install.InstallOptions{TargetDir: projectDir, KitDir: kitDir, Version: "test"})
	require.NoError(t, err)

	// Settings the kit does not manage do not count as drift.
	configDir := filepath.Join(projectDir, ".claude")
	raw := testutil.ReadFile(t, filepath.Join(configDir, "settings.json"))
	edited := raw[:len(raw)-2] + ",\n  \"model\": \"opus\"\n}\n"
	testutil.CreateFile(t, configDir, "settings.json", edited)

	result, err := Status(StatusOptions{TargetDir: projectDir, KitDir: kitDir, Version: "test"})
	require.NoError(t, err)
	assert.Equal(t, types.MergeUnchanged, result.Settings)
}

func TestStatus_MalformedTargetSettingsFails(t *testing.T) {
	kitDir := setupKit(t)
	projectDir := testutil.CreateDir(t, t.TempDir(), "proj")
	configDir := testutil.CreateDir(t, projectDir, ".claude")
	testutil.CreateFile(t, configDir, "settings.json", "{not json")

	_, err := Status(StatusOptions{TargetDir: projectDir, KitDir: kitDir, Version: "test"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSettingsParse))
}

func TestStatus_MissingTargetDir(t *testing.T) {
	kitDir := setupKit(t)

	_, err := Status(StatusOptions{
		TargetDir: filepath.Join(t.TempDir(), "nope"),
		KitDir:    kitDir,
		Version:   "test",
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTargetInvalid))
}
