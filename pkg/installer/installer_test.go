package installer

// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem (temp dirs)
// PURPOSE: Copy engine decision chain: skip, force, dry-run, absent source

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/clawkit/pkg/testutil"
	"github.com/arthur-debert/clawkit/pkg/types"
)

func setupInstall(t *testing.T) (kitRoot, targetDir string) {
	t.Helper()
	kitRoot = t.TempDir()
	targetDir = t.TempDir()

	testutil.CreateFile(t, kitRoot, "bash_guard.py", "# guard v1\n")
	testutil.CreateFile(t, kitRoot, "notify.py", "# notify v1\n")
	testutil.CreateFile(t, kitRoot, "utils/hookio.py", "# io v1\n")
	testutil.CreateFile(t, kitRoot, "utils/__pycache__/hookio.cpython-312.pyc", "bin")
	return kitRoot, targetDir
}

func TestCopyAsset_InstallsFreshFile(t *testing.T) {
	kitRoot, targetDir := setupInstall(t)
	result := types.NewInstallResult(targetDir, kitRoot)

	inst := New(Options{})
	err := inst.CopyAsset(context.Background(), kitRoot, targetDir, "bash_guard.py", result)
	require.NoError(t, err)

	testutil.AssertFileContent(t, filepath.Join(targetDir, "bash_guard.py"), "# guard v1\n")
	assert.Equal(t, 1, result.Installed)
	assert.Equal(t, []string{"bash_guard.py"}, result.InstalledPaths)
	assert.Equal(t, 0, result.Skipped)
}

func TestCopyAsset_AbsentSourceIsNoop(t *testing.T) {
	kitRoot, targetDir := setupInstall(t)
	result := types.NewInstallResult(targetDir, kitRoot)

	inst := New(Options{})
	err := inst.CopyAsset(context.Background(), kitRoot, targetDir, "missing.py", result)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Installed)
	assert.Equal(t, 0, result.Skipped)
	testutil.AssertNoFile(t, filepath.Join(targetDir, "missing.py"))
}

func TestCopyAsset_ExistingTargetSkippedOnce(t *testing.T) {
	kitRoot, targetDir := setupInstall(t)
	testutil.CreateFile(t, targetDir, "bash_guard.py", "# user edited\n")
	result := types.NewInstallResult(targetDir, kitRoot)

	inst := New(Options{})
	err := inst.CopyAsset(context.Background(), kitRoot, targetDir, "bash_guard.py", result)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Installed)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, []string{"bash_guard.py"}, result.SkippedPaths)
	testutil.AssertFileContent(t, filepath.Join(targetDir, "bash_guard.py"), "# user edited\n")
}

func TestCopyAsset_ForceOverwrites(t *testing.T) {
	kitRoot, targetDir := setupInstall(t)
	testutil.CreateFile(t, targetDir, "bash_guard.py", "# user edited\n")
	result := types.NewInstallResult(targetDir, kitRoot)

	inst := New(Options{Force: true})
	err := inst.CopyAsset(context.Background(), kitRoot, targetDir, "bash_guard.py", result)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Installed)
	assert.Equal(t, 0, result.Skipped)
	testutil.AssertFileContent(t, filepath.Join(targetDir, "bash_guard.py"), "# guard v1\n")
}

func TestCopyAsset_DryRunCountsWithoutWriting(t *testing.T) {
	kitRoot, targetDir := setupInstall(t)
	result := types.NewInstallResult(targetDir, kitRoot)

	inst := New(Options{DryRun: true})
	err := inst.CopyAsset(context.Background(), kitRoot, targetDir, "bash_guard.py", result)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Installed)
	assert.Equal(t, []string{"bash_guard.py"}, result.InstalledPaths)
	testutil.AssertNoFile(t, filepath.Join(targetDir, "bash_guard.py"))
}

func TestCopyAsset_DryRunStillReportsSkips(t *testing.T) {
	kitRoot, targetDir := setupInstall(t)
	testutil.CreateFile(t, targetDir, "bash_guard.py", "# user edited\n")
	result := types.NewInstallResult(targetDir, kitRoot)

	inst := New(Options{DryRun: true})
	err := inst.CopyAsset(context.Background(), kitRoot, targetDir, "bash_guard.py", result)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Installed)
	assert.Equal(t, []string{"bash_guard.py"}, result.SkippedPaths)
}

func TestCopyGroup_WalksTreeWithExclusions(t *testing.T) {
	kitRoot, targetDir := setupInstall(t)
	result := types.NewInstallResult(targetDir, kitRoot)

	inst := New(Options{})
	group := types.Group{Name: "utils", Dir: "utils", Kind: types.GroupTree}
	err := inst.CopyGroup(context.Background(), kitRoot, targetDir, group, []string{"__pycache__", "*.pyc"}, result)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Installed)
	testutil.AssertFileContent(t, filepath.Join(targetDir, "utils", "hookio.py"), "# io v1\n")
	testutil.AssertNoFile(t, filepath.Join(targetDir, "utils", "__pycache__", "hookio.cpython-312.pyc"))
}

func TestCopyGroup_AbsentGroupDirIsNoop(t *testing.T) {
	kitRoot, targetDir := setupInstall(t)
	result := types.NewInstallResult(targetDir, kitRoot)

	inst := New(Options{})
	group := types.Group{Name: "agents", Dir: "agents", Kind: types.GroupTree, Optional: true}
	err := inst.CopyGroup(context.Background(), kitRoot, targetDir, group, nil, result)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Installed)
	assert.Equal(t, 0, result.Skipped)
}

func TestCopyGroup_SecondRunSkipsEverything(t *testing.T) {
	kitRoot, targetDir := setupInstall(t)
	group := types.Group{Name: "hooks", Kind: types.GroupFiles, Pattern: "*.py"}

	first := types.NewInstallResult(targetDir, kitRoot)
	inst := New(Options{})
	require.NoError(t, inst.CopyGroup(context.Background(), kitRoot, targetDir, group, nil, first))
	assert.Equal(t, 2, first.Installed)

	second := types.NewInstallResult(targetDir, kitRoot)
	require.NoError(t, inst.CopyGroup(context.Background(), kitRoot, targetDir, group, nil, second))
	assert.Equal(t, 0, second.Installed)
	assert.Equal(t, 2, second.Skipped)
	assert.Equal(t, []string{"bash_guard.py", "notify.py"}, second.SkippedPaths)
}
