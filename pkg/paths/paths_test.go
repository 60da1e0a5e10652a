package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		envSetup map[string]string
		validate func(t *testing.T, p *Paths)
	}{
		{
			name: "custom clawkit directories",
			envSetup: map[string]string{
				EnvDataDir:   "/custom/data",
				EnvConfigDir: "/custom/config",
				EnvCacheDir:  "/custom/cache",
			},
			validate: func(t *testing.T, p *Paths) {
				assert.Equal(t, "/custom/data", p.DataDir())
				assert.Equal(t, "/custom/config", p.ConfigDir())
				assert.Equal(t, "/custom/cache", p.CacheDir())
			},
		},
		{
			name: "tilde expansion in overrides",
			envSetup: map[string]string{
				EnvCacheDir: "~/my-cache",
			},
			validate: func(t *testing.T, p *Paths) {
				homeDir, _ := os.UserHomeDir()
				assert.Equal(t, filepath.Join(homeDir, "my-cache"), p.CacheDir())
			},
		},
		{
			name: "state dir from XDG_STATE_HOME",
			envSetup: map[string]string{
				"XDG_STATE_HOME": "/var/state",
			},
			validate: func(t *testing.T, p *Paths) {
				assert.Equal(t, filepath.Join("/var/state", ClawkitDirName), p.StateDir())
			},
		},
		{
			name: "defaults end in clawkit",
			validate: func(t *testing.T, p *Paths) {
				assert.Equal(t, ClawkitDirName, filepath.Base(p.DataDir()))
				assert.Equal(t, ClawkitDirName, filepath.Base(p.ConfigDir()))
				assert.Equal(t, ClawkitDirName, filepath.Base(p.CacheDir()))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear relevant environment variables first
			t.Setenv(EnvDataDir, "")
			t.Setenv(EnvConfigDir, "")
			t.Setenv(EnvCacheDir, "")

			for k, v := range tt.envSetup {
				t.Setenv(k, v)
			}

			p, err := New()
			require.NoError(t, err)
			tt.validate(t, p)
		})
	}
}

func TestDerivedPaths(t *testing.T) {
	t.Setenv(EnvConfigDir, "/cfg")
	t.Setenv(EnvCacheDir, "/cache")
	t.Setenv("XDG_STATE_HOME", "/state")

	p, err := New()
	require.NoError(t, err)

	assert.Equal(t, "/cfg/config.toml", p.ConfigFilePath())
	assert.Equal(t, "/state/clawkit/clawkit.log", p.LogFilePath())
	assert.Equal(t, "/cache/kit-1.2.0", p.KitCacheDir("1.2.0"))
}

func TestTargetConfigDir(t *testing.T) {
	assert.Equal(t, "/work/proj/.claude", TargetConfigDir("/work/proj"))
}

func TestExpandHome(t *testing.T) {
	homeDir, _ := os.UserHomeDir()

	tests := []struct {
		name string
		path string
		want string
	}{
		{"empty", "", ""},
		{"bare tilde", "~", homeDir},
		{"tilde slash", "~/sub/dir", filepath.Join(homeDir, "sub/dir")},
		{"tilde user untouched", "~other/dir", "~other/dir"},
		{"absolute untouched", "/abs/path", "/abs/path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expandHome(tt.path))
		})
	}
}
