package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().validate())
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "seed: 99\nterrain: noise\nrender_pad: 2\nvsync: false\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, "noise", cfg.Terrain)
	assert.Equal(t, 2, cfg.RenderPad)
	assert.False(t, cfg.Vsync)
	// Untouched keys keep their defaults.
	assert.Equal(t, Default().SectorSize, cfg.SectorSize)
	assert.Equal(t, Default().WalkingSpeed, cfg.WalkingSpeed)
}

func TestLoadUnknownTerrain(t *testing.T) {
	path := writeConfig(t, "terrain: moon\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terrain")
}

func TestLoadRejectsBadValues(t *testing.T) {
	for name, body := range map[string]string{
		"zero sector":   "sector_size: 0\n",
		"zero height":   "player_height: 0\n",
		"negative tps":  "ticks_per_second: -1\n",
		"broken yaml":   "seed: [\n",
	} {
		t.Run(name, func(t *testing.T) {
			path := writeConfig(t, body)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
