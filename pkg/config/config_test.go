package config_test

import (
	"lintang/windcanvas/pkg/config"
	"os"
	"path/filepath"
	"lintang/windcanvas/pkg/datastructure"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.Server.ListenAddr)
	assert.Equal(t, 4, cfg.Workers.Count)
	assert.Equal(t, datastructure.NewGeoBound(85, -180, -85, 180), cfg.GeoBound.Bound())
	assert.Equal(t, datastructure.NewCanvasBound(0, 0, 360, 180), cfg.CanvasBound.Bound())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("WINDCANVAS_GEO_BOUND_NORTH", "60")
	t.Setenv("WINDCANVAS_CANVAS_BOUND_X_MAX", "1024")
	t.Setenv("WINDCANVAS_WORKERS_COUNT", "8")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 60.0, cfg.GeoBound.North)
	assert.Equal(t, 1024.0, cfg.CanvasBound.XMax)
	assert.Equal(t, 8, cfg.Workers.Count)
}

func TestLoadFromFile(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, err := config.LoadFrom(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, 256, cfg.Workers.BatchThreshold)
	})

	t.Run("values from file", func(t *testing.T) {
		dir := t.TempDir()
		yaml := "workers:\n  count: 3\ngeo_bound:\n  north: 70\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

		cfg, err := config.LoadFrom(dir)
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Workers.Count)
		assert.Equal(t, 70.0, cfg.GeoBound.North)
		assert.Equal(t, -85.0, cfg.GeoBound.South)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("workers: [count: 3\n  :"), 0o644))

		cfg, err := config.LoadFrom(dir)
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})
}

func TestValidate(t *testing.T) {
	valid := func() config.Config {
		return config.Config{
			Server:      config.ServerConfig{ListenAddr: ":5000", ReadTimeout: 10, WriteTimeout: 10},
			Workers:     config.WorkersConfig{Count: 2, BatchThreshold: 10},
			GeoBound:    config.GeoBoundConfig{North: 85, West: -180, South: -85, East: 180},
			CanvasBound: config.CanvasBoundConfig{XMax: 360, YMax: 180},
		}
	}

	t.Run("valid", func(t *testing.T) {
		cfg := valid()
		assert.NoError(t, cfg.Validate())
	})

	t.Run("collects every problem", func(t *testing.T) {
		cfg := valid()
		cfg.Workers.Count = 0
		cfg.GeoBound.North = -90
		cfg.CanvasBound.YMax = 0

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "workers.count")
		assert.Contains(t, err.Error(), "geo_bound")
		assert.Contains(t, err.Error(), "canvas_bound")
	})
}
