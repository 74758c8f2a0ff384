package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Should read settings from a JSON file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		body := `{"scene_path":"in.json","render_size":256,"elev_deg":15,"workers":4}`
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "in.json", cfg.ScenePath)
		assert.Equal(t, 256, cfg.RenderSize)
		assert.Equal(t, 15.0, cfg.ElevDeg)
		assert.Equal(t, 4, cfg.Workers)
	})

	t.Run("Should fail on a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("Should fail on malformed JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0644))
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestResolve(t *testing.T) {
	t.Run("Should fall back to defaults", func(t *testing.T) {
		var cfg Config
		cfg.Resolve(Flags{})
		assert.Equal(t, 512, cfg.RenderSize)
		assert.Equal(t, 2, cfg.Supersample)
		assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	})

	t.Run("Should let flags override file settings", func(t *testing.T) {
		cfg := Config{ScenePath: "file.json", RenderSize: 256, Workers: 4}
		cfg.Resolve(Flags{Scene: "flag.json", Size: 128})
		assert.Equal(t, "flag.json", cfg.ScenePath)
		assert.Equal(t, 128, cfg.RenderSize)
		assert.Equal(t, 4, cfg.Workers, "unset flags leave file settings alone")
	})

	t.Run("Should keep file settings when flags are zero", func(t *testing.T) {
		cfg := Config{OutputPath: "out.webp", Supersample: 3}
		cfg.Resolve(Flags{})
		assert.Equal(t, "out.webp", cfg.OutputPath)
		assert.Equal(t, 3, cfg.Supersample)
	})
}
