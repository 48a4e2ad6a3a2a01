package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.False(t, cfg.Log.Debug)
	assert.True(t, cfg.UI.AltScreen)
	assert.Equal(t, "dark", cfg.UI.MarkdownStyle)
	assert.Equal(t, 80, cfg.UI.WordWrap)
	assert.Equal(t, "journeydeck.db", cfg.Export.SQLitePath)
}

func TestConfigDir_EnvOverride(t *testing.T) {
	t.Setenv("JOURNEYDECK_HOME", "/tmp/deck-home")
	assert.Equal(t, "/tmp/deck-home", ConfigDir())
	assert.Equal(t, filepath.Join("/tmp/deck-home", "logs"), DefaultConfig().Log.Dir)
}

func TestLoader_LoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "deck.yaml")

	configContent := `
log:
  debug: true
ui:
  markdown_style: light
  word_wrap: 100
export:
  sqlite_path: /data/deck.db
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	loader := NewLoader()
	cfg, err := loader.LoadFromFile(configPath)

	require.NoError(t, err)
	assert.True(t, cfg.Log.Debug)
	assert.Equal(t, "light", cfg.UI.MarkdownStyle)
	assert.Equal(t, 100, cfg.UI.WordWrap)
	assert.Equal(t, "/data/deck.db", cfg.Export.SQLitePath)
	// untouched keys keep their defaults
	assert.True(t, cfg.UI.AltScreen)
	assert.Equal(t, configPath, loader.ConfigFileUsed())
}

func TestLoader_Load_NoFileUsesDefaults(t *testing.T) {
	t.Setenv("JOURNEYDECK_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := NewLoader().Load()

	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.UI.MarkdownStyle)
}

func TestLoader_Load_WithEnvOverride(t *testing.T) {
	t.Setenv("JOURNEYDECK_HOME", t.TempDir())
	t.Setenv("JOURNEYDECK_UI_MARKDOWN_STYLE", "notty")
	t.Setenv("JOURNEYDECK_LOG_DEBUG", "true")
	t.Chdir(t.TempDir())

	cfg, err := NewLoader().Load()

	require.NoError(t, err)
	assert.Equal(t, "notty", cfg.UI.MarkdownStyle)
	assert.True(t, cfg.Log.Debug)
}

func TestLoader_Load_ConfigPathEnv(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("ui:\n  alt_screen: false\n"), 0644))
	t.Setenv("JOURNEYDECK_CONFIG_PATH", configPath)

	cfg, err := NewLoader().Load()

	require.NoError(t, err)
	assert.False(t, cfg.UI.AltScreen)
}

func TestLoader_LoadFromFile_Missing(t *testing.T) {
	_, err := NewLoader().LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
