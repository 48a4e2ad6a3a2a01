// Package config loads journeydeck settings.
//
// Configuration priority (highest to lowest):
//  1. Environment variables (JOURNEYDECK_ prefix, e.g. JOURNEYDECK_UI_MARKDOWN_STYLE)
//  2. Config file given by --config or JOURNEYDECK_CONFIG_PATH
//  3. journeydeck.yaml in ConfigDir()
//  4. journeydeck.yaml in the working directory
//  5. [DefaultConfig] defaults
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	envPrefix  = "JOURNEYDECK"
	configName = "journeydeck"
)

// Config is the root configuration container
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	UI     UIConfig     `mapstructure:"ui"`
	Export ExportConfig `mapstructure:"export"`
}

// LogConfig controls the rotating log file
type LogConfig struct {
	// Debug lowers the level to debug and logs every navigation step.
	Debug bool `mapstructure:"debug"`

	// Dir holds journeydeck.log. Default: <ConfigDir>/logs
	Dir string `mapstructure:"dir"`
}

// UIConfig controls the terminal presentation
type UIConfig struct {
	// AltScreen runs the TUI in the alternate screen buffer.
	AltScreen bool `mapstructure:"alt_screen"`

	// MarkdownStyle is the glamour standard style used for slides:
	// "dark", "light", "dracula", "tokyo-night", "pink", "ascii" or "notty".
	MarkdownStyle string `mapstructure:"markdown_style"`

	// WordWrap is the slide text width in columns.
	WordWrap int `mapstructure:"word_wrap"`
}

// ExportConfig holds defaults for the export command
type ExportConfig struct {
	SQLitePath string `mapstructure:"sqlite_path"`
}

// DefaultConfig returns a Config with defaults that work without any file
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Debug: false,
			Dir:   filepath.Join(ConfigDir(), "logs"),
		},
		UI: UIConfig{
			AltScreen:     true,
			MarkdownStyle: "dark",
			WordWrap:      80,
		},
		Export: ExportConfig{
			SQLitePath: "journeydeck.db",
		},
	}
}

// ConfigDir returns the journeydeck config directory from JOURNEYDECK_HOME,
// falling back to the platform user config dir.
func ConfigDir() string {
	if env := os.Getenv(envPrefix + "_HOME"); env != "" {
		return env
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, configName)
	}
	return "." + configName
}

// Loader reads configuration through viper
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader with defaults and environment overrides bound
func NewLoader() *Loader {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("log.debug", def.Log.Debug)
	v.SetDefault("log.dir", def.Log.Dir)
	v.SetDefault("ui.alt_screen", def.UI.AltScreen)
	v.SetDefault("ui.markdown_style", def.UI.MarkdownStyle)
	v.SetDefault("ui.word_wrap", def.UI.WordWrap)
	v.SetDefault("export.sqlite_path", def.Export.SQLitePath)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// Load reads the first config file found in the search path. A missing
// file is not an error.
func (l *Loader) Load() (*Config, error) {
	if path := os.Getenv(envPrefix + "_CONFIG_PATH"); path != "" {
		return l.LoadFromFile(path)
	}

	l.v.SetConfigName(configName)
	l.v.SetConfigType("yaml")
	l.v.AddConfigPath(ConfigDir())
	l.v.AddConfigPath(".")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return l.unmarshal()
}

// LoadFromFile reads configuration from an explicit file
func (l *Loader) LoadFromFile(path string) (*Config, error) {
	l.v.SetConfigFile(path)
	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return l.unmarshal()
}

// ConfigFileUsed returns the path of the file that was read, if any
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

func (l *Loader) unmarshal() (*Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}
