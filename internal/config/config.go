package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Storage StorageConfig
	UI      UIConfig
	Log     LogConfig
}

// StorageConfig holds sqlite settings. With Enabled false the address book
// lives in memory only and import/export are the sole way to keep it.
type StorageConfig struct {
	Enabled bool
	Path    string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	SortByFirstName bool   `mapstructure:"sort_by_first_name"`
	Locale          string
	ExportPath      string `mapstructure:"export_path"`
}

// LogConfig holds logging settings. The TUI owns the terminal, so logs go to
// a file.
type LogConfig struct {
	Level string
	Path  string
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "rubrica")
}

func configPath() string {
	if p := os.Getenv("RUBRICA_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "rubrica", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix RUBRICA_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("storage.enabled", true)
	v.SetDefault("storage.path", filepath.Join(dataDir(), "rubrica.db"))
	v.SetDefault("ui.sort_by_first_name", true)
	v.SetDefault("ui.locale", "it")
	v.SetDefault("ui.export_path", filepath.Join(os.Getenv("HOME"), "rubrica.csv"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", filepath.Join(dataDir(), "rubrica.log"))

	v.SetConfigType("toml")

	if cfgPath := os.Getenv("RUBRICA_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Dir(configPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("RUBRICA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// SaveSortOrder records the list sort key in the config file. Only that key
// changes: other settings stay as the file had them, so env overrides and
// one-off flags never end up on disk.
func SaveSortOrder(byFirstName bool) error {
	path := configPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	v.Set("ui.sort_by_first_name", byFirstName)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
