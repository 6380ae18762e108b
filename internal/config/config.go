package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration. The mapstructure tags must match
// the SetDefault keys in Load: viper matches by field name otherwise, which
// silently drops every multi-word key.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	UI       UIConfig       `mapstructure:"ui"`
}

// DatabaseConfig holds sqlite settings for the install library.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// CatalogConfig selects and tunes the catalog source.
type CatalogConfig struct {
	Source       string `mapstructure:"source"`         // "sample" is the only built-in source
	FetchDelayMS int    `mapstructure:"fetch_delay_ms"` // simulated full-list latency
	LookupMS     int    `mapstructure:"lookup_ms"`      // simulated single-lookup latency
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
	ShowLogoURLs   bool   `mapstructure:"show_logo_urls"`
}

// Load reads configuration from file and env. Env var overrides use prefix AGENTDECK_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "agentdeck", "agentdeck.db"))
	v.SetDefault("catalog.source", "sample")
	v.SetDefault("catalog.fetch_delay_ms", 1000)
	v.SetDefault("catalog.lookup_ms", 500)
	v.SetDefault("ui.currency_symbol", "$")
	v.SetDefault("ui.show_logo_urls", false)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("AGENTDECK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "agentdeck"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("AGENTDECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
// Used by the Settings tab for non-sensitive preferences.
func Save(cfg Config) error {
	path := os.Getenv("AGENTDECK_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "agentdeck", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("catalog.source", cfg.Catalog.Source)
	v.Set("catalog.fetch_delay_ms", cfg.Catalog.FetchDelayMS)
	v.Set("catalog.lookup_ms", cfg.Catalog.LookupMS)
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)
	v.Set("ui.show_logo_urls", cfg.UI.ShowLogoURLs)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
