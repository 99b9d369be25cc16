package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/thenoetrevino/regatta/internal/config/colors"
	"github.com/thenoetrevino/regatta/internal/models"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultScrollSettleMs matches table.DefaultSettleDelay
	DefaultScrollSettleMs = 150
	// DefaultScrollStep is how many cells one scroll key press moves
	DefaultScrollStep = 8
)

// Config represents the application configuration
type Config struct {
	KeyMappings  KeyMappings        `yaml:"key_mappings"`
	ColorScheme  colors.ColorScheme `yaml:"theme"`
	Table        TableConfig        `yaml:"table"`
	DatabasePath string             `yaml:"database_path,omitempty"`
}

// TableConfig controls the registration table
type TableConfig struct {
	ScrollSettleMs int `yaml:"scroll_settle_ms"`
	ScrollStep     int `yaml:"scroll_step"`
	// Columns overrides the built-in column layout when non-empty
	Columns []models.Column `yaml:"columns,omitempty"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from REGATTA_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("REGATTA_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// loadEnvOverrides applies REGATTA_SCROLL_SETTLE_MS and REGATTA_DB
func loadEnvOverrides(config *Config) {
	if envVal := os.Getenv("REGATTA_SCROLL_SETTLE_MS"); envVal != "" {
		if parsed, err := strconv.Atoi(envVal); err == nil && parsed > 0 {
			config.Table.ScrollSettleMs = parsed
		}
	}
	if dbPath := os.Getenv("REGATTA_DB"); dbPath != "" {
		config.DatabasePath = dbPath
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := Default()
		loadThemeFile(config)
		loadEnvOverrides(config)
		return config, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		loadEnvOverrides(config)
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	loadThemeFile(&config)
	loadEnvOverrides(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// ResolveDatabasePath returns the configured database path, falling back
// to ~/.regatta/registrations.db
func (c *Config) ResolveDatabasePath() (string, error) {
	if c.DatabasePath != "" {
		return c.DatabasePath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".regatta", "registrations.db"), nil
}

// Path returns where Load reads and Save writes the config file.
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "regatta", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "regatta", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
	if c.Table.ScrollSettleMs <= 0 {
		c.Table.ScrollSettleMs = DefaultScrollSettleMs
	}
	if c.Table.ScrollStep <= 0 {
		c.Table.ScrollStep = DefaultScrollStep
	}
}
