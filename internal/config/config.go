// Package config handles loading toodle.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"toodle/internal/paths"
)

// Config represents the toodle.toml configuration file.
type Config struct {
	Storage Storage `toml:"storage"`
	UI      UI      `toml:"ui"`
}

// Storage contains persistence-related configuration.
type Storage struct {
	// Path overrides the default task file location.
	Path string `toml:"path"`
}

// UI contains presentation-related configuration.
type UI struct {
	// NoColor disables terminal styling.
	NoColor bool `toml:"no-color"`
}

// Load loads configuration from the given directory and the global config
// file. Keys defined in the directory's toodle.toml win over global ones.
// Returns an empty config if no config files exist.
func Load(dir string) (*Config, error) {
	globalPath, err := paths.GlobalConfigFile()
	if err != nil {
		return nil, err
	}

	globalCfg, _, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(dir, "toodle.toml"))
	if err != nil {
		return nil, err
	}

	return mergeConfigs(globalCfg, projectCfg, projectMeta), nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, projectMeta toml.MetaData) *Config {
	merged := &Config{}

	merged.Storage.Path = globalCfg.Storage.Path
	if projectMeta.IsDefined("storage", "path") {
		merged.Storage.Path = projectCfg.Storage.Path
	}

	merged.UI.NoColor = globalCfg.UI.NoColor
	if projectMeta.IsDefined("ui", "no-color") {
		merged.UI.NoColor = projectCfg.UI.NoColor
	}

	return merged
}
