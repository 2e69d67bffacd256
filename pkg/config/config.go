package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mroblesd/hotel-reservation/pkg/persistence"
	"github.com/mroblesd/hotel-reservation/pkg/types"
)

// ConfigPath is where commands look for the config file. Overridden by the
// --config flag on the root command.
var ConfigPath = persistence.DefaultConfigPath

type Config struct {
	Storage types.StorageConfig `yaml:"storage"`
}

// Load reads the config file at configPath. A missing file is not an
// error: everything then runs on defaults (json backend, documents in the
// working directory).
func Load(configPath string) (Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Config{}, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	return config, nil
}

// Dump writes the config file at configPath.
func Dump(configPath string, config Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// OpenStore loads the config at configPath and opens the store it selects.
func OpenStore(configPath string) (persistence.Store, error) {
	cfg, err := Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return persistence.NewStore(cfg.Storage)
}
