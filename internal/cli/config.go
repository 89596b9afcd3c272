package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/decigraph/balance"
)

// Config holds all decigraph CLI configuration.
type Config struct {
	Migrate MigrateConfig `yaml:"migrate"`
	Balance BalanceConfig `yaml:"balance"`
}

type MigrateConfig struct {
	// Indent pretty-prints migrated snapshots.
	Indent bool `yaml:"indent"`
}

type BalanceConfig struct {
	// Step is the rounding granularity reported by check suggestions.
	Step float64 `yaml:"step"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Migrate: MigrateConfig{Indent: true},
		Balance: BalanceConfig{Step: balance.DefaultStep},
	}
}

// loadConfig reads the YAML file at path over the defaults; an empty
// path returns the defaults untouched.
func loadConfig(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}
