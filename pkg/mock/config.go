// Copyright 2024-2026 Aiku AI

package mock

import (
	_ "embed"
	"fmt"
	"os"

	up "go.mau.fi/util/configupgrade"
	"gopkg.in/yaml.v3"
)

//go:embed example-config.yaml
var ExampleConfig string

// Config holds the mock environment configuration.
type Config struct {
	// ContactCount is the number of contacts seeded at construction.
	ContactCount int `yaml:"contact_count"`
	// RoomCount is the number of rooms seeded after the contacts.
	RoomCount int `yaml:"room_count"`
	// Seed pins the generator's randomness. Zero picks a random seed
	// per run.
	Seed uint64 `yaml:"seed"`
}

// DefaultConfig returns the configuration the example config ships with.
func DefaultConfig() Config {
	return Config{ContactCount: 30, RoomCount: 0, Seed: 0}
}

func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	type rawConfig Config
	return node.Decode((*rawConfig)(c))
}

// PostProcess validates the loaded values.
func (c *Config) PostProcess() error {
	if c.ContactCount < 0 {
		return fmt.Errorf("contact_count must not be negative, got %d", c.ContactCount)
	}
	if c.RoomCount < 0 {
		return fmt.Errorf("room_count must not be negative, got %d", c.RoomCount)
	}
	if c.RoomCount > 0 && c.ContactCount == 0 {
		return fmt.Errorf("room_count %d needs a non-empty contact pool", c.RoomCount)
	}
	return nil
}

func upgradeConfig(helper up.Helper) {
	helper.Copy(up.Int, "contact_count")
	helper.Copy(up.Int, "room_count")
	helper.Copy(up.Int, "seed")
}

// ConfigUpgrader migrates user config files against the embedded example.
func ConfigUpgrader() up.Upgrader {
	return &up.StructUpgrader{
		SimpleUpgrader: up.SimpleUpgrader(upgradeConfig),
		Base:           ExampleConfig,
	}
}

// LoadConfig reads a YAML config file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.PostProcess(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
