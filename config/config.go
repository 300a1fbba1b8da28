package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds everything the demo can be tuned with: how many workers of
// each kind to launch and the colors used for their records.
type Config struct {
	Workers Workers `toml:"workers"`
	Theme   Theme   `toml:"theme"`
}

type Workers struct {
	Members int `toml:"members"`
	Free    int `toml:"free"`
}

// Theme colors accept ANSI color numbers or hex strings.
type Theme struct {
	Main   string `toml:"main"`
	Member string `toml:"member"`
	Free   string `toml:"free"`
}

// Default reproduces the classic demo: 4 member-style workers, 3 free
// workers, yellow/blue/green records.
func Default() *Config {
	return &Config{
		Workers: Workers{Members: 4, Free: 3},
		Theme:   Theme{Main: "3", Member: "4", Free: "2"},
	}
}

// Load returns the defaults when path is empty, otherwise decodes the TOML
// file at path over them, so missing keys keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Workers.Members < 0 {
		return fmt.Errorf("workers.members must be >= 0, got %d", c.Workers.Members)
	}
	if c.Workers.Free < 0 {
		return fmt.Errorf("workers.free must be >= 0, got %d", c.Workers.Free)
	}
	return nil
}
