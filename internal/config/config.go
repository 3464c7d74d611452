// Package config resolves grove settings. Sources are applied in order, each
// overriding the last: built-in defaults, an optional YAML file, a .env file
// in the working directory, then GROVE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvConfig      = "GROVE_CONFIG"
	EnvDB          = "GROVE_DB"
	EnvNoSeed      = "GROVE_NO_SEED"
	EnvLogUseCases = "GROVE_LOG_USECASES"
	EnvMonths      = "GROVE_MONTHS"
	EnvWindowDays  = "GROVE_WINDOW_DAYS"
)

type Config struct {
	DBPath      string `yaml:"db"`
	NoSeed      bool   `yaml:"no_seed"`
	LogUseCases bool   `yaml:"log_usecases"`
	Months      int    `yaml:"months"`
	WindowDays  int    `yaml:"window_days"`
}

// DefaultConfig stores data under ~/.grove. home may be empty when the home
// directory cannot be determined; the database then lands in the working
// directory.
func DefaultConfig(home string) Config {
	return Config{
		DBPath:     filepath.Join(home, ".grove", "grove.db"),
		Months:     6,
		WindowDays: 7,
	}
}

// DefaultConfigPath is the YAML file read when GROVE_CONFIG is unset.
func DefaultConfigPath(home string) string {
	return filepath.Join(home, ".grove", "config.yaml")
}

// Load builds the effective configuration. A missing YAML or .env file is
// not an error; a malformed one is.
func Load() (Config, error) {
	home, _ := os.UserHomeDir()
	cfg := DefaultConfig(home)

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("loading .env: %w", err)
	}

	path := os.Getenv(EnvConfig)
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath(home)
	}
	if err := cfg.mergeFile(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return cfg, err
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDB); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv(EnvNoSeed); v != "" {
		c.NoSeed, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv(EnvLogUseCases); v != "" {
		c.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv(EnvMonths); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Months = n
		}
	}
	if v := os.Getenv(EnvWindowDays); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.WindowDays = n
		}
	}
}
