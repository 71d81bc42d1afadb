package game

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/depths/internal/world"
)

// Environment variables that override file settings.
const (
	EnvSeed      = "DEPTHS_SEED"
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"
	EnvLogFile   = "DEPTHS_LOG_FILE"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `yaml:"seed"`

	// FOVRadius is how far the player can see.
	FOVRadius int `yaml:"fov_radius"`

	Map world.GenConfig `yaml:"map"`
	Log LogConfig       `yaml:"log"`
}

// LogConfig selects where and how the game logs. The terminal is owned by
// the game screen, so logs go to File when set and are discarded otherwise.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		FOVRadius: 8,
		Map:       world.DefaultGenConfig(),
		Log:       LogConfig{Level: "info", Format: "text"},
	}
}

// LoadConfig reads the YAML file at path over the defaults.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadConfigFromReader(f)
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadConfigFromReader decodes YAML from r over the defaults and validates
// the result. Keys missing from r keep their default value; unknown keys
// are rejected. An empty document yields the defaults.
func LoadConfigFromReader(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with any of the Env* variables that are set.
func (cfg *Config) ApplyEnv() error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvSeed, v, err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Log.File = v
	}
	return nil
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func (cfg Config) Validate() error {
	var errs []error
	if cfg.FOVRadius < 1 {
		errs = append(errs, fmt.Errorf("fov_radius %d must be at least 1", cfg.FOVRadius))
	}
	if err := cfg.Map.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("map: %w", err))
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format %q is invalid; valid values: text, json", cfg.Log.Format))
	}
	return errors.Join(errs...)
}
