// Package config resolves run settings from defaults, an optional
// trackgen.yaml, environment (including a .env file) and CLI flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/balkashynov/trackgen/internal/parser"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

const (
	ConfigFileName = "trackgen.yaml"
	EnvFileName    = ".env"
)

// Environment overrides
const (
	EnvSeed      = "TRACKGEN_SEED"
	EnvRawDir    = "TRACKGEN_RAW_DIR"
	EnvDBPath    = "TRACKGEN_DB_PATH"
	EnvLogLevel  = "TRACKGEN_LOG_LEVEL"
	EnvLogFormat = "TRACKGEN_LOG_FORMAT"
)

// Defaults
const (
	DefaultSeed      = 42
	DefaultRawDir    = "data/raw"
	DefaultDBPath    = "2_SQL_DATABASE/timedoctor_analytics.db"
	DefaultStart     = "2025-08-01"
	DefaultEnd       = "2026-01-31"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config holds everything a generate or load run needs
type Config struct {
	Seed      uint64
	RawDir    string
	DBPath    string
	Start     time.Time
	End       time.Time
	LogLevel  string
	LogFormat string
}

// fileConfig mirrors Config with dates kept as text for flexible parsing
type fileConfig struct {
	Seed      *uint64 `yaml:"seed"`
	RawDir    string  `yaml:"raw_dir"`
	DBPath    string  `yaml:"db_path"`
	Start     string  `yaml:"start"`
	End       string  `yaml:"end"`
	LogLevel  string  `yaml:"log_level"`
	LogFormat string  `yaml:"log_format"`
}

// Default returns the built-in settings
func Default() Config {
	start, _ := parser.ParseDate(DefaultStart)
	end, _ := parser.ParseDate(DefaultEnd)
	return Config{
		Seed:      DefaultSeed,
		RawDir:    DefaultRawDir,
		DBPath:    DefaultDBPath,
		Start:     start,
		End:       end,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Load resolves defaults, then trackgen.yaml and .env from dir, then the
// process environment. A missing file of either kind is not an error.
func Load(dir string) (Config, error) {
	cfg := Default()

	if err := cfg.mergeFile(filepath.Join(dir, ConfigFileName)); err != nil && !errors.Is(err, ErrConfigNotFound) {
		return cfg, err
	}

	// godotenv.Load never overrides variables already set in the process
	envPath := filepath.Join(dir, EnvFileName)
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return cfg, fmt.Errorf("failed to read %s: %w", envPath, err)
		}
	}

	if err := cfg.mergeEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadFile reads a single YAML file over the defaults
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if err := cfg.mergeFile(path); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrConfigNotFound
		}
		return err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if fc.Seed != nil {
		c.Seed = *fc.Seed
	}
	if fc.RawDir != "" {
		c.RawDir = fc.RawDir
	}
	if fc.DBPath != "" {
		c.DBPath = fc.DBPath
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.LogFormat != "" {
		c.LogFormat = fc.LogFormat
	}
	if fc.Start != "" {
		if c.Start, err = parser.ParseDate(fc.Start); err != nil {
			return fmt.Errorf("start: %w", err)
		}
	}
	if fc.End != "" {
		if c.End, err = parser.ParseDate(fc.End); err != nil {
			return fmt.Errorf("end: %w", err)
		}
	}
	return nil
}

func (c *Config) mergeEnv() error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v := os.Getenv(EnvRawDir); v != "" {
		c.RawDir = v
	}
	if v := os.Getenv(EnvDBPath); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.LogFormat = v
	}
	return nil
}

// Validate checks the settings are usable
func (c Config) Validate() error {
	var errs []error
	if c.RawDir == "" {
		errs = append(errs, errors.New("raw_dir must not be empty"))
	}
	if c.DBPath == "" {
		errs = append(errs, errors.New("db_path must not be empty"))
	}
	if c.End.Before(c.Start) {
		errs = append(errs, fmt.Errorf("end %s is before start %s",
			c.End.Format(parser.ISODateLayout), c.Start.Format(parser.ISODateLayout)))
	}
	return errors.Join(errs...)
}
