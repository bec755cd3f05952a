// Package config loads runtime settings for the degrees binaries.
//
// # Loading order
//
// From lowest to highest priority:
//  1. Defaults (in code)
//  2. YAML file passed to Load, if any
//  3. A .env file in the working directory (never overrides set variables)
//  4. DEGREES_* environment variables
//
// Command-line flags are applied by the caller after Load returns.
//
// # Example file
//
//	data:
//	  root: data
//	  directory: large
//	search:
//	  max_explored: 0
//	  max_depth: 0
//	  timeout: 30s
//	cache:
//	  size: 1024
//	server:
//	  addr: ":8080"
//	log:
//	  level: info
//	  format: console
//	telemetry:
//	  tracing: false
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "DEGREES_"

// Sentinel errors.
var (
	// ErrInvalidEnv is returned when an override cannot be parsed.
	ErrInvalidEnv = errors.New("config: invalid environment value")

	// ErrInvalid is returned when the merged configuration fails validation.
	ErrInvalid = errors.New("config: validation failed")
)

// Config is the full settings tree.
type Config struct {
	Data      Data      `yaml:"data"`
	Search    Search    `yaml:"search"`
	Cache     Cache     `yaml:"cache"`
	Server    Server    `yaml:"server"`
	Log       Log       `yaml:"log"`
	Telemetry Telemetry `yaml:"telemetry"`
}

// Data locates the dataset: <Root>/<Directory>/{people,movies,stars}.csv.
type Data struct {
	Root      string `yaml:"root" validate:"required"`
	Directory string `yaml:"directory" validate:"required"`
}

// Search bounds a single search. Zero disables each bound.
type Search struct {
	MaxExplored int           `yaml:"max_explored" validate:"min=0"`
	MaxDepth    int           `yaml:"max_depth" validate:"min=0"`
	Timeout     time.Duration `yaml:"timeout" validate:"min=0"`
}

// Cache sizes the in-process path cache. Zero disables it.
type Cache struct {
	Size int `yaml:"size" validate:"min=0"`
}

// Server configures `degrees serve`.
type Server struct {
	Addr string `yaml:"addr" validate:"required,hostname_port"`
}

// Log configures the zap logger.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

// Telemetry toggles span export.
type Telemetry struct {
	Tracing bool `yaml:"tracing"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Data:   Data{Root: "data", Directory: "large"},
		Search: Search{Timeout: 30 * time.Second},
		Cache:  Cache{Size: 1024},
		Server: Server{Addr: ":8080"},
		Log:    Log{Level: "info", Format: "console"},
	}
}

// Load merges defaults, the YAML file at path (skipped when path is
// empty), .env and DEGREES_* variables, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("config: .env: %w", err)
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks struct constraints.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

func loadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	return nil
}

// applyEnv overlays DEGREES_* variables found through lookup.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok && v != "" {
			*dst = v
		}
	}
	str("DATA_ROOT", &cfg.Data.Root)
	str("DATA_DIRECTORY", &cfg.Data.Directory)
	str("SERVER_ADDR", &cfg.Server.Addr)
	str("LOG_LEVEL", &cfg.Log.Level)
	str("LOG_FORMAT", &cfg.Log.Format)

	ints := []struct {
		key string
		dst *int
	}{
		{"SEARCH_MAX_EXPLORED", &cfg.Search.MaxExplored},
		{"SEARCH_MAX_DEPTH", &cfg.Search.MaxDepth},
		{"CACHE_SIZE", &cfg.Cache.Size},
	}
	for _, e := range ints {
		v, ok := lookup(EnvPrefix + e.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q", ErrInvalidEnv, EnvPrefix, e.key, v)
		}
		*e.dst = n
	}

	if v, ok := lookup(EnvPrefix + "SEARCH_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %sSEARCH_TIMEOUT=%q", ErrInvalidEnv, EnvPrefix, v)
		}
		cfg.Search.Timeout = d
	}
	if v, ok := lookup(EnvPrefix + "TELEMETRY_TRACING"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %sTELEMETRY_TRACING=%q", ErrInvalidEnv, EnvPrefix, v)
		}
		cfg.Telemetry.Tracing = b
	}

	return nil
}
