// Package config resolves runtime settings: built-in defaults, then an
// optional YAML file, then environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alexanderramin/linebrief/internal/catalog"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	CatalogStatic = "static"
	CatalogSQLite = "sqlite"
)

// Environment variables read by Load.
const (
	EnvConfigFile = "LINEBRIEF_CONFIG"
	EnvCatalog    = "LINEBRIEF_CATALOG"
	EnvLogFile    = "LINEBRIEF_LOG_FILE"
	EnvLogLevel   = "LINEBRIEF_LOG_LEVEL"
)

// Config holds all runtime settings.
type Config struct {
	// Catalog selects where workspace records are read from.
	Catalog  string          `yaml:"catalog" validate:"oneof=static sqlite"`
	LogFile  string          `yaml:"log_file"`
	LogLevel string          `yaml:"log_level" validate:"oneof=debug info warn error"`
	Choices  catalog.Choices `yaml:"choices"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Catalog:  CatalogSQLite,
		LogLevel: "info",
		Choices:  catalog.DefaultChoices(),
	}
}

// Load resolves the configuration from the process environment.
func Load() (Config, error) {
	return LoadWith(os.Getenv)
}

// LoadWith resolves the configuration using getenv for lookups.
func LoadWith(getenv func(string) string) (Config, error) {
	cfg := Default()

	if path := getenv(EnvConfigFile); path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	if v := getenv(EnvCatalog); v != "" {
		cfg.Catalog = strings.ToLower(v)
	}
	if v := getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyFile overlays the YAML file at path. Keys absent from the file keep
// their current values; an empty choice list keeps the default list.
func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	if file.Catalog != "" {
		cfg.Catalog = strings.ToLower(file.Catalog)
	}
	if file.LogFile != "" {
		cfg.LogFile = file.LogFile
	}
	if file.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(file.LogLevel)
	}
	if len(file.Choices.Brands) > 0 {
		cfg.Choices.Brands = file.Choices.Brands
	}
	if len(file.Choices.Seasons) > 0 {
		cfg.Choices.Seasons = file.Choices.Seasons
	}
	if len(file.Choices.Departments) > 0 {
		cfg.Choices.Departments = file.Choices.Departments
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks cfg against its struct constraints.
func Validate(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// SlogLevel maps LogLevel to a slog.Level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
