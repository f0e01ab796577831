package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"hatermatic/internal/catalog"
	"hatermatic/internal/domain"
)

// DefaultConfigFile is read from the working directory when --config is not given.
const DefaultConfigFile = "hatermatic.yaml"

// Config holds runtime wiring options for building the app.
type Config struct {
	Catalog     string        `yaml:"catalog"`      // built-in catalog name, e.g. love
	CatalogFile string        `yaml:"catalog_file"` // optional YAML catalog; wins over Catalog
	Seed        string        `yaml:"seed"`         // optional; empty means unpredictable
	Logging     LoggingConfig `yaml:"logging"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level    string `yaml:"level"`    // debug, info, warn, error
	Encoding string `yaml:"encoding"` // json, console
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Catalog: catalog.HateName.String(),
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// Load reads configuration from a YAML file, then applies environment
// overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty file decodes to io.EOF and keeps the defaults.
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("HATERMATIC_CATALOG"); v != "" {
		c.Catalog = v
	}
	if v := os.Getenv("HATERMATIC_CATALOG_FILE"); v != "" {
		c.CatalogFile = v
	}
	if v := os.Getenv("HATERMATIC_SEED"); v != "" {
		c.Seed = v
	}
	if v := os.Getenv("HATERMATIC_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks the log level and, unless a catalog file is set, that the
// catalog name is a built-in one.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level %q", c.Logging.Level)
	}
	switch c.Logging.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("invalid logging.encoding %q", c.Logging.Encoding)
	}
	if c.CatalogFile == "" {
		if _, err := catalog.Lookup(domain.CatalogName(c.Catalog)); err != nil {
			return err
		}
	}
	return nil
}
