// Package config loads atlasshift settings. Sources are applied in order:
// built-in defaults, an optional YAML file, then ATLASSHIFT_* environment
// variables. Command-line flags are applied on top by the CLI.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/reoring/atlasshift"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "ATLASSHIFT_"

// Config holds every setting of a run.
type Config struct {
	Input         string    `yaml:"input" env:"INPUT"`
	Output        string    `yaml:"output" env:"OUTPUT"`
	Field         string    `yaml:"field" env:"FIELD"`
	Delta         int64     `yaml:"delta" env:"DELTA"`
	Indent        int       `yaml:"indent" env:"INDENT"`
	ASCIIOnly     bool      `yaml:"ascii_only" env:"ASCII_ONLY"`
	JSONDriver    string    `yaml:"json_driver" env:"JSON_DRIVER"`
	DuplicateKeys string    `yaml:"duplicate_keys" env:"DUPLICATE_KEYS"`
	MaxDepth      int       `yaml:"max_depth" env:"MAX_DEPTH"`
	MaxBytes      int64     `yaml:"max_bytes" env:"MAX_BYTES"`
	FailFast      bool      `yaml:"fail_fast" env:"FAIL_FAST"`
	Language      string    `yaml:"language" env:"LANGUAGE"`
	Log           LogConfig `yaml:"log" envPrefix:"LOG_"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`   // debug, info, warn, error
	Format string `yaml:"format" env:"FORMAT"` // console or json
}

// Default returns the settings of the reference behavior.
func Default() Config {
	return Config{
		Input:         "./run.json",
		Output:        "output.json",
		Field:         atlasshift.DefaultField.String(),
		Delta:         1,
		Indent:        2,
		ASCIIOnly:     true,
		JSONDriver:    atlasshift.DefaultJSONDriver,
		DuplicateKeys: "ignore",
		Language:      "en",
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load returns Default overlaid with the YAML file at path (skipped when path
// is empty) and the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := decodeYAML(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// decodeYAML rejects unknown keys so typos do not silently fall back to defaults.
func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks values that cannot be rejected by type alone.
func (c Config) Validate() error {
	var errs []error
	if c.Input == "" {
		errs = append(errs, errors.New("input path is empty"))
	}
	if c.Output == "" {
		errs = append(errs, errors.New("output path is empty"))
	}
	if _, err := atlasshift.ParseFieldPath(c.Field); err != nil {
		errs = append(errs, err)
	}
	if c.Indent < 0 {
		errs = append(errs, fmt.Errorf("indent must not be negative, got %d", c.Indent))
	}
	if _, ok := atlasshift.LookupJSONDriver(c.JSONDriver); !ok {
		errs = append(errs, fmt.Errorf("unknown json_driver %q (available: %v)", c.JSONDriver, atlasshift.JSONDriverNames()))
	}
	if _, err := atlasshift.ParseSeverity(c.DuplicateKeys); err != nil {
		errs = append(errs, fmt.Errorf("duplicate_keys: %w", err))
	}
	if c.MaxDepth < 0 || c.MaxBytes < 0 {
		errs = append(errs, errors.New("max_depth and max_bytes must not be negative"))
	}
	if _, err := language.Parse(c.Language); err != nil {
		errs = append(errs, fmt.Errorf("language: %w", err))
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be console or json, got %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

// Options projects the config onto library options. Call Validate first.
func (c Config) Options() (atlasshift.Options, error) {
	field, err := atlasshift.ParseFieldPath(c.Field)
	if err != nil {
		return atlasshift.Options{}, err
	}
	sev, err := atlasshift.ParseSeverity(c.DuplicateKeys)
	if err != nil {
		return atlasshift.Options{}, err
	}
	return atlasshift.Options{
		Field:          field,
		Delta:          c.Delta,
		Indent:         c.Indent,
		ASCIIOnly:      c.ASCIIOnly,
		Driver:         c.JSONDriver,
		OnDuplicateKey: sev,
		MaxDepth:       c.MaxDepth,
		MaxBytes:       c.MaxBytes,
		FailFast:       c.FailFast,
	}, nil
}
