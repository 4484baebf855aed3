// Package config provides configuration management for the stagecsv tools.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Default locations, relative to the working directory.
const (
	DefaultConfigPath  = "configs/stagecsv.yaml"
	DefaultLinesPath   = "out/extracted_lines.txt"
	DefaultRowsPath    = "out/extracted_rows.csv"
	DefaultOutputPath  = "out/extracted_rows_converted.csv"
	DefaultLoggerLevel = "info"
)

// Configuration validation errors.
var (
	ErrMissingConvertInput  = errors.New("convert.input is required")
	ErrMissingConvertOutput = errors.New("convert.output is required")
	ErrMissingExtractInput  = errors.New("extract.input is required")
	ErrMissingExtractOutput = errors.New("extract.output is required")
	ErrSamePath             = errors.New("input and output must be different files")
	ErrInvalidPreviewRows   = errors.New("convert.preview_rows must be non-negative")
	ErrInvalidLogLevel      = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete tool configuration.
type Config struct {
	Convert ConvertConfig `yaml:"convert"`
	Extract ExtractConfig `yaml:"extract"`
	Logging LoggingConfig `yaml:"logging"`
}

// ConvertConfig contains settings for converting raw rows.
type ConvertConfig struct {
	Input       string `yaml:"input"`
	Output      string `yaml:"output"`
	XLSX        string `yaml:"xlsx"`
	PreviewRows int    `yaml:"preview_rows"`
}

// ExtractConfig contains settings for extracting raw rows from report text.
type ExtractConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Convert: ConvertConfig{
			Input:  DefaultRowsPath,
			Output: DefaultOutputPath,
		},
		Extract: ExtractConfig{
			Input:  DefaultLinesPath,
			Output: DefaultRowsPath,
		},
		Logging: LoggingConfig{
			Level: DefaultLoggerLevel,
		},
	}
}

// LoadConfig loads configuration from YAML file. Keys missing from the
// file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := mergo.Merge(&cfg, Default()); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Load reads the config at path. With an empty path the default location
// is used when it exists, otherwise the built-in defaults are returned.
func Load(path string) (*Config, error) {
	if path == "" {
		if _, err := os.Stat(DefaultConfigPath); err != nil {
			cfg := Default()
			return &cfg, nil
		}

		path = DefaultConfigPath
	}

	return LoadConfig(path)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Convert.Input == "" {
		return ErrMissingConvertInput
	}

	if c.Convert.Output == "" {
		return ErrMissingConvertOutput
	}

	if samePath(c.Convert.Input, c.Convert.Output) {
		return fmt.Errorf("%w: convert %s", ErrSamePath, c.Convert.Output)
	}

	if c.Convert.PreviewRows < 0 {
		return ErrInvalidPreviewRows
	}

	if c.Extract.Input == "" {
		return ErrMissingExtractInput
	}

	if c.Extract.Output == "" {
		return ErrMissingExtractOutput
	}

	if samePath(c.Extract.Input, c.Extract.Output) {
		return fmt.Errorf("%w: extract %s", ErrSamePath, c.Extract.Output)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Convert: %s -> %s, Extract: %s -> %s, Level: %s}",
		c.Convert.Input,
		c.Convert.Output,
		c.Extract.Input,
		c.Extract.Output,
		c.Logging.Level,
	)
}

func samePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}
