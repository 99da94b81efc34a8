// Package config loads menucli configuration from built-in defaults, an
// optional YAML file, and environment variables, in that order of
// precedence.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// DefaultConfigFile is looked up in the working directory when no explicit
// config path is given.
const DefaultConfigFile = "menucli.yml"

// Config represents the complete application configuration
type Config struct {
	Input   InputConfig   `yaml:"input" envconfig:"INPUT"`
	Report  ReportConfig  `yaml:"report" envconfig:"REPORT"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// InputConfig describes the dataset source.
type InputConfig struct {
	// File is the dataset path. A .xlsx extension selects the workbook
	// loader; anything else is read as CSV.
	File string `yaml:"file" envconfig:"FILE" validate:"required"`
	// Sheet names the workbook sheet to read; empty means the first sheet.
	Sheet string `yaml:"sheet" envconfig:"SHEET"`
	// GenerateSample writes the built-in sample dataset to File when the
	// file does not exist, instead of failing with an access error.
	GenerateSample bool `yaml:"generate_sample" envconfig:"GENERATE_SAMPLE"`
}

// ReportConfig controls optional report export alongside the console output.
type ReportConfig struct {
	// ExportPath, when set, additionally writes the analysis to this path.
	// A .xlsx extension produces a workbook; anything else produces CSV.
	ExportPath string `yaml:"export_path" envconfig:"EXPORT_PATH"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input: InputConfig{
			File: "menu.csv",
		},
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "console",
			FilePath: "logs/menucli.log",
		},
	}
}

// Load loads configuration from the optional YAML file and then from
// environment variables with the MENU prefix, the latter taking precedence.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigFile)
}

// LoadFrom is Load with an explicit config file path. A missing file is not
// an error; defaults and environment variables still apply.
func LoadFrom(configFile string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(configFile); err == nil {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// Env overrides whatever the file set; untouched fields keep defaults.
	if err := envconfig.Process("MENU", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}
