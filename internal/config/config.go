// Package config loads optional runtime settings from a YAML file.
// Every field has a working default so rankrun runs without any config
// file at all.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable settings for a ranking run.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Preview PreviewConfig `yaml:"preview"`
	Log     LogConfig     `yaml:"log"`
	Report  ReportConfig  `yaml:"report"`
}

// OutputConfig controls how scores are written.
type OutputConfig struct {
	Decimals int `yaml:"decimals"` // Decimal places for Topsis Score cells
}

// PreviewConfig controls the ranked table printed to the terminal.
type PreviewConfig struct {
	Rows int `yaml:"rows"` // Rows shown in the preview, 0 disables it
}

// LogConfig controls logging verbosity.
type LogConfig struct {
	Level string `yaml:"level"` // trace, debug, info, warn or error
}

// ReportConfig controls run report artifacts.
type ReportConfig struct {
	Dir  string `yaml:"dir"`  // Report output directory, empty disables reports
	Keep int    `yaml:"keep"` // Newest reports retained, 0 keeps everything
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Output:  OutputConfig{Decimals: 4},
		Preview: PreviewConfig{Rows: 10},
		Log:     LogConfig{Level: "info"},
		Report:  ReportConfig{Dir: "", Keep: 0},
	}
}

// Load reads configuration from a YAML file. Fields absent from the file
// keep their defaults. An empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	config := Default()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Output.Decimals < 0 || c.Output.Decimals > 10 {
		return fmt.Errorf("output.decimals must be between 0 and 10, got %d", c.Output.Decimals)
	}
	if c.Preview.Rows < 0 {
		return fmt.Errorf("preview.rows must not be negative, got %d", c.Preview.Rows)
	}
	if c.Report.Keep < 0 {
		return fmt.Errorf("report.keep must not be negative, got %d", c.Report.Keep)
	}
	switch c.Log.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log.level %q", c.Log.Level)
	}
	return nil
}
