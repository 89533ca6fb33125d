package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/anomredux/histime/internal/domain"
	"github.com/anomredux/histime/internal/sampler"
)

type Config struct {
	Analysis AnalysisConfig `toml:"analysis" yaml:"analysis"`
	Report   ReportConfig   `toml:"report" yaml:"report"`
}

type AnalysisConfig struct {
	MinExecutions int      `toml:"min_executions" yaml:"min_executions"`
	NoisePrefixes []string `toml:"noise_prefixes" yaml:"noise_prefixes"`
	SampleSize    int      `toml:"sample_size" yaml:"sample_size"`
}

type ReportConfig struct {
	// SetupHoursDivisor converts typing seconds to the reported hours.
	// Defaults to 3060, likely a typo for 3600.
	SetupHoursDivisor   float64 `toml:"setup_hours_divisor" yaml:"setup_hours_divisor"`
	RuntimeHoursDivisor float64 `toml:"runtime_hours_divisor" yaml:"runtime_hours_divisor"`
	Color               bool    `toml:"color" yaml:"color"`
}

func DefaultConfig() Config {
	return Config{
		Analysis: AnalysisConfig{
			MinExecutions: domain.DefaultMinExecutions,
			NoisePrefixes: append([]string(nil), domain.DefaultNoisePrefixes...),
			SampleSize:    sampler.DefaultSampleSize,
		},
		Report: ReportConfig{
			SetupHoursDivisor:   3060,
			RuntimeHoursDivisor: 3600,
			Color:               true,
		},
	}
}

func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "histime", "config.toml")
}

// AggregateOptions returns the aggregation thresholds from the config.
func (c Config) AggregateOptions() domain.AggregateOptions {
	return domain.AggregateOptions{
		MinExecutions: c.Analysis.MinExecutions,
		NoisePrefixes: c.Analysis.NoisePrefixes,
	}
}

// Validate rejects values that would make the analysis meaningless.
func (c Config) Validate() error {
	var errs []error
	if c.Analysis.MinExecutions < 1 {
		errs = append(errs, fmt.Errorf("analysis.min_executions must be >= 1, got %d", c.Analysis.MinExecutions))
	}
	if c.Analysis.SampleSize < 1 {
		errs = append(errs, fmt.Errorf("analysis.sample_size must be >= 1, got %d", c.Analysis.SampleSize))
	}
	if c.Report.SetupHoursDivisor == 0 {
		errs = append(errs, errors.New("report.setup_hours_divisor must not be 0"))
	}
	if c.Report.RuntimeHoursDivisor == 0 {
		errs = append(errs, errors.New("report.runtime_hours_divisor must not be 0"))
	}
	return errors.Join(errs...)
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Load reads path over the defaults. A missing file yields the defaults.
// Files ending in .yaml or .yml are decoded as YAML, anything else as TOML.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil // use defaults
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if isYAML(path) {
		err = yaml.Unmarshal(data, &cfg)
	} else {
		_, err = toml.Decode(string(data), &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	var buf bytes.Buffer
	if isYAML(path) {
		enc := yaml.NewEncoder(&buf)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
	} else if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
