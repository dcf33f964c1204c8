package arbiter

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/viant/afs"
	"github.com/viant/arbiter/scheduler"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable override.
const EnvPrefix = "ARBITER_"

// Config is a serialisable representation of the engine configuration. It
// can be populated from YAML, TOML or environment variables.
type Config struct {
	Scheduler scheduler.Config `json:"scheduler" yaml:"scheduler" toml:"scheduler" envPrefix:"SCHEDULER_"`
	Routines  RoutinesConfig   `json:"routines" yaml:"routines" toml:"routines" envPrefix:"ROUTINES_"`
	Tracing   TracingConfig    `json:"tracing" yaml:"tracing" toml:"tracing" envPrefix:"TRACING_"`
	Log       LogConfig        `json:"log" yaml:"log" toml:"log" envPrefix:"LOG_"`
}

// RoutinesConfig locates routine definitions.
type RoutinesConfig struct {
	BaseURL string `json:"baseURL" yaml:"baseURL" toml:"baseURL" env:"BASE_URL"`
}

// TracingConfig controls OpenTelemetry span export.
type TracingConfig struct {
	Enabled     bool   `json:"enabled" yaml:"enabled" toml:"enabled" env:"ENABLED"`
	ServiceName string `json:"serviceName" yaml:"serviceName" toml:"serviceName" env:"SERVICE_NAME"`
	Version     string `json:"version" yaml:"version" toml:"version" env:"VERSION"`
	// OutputFile receives spans; empty writes to stdout.
	OutputFile string `json:"outputFile" yaml:"outputFile" toml:"outputFile" env:"OUTPUT_FILE"`
}

// LogConfig controls log output. An empty File logs to stderr.
type LogConfig struct {
	File       string `json:"file" yaml:"file" toml:"file" env:"FILE"`
	MaxSizeMB  int    `json:"maxSizeMB" yaml:"maxSizeMB" toml:"maxSizeMB" env:"MAX_SIZE_MB"`
	MaxBackups int    `json:"maxBackups" yaml:"maxBackups" toml:"maxBackups" env:"MAX_BACKUPS"`
	MaxAgeDays int    `json:"maxAgeDays" yaml:"maxAgeDays" toml:"maxAgeDays" env:"MAX_AGE_DAYS"`
	Compress   bool   `json:"compress" yaml:"compress" toml:"compress" env:"COMPRESS"`
}

// DefaultConfig returns a Config populated with package defaults. Callers
// may modify the returned struct before passing it to NewFromConfig.
func DefaultConfig() *Config {
	return &Config{
		Scheduler: scheduler.DefaultConfig(),
		Tracing: TracingConfig{
			ServiceName: "arbiter",
			Version:     Version,
		},
		Log: LogConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Validate returns an error describing the first invalid setting, or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if err := c.Scheduler.Validate(); err != nil {
		return err
	}
	if c.Tracing.Enabled && c.Tracing.ServiceName == "" {
		return fmt.Errorf("tracing.serviceName must not be empty when tracing is enabled")
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return fmt.Errorf("log rotation limits must be >= 0")
	}
	return nil
}

// LoadConfig reads the YAML or TOML document at URL over the defaults and
// applies ARBITER_ environment overrides. An empty URL uses the defaults
// and the environment only.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	ret := DefaultConfig()
	if URL != "" {
		data, err := afs.New().DownloadWithURL(ctx, URL)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", URL, err)
		}
		if err = decodeConfig(URL, data, ret); err != nil {
			return nil, err
		}
	}
	if err := env.ParseWithOptions(ret, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

func decodeConfig(URL string, data []byte, config *Config) error {
	switch strings.ToLower(path.Ext(URL)) {
	case ".toml":
		if err := toml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to decode TOML config %s: %w", URL, err)
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to decode YAML config %s: %w", URL, err)
		}
	default:
		return fmt.Errorf("unsupported config format %s", URL)
	}
	return nil
}
