// Package config loads the server configuration from defaults, an optional
// file and the environment, in that order of precedence.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvAPIKey       = "USEGRANT_API_KEY"
	EnvBaseURL      = "USEGRANT_BASE_URL"
	EnvLogLevel     = "USEGRANT_LOG_LEVEL"
	EnvTimeout      = "USEGRANT_TIMEOUT"
	EnvMetricsAddr  = "USEGRANT_METRICS_ADDR"
	EnvOTLPEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	EnvOTLPInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
	defaultService   = "usegrant-mcp"
)

// ErrMissingAPIKey is returned when USEGRANT_API_KEY is unset or empty.
var ErrMissingAPIKey = errors.New("Missing " + EnvAPIKey + " environment variable") //nolint:staticcheck // user-facing message

// Config is the complete server configuration.
type Config struct {
	// APIKey is only ever read from the environment.
	APIKey string `yaml:"-" json:"-"`

	BaseURL     string        `yaml:"base_url"     json:"base_url"`
	Timeout     time.Duration `yaml:"timeout"      json:"timeout"`
	MetricsAddr string        `yaml:"metrics_addr" json:"metrics_addr"`

	Log       LogConfig       `yaml:"log"       json:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry" json:"telemetry"`
}

// LogConfig controls the stderr logger.
type LogConfig struct {
	Level  string `yaml:"level"  json:"level"`
	Format string `yaml:"format" json:"format"`
}

// TelemetryConfig controls OpenTelemetry trace export.
type TelemetryConfig struct {
	ServiceName string            `yaml:"service_name" json:"service_name"`
	Endpoint    string            `yaml:"endpoint"     json:"endpoint"`
	Insecure    bool              `yaml:"insecure"     json:"insecure"`
	Headers     map[string]string `yaml:"headers"      json:"headers"`
}

// Default returns a configuration with every optional field populated.
func Default() *Config {
	return &Config{
		Timeout: defaultTimeout,
		Log: LogConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Telemetry: TelemetryConfig{
			ServiceName: defaultService,
		},
	}
}

// Load builds the configuration. path may be empty. getenv is usually
// os.Getenv; tests pass a map lookup.
func Load(path string, getenv func(string) string) (*Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	cfg := Default()
	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}
	if err := applyEnv(cfg, getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return ErrMissingAPIKey
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative (got %s)", c.Timeout)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", c.Log.Format)
	}
	return nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse config file: %w", err)
		}
	case ".json", ".jsonc":
		var file fileJSON
		if err := json.Unmarshal(jsonc.ToJSON(data), &file); err != nil {
			return fmt.Errorf("failed to parse config file: %w", err)
		}
		if err := file.apply(cfg); err != nil {
			return fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config file extension %q", filepath.Ext(path))
	}
	return nil
}

// fileJSON mirrors Config for JSON files, where durations are strings.
type fileJSON struct {
	BaseURL     *string          `json:"base_url"`
	Timeout     *string          `json:"timeout"`
	MetricsAddr *string          `json:"metrics_addr"`
	Log         *LogConfig       `json:"log"`
	Telemetry   *TelemetryConfig `json:"telemetry"`
}

func (f fileJSON) apply(cfg *Config) error {
	if f.BaseURL != nil {
		cfg.BaseURL = *f.BaseURL
	}
	if f.Timeout != nil {
		timeout, err := time.ParseDuration(*f.Timeout)
		if err != nil {
			return fmt.Errorf("timeout: %w", err)
		}
		cfg.Timeout = timeout
	}
	if f.MetricsAddr != nil {
		cfg.MetricsAddr = *f.MetricsAddr
	}
	if f.Log != nil {
		if f.Log.Level != "" {
			cfg.Log.Level = f.Log.Level
		}
		if f.Log.Format != "" {
			cfg.Log.Format = f.Log.Format
		}
	}
	if f.Telemetry != nil {
		if f.Telemetry.ServiceName != "" {
			cfg.Telemetry.ServiceName = f.Telemetry.ServiceName
		}
		cfg.Telemetry.Endpoint = f.Telemetry.Endpoint
		cfg.Telemetry.Insecure = f.Telemetry.Insecure
		cfg.Telemetry.Headers = f.Telemetry.Headers
	}
	return nil
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	cfg.APIKey = getenv(EnvAPIKey)

	if v := getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := getenv(EnvMetricsAddr); v != "" {
		cfg.MetricsAddr = v
	}
	if v := getenv(EnvTimeout); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTimeout, err)
		}
		cfg.Timeout = timeout
	}
	if v := getenv(EnvOTLPEndpoint); v != "" {
		cfg.Telemetry.Endpoint = v
	}
	if v := getenv(EnvOTLPInsecure); v != "" {
		insecure, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvOTLPInsecure, err)
		}
		cfg.Telemetry.Insecure = insecure
	}
	return nil
}
