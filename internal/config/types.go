package config

import (
	"time"

	apperrors "github.com/abdullahfazal969-alt/News-agent/internal/errors"
)

// EnvPrefix is the prefix for environment variable overrides
// (e.g. NEWSAGENT_MAX_CPU_WORKERS).
const EnvPrefix = "NEWSAGENT"

// Settings keys as they appear in the settings file and, uppercased with the
// prefix, in the environment. Unrecognized keys in the settings file are
// ignored.
const (
	KeyMaxWorkers        = "max_cpu_workers"
	KeyFetchLatency      = "mock_fetch_delay"
	KeyProcessingLatency = "mock_analysis_time"
	KeyCallTimeout       = "api_timeout"
	KeyLogLevel          = "log_level"
	KeyLogFormat         = "log_format"
	KeyNoColor           = "no_color"
	KeyOutput            = "output"
)

// Default configuration values.
const (
	DefaultMaxWorkers        = 2
	DefaultFetchLatency      = 500 * time.Millisecond
	DefaultProcessingLatency = 1 * time.Second
	DefaultCallTimeout       = 30 * time.Second
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "pretty"
	DefaultOutput            = "table"
)

// Config holds the agent runtime configuration. It is loaded once at startup
// and passed by value; nothing mutates it afterwards.
type Config struct {
	// MaxWorkers is the size of the CPU-bound worker pool.
	MaxWorkers int `mapstructure:"max_cpu_workers"`

	// FetchLatency is the simulated network latency per article fetch.
	FetchLatency time.Duration `mapstructure:"mock_fetch_delay"`

	// ProcessingLatency is the simulated CPU cost per article analysis.
	ProcessingLatency time.Duration `mapstructure:"mock_analysis_time"`

	// CallTimeout bounds a whole research call. Zero disables the bound.
	CallTimeout time.Duration `mapstructure:"api_timeout"`

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// LogFormat selects log rendering: "pretty" for console, "json" for machines.
	LogFormat string `mapstructure:"log_format"`

	// NoColor disables ANSI colors in pretty logs and report output.
	NoColor bool `mapstructure:"no_color"`

	// Output is the report format: table, json or yaml.
	Output string `mapstructure:"output"`
}

// Default returns the built-in configuration used when no file, environment
// or flag overrides are present.
func Default() Config {
	return Config{
		MaxWorkers:        DefaultMaxWorkers,
		FetchLatency:      DefaultFetchLatency,
		ProcessingLatency: DefaultProcessingLatency,
		CallTimeout:       DefaultCallTimeout,
		LogLevel:          DefaultLogLevel,
		LogFormat:         DefaultLogFormat,
		Output:            DefaultOutput,
	}
}

// Validate checks the configuration for values the pipeline cannot run with.
// The first offending field is reported as an apperrors.ValidationError.
func (c Config) Validate() error {
	if c.MaxWorkers < 1 {
		return apperrors.ValidationError{Field: KeyMaxWorkers, Message: "must be at least 1"}
	}
	if c.FetchLatency < 0 {
		return apperrors.ValidationError{Field: KeyFetchLatency, Message: "must not be negative"}
	}
	if c.ProcessingLatency < 0 {
		return apperrors.ValidationError{Field: KeyProcessingLatency, Message: "must not be negative"}
	}
	if c.CallTimeout < 0 {
		return apperrors.ValidationError{Field: KeyCallTimeout, Message: "must not be negative"}
	}
	switch c.LogFormat {
	case "", "pretty", "json":
	default:
		return apperrors.ValidationError{Field: KeyLogFormat, Message: "must be one of: pretty, json"}
	}
	switch c.Output {
	case "", "table", "json", "yaml":
	default:
		return apperrors.ValidationError{Field: KeyOutput, Message: "must be one of: table, json, yaml"}
	}
	return nil
}
