// Package config provides configuration for the agent loop: defaults, an
// optional YAML file, an optional .env file, and AGENT_* environment
// variables, applied in that order (environment wins).
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds the loop and logging configuration.
type Config struct {
	// Model is the default reasoning model identifier or alias.
	Model string `yaml:"model"`

	// MaxIterations bounds the orchestration loop.
	MaxIterations int `yaml:"max_iterations"`

	// ToolOutputLimit caps the characters of a single tool result carried
	// into prompt context. 0 disables truncation.
	ToolOutputLimit int `yaml:"tool_output_limit"`

	Log LogConfig `yaml:"log"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // default "info"
	Format string `yaml:"format"` // "console" or "json", default "console"
}

// Default returns a Config populated with all default values.
func Default() *Config {
	return &Config{
		Model:           "claude-sonnet-4-5",
		MaxIterations:   10,
		ToolOutputLimit: 20000,
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load builds the effective configuration. path names an optional YAML file;
// an empty path skips file loading. A .env file in the working directory is
// loaded into the process environment if present, then AGENT_* variables
// override whatever the file set.
func Load(path string) (*Config, error) {
	cfg := Default()

	// Missing .env is fine; only report real read failures via godotenv's
	// behavior of erroring on absent files, which we ignore.
	_ = godotenv.Load()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays AGENT_* environment variables onto cfg.
func applyEnv(cfg *Config) {
	if v := os.Getenv("AGENT_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("AGENT_MAX_ITERATIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxIterations = n
		}
	}
	if v := os.Getenv("AGENT_TOOL_OUTPUT_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ToolOutputLimit = n
		}
	}
	if v := os.Getenv("AGENT_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("AGENT_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

// Validate checks the configuration for values the loop cannot run with.
func (c *Config) Validate() error {
	if c.MaxIterations <= 0 {
		return fmt.Errorf("max_iterations must be positive, got %d", c.MaxIterations)
	}
	if c.ToolOutputLimit < 0 {
		return fmt.Errorf("tool_output_limit must not be negative, got %d", c.ToolOutputLimit)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log format must be \"console\" or \"json\", got %q", c.Log.Format)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return nil
}

// NewLogger builds a zap logger from the log configuration.
func NewLogger(cfg LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
