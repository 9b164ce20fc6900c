// Package common provides shared utilities for StockGPT
package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for StockGPT
type Config struct {
	Environment string        `toml:"environment"`
	Server      ServerConfig  `toml:"server"`
	Gemini      GeminiConfig  `toml:"gemini"`
	Report      ReportConfig  `toml:"report"`
	Logging     LoggingConfig `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	ShutdownTimeout string `toml:"shutdown_timeout"`
}

// GetShutdownTimeout parses and returns the graceful shutdown window
func (c *ServerConfig) GetShutdownTimeout() time.Duration {
	d, err := time.ParseDuration(c.ShutdownTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// GeminiConfig holds Gemini API configuration
type GeminiConfig struct {
	APIKey    string `toml:"api_key"`
	Model     string `toml:"model"`
	RateLimit int    `toml:"rate_limit"` // requests per minute
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the per-request timeout
func (c *GeminiConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 120 * time.Second
	}
	return d
}

// ReportConfig holds PDF report configuration
type ReportConfig struct {
	PageSize   string  `toml:"page_size"`
	FontFamily string  `toml:"font_family"`
	FontSize   float64 `toml:"font_size"`
	Margin     float64 `toml:"margin"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ShutdownTimeout: "10s",
		},
		Gemini: GeminiConfig{
			Model:     "gemini-2.5-flash",
			RateLimit: 10,
			Timeout:   "120s",
		},
		Report: ReportConfig{
			PageSize:   "A4",
			FontFamily: "Helvetica",
			FontSize:   11,
			Margin:     48,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Missing files are skipped; later files override earlier ones.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)
	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("STOCKGPT_ENV"); env != "" {
		config.Environment = env
	}
	if host := os.Getenv("STOCKGPT_HOST"); host != "" {
		config.Server.Host = host
	}
	if port := os.Getenv("STOCKGPT_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if level := os.Getenv("STOCKGPT_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if model := os.Getenv("STOCKGPT_GEMINI_MODEL"); model != "" {
		config.Gemini.Model = model
	}
	for _, name := range []string{"GEMINI_API_KEY", "STOCKGPT_GEMINI_API_KEY", "GOOGLE_API_KEY"} {
		if key := os.Getenv(name); key != "" {
			config.Gemini.APIKey = key
			break
		}
	}
}
