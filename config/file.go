package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pevans/hnstories/hackernews"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// APIConfig describes how to reach the Hacker News API.
type APIConfig struct {
	BaseURL     string `yaml:"base_url"`
	Timeout     string `yaml:"timeout"`     // Go duration, e.g. "10s"; empty means none
	Concurrency int    `yaml:"concurrency"` // 0 means unbounded
	UserAgent   string `yaml:"user_agent"`
}

// LogConfig controls logrus output.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// FileConfig represents the structure of ~/.hnstories/config.yaml.
type FileConfig struct {
	API APIConfig `yaml:"api"`
	Log LogConfig `yaml:"log"`
}

// Default returns the configuration used when no file is present.
func Default() *FileConfig {
	return &FileConfig{
		API: APIConfig{
			BaseURL:   hackernews.DefaultBaseURL,
			UserAgent: "hnstories/1.0",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// ConfigPath returns the location of the config file.
func ConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".hnstories", "config.yaml"), nil
}

// LoadConfigFile loads configuration from ~/.hnstories/config.yaml. Returns
// nil if the file doesn't exist (not an error). Returns error if the file
// exists but cannot be parsed.
func LoadConfigFile() (*FileConfig, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	// Check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, nil // File doesn't exist -- not an error
	}

	// Read file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// Load returns the defaults with any values set in the config file laid
// over them.
func Load() (*FileConfig, error) {
	cfg := Default()

	file, err := LoadConfigFile()
	if err != nil {
		return nil, err
	}
	if file != nil {
		cfg.Merge(file)
	}

	return cfg, nil
}

// Merge copies every non-empty value of other into c.
func (c *FileConfig) Merge(other *FileConfig) {
	if other.API.BaseURL != "" {
		c.API.BaseURL = other.API.BaseURL
	}
	if other.API.Timeout != "" {
		c.API.Timeout = other.API.Timeout
	}
	if other.API.Concurrency != 0 {
		c.API.Concurrency = other.API.Concurrency
	}
	if other.API.UserAgent != "" {
		c.API.UserAgent = other.API.UserAgent
	}
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	if other.Log.Format != "" {
		c.Log.Format = other.Log.Format
	}
}

// ClientConfig validates the API section and converts it for
// hackernews.NewClient.
func (c *FileConfig) ClientConfig() (*hackernews.ClientConfig, error) {
	var timeout time.Duration
	if c.API.Timeout != "" {
		d, err := time.ParseDuration(c.API.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid api.timeout: %w", err)
		}
		if d < 0 {
			return nil, fmt.Errorf("invalid api.timeout: must not be negative")
		}
		timeout = d
	}

	if c.API.Concurrency < 0 {
		return nil, fmt.Errorf("invalid api.concurrency: must not be negative")
	}

	return &hackernews.ClientConfig{
		BaseURL:     c.API.BaseURL,
		Timeout:     timeout,
		Concurrency: c.API.Concurrency,
		UserAgent:   c.API.UserAgent,
	}, nil
}

// NewLogger builds a logrus logger writing to stderr from the log section.
func (c *FileConfig) NewLogger() (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log.level: %w", err)
	}
	logger.SetLevel(level)

	switch c.Log.Format {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("invalid log.format: %q (use 'text' or 'json')", c.Log.Format)
	}

	return logger, nil
}
