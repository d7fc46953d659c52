// Package config provides configuration loading and validation for the server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Default values used when neither config file nor environment provides one.
const (
	DefaultPort     = 8080
	DefaultDataFile = "resumes.json"
)

// Config represents the server configuration that can be loaded from a JSON
// file. All fields are optional; missing values fall back to environment
// variables and then defaults.
type Config struct {
	Port     int    `json:"port,omitempty"`      // HTTP listen port
	DataFile string `json:"data_file,omitempty"` // Path to the resume JSON file
	APIKey   string `json:"api_key,omitempty"`   // Gemini API key
	Model    string `json:"model,omitempty"`     // Gemini model name
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables.
func FromEnv() Config {
	cfg := Config{
		DataFile: os.Getenv("RESUME_FILE"),
		APIKey:   os.Getenv("GEMINI_API_KEY"),
		Model:    os.Getenv("GEMINI_MODEL"),
	}
	if portStr := os.Getenv("PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			cfg.Port = port
		}
	}
	return cfg
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. File values win over env values, which win over built-in defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Port == 0 {
		result.Port = DefaultPort
	}
	if result.DataFile == "" {
		result.DataFile = defaults.DataFile
	}
	if result.DataFile == "" {
		result.DataFile = DefaultDataFile
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}

	return result
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.APIKey == "" {
		return fmt.Errorf("config error: Gemini API key is required (set GEMINI_API_KEY)")
	}
	return nil
}
