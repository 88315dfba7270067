package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	// GlobalConfigDir is the name of the global config directory in home
	GlobalConfigDir = ".todokata"

	// GlobalConfigFileName is the name of the global config file
	GlobalConfigFileName = "config.toml"
)

// Settings holds the values a config file may set. Zero values mean the
// file did not set them.
type Settings struct {
	BaseURL string
	Timeout time.Duration
	UserID  string
}

// GlobalConfig represents the user-level configuration from ~/.todokata/config.toml
type GlobalConfig struct {
	Settings
}

// configFile represents the raw TOML structure shared by both config files
type configFile struct {
	API apiConfig `toml:"api"`
}

// apiConfig represents the [api] section in TOML
type apiConfig struct {
	BaseURL string `toml:"base_url"`
	Timeout string `toml:"timeout"`
	UserID  string `toml:"user_id"`
}

// LoadGlobalConfig loads the global configuration from ~/.todokata/config.toml.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	return LoadGlobalConfigFromDir(homeDir)
}

// LoadGlobalConfigFromDir loads global config using the specified directory as home.
// This is useful for testing.
func LoadGlobalConfigFromDir(homeDir string) (*GlobalConfig, error) {
	configPath := filepath.Join(homeDir, GlobalConfigDir, GlobalConfigFileName)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &GlobalConfig{}, nil
	}

	settings, err := parseFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("global config %s: %w", configPath, err)
	}

	return &GlobalConfig{Settings: *settings}, nil
}

// parseFile reads and validates a config file.
func parseFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw configFile
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	settings := &Settings{UserID: raw.API.UserID}

	if raw.API.BaseURL != "" {
		if err := ValidateBaseURL(raw.API.BaseURL); err != nil {
			return nil, err
		}
		settings.BaseURL = raw.API.BaseURL
	}

	if raw.API.Timeout != "" {
		timeout, err := ParseTimeout(raw.API.Timeout)
		if err != nil {
			return nil, err
		}
		settings.Timeout = timeout
	}

	return settings, nil
}

// ValidateBaseURL checks that raw is an absolute http or https URL.
func ValidateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid base_url %q: %w", raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid base_url %q: must be an absolute http or https URL", raw)
	}
	return nil
}

// ParseTimeout parses a positive Go duration such as "10s" or "1m30s".
func ParseTimeout(raw string) (time.Duration, error) {
	timeout, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", raw, err)
	}
	if timeout <= 0 {
		return 0, fmt.Errorf("invalid timeout %q: must be positive", raw)
	}
	return timeout, nil
}
