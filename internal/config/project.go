package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFileName is the name of the project configuration file
const ConfigFileName = "todokata.toml"

// ProjectConfig represents the project-level configuration from todokata.toml
type ProjectConfig struct {
	Settings

	// Path is the file the config was read from.
	Path string
}

// DiscoverProjectConfig finds and parses the todokata.toml file by traversing
// up the directory tree from the current working directory. It returns nil
// and no error when there is no such file.
func DiscoverProjectConfig() (*ProjectConfig, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	return discoverProjectConfigFrom(cwd)
}

// discoverProjectConfigFrom searches for todokata.toml starting from the given directory
func discoverProjectConfigFrom(startDir string) (*ProjectConfig, error) {
	dir := startDir

	for {
		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return ParseProjectConfig(configPath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return nil, nil
		}
		dir = parent
	}
}

// ParseProjectConfig parses the todokata.toml file at the given path
func ParseProjectConfig(path string) (*ProjectConfig, error) {
	settings, err := parseFile(path)
	if err != nil {
		return nil, fmt.Errorf("project config %s: %w", path, err)
	}

	return &ProjectConfig{Settings: *settings, Path: path}, nil
}
