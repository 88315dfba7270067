package config

import (
	"fmt"
	"os"
	"time"

	"github.com/todokata/todokata/pkg/todo"
)

const (
	// DefaultTimeout is the request timeout used when no config sets one.
	DefaultTimeout = 30 * time.Second

	// DefaultUserID owns tasks created without an explicit user.
	DefaultUserID = "1"
)

// ResolvedConfig represents the final merged configuration with all
// precedence rules applied. Precedence order (highest to lowest):
// 1. Project config (todokata.toml)
// 2. Global config (~/.todokata/config.toml)
// 3. Built-in defaults
//
// Command-line flags are applied on top by the CLI.
type ResolvedConfig struct {
	BaseURL string
	Timeout time.Duration
	UserID  string

	// ProjectPath is the project config that was applied, if any.
	ProjectPath string
}

// Defaults returns the built-in configuration.
func Defaults() *ResolvedConfig {
	return &ResolvedConfig{
		BaseURL: todo.DefaultBaseURL,
		Timeout: DefaultTimeout,
		UserID:  DefaultUserID,
	}
}

// ResolveConfig discovers the project config, loads the global config,
// and merges them according to precedence rules.
func ResolveConfig() (*ResolvedConfig, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return ResolveConfigWithHome(homeDir)
}

// ResolveConfigWithHome resolves config using a specified home directory.
// This is useful for testing.
func ResolveConfigWithHome(homeDir string) (*ResolvedConfig, error) {
	globalCfg, err := LoadGlobalConfigFromDir(homeDir)
	if err != nil {
		return nil, err
	}

	projectCfg, err := DiscoverProjectConfig()
	if err != nil {
		return nil, err
	}

	return merge(globalCfg, projectCfg), nil
}

// resolveFrom is ResolveConfigWithHome with discovery starting at startDir
// instead of the working directory.
func resolveFrom(homeDir, startDir string) (*ResolvedConfig, error) {
	globalCfg, err := LoadGlobalConfigFromDir(homeDir)
	if err != nil {
		return nil, err
	}

	projectCfg, err := discoverProjectConfigFrom(startDir)
	if err != nil {
		return nil, err
	}

	return merge(globalCfg, projectCfg), nil
}

// merge applies the global and then the project config over the defaults.
// projectCfg may be nil.
func merge(globalCfg *GlobalConfig, projectCfg *ProjectConfig) *ResolvedConfig {
	resolved := Defaults()
	resolved.apply(globalCfg.Settings)
	if projectCfg != nil {
		resolved.apply(projectCfg.Settings)
		resolved.ProjectPath = projectCfg.Path
	}
	return resolved
}

// apply overrides the resolved values with whatever s sets.
func (c *ResolvedConfig) apply(s Settings) {
	if s.BaseURL != "" {
		c.BaseURL = s.BaseURL
	}
	if s.Timeout != 0 {
		c.Timeout = s.Timeout
	}
	if s.UserID != "" {
		c.UserID = s.UserID
	}
}
