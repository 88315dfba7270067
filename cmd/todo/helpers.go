package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/todokata/todokata/internal/config"
	"github.com/todokata/todokata/pkg/todo"
)

// configError marks failures to build a usable configuration.
type configError struct {
	err error
}

func (e *configError) Error() string {
	return fmt.Sprintf("configuration: %v", e.err)
}

func (e *configError) Unwrap() error {
	return e.err
}

// loadConfig resolves the config files and applies the global flags.
func loadConfig() (*config.ResolvedConfig, error) {
	cfg, err := config.ResolveConfig()
	if err != nil {
		return nil, &configError{err: err}
	}
	if err := applyFlags(cfg, baseURLFlag, timeoutFlag); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags overrides cfg with any flag values that were set.
func applyFlags(cfg *config.ResolvedConfig, baseURL string, timeout time.Duration) error {
	if baseURL != "" {
		if err := config.ValidateBaseURL(baseURL); err != nil {
			return &configError{err: err}
		}
		cfg.BaseURL = baseURL
	}
	if timeout < 0 {
		return &configError{err: fmt.Errorf("invalid timeout %v: must be positive", timeout)}
	}
	if timeout > 0 {
		cfg.Timeout = timeout
	}
	return nil
}

// newClient creates an SDK client for cfg.
func newClient(cfg *config.ResolvedConfig) (*todo.Client, error) {
	opts := []todo.ClientOption{
		todo.WithBaseURL(cfg.BaseURL),
		todo.WithTimeout(cfg.Timeout),
	}
	if verbose {
		opts = append(opts, todo.WithLogger(log.New(os.Stderr, "[todo] ", log.LstdFlags)))
	}

	c, err := todo.NewClient(opts...)
	if err != nil {
		return nil, &configError{err: err}
	}
	return c, nil
}

// getClient creates a client from the resolved config and flags
func getClient() (*todo.Client, *config.ResolvedConfig, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	c, err := newClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	return c, cfg, nil
}

// mapErrorToExitCode maps an error to the appropriate exit code
func mapErrorToExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var cfgErr *configError
	if errors.As(err, &cfgErr) {
		return ExitConfigError
	}

	switch {
	case todo.IsNetworkError(err):
		return ExitNetworkError
	case todo.IsItemNotFound(err):
		return ExitItemNotFound
	}
	if _, ok := todo.IsUnknownError(err); ok {
		return ExitUnknownAPIError
	}

	return ExitGeneralError
}

// handleError handles an error by printing it and exiting with the appropriate code
func handleError(err error) {
	if err == nil {
		return
	}

	printError(os.Stderr, err, jsonOutput)
	os.Exit(mapErrorToExitCode(err))
}
