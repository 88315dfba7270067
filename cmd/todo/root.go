package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "TODO API client",
	Long: `A CLI for JSON TODO APIs such as jsonplaceholder.typicode.com.

Settings are read from ~/.todokata/config.toml and the nearest todokata.toml,
and can be overridden with flags.`,
}

// Global flags
var (
	jsonOutput  bool
	baseURLFlag string
	timeoutFlag time.Duration
	verbose     bool
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&baseURLFlag, "base-url", "", "Base URL of the TODO API")
	rootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", 0, "Request timeout (e.g. 10s)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every HTTP exchange to stderr")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitGeneralError)
	}
}
