package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/todokata/todokata/internal/config"
	"github.com/todokata/todokata/internal/server"
	"github.com/todokata/todokata/internal/store"
	"github.com/todokata/todokata/pkg/todo"
)

// DefaultDBFileName is the database file used under the global config dir.
const DefaultDBFileName = "todos.db"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a local TODO API",
	Long: `Serve a TODO API compatible with jsonplaceholder.typicode.com, backed by
SQLite. Use --db :memory: for a throwaway store and --seed to load tasks
from a JSON array such as the one GET /todos returns.`,
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")
		dbPath, _ := cmd.Flags().GetString("db")
		seedPath, _ := cmd.Flags().GetString("seed")

		if err := runServe(cmd.Context(), addr, dbPath, seedPath); err != nil {
			handleError(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", server.DefaultAddress, "Address to listen on")
	serveCmd.Flags().String("db", "", "SQLite database path (default ~/.todokata/todos.db)")
	serveCmd.Flags().String("seed", "", "JSON file of tasks to load before serving")
}

// runServe opens the store, seeds it if asked, and serves until interrupted.
func runServe(ctx context.Context, addr, dbPath, seedPath string) error {
	if dbPath == "" {
		path, err := defaultDBPath()
		if err != nil {
			return err
		}
		dbPath = path
	}

	var seed []todo.Task
	if seedPath != "" {
		tasks, err := loadSeed(seedPath)
		if err != nil {
			return err
		}
		seed = tasks
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}

	srv := server.New(addr, st)
	if len(seed) > 0 {
		if err := srv.Seed(ctx, seed); err != nil {
			st.Close()
			return err
		}
	}

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		st.Close()
		return err
	}
	return nil
}

// loadSeed reads a seed file in the same format GET /todos returns.
func loadSeed(path string) ([]todo.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	tasks, err := todo.DecodeTasks(data)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return tasks, nil
}

func defaultDBPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, config.GlobalConfigDir, DefaultDBFileName), nil
}
