// Package server provides the HTTP server lifecycle for the local TODO API.
package server

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/todokata/todokata/internal/api"
	"github.com/todokata/todokata/internal/service"
	"github.com/todokata/todokata/internal/store"
	"github.com/todokata/todokata/internal/store/sqlite"
	"github.com/todokata/todokata/pkg/todo"
)

const (
	// DefaultAddress is the default address the server listens on.
	DefaultAddress = "localhost:7433"
	// DefaultShutdownTimeout is the default timeout for graceful shutdown.
	DefaultShutdownTimeout = 30 * time.Second
)

// Server manages the HTTP server lifecycle.
type Server struct {
	httpServer *http.Server
	store      *store.Store
	svc        *service.TodoService
	logger     *log.Logger
	listener   net.Listener
	mu         sync.Mutex
	started    bool
}

// New creates a new Server serving the todos held in st.
// If addr is empty, DefaultAddress ("localhost:7433") will be used.
// The server takes ownership of st and closes it on Shutdown.
func New(addr string, st *store.Store) *Server {
	if addr == "" {
		addr = DefaultAddress
	}

	logger := log.New(os.Stdout, "[todokata] ", log.LstdFlags)
	svc := service.NewTodoService(sqlite.NewTodoRepository(st.DB()))

	return &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      api.NewRouter(svc, logger),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		store:  st,
		svc:    svc,
		logger: logger,
	}
}

// SetLogger replaces the logger used for lifecycle and request logging.
// It must be called before Start.
func (s *Server) SetLogger(logger *log.Logger) {
	s.logger = logger
	s.httpServer.Handler = api.NewRouter(s.svc, logger)
}

// Seed loads tasks into the backing store before serving.
func (s *Server) Seed(ctx context.Context, tasks []todo.Task) error {
	if err := s.svc.Seed(ctx, tasks); err != nil {
		return err
	}
	s.logger.Printf("Seeded %d todos", len(tasks))
	return nil
}

// Start starts the HTTP server and blocks until the server is shut down.
// It returns http.ErrServerClosed when the server is gracefully shut down.
func (s *Server) Start() error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}

	// Listen first so the real address is known when addr uses port 0.
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	s.listener = ln
	s.started = true
	s.mu.Unlock()

	s.logger.Printf("Server listening on %s (database %s)", ln.Addr().String(), s.store.Path())

	return s.httpServer.Serve(ln)
}

// Shutdown gracefully shuts down the server without interrupting active connections.
// It waits for active connections to finish or until the context is canceled.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	s.logger.Println("Shutting down server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	if err := s.store.Close(); err != nil {
		s.logger.Printf("Warning: error closing store: %v", err)
	}

	s.logger.Println("Server stopped")
	return nil
}

// Addr returns the address the server is listening on.
// Returns empty string if the server hasn't started yet.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return ""
}

// DefaultAddr returns the default address the server would use.
func (s *Server) DefaultAddr() string {
	return DefaultAddress
}

// ListenAndServe starts the server and shuts it down gracefully on SIGINT
// or SIGTERM.
func (s *Server) ListenAndServe() error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		s.logger.Printf("Received signal: %v", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()

	return s.Shutdown(ctx)
}
