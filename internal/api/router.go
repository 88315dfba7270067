package api

import (
	"log"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/todokata/todokata/internal/api/handler"
	"github.com/todokata/todokata/internal/api/middleware"
	"github.com/todokata/todokata/internal/service"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(svc *service.TodoService, logger *log.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware chain
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequireJSON)

	// Initialize handlers
	systemHandler := handler.NewSystemHandler()
	todoHandler := handler.NewTodoHandler(svc)

	r.Get("/health", systemHandler.Health)

	r.Route("/todos", func(r chi.Router) {
		r.Get("/", todoHandler.ListTodos)
		r.Post("/", todoHandler.CreateTodo)
		r.Get("/{id}", todoHandler.GetTodo)
		r.Put("/{id}", todoHandler.ReplaceTodo)
		r.Delete("/{id}", todoHandler.DeleteTodo)
	})

	return r
}
