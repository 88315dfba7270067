package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/todokata/todokata/internal/api/request"
	"github.com/todokata/todokata/internal/api/response"
	"github.com/todokata/todokata/internal/domain"
	"github.com/todokata/todokata/internal/service"
)

// TodoHandler handles todo CRUD operations.
type TodoHandler struct {
	svc *service.TodoService
}

// NewTodoHandler creates a new TodoHandler.
func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// ListTodos handles GET /todos.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.svc.List(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, tasks)
}

// CreateTodo handles POST /todos.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeTodo(w, r, "")
	if !ok {
		return
	}

	task, err := h.svc.Create(r.Context(), input)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Created(w, task)
}

// GetTodo handles GET /todos/{id}.
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	task, err := h.svc.Get(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, task)
}

// ReplaceTodo handles PUT /todos/{id}.
func (h *TodoHandler) ReplaceTodo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	input, ok := decodeTodo(w, r, id)
	if !ok {
		return
	}

	task, err := h.svc.Replace(r.Context(), id, input)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, task)
}

// DeleteTodo handles DELETE /todos/{id}.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.svc.Delete(r.Context(), id); err != nil {
		response.Error(w, err)
		return
	}

	response.Empty(w)
}

// decodeTodo decodes and validates a todo body, writing the error response
// itself when the body is unusable.
func decodeTodo(w http.ResponseWriter, r *http.Request, pathID string) (service.CreateTodoInput, bool) {
	var req request.TodoRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, domain.NewValidationError([]string{"Invalid JSON body"}))
		return service.CreateTodoInput{}, false
	}

	if errors := req.Validate(pathID); len(errors) > 0 {
		response.Error(w, domain.NewValidationError(errors))
		return service.CreateTodoInput{}, false
	}

	return service.CreateTodoInput{
		UserID:    *req.UserID,
		Title:     *req.Title,
		Completed: req.CompletedOrDefault(),
	}, true
}
