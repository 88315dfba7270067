package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/todokata/todokata/internal/domain"
	"github.com/todokata/todokata/internal/store/sqlite"
	"github.com/todokata/todokata/pkg/todo"
)

// TodoService handles todo business logic.
type TodoService struct {
	todoRepo *sqlite.TodoRepository
}

// NewTodoService creates a new TodoService.
func NewTodoService(todoRepo *sqlite.TodoRepository) *TodoService {
	return &TodoService{todoRepo: todoRepo}
}

// CreateTodoInput contains the input for creating a todo.
type CreateTodoInput struct {
	UserID    string
	Title     string
	Completed bool
}

// Create creates a new todo.
func (s *TodoService) Create(ctx context.Context, input CreateTodoInput) (todo.Task, error) {
	task, err := s.todoRepo.Create(ctx, input.UserID, input.Title, input.Completed)
	if err != nil {
		return todo.Task{}, domain.NewInternalError(err)
	}
	return task, nil
}

// Get retrieves a todo by ID.
func (s *TodoService) Get(ctx context.Context, id string) (todo.Task, error) {
	task, err := s.todoRepo.GetByID(ctx, id)
	if err != nil {
		return todo.Task{}, mapRepoError(err, id)
	}
	return task, nil
}

// List retrieves all todos.
func (s *TodoService) List(ctx context.Context) ([]todo.Task, error) {
	tasks, err := s.todoRepo.List(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	return tasks, nil
}

// Replace overwrites the todo identified by id. The id in the path wins over
// any id carried in the body.
func (s *TodoService) Replace(ctx context.Context, id string, input CreateTodoInput) (todo.Task, error) {
	task := todo.Task{
		UserID:    input.UserID,
		ID:        id,
		Title:     input.Title,
		Completed: input.Completed,
	}
	if err := s.todoRepo.Update(ctx, task); err != nil {
		return todo.Task{}, mapRepoError(err, id)
	}
	return task, nil
}

// Delete deletes a todo by ID.
func (s *TodoService) Delete(ctx context.Context, id string) error {
	if err := s.todoRepo.Delete(ctx, id); err != nil {
		return mapRepoError(err, id)
	}
	return nil
}

// Seed loads tasks into the store, keeping numeric IDs.
func (s *TodoService) Seed(ctx context.Context, tasks []todo.Task) error {
	if err := s.todoRepo.Seed(ctx, tasks); err != nil {
		return domain.NewInternalError(err)
	}
	return nil
}

func mapRepoError(err error, id string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewTodoNotFoundError(id)
	}
	return domain.NewInternalError(err)
}
