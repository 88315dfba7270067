package sqlite

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/todokata/todokata/pkg/todo"
)

// TodoRepository handles todo persistence operations.
type TodoRepository struct {
	db *sql.DB
}

// NewTodoRepository creates a new TodoRepository.
func NewTodoRepository(db *sql.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

// Create inserts a new todo and returns it with its assigned ID.
func (r *TodoRepository) Create(ctx context.Context, userID, title string, completed bool) (todo.Task, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO todos (user_id, title, completed) VALUES (?, ?, ?)",
		userID, title, completed,
	)
	if err != nil {
		return todo.Task{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return todo.Task{}, err
	}

	return todo.Task{
		UserID:    userID,
		ID:        strconv.FormatInt(id, 10),
		Title:     title,
		Completed: completed,
	}, nil
}

// GetByID retrieves a todo by its ID. It returns sql.ErrNoRows if no such
// todo exists, including when id is not numeric.
func (r *TodoRepository) GetByID(ctx context.Context, id string) (todo.Task, error) {
	rowID, err := parseID(id)
	if err != nil {
		return todo.Task{}, err
	}

	row := r.db.QueryRowContext(ctx,
		"SELECT id, user_id, title, completed FROM todos WHERE id = ?", rowID)
	return scanTodo(row)
}

// List retrieves all todos in ID order.
func (r *TodoRepository) List(ctx context.Context) ([]todo.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, user_id, title, completed FROM todos ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []todo.Task{}
	for rows.Next() {
		task, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

// Update replaces every field of an existing todo.
func (r *TodoRepository) Update(ctx context.Context, task todo.Task) error {
	rowID, err := parseID(task.ID)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE todos SET user_id = ?, title = ?, completed = ? WHERE id = ?",
		task.UserID, task.Title, task.Completed, rowID,
	)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// Delete deletes a todo by ID.
func (r *TodoRepository) Delete(ctx context.Context, id string) error {
	rowID, err := parseID(id)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, "DELETE FROM todos WHERE id = ?", rowID)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// Seed inserts tasks, keeping their IDs when they are numeric and replacing
// any existing todo with the same ID.
func (r *TodoRepository) Seed(ctx context.Context, tasks []todo.Task) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, task := range tasks {
		var id interface{}
		if rowID, err := parseID(task.ID); err == nil {
			id = rowID
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT OR REPLACE INTO todos (id, user_id, title, completed) VALUES (?, ?, ?, ?)",
			id, task.UserID, task.Title, task.Completed,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTodo(s scanner) (todo.Task, error) {
	var id int64
	var task todo.Task
	if err := s.Scan(&id, &task.UserID, &task.Title, &task.Completed); err != nil {
		return todo.Task{}, err
	}
	task.ID = strconv.FormatInt(id, 10)
	return task, nil
}

func parseID(id string) (int64, error) {
	rowID, err := strconv.ParseInt(id, 10, 64)
	if err != nil || rowID <= 0 {
		return 0, sql.ErrNoRows
	}
	return rowID, nil
}

func requireRow(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
