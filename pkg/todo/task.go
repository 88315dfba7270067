package todo

import (
	"context"
	"net/http"
)

// GetAllTasks fetches every task, in the order the server returns them.
func (c *Client) GetAllTasks(ctx context.Context, done func(Result[[]Task])) {
	req := c.newRequest(http.MethodGet, todosPath, nil)
	dispatch(ctx, c, req, DecodeTasks, done)
}

// GetTaskByID fetches a single task.
func (c *Client) GetTaskByID(ctx context.Context, id string, done func(Result[Task])) {
	req := c.newRequest(http.MethodGet, todoPath(id), nil)
	dispatch(ctx, c, req, DecodeTask, done)
}

// AddTaskToUser creates a task owned by userID. On success the result holds
// the task as stored by the server, including its assigned id.
func (c *Client) AddTaskToUser(ctx context.Context, userID, title string, completed bool, done func(Result[Task])) {
	body, err := EncodeNewTask(userID, title, completed)
	if err != nil {
		fail(NetworkError(err), done)
		return
	}

	req := c.newRequest(http.MethodPost, todosPath, body)
	dispatch(ctx, c, req, DecodeTask, done)
}

// UpdateTask replaces the task identified by task.ID with task.
func (c *Client) UpdateTask(ctx context.Context, task Task, done func(Result[Task])) {
	body, err := EncodeTask(task)
	if err != nil {
		fail(NetworkError(err), done)
		return
	}

	req := c.newRequest(http.MethodPut, todoPath(task.ID), body)
	dispatch(ctx, c, req, DecodeTask, done)
}

// DeleteTaskByID deletes a task. Any 2xx response is a success; the body is
// not inspected.
func (c *Client) DeleteTaskByID(ctx context.Context, id string, done func(Result[Unit])) {
	req := c.newRequest(http.MethodDelete, todoPath(id), nil)
	dispatch(ctx, c, req, decodeUnit, done)
}

// Await starts an operation and blocks until its result is delivered.
//
//	result := todo.Await(func(done func(todo.Result[todo.Task])) {
//	    client.GetTaskByID(ctx, "1", done)
//	})
func Await[T any](start func(done func(Result[T]))) Result[T] {
	ch := make(chan Result[T], 1)
	start(func(r Result[T]) {
		ch <- r
	})
	return <-ch
}
