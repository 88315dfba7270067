package todo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrDecode is wrapped by every error returned from DecodeTask and DecodeTasks.
var ErrDecode = errors.New("malformed task payload")

// DecodeTask decodes a single task. All four fields must be present with
// their exact JSON types; anything else is reported as ErrDecode and no
// partial task is returned. Keys are matched exactly, so "UserId" or "ID"
// do not count as present.
func DecodeTask(data []byte) (Task, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Task{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	var w wireTask
	for _, f := range w.fields() {
		raw, ok := fields[f.key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, f.dest); err != nil {
			return Task{}, fmt.Errorf("%w: field %s: %v", ErrDecode, f.key, err)
		}
	}
	return w.task()
}

// DecodeTasks decodes a JSON array of tasks. Decoding is all-or-nothing: if
// the payload is not an array, or any element is not a valid task, the whole
// payload is rejected.
func DecodeTasks(data []byte) ([]Task, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: expected a JSON array", ErrDecode)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	tasks := make([]Task, 0, len(raw))
	for i, elem := range raw {
		task, err := DecodeTask(elem)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// EncodeNewTask encodes the body of a create request. The id is omitted
// because the server assigns it.
func EncodeNewTask(userID, title string, completed bool) ([]byte, error) {
	return json.Marshal(newTaskRequest{
		UserID:    userID,
		Title:     title,
		Completed: completed,
	})
}

// EncodeTask encodes a full task, including its id.
func EncodeTask(task Task) ([]byte, error) {
	return json.Marshal(task)
}

func (w wireTask) task() (Task, error) {
	var missing []string
	if w.UserID == nil {
		missing = append(missing, "userId")
	}
	if w.ID == nil {
		missing = append(missing, "id")
	}
	if w.Title == nil {
		missing = append(missing, "title")
	}
	if w.Completed == nil {
		missing = append(missing, "completed")
	}
	if len(missing) > 0 {
		return Task{}, fmt.Errorf("%w: missing required fields %v", ErrDecode, missing)
	}

	return Task{
		UserID:    *w.UserID,
		ID:        *w.ID,
		Title:     *w.Title,
		Completed: *w.Completed,
	}, nil
}
