package request

import (
	"encoding/json"
	"net/http"
	"strings"
)

// TodoRequest is the body of POST /todos and PUT /todos/{id}.
type TodoRequest struct {
	UserID    *string `json:"userId"`
	ID        *string `json:"id,omitempty"`
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

// Validate validates a todo request. pathID is the id from the URL for
// updates and empty for creation.
func (r *TodoRequest) Validate(pathID string) []string {
	var errors []string

	if r.UserID == nil || strings.TrimSpace(*r.UserID) == "" {
		errors = append(errors, "userId is required")
	}

	if r.Title == nil || strings.TrimSpace(*r.Title) == "" {
		errors = append(errors, "title is required")
	}

	if r.ID != nil && *r.ID != pathID {
		if pathID == "" {
			errors = append(errors, "id is assigned by the server")
		} else {
			errors = append(errors, "id in body does not match id in path")
		}
	}

	return errors
}

// CompletedOrDefault returns the completion flag, false when omitted.
func (r *TodoRequest) CompletedOrDefault() bool {
	return r.Completed != nil && *r.Completed
}

// DecodeJSON decodes JSON from request body into the given value.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
