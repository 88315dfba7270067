package domain

import "fmt"

// ErrorCode represents a domain error code.
type ErrorCode string

const (
	ErrCodeTodoNotFound         ErrorCode = "TODO_NOT_FOUND"
	ErrCodeValidationFailed     ErrorCode = "VALIDATION_FAILED"
	ErrCodeUnsupportedMediaType ErrorCode = "UNSUPPORTED_MEDIA_TYPE"
	ErrCodeInternalError        ErrorCode = "INTERNAL_ERROR"
)

// DomainError represents an error in the domain layer with context.
type DomainError struct {
	Code    ErrorCode
	Message string
	Context map[string]interface{}
}

func (e *DomainError) Error() string {
	return e.Message
}

// IsNotFound reports whether err is a todo not found error.
func IsNotFound(err error) bool {
	domainErr, ok := err.(*DomainError)
	return ok && domainErr.Code == ErrCodeTodoNotFound
}

// NewTodoNotFoundError creates a todo not found error.
func NewTodoNotFoundError(id string) *DomainError {
	return &DomainError{
		Code:    ErrCodeTodoNotFound,
		Message: fmt.Sprintf("Todo %s not found", id),
		Context: map[string]interface{}{"id": id},
	}
}

// NewValidationError creates a validation error.
func NewValidationError(details []string) *DomainError {
	return &DomainError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Context: map[string]interface{}{"details": details},
	}
}

// NewUnsupportedMediaTypeError creates an error for request bodies that are
// not JSON.
func NewUnsupportedMediaTypeError(contentType string) *DomainError {
	return &DomainError{
		Code:    ErrCodeUnsupportedMediaType,
		Message: fmt.Sprintf("Unsupported content type %q, expected application/json", contentType),
		Context: map[string]interface{}{"content_type": contentType},
	}
}

// NewInternalError creates an internal error. The cause is not exposed to
// clients.
func NewInternalError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeInternalError,
		Message: "An internal error occurred",
		Context: map[string]interface{}{},
	}
}
