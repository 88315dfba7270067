package todo

import (
	"errors"
	"fmt"
)

// ErrorKind identifies which of the three failure cases a ClientError is.
type ErrorKind int

const (
	// KindNetwork means the exchange could not be completed, or the response
	// body could not be decoded into the expected shape.
	KindNetwork ErrorKind = iota + 1
	// KindItemNotFound means the server answered 404.
	KindItemNotFound
	// KindUnknown means the server answered with any other unclassified
	// status. The status is kept in ClientError.Code.
	KindUnknown
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network_error"
	case KindItemNotFound:
		return "item_not_found"
	case KindUnknown:
		return "unknown_error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Sentinel errors for use with errors.Is.
var (
	// ErrNetwork matches every network error, whatever its cause.
	ErrNetwork = &ClientError{Kind: KindNetwork}
	// ErrItemNotFound matches every item-not-found error.
	ErrItemNotFound = &ClientError{Kind: KindItemNotFound}
)

// ClientError is the only error type produced by Client operations.
//
// Malformed response bodies and connectivity failures are both reported as
// KindNetwork. The underlying cause is still reachable through errors.Unwrap
// for diagnostics, but it never takes part in equality.
type ClientError struct {
	Kind ErrorKind
	// Code is the HTTP status for KindUnknown and zero otherwise.
	Code int

	cause error
}

// NetworkError returns a KindNetwork error recording cause for diagnostics.
func NetworkError(cause error) *ClientError {
	return &ClientError{Kind: KindNetwork, cause: cause}
}

// ItemNotFound returns a KindItemNotFound error.
func ItemNotFound() *ClientError {
	return &ClientError{Kind: KindItemNotFound}
}

// UnknownError returns a KindUnknown error carrying the HTTP status code.
func UnknownError(code int) *ClientError {
	return &ClientError{Kind: KindUnknown, Code: code}
}

func (e *ClientError) Error() string {
	switch e.Kind {
	case KindNetwork:
		if e.cause != nil {
			return "network error: " + e.cause.Error()
		}
		return "network error"
	case KindItemNotFound:
		return "item not found"
	case KindUnknown:
		return fmt.Sprintf("unknown error: server responded with status %d", e.Code)
	default:
		return e.Kind.String()
	}
}

// Unwrap returns the cause of a network error, if one was recorded.
func (e *ClientError) Unwrap() error {
	return e.cause
}

// Is reports whether target is a ClientError of the same kind. A KindUnknown
// target with a zero Code matches any status.
func (e *ClientError) Is(target error) bool {
	t, ok := target.(*ClientError)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Kind != KindUnknown || t.Code == 0 || t.Code == e.Code
}

// Equal reports whether two errors have the same kind and status code.
func (e *ClientError) Equal(other *ClientError) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.Kind == other.Kind && e.Code == other.Code
}

// IsNetworkError returns true if the error is a network error.
func IsNetworkError(err error) bool {
	return hasKind(err, KindNetwork)
}

// IsItemNotFound returns true if the error indicates the item does not exist.
func IsItemNotFound(err error) bool {
	return hasKind(err, KindItemNotFound)
}

// IsUnknownError returns the HTTP status carried by an unknown error.
func IsUnknownError(err error) (int, bool) {
	var clientErr *ClientError
	if errors.As(err, &clientErr) && clientErr != nil && clientErr.Kind == KindUnknown {
		return clientErr.Code, true
	}
	return 0, false
}

// hasKind checks if the error is a ClientError of the given kind.
func hasKind(err error, kind ErrorKind) bool {
	if err == nil {
		return false
	}
	var clientErr *ClientError
	if errors.As(err, &clientErr) && clientErr != nil {
		return clientErr.Kind == kind
	}
	return false
}
