package todo

// Result is the outcome of one API call: either a success value or a
// *ClientError, never both and never neither.
type Result[T any] struct {
	value T
	err   *ClientError
}

// Success returns a successful Result holding value.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Failure returns a failed Result. It panics if err is nil, since a failure
// without a kind cannot be represented.
func Failure[T any](err *ClientError) Result[T] {
	if err == nil {
		panic("todo: Failure called with nil error")
	}
	return Result[T]{err: err}
}

// IsSuccess reports whether the result holds a value.
func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

// Value returns the success value and true, or the zero value and false.
func (r Result[T]) Value() (T, bool) {
	if r.err != nil {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Err returns the failure, or nil for a successful result.
func (r Result[T]) Err() *ClientError {
	return r.err
}

// Get returns the result in the usual (value, error) form.
func (r Result[T]) Get() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}
