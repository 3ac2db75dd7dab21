package result

import (
	"errors"
	"fmt"
)

const unknownErrorMessage = "unknown error"

// Unit is the value type of results that carry no value.
type Unit struct{}

// Result is either a success holding a value of type T or a failure holding a
// message and a Code. The zero value is a failure with an unknown error.
type Result[T any] struct {
	value   T
	message string
	code    Code
	success bool
}

// Ok returns a successful result holding value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, success: true}
}

// Err returns a failed result. code may be NoCode.
func Err[T any](message string, code Code) Result[T] {
	if message == "" {
		message = unknownErrorMessage
	}
	return Result[T]{message: message, code: code}
}

// OkUnit returns a successful result without a value.
func OkUnit() Result[Unit] {
	return Ok(Unit{})
}

// ErrUnit returns a failed result without a value.
func ErrUnit(message string, code Code) Result[Unit] {
	return Err[Unit](message, code)
}

// From converts a Go (value, error) pair into a Result. A nil err yields Ok(value).
// An *Error anywhere in err's chain keeps its own message and code; any other
// error becomes a failure with err's text and the supplied code.
func From[T any](value T, err error, code Code) Result[T] {
	if err == nil {
		return Ok(value)
	}

	var resultErr *Error
	if errors.As(err, &resultErr) {
		return Err[T](resultErr.Message, resultErr.Code)
	}

	return Err[T](err.Error(), code)
}

func (r Result[T]) IsSuccess() bool {
	return r.success
}

func (r Result[T]) IsFailure() bool {
	return !r.success
}

// Value returns the held value and true on success, the zero value and false otherwise.
func (r Result[T]) Value() (T, bool) {
	if !r.success {
		var zero T
		return zero, false
	}
	return r.value, true
}

// ValueOrDefault returns the held value on success and def otherwise.
func (r Result[T]) ValueOrDefault(def T) T {
	if !r.success {
		return def
	}
	return r.value
}

// Message returns the failure message, or "" on success.
func (r Result[T]) Message() string {
	if r.success {
		return ""
	}
	if r.message == "" {
		return unknownErrorMessage
	}
	return r.message
}

// Code returns the failure code, or NoCode on success.
func (r Result[T]) Code() Code {
	if r.success {
		return NoCode
	}
	return r.code
}

// Err returns the failure as an *Error, or nil on success.
func (r Result[T]) Err() error {
	if r.success {
		return nil
	}
	return &Error{Message: r.Message(), Code: r.code}
}

// OnSuccess calls action with the value if r succeeded and returns r unchanged.
func (r Result[T]) OnSuccess(action func(T)) Result[T] {
	if r.success {
		action(r.value)
	}
	return r
}

// OnFailure calls action with the message and code if r failed and returns r unchanged.
func (r Result[T]) OnFailure(action func(message string, code Code)) Result[T] {
	if !r.success {
		action(r.Message(), r.code)
	}
	return r
}

func (r Result[T]) String() string {
	if r.success {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	if r.code == NoCode {
		return fmt.Sprintf("Err(%s)", r.Message())
	}
	return fmt.Sprintf("Err(%s: %s)", r.code, r.Message())
}

// Error is the error form of a failed Result.
type Error struct {
	Message string
	Code    Code
}

func (e *Error) Error() string {
	if e.Code == NoCode {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
