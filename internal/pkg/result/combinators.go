package result

import (
	"fmt"
	"strings"
)

const failureSeparator = "; "

// Outcome is the value-independent view of a Result, used to combine results of
// different value types.
type Outcome interface {
	IsFailure() bool
	Message() string
	Code() Code
}

// Map applies f to the value of a successful r. A failed r is propagated with its
// message and code. A panic inside f is recovered into a CodeInternalError failure.
func Map[S, T any](r Result[S], f func(S) T) (out Result[T]) {
	if r.IsFailure() {
		return Err[T](r.Message(), r.code)
	}

	defer recoverInto(&out, "map")
	return Ok(f(r.value))
}

// Bind applies f to the value of a successful r and returns f's result. f is not
// called for a failed r. A panic inside f is recovered into a CodeInternalError failure.
func Bind[S, T any](r Result[S], f func(S) Result[T]) (out Result[T]) {
	if r.IsFailure() {
		return Err[T](r.Message(), r.code)
	}

	defer recoverInto(&out, "bind")
	return f(r.value)
}

// TryMap is Map for functions that report failure through an error. A returned
// *Error keeps its code; any other error becomes a CodeInternalError failure.
func TryMap[S, T any](r Result[S], f func(S) (T, error)) (out Result[T]) {
	if r.IsFailure() {
		return Err[T](r.Message(), r.code)
	}

	defer recoverInto(&out, "map")
	value, err := f(r.value)
	return From(value, err, CodeInternalError)
}

// Combine succeeds with the ordered values when every result succeeds. Otherwise
// it fails with every failure message joined in order and the code of the first failure.
func Combine[T any](results ...Result[T]) Result[[]T] {
	values := make([]T, 0, len(results))
	outcomes := make([]Outcome, 0, len(results))
	for _, r := range results {
		outcomes = append(outcomes, r)
		if v, ok := r.Value(); ok {
			values = append(values, v)
		}
	}

	if message, code, failed := joinFailures(outcomes); failed {
		return Err[[]T](message, code)
	}
	return Ok(values)
}

// CombineUnit is Combine for results of any value type, discarding the values.
func CombineUnit(outcomes ...Outcome) Result[Unit] {
	if message, code, failed := joinFailures(outcomes); failed {
		return ErrUnit(message, code)
	}
	return OkUnit()
}

func joinFailures(outcomes []Outcome) (string, Code, bool) {
	var (
		messages  []string
		firstCode Code
	)
	for _, o := range outcomes {
		if !o.IsFailure() {
			continue
		}
		if len(messages) == 0 {
			firstCode = o.Code()
		}
		messages = append(messages, o.Message())
	}

	if len(messages) == 0 {
		return "", NoCode, false
	}
	return strings.Join(messages, failureSeparator), firstCode, true
}

// recoverInto must be deferred directly so that recover sees the panic.
func recoverInto[T any](out *Result[T], op string) {
	if p := recover(); p != nil {
		*out = Err[T](fmt.Sprintf("%s failed: %s", op, panicMessage(p)), CodeInternalError)
	}
}

func panicMessage(p any) string {
	switch v := p.(type) {
	case error:
		return v.Error()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
