package errors

import (
	"errors"
	"fmt"
	"maps"
)

// Code categorizes an error
type Code string

const (
	CodeUnknown         Code = "unknown"
	CodeInvalidArgument Code = "invalid_argument"
	CodeNotFound        Code = "not_found"
	CodeAlreadyExists   Code = "already_exists"
	CodeUnavailable     Code = "unavailable"
	CodeValidation      Code = "validation"
)

// Error carries a code, the failing operation and optional metadata such as
// a scene index or a redis channel
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta attaches a key to the error and returns it for chaining
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

func coded(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf reports an unknown scene, entity or file
func NotFoundf(format string, args ...any) *Error {
	return coded(CodeNotFound, format, args...)
}

// InvalidArgumentf reports an unusable argument such as an out of range
// scene index or a malformed console command
func InvalidArgumentf(format string, args ...any) *Error {
	return coded(CodeInvalidArgument, format, args...)
}

// AlreadyExistsf reports a duplicate registration
func AlreadyExistsf(format string, args ...any) *Error {
	return coded(CodeAlreadyExists, format, args...)
}

// Validationf reports invalid configuration or manifest data
func Validationf(format string, args ...any) *Error {
	return coded(CodeValidation, format, args...)
}

// Wrapf adds context to err. A coded cause keeps its code and a copy of its
// metadata.
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{
		Code:    CodeUnknown,
		Message: fmt.Sprintf(format, args...),
		Cause:   err,
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		wrapped.Code = appErr.Code
		wrapped.Meta = maps.Clone(appErr.Meta)
	}
	return wrapped
}

// WrapWithCode wraps err and overrides its code
func WrapWithCode(err error, code Code, message string) *Error {
	wrapped := Wrapf(err, "%s", message)
	if wrapped != nil {
		wrapped.Code = code
	}
	return wrapped
}

// Unavailable wraps a failure to reach redis or another external service
func Unavailable(err error, message string) *Error {
	return WrapWithCode(err, CodeUnavailable, message)
}

// Is reports whether any error in the chain carries code
func Is(err error, code Code) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

func IsNotFound(err error) bool        { return Is(err, CodeNotFound) }
func IsInvalidArgument(err error) bool { return Is(err, CodeInvalidArgument) }
func IsAlreadyExists(err error) bool   { return Is(err, CodeAlreadyExists) }
func IsUnavailable(err error) bool     { return Is(err, CodeUnavailable) }
func IsValidation(err error) bool      { return Is(err, CodeValidation) }
