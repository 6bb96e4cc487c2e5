// Package errors provides coded errors for the outer layers of the
// simulator: roster loading, the report archive, and the simulation service.
// The battle engine itself never returns errors.
package errors

import (
	"errors"
	"fmt"
)

// Code categorizes an error
type Code string

const (
	CodeUnknown         Code = "unknown"
	CodeInvalidArgument Code = "invalid_argument" // bad roster, party or config input
	CodeNotFound        Code = "not_found"        // missing report, hero, wave or ability
	CodeAlreadyExists   Code = "already_exists"   // duplicate report id
	CodeInternal        Code = "internal"         // encoding failures and broken invariants
	CodeUnavailable     Code = "unavailable"      // backing store unreachable
)

// Error is an error with a code and optional metadata
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

// WithMeta attaches a key/value pair and returns e for chaining
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates an error with the given code
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an error with a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap adds context to err, keeping its code and metadata if it has them
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{Code: CodeUnknown, Message: message, Cause: err}

	var coded *Error
	if errors.As(err, &coded) {
		wrapped.Code = coded.Code
		if coded.Meta != nil {
			wrapped.Meta = make(map[string]any, len(coded.Meta))
			for k, v := range coded.Meta {
				wrapped.Meta[k] = v
			}
		}
	}

	return wrapped
}

// Wrapf adds formatted context to err
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode adds context to err and overrides its code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

func NotFound(message string) *Error { return New(CodeNotFound, message) }

func NotFoundf(format string, args ...any) *Error { return Newf(CodeNotFound, format, args...) }

func InvalidArgument(message string) *Error { return New(CodeInvalidArgument, message) }

func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

func Internalf(format string, args ...any) *Error { return Newf(CodeInternal, format, args...) }

// Is reports whether err carries code anywhere in its chain
func Is(err error, code Code) bool {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code == code
	}
	return false
}

func IsNotFound(err error) bool        { return Is(err, CodeNotFound) }
func IsInvalidArgument(err error) bool { return Is(err, CodeInvalidArgument) }
func IsAlreadyExists(err error) bool   { return Is(err, CodeAlreadyExists) }
func IsUnavailable(err error) bool     { return Is(err, CodeUnavailable) }

// GetCode returns the code of err, or CodeUnknown
func GetCode(err error) Code {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return CodeUnknown
}

// GetMeta returns the metadata of err, if any
func GetMeta(err error) map[string]any {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Meta
	}
	return nil
}
