package direx

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a class of explorer failure.
type ErrorCode string

const (
	// ErrCodeReadDir is a directory listing failure during navigation
	// (permission denied, path not found, not a directory, I/O error).
	ErrCodeReadDir ErrorCode = "READ_DIR"

	// ErrCodeInvalidStartDir is reported when the starting directory of a
	// new explorer can not be listed.
	ErrCodeInvalidStartDir ErrorCode = "INVALID_START_DIR"

	// ErrCodeInput is an error propagated from a host input backend.
	ErrCodeInput ErrorCode = "INPUT"
)

// Error is the structured error returned by navigation operations.
// When it is returned the explorer state is unchanged, so the widget
// stays usable after a failed navigation attempt.
type Error struct {
	Code ErrorCode
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(code ErrorCode, path string, err error) *Error {
	return &Error{Code: code, Path: path, Err: err}
}

// IsCode reports whether err is or wraps an *Error with the given code.
func IsCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
