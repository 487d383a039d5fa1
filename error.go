package lectio

import (
	"errors"
	"fmt"
)

// Application error codes. These are portable across implementations and
// let callers branch on the kind of failure without string matching.
const (
	EABORTED     = "aborted"          // a batched write was rolled back; safe to retry
	EEMPTY       = "empty_source"     // a source document parsed cleanly but yielded no records
	EINTERNAL    = "internal"         // unexpected internal error
	EINVALID     = "invalid"          // validation failed on caller-provided input
	EMALFORMED   = "malformed_source" // a source document could not be parsed at all
	ENOTFOUND    = "not_found"        // entity does not exist
	EUNAVAILABLE = "unavailable"      // backing storage could not be opened or reached
)

// Error represents an application-specific error. Errors carry a machine
// readable code and a human readable message.
type Error struct {
	// Code is one of the E* constants above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("lectio error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code. Non-application
// errors always return EINTERNAL. A nil error returns an empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error". A nil error
// returns an empty string.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
