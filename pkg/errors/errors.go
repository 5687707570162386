// Package errors provides coded errors for thankyou.
//
// A run either fails as a whole (no manifest, a manifest that does not
// parse, an output file that cannot be written) or loses a single lookup
// (a package the registry does not know). Both kinds carry a [Code] so
// callers can branch on the condition without matching message text; the
// wrapped cause stays reachable through the standard errors.Is and
// errors.As.
//
// # Codes
//
//   - MANIFEST_NOT_FOUND, FILE_NOT_FOUND: no manifest to read
//   - INVALID_MANIFEST: manifest is not valid JSON or TOML
//   - PACKAGE_NOT_FOUND: registry answered 404 for one dependency
//   - WRITE_FAILED: attribution list could not be written
//
// # Usage
//
//	err := errors.New(errors.ErrCodeManifestNotFound, "no manifest in %s", dir)
//	if errors.Is(err, errors.ErrCodeManifestNotFound) {
//	    // Report and exit
//	}
//
//	err = errors.Wrap(errors.ErrCodeInvalidManifest, cause, "parse %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code identifies an error condition.
type Code string

const (
	ErrCodeManifestNotFound Code = "MANIFEST_NOT_FOUND"
	ErrCodeFileNotFound     Code = "FILE_NOT_FOUND"
	ErrCodeInvalidManifest  Code = "INVALID_MANIFEST"
	ErrCodePackageNotFound  Code = "PACKAGE_NOT_FOUND"
	ErrCodeWriteFailed      Code = "WRITE_FAILED"
)

// Error pairs a Code with a message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	s := string(e.Code) + ": " + e.Message
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message and no cause.
func New(code Code, format string, args ...any) *Error {
	return Wrap(code, nil, format, args...)
}

// Wrap returns an Error with a formatted message around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether the first *Error in err's chain has the given code.
func Is(err error, code Code) bool {
	e, ok := asError(err)
	return ok && e.Code == code
}

// UserMessage renders err for the terminal: message and cause without the
// code prefix. Errors from other packages are returned as-is.
func UserMessage(err error) string {
	e, ok := asError(err)
	if !ok {
		return err.Error()
	}
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func asError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
