package errors

import (
	"errors"
	"fmt"

	"github.com/hardluck-games/streetlife/internal/errors/i18n"
)

// Error carries a machine-readable code alongside a wrapped cause.
type Error struct {
	Code     Code
	Metadata map[string]string
	Err      error
}

// New creates an Error with the given code.
func New(code Code) *Error {
	return &Error{Code: code}
}

// Newf creates an Error with the given code and template metadata.
func Newf(code Code, metadata map[string]string) *Error {
	return &Error{Code: code, Metadata: metadata}
}

// Wrap attaches a code to an underlying error.
func Wrap(code Code, err error) *Error {
	return &Error{Code: code, Err: err}
}

// Error renders the en-US message for the code.
func (e *Error) Error() string {
	msg := i18n.GetCatalog("").Format(string(e.Code), e.Metadata)
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Localize renders the message for the requested locale, falling back to en-US.
func (e *Error) Localize(locale string) string {
	return i18n.GetCatalog(locale).Format(string(e.Code), e.Metadata)
}

// CodeOf extracts the code from err, or CodeUnknown when none is attached.
func CodeOf(err error) Code {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return CodeUnknown
}
