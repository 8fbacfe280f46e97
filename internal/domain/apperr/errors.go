package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the HTTP layer can pick a status code
// without string-matching messages.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindForbidden
	KindInvalidState
	KindInvalidAmount
	KindConflict
	KindExpired
	KindValidation
)

type Error struct {
	Kind    Kind
	Code    string // machine-readable, e.g. "CAMPAIGN_NOT_FOUND"
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(code, msg string) *Error      { return &Error{Kind: KindNotFound, Code: code, Message: msg} }
func Forbidden(code, msg string) *Error     { return &Error{Kind: KindForbidden, Code: code, Message: msg} }
func InvalidState(code, msg string) *Error  { return &Error{Kind: KindInvalidState, Code: code, Message: msg} }
func InvalidAmount(code, msg string) *Error { return &Error{Kind: KindInvalidAmount, Code: code, Message: msg} }
func Conflict(code, msg string) *Error      { return &Error{Kind: KindConflict, Code: code, Message: msg} }
func Expired(code, msg string) *Error       { return &Error{Kind: KindExpired, Code: code, Message: msg} }
func Validation(code, msg string) *Error    { return &Error{Kind: KindValidation, Code: code, Message: msg} }

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Code: "INTERNAL", Message: "internal error", Err: err}
}

// KindOf extracts the Kind from any error in the chain; unclassified
// errors are treated as internal.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

// CodeOf returns the machine code, or "INTERNAL" for unclassified errors.
func CodeOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return "INTERNAL"
}

// Is lets errors.Is match two taxonomy errors by code.
func (e *Error) Is(target error) bool {
	var ae *Error
	if !errors.As(target, &ae) {
		return false
	}
	return e.Code == ae.Code
}
