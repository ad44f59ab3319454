// Package errors provides a structured error type with wrapping and metadata
package errors

// Import this package as perr (platform/errors)

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies an error for clients
// the numbers are part of the envelope, so new codes go at the end
type ErrorCode uint16

const (
	ErrorCodeUnknown         ErrorCode = iota // unclassified
	ErrorCodePanic                            // recovered by middleware
	ErrorCodeUnavailable                      // a dependency is down, retry may work
	ErrorCodeConflict                         // state does not allow the change
	ErrorCodeUnauthorized                     // missing or bad bearer token
	ErrorCodeForbidden                        // authenticated but not allowed
	ErrorCodeInvalidArgument                  // input points at something unusable, e.g. an unknown course
	ErrorCodeValidation                       // input breaks a field rule
	ErrorCodeJSON                             // body is not the expected JSON
	ErrorCodeNotFound                         // missing row
	ErrorCodeDuplicateKey                     // unique violation
	ErrorCodeDB                               // any other database failure
	ErrorCodeBadRequest                       // the backend could not run the request, a failed lookup query for one
	ErrorCodePrecondition                     // the target failed a precondition, an unknown class id for one
)

var statusByCode = map[ErrorCode]int{
	ErrorCodeUnavailable:     http.StatusServiceUnavailable,
	ErrorCodeConflict:        http.StatusConflict,
	ErrorCodeUnauthorized:    http.StatusUnauthorized,
	ErrorCodeForbidden:       http.StatusForbidden,
	ErrorCodeInvalidArgument: http.StatusUnprocessableEntity,
	ErrorCodeValidation:      http.StatusBadRequest,
	ErrorCodeJSON:            http.StatusBadRequest,
	ErrorCodeNotFound:        http.StatusNotFound,
	ErrorCodeDuplicateKey:    http.StatusConflict,
	ErrorCodeBadRequest:      http.StatusBadRequest,
	ErrorCodePrecondition:    http.StatusPreconditionFailed,
}

// statusOf maps a code to its HTTP status, 500 for anything unlisted
func statusOf(c ErrorCode) int {
	if s, ok := statusByCode[c]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// ErrNotFound is returned by single-row reads that match nothing
var ErrNotFound = New(ErrorCodeNotFound, "not found")

// Error is the project error: a client facing message and code, plus the
// offending field, the operation that failed and the cause, all optional
type Error struct {
	code  ErrorCode
	msg   string
	field string
	op    string
	cause error
}

// Wire is the error part of the response envelope
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.cause == nil:
		return e.msg
	default:
		return e.msg + ": " + e.cause.Error()
	}
}

// Unwrap exposes the cause to errors.Is and errors.As
func (e *Error) Unwrap() error { return e.cause }

// Code is the error classification
func (e *Error) Code() ErrorCode { return e.code }

// Field names the input field at fault, empty when none
func (e *Error) Field() string { return e.field }

// Op labels the failed operation for logs, it never reaches clients
func (e *Error) Op() string { return e.op }

// As returns the first *Error in err's chain
func As(err error) (*Error, bool) {
	var e *Error
	ok := stderrs.As(err, &e)
	return e, ok
}

// CodeOf is the code of err's first *Error, Unknown for foreign errors
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err carries code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus is the status the API answers err with
func HTTPStatus(err error) int { return statusOf(CodeOf(err)) }

// WireFrom renders err for the envelope; the cause stays server side
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	e, ok := As(err)
	if !ok {
		return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
	}
	return Wire{Code: e.code, Message: e.msg, Field: e.field}
}

// Root follows Unwrap to the innermost error
func Root(err error) error {
	for err != nil {
		next := stderrs.Unwrap(err)
		if next == nil {
			break
		}
		err = next
	}
	return err
}

// with copies the *Error in err and applies set, foreign errors pass through
func with(err error, set func(*Error)) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	c := *e
	set(&c)
	return &c
}

// WithField returns err tagged with the offending input field
func WithField(err error, field string) error { return with(err, func(e *Error) { e.field = field }) }

// WithOp returns err tagged with the operation that failed
func WithOp(err error, op string) error { return with(err, func(e *Error) { e.op = op }) }

// New builds an *Error
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf builds an *Error with a formatted message
func Newf(code ErrorCode, format string, a ...any) error { return New(code, fmt.Sprintf(format, a...)) }

// Wrap builds an *Error around cause
func Wrap(cause error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, cause: cause}
}

// Wrapf is Wrap with a formatted message
func Wrapf(cause error, code ErrorCode, format string, a ...any) error {
	return Wrap(cause, code, fmt.Sprintf(format, a...))
}

// WrapIf is Wrap that keeps nil as nil
func WrapIf(err error, code ErrorCode, msg string) error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, msg)
}

// Validationf is a 400 for a broken field rule
func Validationf(format string, a ...any) error { return Newf(ErrorCodeValidation, format, a...) }

// BadRequestf is a 400 for a request the backend could not run
func BadRequestf(format string, a ...any) error { return Newf(ErrorCodeBadRequest, format, a...) }

// Preconditionf is a 412
func Preconditionf(format string, a ...any) error { return Newf(ErrorCodePrecondition, format, a...) }

// JSONErrf is a 400 for a body that does not decode
func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }

// PanicErrf is the 500 recover middleware answers with
func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }

// Unauthorizedf is a 401
func Unauthorizedf(format string, a ...any) error { return Newf(ErrorCodeUnauthorized, format, a...) }
