package domain

import (
	"errors"
	"fmt"
)

// User-visible messages carried by domain errors.
const (
	MsgBadRequest      = "bad request"
	MsgPathNotFound    = "path not found"
	MsgArticleNotFound = "article does not exist"
	MsgCommentNotFound = "comment does not exist"
	MsgInternalFailure = "internal server error"
)

// Kind classifies a domain error. The API layer maps each kind to exactly
// one HTTP status code.
type Kind int

const (
	// KindNotFound marks a missing resource or route.
	KindNotFound Kind = iota + 1

	// KindBadRequest marks malformed or incomplete input.
	KindBadRequest
)

// String returns a short name for the kind, used in logs.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindBadRequest:
		return "bad_request"
	default:
		return "unknown"
	}
}

// Error is an application-level failure carrying an explicit kind and the
// message that is shown to the client verbatim.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // optional cause, never shown to clients
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap returns the cause to support errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound creates a KindNotFound error with the given client message.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

// BadRequest creates a KindBadRequest error. The cause is kept for logging.
func BadRequest(cause error) *Error {
	return &Error{Kind: KindBadRequest, Msg: MsgBadRequest, Err: cause}
}

// AsError reports whether err is (or wraps) a *Error and returns it.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// IsNotFound reports whether err is a KindNotFound domain error.
func IsNotFound(err error) bool {
	de, ok := AsError(err)
	return ok && de.Kind == KindNotFound
}

// IsBadRequest reports whether err is a KindBadRequest domain error.
func IsBadRequest(err error) bool {
	de, ok := AsError(err)
	return ok && de.Kind == KindBadRequest
}
