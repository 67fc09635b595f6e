package gnip

import (
	gerrors "github.com/gnip/gnip-go/internal/errors"
)

// Error is the single failure type returned by Client methods. Use
// errors.As to inspect Kind, StatusCode and Message.
type Error = gerrors.Error

// ErrorKind categorizes an Error.
type ErrorKind = gerrors.Kind

const (
	ConnectivityError   = gerrors.Connectivity
	AuthenticationError = gerrors.Authentication
	ValidationError     = gerrors.Validation
	NotFoundError       = gerrors.NotFound
	ServiceError        = gerrors.Service
	SerializationError  = gerrors.Serialization
)

// ErrNotFound matches any NotFound error with errors.Is.
var ErrNotFound = &Error{Kind: gerrors.NotFound}

// KindOf returns the kind of err, or 0 if err is not an *Error.
func KindOf(err error) ErrorKind { return gerrors.KindOf(err) }

// IsRetriable reports whether err is a Connectivity or Service failure.
// The client never retries on its own.
func IsRetriable(err error) bool { return gerrors.IsRetriable(err) }

// IsNotFound reports whether the resource or bucket does not exist.
func IsNotFound(err error) bool { return KindOf(err) == NotFoundError }

// IsAuthentication reports whether the credentials were rejected.
func IsAuthentication(err error) bool { return KindOf(err) == AuthenticationError }

// IsValidation reports whether the request or entity was invalid.
func IsValidation(err error) bool { return KindOf(err) == ValidationError }

func newValidation(op, format string, args ...any) error {
	return gerrors.NewValidation(op, format, args...)
}
