// Package errors provides the error taxonomy shared by every layer of the
// Gnip client. Each failed operation surfaces exactly one *Error whose Kind
// tells the caller whether it is worth trying again.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind categorizes a failure.
type Kind int

const (
	// Connectivity means the service could not be reached at all.
	Connectivity Kind = iota + 1
	// Authentication covers 401 and 403 responses.
	Authentication
	// Validation covers malformed requests or entities, locally or as
	// reported by the service (400, 422).
	Validation
	// NotFound means the resource or bucket does not exist (404).
	NotFound
	// Service is a server-side failure (5xx or an unexpected status).
	Service
	// Serialization means a request or response body could not be encoded
	// or decoded.
	Serialization
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case Connectivity:
		return "Connectivity"
	case Authentication:
		return "Authentication"
	case Validation:
		return "Validation"
	case NotFound:
		return "NotFound"
	case Service:
		return "Service"
	case Serialization:
		return "Serialization"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Retriable reports whether a caller may reasonably repeat the call.
// The library itself never retries.
func (k Kind) Retriable() bool {
	return k == Connectivity || k == Service
}

// Error is the single discriminated failure type returned by the client.
type Error struct {
	Kind       Kind
	StatusCode int    // HTTP status code (0 when no response was received)
	Message    string // service message, verbatim
	Op         string // operation that failed, e.g. "get filter"
	Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Underlying != nil {
		msg = e.Underlying.Error()
	}
	prefix := fmt.Sprintf("[%s]", e.Kind)
	if e.Op != "" {
		prefix += " " + e.Op
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: HTTP %d: %s", prefix, e.StatusCode, msg)
	}
	return fmt.Sprintf("%s: %s", prefix, msg)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *Error) Unwrap() error {
	return e.Underlying
}

// Is matches another *Error by kind, so sentinel comparisons like
// errors.Is(err, &Error{Kind: NotFound}) work.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.StatusCode == 0 || t.StatusCode == e.StatusCode)
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsRetriable reports whether err is a Connectivity or Service failure.
func IsRetriable(err error) bool {
	return KindOf(err).Retriable()
}

// New builds an *Error of the given kind with a formatted message.
func New(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Message: fmt.Sprintf(format, args...)}
}

// NewValidation reports a locally detected invalid argument.
func NewValidation(op, format string, args ...any) *Error {
	return New(Validation, op, format, args...)
}

// NewConnectivity wraps a transport-level failure.
func NewConnectivity(op string, err error) *Error {
	return &Error{
		Kind:       Connectivity,
		Op:         op,
		Message:    err.Error(),
		Underlying: err,
	}
}

// NewSerialization wraps an encode or decode failure.
func NewSerialization(op string, err error) *Error {
	return &Error{
		Kind:       Serialization,
		Op:         op,
		Message:    err.Error(),
		Underlying: err,
	}
}
