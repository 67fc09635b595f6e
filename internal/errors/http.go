package errors

import (
	"fmt"
	"net/http"
)

// KindForStatus maps a non-2xx HTTP status code to an error kind.
//   - 404 is NotFound
//   - 401 and 403 are Authentication
//   - 400, 422 and every other 4xx are Validation
//   - 5xx and anything unexpected are Service
func KindForStatus(statusCode int) Kind {
	switch {
	case statusCode == http.StatusNotFound:
		return NotFound
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return Authentication
	case statusCode >= 400 && statusCode < 500:
		return Validation
	default:
		return Service
	}
}

// FromStatus creates a classified error for an HTTP failure. The body is
// carried through verbatim as the message.
func FromStatus(op string, statusCode int, body string) *Error {
	return &Error{
		Kind:       KindForStatus(statusCode),
		StatusCode: statusCode,
		Message:    body,
		Op:         op,
		Underlying: fmt.Errorf("%s failed: HTTP %d", op, statusCode),
	}
}
