// Package transport executes request descriptors against the Gnip service.
package transport

import (
	"context"
	"net/http"
)

// Request is a fully built call. Path is relative to the service base URL.
type Request struct {
	Op          string // operation name, used for logs and metrics
	Method      string
	Path        string
	Body        []byte
	ContentType string
	Accept      string
	Header      http.Header
}

// Response is the raw outcome of a round trip.
type Response struct {
	StatusCode  int
	Body        []byte
	ContentType string
	Header      http.Header
}

// Transport executes a single blocking request. An error means no response
// was received; any received status, including 4xx and 5xx, is returned as
// a Response.
type Transport interface {
	Execute(ctx context.Context, req Request) (*Response, error)
}

// Func adapts a function to Transport.
type Func func(ctx context.Context, req Request) (*Response, error)

// Execute calls f.
func (f Func) Execute(ctx context.Context, req Request) (*Response, error) {
	return f(ctx, req)
}
