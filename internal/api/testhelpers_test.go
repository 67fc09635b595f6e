package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gnip/gnip-go/internal/codec"
	"github.com/gnip/gnip-go/internal/transport"
	"github.com/gnip/gnip-go/internal/types"
)

var twitter = types.NewPublisher(types.ScopeMy, "twitter")

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// newCaller points an XML caller at srv.
func newCaller(t *testing.T, srv *httptest.Server) Caller {
	t.Helper()
	tr, err := transport.NewResty(transport.Config{BaseURL: srv.URL, Username: "u", Password: "p"})
	if err != nil {
		t.Fatalf("NewResty: %v", err)
	}
	return Caller{Transport: tr, Codec: codec.XMLCodec{}}
}

// failingCaller never reaches a server.
func failingCaller(t *testing.T) Caller {
	t.Helper()
	tr, err := transport.NewResty(transport.Config{BaseURL: "http://gnip.invalid", RoundTripper: &errRT{}})
	if err != nil {
		t.Fatalf("NewResty: %v", err)
	}
	return Caller{Transport: tr, Codec: codec.XMLCodec{}}
}

// countingTransport records whether anything was sent.
type countingTransport struct{ calls int }

func (c *countingTransport) Execute(context.Context, transport.Request) (*transport.Response, error) {
	c.calls++
	return &transport.Response{StatusCode: http.StatusOK}, nil
}

// xmlReply writes body as an XML document with the given status.
func xmlReply(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}
