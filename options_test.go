package gnip

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestWithHTTPTimeout(t *testing.T) {
	c := &Client{}
	if err := WithHTTPTimeout(5 * time.Second)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.timeout != 5*time.Second {
		t.Fatalf("timeout not set")
	}
	if err := WithHTTPTimeout(0)(c); err == nil {
		t.Fatalf("expected error for zero timeout")
	}
}

func TestWithFormat_RejectsUnknown(t *testing.T) {
	if _, err := New(DefaultBaseURL, "u", "p", WithFormat("yaml")); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestWithRoundTripperAndDebugLogging(t *testing.T) {
	var called bool
	var gotUA string
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		gotUA = r.Header.Get("User-Agent")
		return &http.Response{StatusCode: 200, Body: http.NoBody, Header: make(http.Header), Request: r}, nil
	})
	c, err := New("http://example.com", "u", "p",
		WithRoundTripper(rt), WithDebugLogging(true), WithUserAgent("gnip-test/1.0"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.UpdatePublisher(context.Background(), NewPublisher(ScopeMy, "blog")); err != nil {
		t.Fatalf("UpdatePublisher: %v", err)
	}
	if !called {
		t.Fatalf("base round tripper not invoked")
	}
	if gotUA != "gnip-test/1.0" {
		t.Errorf("user agent = %q", gotUA)
	}
}

func TestNilCollaboratorsRejected(t *testing.T) {
	if _, err := New(DefaultBaseURL, "u", "p", WithTransport(nil)); err == nil {
		t.Error("expected error for nil transport")
	}
	if _, err := New(DefaultBaseURL, "u", "p", WithClock(nil)); err == nil {
		t.Error("expected error for nil clock")
	}
	if _, err := New(DefaultBaseURL, "u", "p", WithRoundTripper(nil)); err == nil {
		t.Error("expected error for nil round tripper")
	}
	if _, err := New(DefaultBaseURL, "u", "p", WithRateLimit(-1, 1)); err == nil {
		t.Error("expected error for negative rate limit")
	}
}

func TestOptionFailuresAreValidationErrors(t *testing.T) {
	cases := map[string]Option{
		"format":        WithFormat("yaml"),
		"timeout":       WithHTTPTimeout(-time.Second),
		"rate limit":    WithRateLimit(-1, 1),
		"transport":     WithTransport(nil),
		"clock":         WithClock(nil),
		"round tripper": WithRoundTripper(nil),
	}
	for name, opt := range cases {
		_, err := New(DefaultBaseURL, "u", "p", opt)
		if !IsValidation(err) {
			t.Errorf("%s: expected validation error, got %v", name, err)
		}
		var ge *Error
		if !errors.As(err, &ge) {
			t.Errorf("%s: error %T is not *Error", name, err)
		}
	}
}
