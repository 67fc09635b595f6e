package gnip

// This file defines functional options that configure the Client during
// construction.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gnip/gnip-go/internal/bucket"
	"github.com/gnip/gnip-go/internal/clock"
	"github.com/gnip/gnip-go/internal/codec"
	"github.com/gnip/gnip-go/internal/transport"
)

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithHTTPTimeout bounds a single HTTP request end to end. Prefer context
// deadlines; this is a coarse safety net. The value must be greater than
// zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.timeout = d
		return nil
	}
}

// WithFormat selects XML (the default) or JSON documents.
func WithFormat(f Format) Option {
	return func(c *Client) error {
		if _, err := codec.ForFormat(f); err != nil {
			return err
		}
		c.format = f
		return nil
	}
}

// WithTimeCorrection sets the offset added to local timestamps before
// bucket addresses are computed. Usually the result of
// EstimateServerTimeDelta.
func WithTimeCorrection(d time.Duration) Option {
	return func(c *Client) error {
		c.correction = bucket.Correction(d)
		return nil
	}
}

// WithRateLimit throttles outgoing requests to perSecond with the given
// burst. Calls block until a token is available or their context ends.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) error {
		if perSecond < 0 {
			return fmt.Errorf("rate limit must be >= 0")
		}
		c.rateLimit = perSecond
		c.rateBurst = burst
		return nil
	}
}

// WithDebugLogging dumps every request and response at debug level when
// enabled is true. Dumps include bodies; do not enable it in production.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debug = enabled
		return nil
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		c.userAgent = ua
		return nil
	}
}

// WithRoundTripper replaces the http.RoundTripper underneath the default
// transport, e.g. for custom TLS settings or tracing.
func WithRoundTripper(rt http.RoundTripper) Option {
	return func(c *Client) error {
		if rt == nil {
			return fmt.Errorf("nil round tripper")
		}
		c.httpRT = rt
		return nil
	}
}

// WithTransport replaces the whole transport. Credentials, timeout, rate
// limit and debug options are then the transport's responsibility.
func WithTransport(t transport.Transport) Option {
	return func(c *Client) error {
		if t == nil {
			return fmt.Errorf("nil transport")
		}
		c.custom = t
		return nil
	}
}

// WithClock injects the local clock used by EstimateServerTimeDelta.
func WithClock(clk clock.Clock) Option {
	return func(c *Client) error {
		if clk == nil {
			return fmt.Errorf("nil clock")
		}
		c.clock = clk
		return nil
	}
}
