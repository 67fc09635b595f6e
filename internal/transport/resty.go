package transport

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// RequestIDHeader carries a per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// Config configures the resty-backed transport.
type Config struct {
	BaseURL   string
	Username  string
	Password  string
	Timeout   time.Duration
	UserAgent string

	// RateLimit caps outgoing requests per second; zero disables throttling.
	RateLimit float64
	// Burst is the limiter bucket size; values below 1 are treated as 1.
	Burst int

	// Debug installs the request/response dumping round tripper.
	Debug bool
	// RoundTripper replaces http.DefaultTransport underneath the debug layer.
	RoundTripper http.RoundTripper
}

// Resty is the default Transport. Basic-auth credentials are attached to
// every request.
type Resty struct {
	client  *resty.Client
	limiter *rate.Limiter
}

// NewResty builds a transport for cfg. BaseURL is required.
func NewResty(cfg Config) (*Resty, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL cannot be empty")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	var rt http.RoundTripper = http.DefaultTransport
	if cfg.RoundTripper != nil {
		rt = cfg.RoundTripper
	}
	if cfg.Debug || debugLoggingRequested() {
		rt = &debugTransport{base: rt}
	}

	c := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetTransport(rt)
	if cfg.Username != "" || cfg.Password != "" {
		c.SetBasicAuth(cfg.Username, cfg.Password)
	}
	if cfg.UserAgent != "" {
		c.SetHeader("User-Agent", cfg.UserAgent)
	}

	t := &Resty{client: c}
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		t.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	return t, nil
}

// Execute performs req. Waiting on the rate limiter honours ctx.
func (t *Resty) Execute(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	r := t.client.R().
		SetContext(ctx).
		SetHeader(RequestIDHeader, uuid.NewString())
	for k, vs := range req.Header {
		for _, v := range vs {
			r.Header.Add(k, v)
		}
	}
	if req.Accept != "" {
		r.SetHeader("Accept", req.Accept)
	}
	if req.Body != nil {
		if req.ContentType != "" {
			r.SetHeader("Content-Type", req.ContentType)
		}
		r.SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, req.Path)
	if err != nil {
		return nil, err
	}
	return &Response{
		StatusCode:  resp.StatusCode(),
		Body:        resp.Body(),
		ContentType: resp.Header().Get("Content-Type"),
		Header:      resp.Header(),
	}, nil
}
