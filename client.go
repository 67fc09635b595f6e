// Package gnip is a client for the Gnip activity-stream service.
//
// Every method is a single blocking HTTP request bounded by the caller's
// context. Bucketed reads (GetActivities, GetNotifications) shift the
// requested time by the client's time correction before resolving the bucket
// address; see EstimateServerTimeDelta and WithTimeCorrection.
package gnip

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/gnip/gnip-go/internal/api"
	"github.com/gnip/gnip-go/internal/bucket"
	"github.com/gnip/gnip-go/internal/clock"
	"github.com/gnip/gnip-go/internal/codec"
	"github.com/gnip/gnip-go/internal/request"
	"github.com/gnip/gnip-go/internal/transport"
)

// DefaultBaseURL is the public Gnip endpoint.
const DefaultBaseURL = "https://api-v21.gnip.com"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is safe for concurrent use: all of its fields are fixed after New.
type Client struct {
	baseURL  string
	username string
	password string

	format     codec.Format
	timeout    time.Duration
	rateLimit  float64
	rateBurst  int
	debug      bool
	userAgent  string
	httpRT     http.RoundTripper
	custom     transport.Transport
	clock      clock.Clock
	correction bucket.Correction

	caller api.Caller
}

// New constructs a Client for baseURL authenticating with basic auth.
// Additional options can be provided via functional arguments.
func New(baseURL, username, password string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, newValidation("new client", "baseURL cannot be empty")
	}

	c := &Client{
		baseURL:  baseURL,
		username: username,
		password: password,
		format:   codec.XML,
		timeout:  30 * time.Second,
		clock:    clock.System{},
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			if KindOf(err) != 0 {
				return nil, err
			}
			return nil, newValidation("new client", "%v", err)
		}
	}

	cd, err := codec.ForFormat(c.format)
	if err != nil {
		return nil, newValidation("new client", "%v", err)
	}

	t := c.custom
	if t == nil {
		rt, err := transport.NewResty(transport.Config{
			BaseURL:      c.baseURL,
			Username:     c.username,
			Password:     c.password,
			Timeout:      c.timeout,
			UserAgent:    c.userAgent,
			RateLimit:    c.rateLimit,
			Burst:        c.rateBurst,
			Debug:        c.debug,
			RoundTripper: c.httpRT,
		})
		if err != nil {
			return nil, newValidation("new client", "%v", err)
		}
		t = rt
	}

	c.caller = api.Caller{Transport: instrument(t), Codec: cd}
	return c, nil
}

// WithTimeCorrection returns a copy of c that applies d to every bucketed
// read. The copy shares c's transport; c itself is unchanged.
func (c *Client) WithTimeCorrection(d time.Duration) *Client {
	cp := *c
	cp.correction = bucket.Correction(d)
	return &cp
}

// TimeCorrection returns the offset applied to bucketed reads.
func (c *Client) TimeCorrection() time.Duration {
	return c.correction.Duration()
}

// Format returns the wire format used for request bodies.
func (c *Client) Format() codec.Format {
	return c.caller.Codec.Format()
}

// --------------------------------------------------------------------
// Time correction and bucket addressing
// --------------------------------------------------------------------

// EstimateServerTimeDelta measures serverTime - localTime with one round
// trip. It does not change the client; pass the result to
// WithTimeCorrection to opt in.
func (c *Client) EstimateServerTimeDelta(ctx context.Context) (time.Duration, error) {
	est := clock.Estimator{Transport: c.caller.Transport, Clock: c.clock}
	d, err := est.EstimateDelta(ctx)
	if err != nil {
		return 0, err
	}
	serverTimeDelta.Set(d.Seconds())
	log.Debug().Dur("delta", d).Msg("estimated server time delta")
	return d, nil
}

// Bucket resolves t, shifted by the client's correction, to its bucket
// address. The zero time resolves to the latest bucket.
func (c *Client) Bucket(t time.Time) BucketAddress {
	return bucket.ResolveCorrected(t, c.correction)
}

// Now returns the client clock's current time; handy as the At of an
// ActivityQuery for the bucket being filled right now.
func (c *Client) Now() time.Time {
	return c.clock.Now()
}

// ActivityQuery selects the bucket for GetActivities and GetNotifications.
type ActivityQuery struct {
	// Filter scopes the read to one filter; the zero value reads the whole
	// publisher.
	Filter FilterRef
	// At picks the bucket containing At (after correction). The zero time
	// reads the latest bucket.
	At time.Time
	// Correction, when set, replaces the client's correction for this call.
	Correction *time.Duration
}

func (c *Client) address(q ActivityQuery) bucket.Address {
	corr := c.correction
	if q.Correction != nil {
		corr = bucket.Correction(*q.Correction)
	}
	return bucket.ResolveCorrected(q.At, corr)
}

// --------------------------------------------------------------------
// Publisher operations
// --------------------------------------------------------------------

// CreatePublisher creates a publisher in its scope.
func (c *Client) CreatePublisher(ctx context.Context, p Publisher) (*Result, error) {
	return api.CreatePublisher(ctx, c.caller, p)
}

// UpdatePublisher replaces a publisher.
func (c *Client) UpdatePublisher(ctx context.Context, p Publisher) (*Result, error) {
	return api.UpdatePublisher(ctx, c.caller, p)
}

// GetPublisher reads a single publisher.
func (c *Client) GetPublisher(ctx context.Context, scope PublisherType, name string) (*Publisher, error) {
	return api.GetPublisher(ctx, c.caller, scope, name)
}

// ListPublishers reads all publishers in scope.
func (c *Client) ListPublishers(ctx context.Context, scope PublisherType) ([]Publisher, error) {
	return api.ListPublishers(ctx, c.caller, scope)
}

// --------------------------------------------------------------------
// Filter operations
// --------------------------------------------------------------------

// CreateFilter creates a filter under p.
func (c *Client) CreateFilter(ctx context.Context, p Publisher, f Filter) (*Result, error) {
	return api.CreateFilter(ctx, c.caller, p, f)
}

// UpdateFilter replaces a filter, including all of its rules.
func (c *Client) UpdateFilter(ctx context.Context, p Publisher, f Filter) (*Result, error) {
	return api.UpdateFilter(ctx, c.caller, p, f)
}

// DeleteFilter removes a filter.
func (c *Client) DeleteFilter(ctx context.Context, p Publisher, ref FilterRef) (*Result, error) {
	return api.DeleteFilter(ctx, c.caller, p, ref)
}

// GetFilter reads a filter.
func (c *Client) GetFilter(ctx context.Context, p Publisher, ref FilterRef) (*Filter, error) {
	return api.GetFilter(ctx, c.caller, p, ref)
}

// --------------------------------------------------------------------
// Rule operations
// --------------------------------------------------------------------

// AddRule adds one rule to a filter.
func (c *Client) AddRule(ctx context.Context, p Publisher, ref FilterRef, r Rule) (*Result, error) {
	return api.AddRule(ctx, c.caller, p, ref, r)
}

// AddRules adds many rules to a filter in one request.
func (c *Client) AddRules(ctx context.Context, p Publisher, ref FilterRef, rules Rules) (*Result, error) {
	return api.AddRules(ctx, c.caller, p, ref, rules)
}

// DeleteRule removes the rule matching r's type and value.
func (c *Client) DeleteRule(ctx context.Context, p Publisher, ref FilterRef, r Rule) (*Result, error) {
	return api.DeleteRule(ctx, c.caller, p, ref, r)
}

// --------------------------------------------------------------------
// Activity operations
// --------------------------------------------------------------------

// GetActivities reads one bucket of activities. A bucket outside the
// service's retention window surfaces as a NotFound error.
func (c *Client) GetActivities(ctx context.Context, p Publisher, q ActivityQuery) (*Activities, error) {
	return api.GetStream(ctx, c.caller, p, q.Filter, request.Activity, c.address(q))
}

// GetNotifications reads one bucket of notifications.
func (c *Client) GetNotifications(ctx context.Context, p Publisher, q ActivityQuery) (*Activities, error) {
	return api.GetStream(ctx, c.caller, p, q.Filter, request.Notification, c.address(q))
}

// Publish sends activities to p. With no activities nothing is sent and
// both return values are nil.
func (c *Client) Publish(ctx context.Context, p Publisher, acts Activities) (*Result, error) {
	return api.Publish(ctx, c.caller, p, acts)
}
