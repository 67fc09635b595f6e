// Package clock estimates the offset between the local clock and the
// service's clock.
package clock

import (
	"context"
	"fmt"
	"net/http"
	"time"

	gerrors "github.com/gnip/gnip-go/internal/errors"
	"github.com/gnip/gnip-go/internal/transport"
)

// Clock reports the current local time.
type Clock interface {
	Now() time.Time
}

// System is the wall clock.
type System struct{}

// Now returns time.Now.
func (System) Now() time.Time { return time.Now() }

// Func adapts a function to Clock.
type Func func() time.Time

// Now calls f.
func (f Func) Now() time.Time { return f() }

const op = "estimate server time delta"

// Estimator measures the server-minus-local clock delta with one HEAD
// request against the service root.
type Estimator struct {
	Transport transport.Transport
	Clock     Clock
}

// EstimateDelta returns serverTime - localTimeAtRequest. The local time is
// sampled immediately before the request is sent and truncated to the
// second, the resolution of the Date header. A non-2xx answer is reported
// as a classified error, not as a delta. The result is a point-in-time
// snapshot; callers decide when to refresh it.
func (e Estimator) EstimateDelta(ctx context.Context) (time.Duration, error) {
	c := e.Clock
	if c == nil {
		c = System{}
	}
	local := c.Now().Truncate(time.Second)
	resp, err := e.Transport.Execute(ctx, transport.Request{
		Op:     op,
		Method: http.MethodHead,
		Path:   "/",
	})
	if err != nil {
		return 0, gerrors.NewConnectivity(op, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, gerrors.FromStatus(op, resp.StatusCode, string(resp.Body))
	}
	server, err := ServerTime(resp.Header)
	if err != nil {
		return 0, gerrors.NewSerialization(op, err)
	}
	return server.Sub(local), nil
}

// ServerTime parses the Date header of a response.
func ServerTime(h http.Header) (time.Time, error) {
	raw := h.Get("Date")
	if raw == "" {
		return time.Time{}, fmt.Errorf("response has no Date header")
	}
	t, err := http.ParseTime(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse Date header %q: %w", raw, err)
	}
	return t, nil
}
