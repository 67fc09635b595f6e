package clock

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/gnip/gnip-go/internal/errors"
	"github.com/gnip/gnip-go/internal/transport"
)

func fixed(t time.Time) Func { return func() time.Time { return t } }

func TestEstimateDelta_FromDateHeader(t *testing.T) {
	local := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var got transport.Request
	tr := transport.Func(func(_ context.Context, req transport.Request) (*transport.Response, error) {
		got = req
		h := http.Header{}
		h.Set("Date", local.Add(90*time.Second).Format(http.TimeFormat))
		return &transport.Response{StatusCode: http.StatusOK, Header: h}, nil
	})

	d, err := Estimator{Transport: tr, Clock: fixed(local)}.EstimateDelta(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)
	assert.Equal(t, http.MethodHead, got.Method)
	assert.Equal(t, "/", got.Path)
}

func TestEstimateDelta_ServerBehind(t *testing.T) {
	local := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tr := transport.Func(func(context.Context, transport.Request) (*transport.Response, error) {
		h := http.Header{}
		h.Set("Date", local.Add(-2*time.Minute).Format(http.TimeFormat))
		return &transport.Response{StatusCode: http.StatusOK, Header: h}, nil
	})

	d, err := Estimator{Transport: tr, Clock: fixed(local)}.EstimateDelta(context.Background())
	require.NoError(t, err)
	assert.Equal(t, -2*time.Minute, d)
}

func TestEstimateDelta_TransportFailure(t *testing.T) {
	tr := transport.Func(func(context.Context, transport.Request) (*transport.Response, error) {
		return nil, errors.New("connection refused")
	})

	_, err := Estimator{Transport: tr}.EstimateDelta(context.Background())
	require.Error(t, err)
	assert.Equal(t, gerrors.Connectivity, gerrors.KindOf(err))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestEstimateDelta_MissingDate(t *testing.T) {
	tr := transport.Func(func(context.Context, transport.Request) (*transport.Response, error) {
		return &transport.Response{StatusCode: http.StatusOK, Header: http.Header{}}, nil
	})

	_, err := Estimator{Transport: tr}.EstimateDelta(context.Background())
	assert.Equal(t, gerrors.Serialization, gerrors.KindOf(err))
}

func TestServerTime_Malformed(t *testing.T) {
	h := http.Header{}
	h.Set("Date", "yesterday")
	_, err := ServerTime(h)
	assert.Error(t, err)
}

func TestEstimateDelta_ErrorStatus(t *testing.T) {
	cases := []struct {
		status int
		kind   gerrors.Kind
	}{
		{http.StatusUnauthorized, gerrors.Authentication},
		{http.StatusForbidden, gerrors.Authentication},
		{http.StatusServiceUnavailable, gerrors.Service},
	}
	for _, tc := range cases {
		tr := transport.Func(func(context.Context, transport.Request) (*transport.Response, error) {
			h := http.Header{}
			h.Set("Date", time.Now().Add(10*time.Second).Format(http.TimeFormat))
			return &transport.Response{StatusCode: tc.status, Header: h, Body: []byte("unavailable")}, nil
		})

		d, err := Estimator{Transport: tr}.EstimateDelta(context.Background())
		require.Error(t, err, "status %d", tc.status)
		assert.Equal(t, tc.kind, gerrors.KindOf(err), "status %d", tc.status)
		assert.Equal(t, time.Duration(0), d)
	}
}

func TestEstimateDelta_IgnoresSubSecondLocalTime(t *testing.T) {
	local := time.Date(2024, 1, 1, 0, 0, 0, 700*int(time.Millisecond), time.UTC)
	tr := transport.Func(func(context.Context, transport.Request) (*transport.Response, error) {
		h := http.Header{}
		h.Set("Date", local.Truncate(time.Second).Add(90*time.Second).Format(http.TimeFormat))
		return &transport.Response{StatusCode: http.StatusOK, Header: h}, nil
	})

	d, err := Estimator{Transport: tr, Clock: fixed(local)}.EstimateDelta(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)
}
