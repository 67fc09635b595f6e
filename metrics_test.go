package gnip

import (
	"errors"
	"testing"

	"github.com/gnip/gnip-go/internal/transport"
)

func TestOutcome(t *testing.T) {
	cases := []struct {
		resp *transport.Response
		err  error
		want string
	}{
		{nil, errors.New("boom"), "error"},
		{&transport.Response{StatusCode: 200}, nil, "2xx"},
		{&transport.Response{StatusCode: 404}, nil, "4xx"},
		{&transport.Response{StatusCode: 503}, nil, "5xx"},
	}
	for _, tc := range cases {
		if got := outcome(tc.resp, tc.err); got != tc.want {
			t.Errorf("outcome(%v, %v) = %q, want %q", tc.resp, tc.err, got, tc.want)
		}
	}
}
