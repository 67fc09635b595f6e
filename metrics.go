package gnip

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/gnip/gnip-go/internal/transport"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gnip_client",
			Name:      "requests_total",
			Help:      "Requests sent to the Gnip service by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gnip_client",
			Name:      "request_duration_seconds",
			Help:      "Round-trip latency of requests to the Gnip service.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	serverTimeDelta = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "gnip_client",
			Name:      "server_time_delta_seconds",
			Help:      "Most recent estimate of server time minus local time.",
		},
	)
)

// instrumentedTransport records request counts and latency.
type instrumentedTransport struct {
	base transport.Transport
}

func instrument(t transport.Transport) transport.Transport {
	return instrumentedTransport{base: t}
}

func (it instrumentedTransport) Execute(ctx context.Context, req transport.Request) (*transport.Response, error) {
	start := time.Now()
	resp, err := it.base.Execute(ctx, req)
	requestDuration.WithLabelValues(req.Op).Observe(time.Since(start).Seconds())
	requestsTotal.WithLabelValues(req.Op, outcome(resp, err)).Inc()
	return resp, err
}

// outcome is "error" when no response arrived, otherwise the status class
// such as "2xx".
func outcome(resp *transport.Response, err error) string {
	if err != nil || resp == nil {
		return "error"
	}
	return strconv.Itoa(resp.StatusCode/100) + "xx"
}
