package api

import (
	"context"

	"github.com/gnip/gnip-go/internal/bucket"
	"github.com/gnip/gnip-go/internal/request"
	"github.com/gnip/gnip-go/internal/types"
)

// GetStream reads one bucket of activity or notification data. The address
// must already be corrected; the zero address reads the latest bucket.
func GetStream(ctx context.Context, c Caller, p types.Publisher, ref types.FilterRef, s request.Stream, addr bucket.Address) (*types.Activities, error) {
	d, err := request.GetStream(p, ref, s, addr)
	if err != nil {
		return nil, err
	}
	var acts types.Activities
	if err := c.get(ctx, d, &acts); err != nil {
		return nil, err
	}
	acts.Bucket = addr.Segment()
	return &acts, nil
}

// Publish sends activities to p's stream. An empty collection sends
// nothing and returns a nil Result and nil error.
func Publish(ctx context.Context, c Caller, p types.Publisher, acts types.Activities) (*types.Result, error) {
	d, ok, err := request.Publish(p, acts)
	if err != nil || !ok {
		return nil, err
	}
	return c.result(ctx, d)
}
