package api

import (
	"context"

	"github.com/gnip/gnip-go/internal/request"
	"github.com/gnip/gnip-go/internal/types"
)

// CreateFilter creates f under publisher p.
func CreateFilter(ctx context.Context, c Caller, p types.Publisher, f types.Filter) (*types.Result, error) {
	d, err := request.CreateFilter(p, f)
	if err != nil {
		return nil, err
	}
	return c.result(ctx, d)
}

// UpdateFilter replaces f, including its full rule set.
func UpdateFilter(ctx context.Context, c Caller, p types.Publisher, f types.Filter) (*types.Result, error) {
	d, err := request.UpdateFilter(p, f)
	if err != nil {
		return nil, err
	}
	return c.result(ctx, d)
}

// DeleteFilter removes the referenced filter.
func DeleteFilter(ctx context.Context, c Caller, p types.Publisher, ref types.FilterRef) (*types.Result, error) {
	d, err := request.DeleteFilter(p, ref)
	if err != nil {
		return nil, err
	}
	return c.result(ctx, d)
}

// GetFilter reads the referenced filter.
func GetFilter(ctx context.Context, c Caller, p types.Publisher, ref types.FilterRef) (*types.Filter, error) {
	d, err := request.GetFilter(p, ref)
	if err != nil {
		return nil, err
	}
	var f types.Filter
	if err := c.get(ctx, d, &f); err != nil {
		return nil, err
	}
	return &f, nil
}
