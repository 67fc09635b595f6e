package api

import (
	"context"

	"github.com/gnip/gnip-go/internal/request"
	"github.com/gnip/gnip-go/internal/types"
)

// CreatePublisher creates p in its scope.
func CreatePublisher(ctx context.Context, c Caller, p types.Publisher) (*types.Result, error) {
	d, err := request.CreatePublisher(p)
	if err != nil {
		return nil, err
	}
	return c.result(ctx, d)
}

// UpdatePublisher replaces p.
func UpdatePublisher(ctx context.Context, c Caller, p types.Publisher) (*types.Result, error) {
	d, err := request.UpdatePublisher(p)
	if err != nil {
		return nil, err
	}
	return c.result(ctx, d)
}

// GetPublisher reads the publisher called name in scope.
func GetPublisher(ctx context.Context, c Caller, scope types.PublisherType, name string) (*types.Publisher, error) {
	d, err := request.GetPublisher(types.Publisher{Scope: scope, Name: name})
	if err != nil {
		return nil, err
	}
	var p types.Publisher
	if err := c.get(ctx, d, &p); err != nil {
		return nil, err
	}
	p.Scope = scope
	return &p, nil
}

// ListPublishers reads every publisher in scope.
func ListPublishers(ctx context.Context, c Caller, scope types.PublisherType) ([]types.Publisher, error) {
	d, err := request.ListPublishers(scope)
	if err != nil {
		return nil, err
	}
	var ps types.Publishers
	if err := c.get(ctx, d, &ps); err != nil {
		return nil, err
	}
	for i := range ps.Publishers {
		ps.Publishers[i].Scope = scope
	}
	return ps.Publishers, nil
}
