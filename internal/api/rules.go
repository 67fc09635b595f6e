package api

import (
	"context"

	"github.com/gnip/gnip-go/internal/request"
	"github.com/gnip/gnip-go/internal/types"
)

// AddRule adds a single rule to the referenced filter.
func AddRule(ctx context.Context, c Caller, p types.Publisher, ref types.FilterRef, r types.Rule) (*types.Result, error) {
	d, err := request.AddRule(p, ref, r)
	if err != nil {
		return nil, err
	}
	return c.result(ctx, d)
}

// AddRules adds a batch of rules. The service usually answers with an empty
// body, which yields a Result with an empty message.
func AddRules(ctx context.Context, c Caller, p types.Publisher, ref types.FilterRef, rules types.Rules) (*types.Result, error) {
	d, err := request.AddRules(p, ref, rules)
	if err != nil {
		return nil, err
	}
	return c.result(ctx, d)
}

// DeleteRule removes the rule with r's (type, value) from the filter.
func DeleteRule(ctx context.Context, c Caller, p types.Publisher, ref types.FilterRef, r types.Rule) (*types.Result, error) {
	d, err := request.DeleteRule(p, ref, r)
	if err != nil {
		return nil, err
	}
	return c.result(ctx, d)
}
