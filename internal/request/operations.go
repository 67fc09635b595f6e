package request

import (
	"github.com/gnip/gnip-go/internal/bucket"
	gerrors "github.com/gnip/gnip-go/internal/errors"
	"github.com/gnip/gnip-go/internal/types"
)

func publisherTarget(p types.Publisher) Target {
	return Target{Scope: p.Scope, Publisher: p.Name}
}

func filterTarget(p types.Publisher, filter string) Target {
	return Target{Scope: p.Scope, Publisher: p.Name, Filter: filter}
}

func requireFilter(op string, ref types.FilterRef) error {
	if ref.IsZero() {
		return gerrors.NewValidation(op, "filter name is required")
	}
	return types.ValidateName(op, ref.Name(), "filter name")
}

func named(d Descriptor, err error, op string) (Descriptor, error) {
	if err != nil {
		if ge, ok := err.(*gerrors.Error); ok {
			ge.Op = op
		}
		return Descriptor{}, err
	}
	d.Op = op
	return d, nil
}

// CreatePublisher POSTs p to its scope.
func CreatePublisher(p types.Publisher) (Descriptor, error) {
	d, err := Build(Create, publisherTarget(p), p)
	return named(d, err, "create publisher")
}

// UpdatePublisher PUTs p in place.
func UpdatePublisher(p types.Publisher) (Descriptor, error) {
	d, err := Build(Update, publisherTarget(p), p)
	return named(d, err, "update publisher")
}

// GetPublisher reads a single publisher.
func GetPublisher(p types.Publisher) (Descriptor, error) {
	if err := types.ValidateName("get publisher", p.Name, "publisher name"); err != nil {
		return Descriptor{}, err
	}
	d, err := Build(Get, publisherTarget(p), nil)
	return named(d, err, "get publisher")
}

// ListPublishers reads every publisher in scope.
func ListPublishers(scope types.PublisherType) (Descriptor, error) {
	d, err := Build(Get, Target{Scope: scope}, nil)
	return named(d, err, "list publishers")
}

// CreateFilter POSTs f to the publisher's filters collection.
func CreateFilter(p types.Publisher, f types.Filter) (Descriptor, error) {
	if err := types.ValidateName("create filter", f.Name, "filter name"); err != nil {
		return Descriptor{}, err
	}
	d, err := Build(Create, filterTarget(p, f.Name), f)
	return named(d, err, "create filter")
}

// UpdateFilter PUTs the whole filter, replacing its rules.
func UpdateFilter(p types.Publisher, f types.Filter) (Descriptor, error) {
	if err := types.ValidateName("update filter", f.Name, "filter name"); err != nil {
		return Descriptor{}, err
	}
	d, err := Build(Update, filterTarget(p, f.Name), f)
	return named(d, err, "update filter")
}

// DeleteFilter removes the referenced filter.
func DeleteFilter(p types.Publisher, ref types.FilterRef) (Descriptor, error) {
	if err := requireFilter("delete filter", ref); err != nil {
		return Descriptor{}, err
	}
	d, err := Build(Delete, filterTarget(p, ref.Name()), nil)
	return named(d, err, "delete filter")
}

// GetFilter reads the referenced filter.
func GetFilter(p types.Publisher, ref types.FilterRef) (Descriptor, error) {
	if err := requireFilter("get filter", ref); err != nil {
		return Descriptor{}, err
	}
	d, err := Build(Get, filterTarget(p, ref.Name()), nil)
	return named(d, err, "get filter")
}

func rulesTarget(p types.Publisher, ref types.FilterRef) Target {
	t := filterTarget(p, ref.Name())
	t.Rules = true
	return t
}

// AddRule POSTs a single rule to the filter's rules collection.
func AddRule(p types.Publisher, ref types.FilterRef, r types.Rule) (Descriptor, error) {
	if err := requireFilter("add rule", ref); err != nil {
		return Descriptor{}, err
	}
	if err := types.ValidateRule("add rule", r); err != nil {
		return Descriptor{}, err
	}
	d, err := Build(PostRules, rulesTarget(p, ref), r)
	return named(d, err, "add rule")
}

// AddRules POSTs a batch of rules to the filter's rules collection.
func AddRules(p types.Publisher, ref types.FilterRef, rules types.Rules) (Descriptor, error) {
	if err := requireFilter("add rules", ref); err != nil {
		return Descriptor{}, err
	}
	if len(rules.Rules) == 0 {
		return Descriptor{}, gerrors.NewValidation("add rules", "at least one rule is required")
	}
	for _, r := range rules.Rules {
		if err := types.ValidateRule("add rules", r); err != nil {
			return Descriptor{}, err
		}
	}
	d, err := Build(PostRules, rulesTarget(p, ref), rules)
	return named(d, err, "add rules")
}

// DeleteRule sends DELETE to the rules collection with the rule as body;
// the service matches on (type, value).
func DeleteRule(p types.Publisher, ref types.FilterRef, r types.Rule) (Descriptor, error) {
	if err := requireFilter("delete rule", ref); err != nil {
		return Descriptor{}, err
	}
	if err := types.ValidateRule("delete rule", r); err != nil {
		return Descriptor{}, err
	}
	d, err := Build(Delete, rulesTarget(p, ref), types.Rule{Type: r.Type, Value: r.Value})
	return named(d, err, "delete rule")
}

// GetStream reads a bucket of activity or notification data, optionally
// scoped to a filter. The latest address omits the bucket segment.
func GetStream(p types.Publisher, ref types.FilterRef, s Stream, addr bucket.Address) (Descriptor, error) {
	op := "get " + string(s)
	if !ref.IsZero() {
		if err := requireFilter(op, ref); err != nil {
			return Descriptor{}, err
		}
	}
	t := Target{Scope: p.Scope, Publisher: p.Name, Filter: ref.Name(), Stream: s, Bucket: addr}
	if t.Publisher == "" {
		return Descriptor{}, gerrors.NewValidation(op, "publisher name is required")
	}
	d, err := Build(Get, t, nil)
	return named(d, err, op)
}

// Publish POSTs activities to the publisher's activity stream. With no
// activities there is nothing to send: ok is false and no descriptor is
// returned.
func Publish(p types.Publisher, acts types.Activities) (d Descriptor, ok bool, err error) {
	if acts.Len() == 0 {
		return Descriptor{}, false, nil
	}
	d, err = Build(Create, Target{Scope: p.Scope, Publisher: p.Name, Stream: Activity}, acts)
	d, err = named(d, err, "publish")
	if err != nil {
		return Descriptor{}, false, err
	}
	return d, true, nil
}
