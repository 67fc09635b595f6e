// Package request turns logical operations into request descriptors. It is
// pure: nothing here touches the network or the clock.
package request

import (
	"net/http"
	"strings"

	"github.com/gnip/gnip-go/internal/bucket"
	gerrors "github.com/gnip/gnip-go/internal/errors"
	"github.com/gnip/gnip-go/internal/types"
)

// Operation is the logical action performed on a target.
type Operation int

const (
	// Create POSTs a new resource to its collection.
	Create Operation = iota + 1
	// Update PUTs a whole resource in place.
	Update
	// PostRules POSTs one or more rules to a filter's rules collection.
	PostRules
	// Delete removes a resource.
	Delete
	// Get reads a resource.
	Get
)

func (o Operation) method() string {
	switch o {
	case Create, PostRules:
		return http.MethodPost
	case Update:
		return http.MethodPut
	case Delete:
		return http.MethodDelete
	case Get:
		return http.MethodGet
	}
	return ""
}

func (o Operation) String() string {
	switch o {
	case Create:
		return "create"
	case Update:
		return "update"
	case PostRules:
		return "add rules"
	case Delete:
		return "delete"
	case Get:
		return "get"
	}
	return "unknown"
}

// Stream selects activity or notification data.
type Stream string

const (
	Activity     Stream = "activity"
	Notification Stream = "notification"
)

// Target addresses a resource:
//
//	scope[/publisher[/filters[/filter[/rules]]]][/stream[/bucket]]
type Target struct {
	Scope     types.PublisherType
	Publisher string
	Filter    string
	Rules     bool
	Stream    Stream
	Bucket    bucket.Address
}

// Path renders t without validating it.
func (t Target) Path() string {
	segs := []string{string(t.Scope)}
	if t.Publisher != "" {
		segs = append(segs, t.Publisher)
	}
	if t.Filter != "" {
		segs = append(segs, "filters", t.Filter)
	}
	if t.Rules {
		segs = append(segs, "rules")
	}
	if t.Stream != "" {
		segs = append(segs, string(t.Stream))
		if s := t.Bucket.Segment(); s != "" {
			segs = append(segs, s)
		}
	}
	return strings.Join(segs, "/")
}

// collectionPath is where new instances of t are created.
func (t Target) collectionPath() string {
	switch {
	case t.Rules || t.Stream != "":
		return t.Path()
	case t.Filter != "":
		return Target{Scope: t.Scope, Publisher: t.Publisher}.Path() + "/filters"
	default:
		return string(t.Scope)
	}
}

func (t Target) validate(op string, o Operation) error {
	if !t.Scope.Valid() {
		return gerrors.NewValidation(op, "unknown publisher scope %q", t.Scope)
	}
	if t.Publisher != "" {
		if err := types.ValidateName(op, t.Publisher, "publisher name"); err != nil {
			return err
		}
	}
	if t.Filter != "" {
		if t.Publisher == "" {
			return gerrors.NewValidation(op, "filter %q requires a publisher", t.Filter)
		}
		if err := types.ValidateName(op, t.Filter, "filter name"); err != nil {
			return err
		}
	}
	if t.Rules && (t.Filter == "" || t.Stream != "") {
		return gerrors.NewValidation(op, "rules are addressed through a single filter")
	}
	if t.Stream != "" && t.Publisher == "" {
		return gerrors.NewValidation(op, "%s data requires a publisher", t.Stream)
	}
	if !t.Bucket.IsLatest() && (t.Stream == "" || o != Get) {
		return gerrors.NewValidation(op, "a bucket address is only valid when reading activity or notification data")
	}
	if o == PostRules && !t.Rules {
		return gerrors.NewValidation(op, "rules must be added to a filter's rules collection")
	}
	if o != Get && t.Publisher == "" {
		return gerrors.NewValidation(op, "%s requires a publisher", o)
	}
	return nil
}

// Descriptor is a built request: method, path relative to the service root,
// and the document to send (nil for none).
type Descriptor struct {
	Op     string
	Method string
	Path   string
	Body   any
}

// Build validates target and maps op to a method and path. Create targets
// the collection the new resource belongs to; every other operation
// addresses the target itself.
func Build(op Operation, target Target, body any) (Descriptor, error) {
	name := op.String()
	if err := target.validate(name, op); err != nil {
		return Descriptor{}, err
	}
	path := target.Path()
	if op == Create {
		path = target.collectionPath()
	}
	return Descriptor{Op: name, Method: op.method(), Path: path, Body: body}, nil
}
