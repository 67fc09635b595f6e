package types

import (
	"net/url"

	gerrors "github.com/gnip/gnip-go/internal/errors"
)

// ValidateName checks that a publisher or filter name can be used as a
// single path segment.
func ValidateName(op, name, field string) error {
	if name == "" {
		return gerrors.NewValidation(op, "%s is required", field)
	}
	if url.PathEscape(name) != name || name == "." || name == ".." {
		return gerrors.NewValidation(op, "%s %q is not URL-safe", field, name)
	}
	return nil
}

// ValidatePublisher checks scope and name.
func ValidatePublisher(op string, p Publisher) error {
	if !p.Scope.Valid() {
		return gerrors.NewValidation(op, "unknown publisher scope %q", p.Scope)
	}
	return ValidateName(op, p.Name, "publisher name")
}

// ValidateRule checks that a rule has an identity.
func ValidateRule(op string, r Rule) error {
	if r.Type == "" {
		return gerrors.NewValidation(op, "rule type is required")
	}
	if r.Value == "" {
		return gerrors.NewValidation(op, "rule value is required")
	}
	return nil
}
