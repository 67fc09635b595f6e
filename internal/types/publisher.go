package types

import (
	"encoding/xml"
	"slices"
)

// PublisherType is the scope a publisher lives in. It is the first segment
// of every resource path.
type PublisherType string

const (
	// ScopeMy holds publishers owned by the authenticated account.
	ScopeMy PublisherType = "my"
	// ScopePublic holds publishers any account may read.
	ScopePublic PublisherType = "public"
	// ScopeGnip holds publishers operated by Gnip itself.
	ScopeGnip PublisherType = "gnip"
)

// Valid reports whether t is one of the known scopes.
func (t PublisherType) Valid() bool {
	switch t {
	case ScopeMy, ScopePublic, ScopeGnip:
		return true
	}
	return false
}

// RuleType names the activity field a rule matches against.
type RuleType string

const (
	RuleActor     RuleType = "actor"
	RuleTag       RuleType = "tag"
	RuleTo        RuleType = "to"
	RuleRegarding RuleType = "regarding"
	RuleSource    RuleType = "source"
	RuleKeyword   RuleType = "keyword"
)

// Publisher is a named data source within a scope.
type Publisher struct {
	XMLName            xml.Name      `xml:"publisher" json:"-"`
	Scope              PublisherType `xml:"-" json:"-"`
	Name               string        `xml:"name,attr" json:"name"`
	SupportedRuleTypes []RuleType    `xml:"supportedRuleTypes>type,omitempty" json:"supportedRuleTypes,omitempty"`
}

// NewPublisher returns a publisher in scope with the given name.
func NewPublisher(scope PublisherType, name string, ruleTypes ...RuleType) Publisher {
	return Publisher{Scope: scope, Name: name, SupportedRuleTypes: ruleTypes}
}

// Equal reports structural equality. Scope is part of the identity even
// though it travels in the path rather than the document.
func (p Publisher) Equal(o Publisher) bool {
	return p.Scope == o.Scope &&
		p.Name == o.Name &&
		slices.Equal(p.SupportedRuleTypes, o.SupportedRuleTypes)
}

// Supports reports whether rules of type rt may be attached to this
// publisher's filters. An empty list means the service did not say.
func (p Publisher) Supports(rt RuleType) bool {
	return len(p.SupportedRuleTypes) == 0 || slices.Contains(p.SupportedRuleTypes, rt)
}

// Publishers is the list document returned for a scope.
type Publishers struct {
	XMLName    xml.Name    `xml:"publishers" json:"-"`
	Publishers []Publisher `xml:"publisher" json:"publishers"`
}
