package types

import (
	"encoding/xml"
	"slices"
)

// Rule is a single match predicate. Type and Value identify it; Tag is an
// optional label echoed back on matching activities.
type Rule struct {
	Type  RuleType `xml:"type,attr" json:"type"`
	Value string   `xml:",chardata" json:"value"`
	Tag   string   `xml:"tag,attr,omitempty" json:"tag,omitempty"`
}

// NewRule returns a rule without a tag.
func NewRule(t RuleType, value string) Rule {
	return Rule{Type: t, Value: value}
}

// RuleKey is the identity of a rule for lookup and deletion.
type RuleKey struct {
	Type  RuleType
	Value string
}

// Key returns the (type, value) identity of r.
func (r Rule) Key() RuleKey {
	return RuleKey{Type: r.Type, Value: r.Value}
}

// MarshalXML names the element "rule" when a Rule is encoded as a document
// root; nested rules take their name from the parent's field tag.
func (r Rule) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	type plain Rule
	if start.Name.Local == "" || start.Name.Local == "Rule" {
		start.Name = xml.Name{Local: "rule"}
	}
	return e.EncodeElement(plain(r), start)
}

// Rules is a bulk collection of rules. Order carries no meaning.
type Rules struct {
	XMLName xml.Name `xml:"rules" json:"-"`
	Rules   []Rule   `xml:"rule" json:"rules"`
}

// NewRules collects rules for a bulk add.
func NewRules(rules ...Rule) Rules {
	return Rules{Rules: rules}
}

// Equal compares as sets keyed by the full rule, ignoring order.
func (r Rules) Equal(o Rules) bool {
	if len(r.Rules) != len(o.Rules) {
		return false
	}
	counts := make(map[Rule]int, len(r.Rules))
	for _, rule := range r.Rules {
		counts[rule]++
	}
	for _, rule := range o.Rules {
		if counts[rule] == 0 {
			return false
		}
		counts[rule]--
	}
	return true
}

// Filter is a named, ordered set of rules attached to a publisher.
type Filter struct {
	XMLName  xml.Name `xml:"filter" json:"-"`
	Name     string   `xml:"name,attr" json:"name"`
	FullData bool     `xml:"fullData,attr" json:"fullData"`
	PostURL  string   `xml:"postURL,omitempty" json:"postURL,omitempty"`
	Rules    []Rule   `xml:"rule" json:"rules,omitempty"`
}

// NewFilter returns a filter with the given name and rules.
func NewFilter(name string, fullData bool, rules ...Rule) Filter {
	return Filter{Name: name, FullData: fullData, Rules: rules}
}

// Equal reports structural equality; rule order matters.
func (f Filter) Equal(o Filter) bool {
	return f.Name == o.Name &&
		f.FullData == o.FullData &&
		f.PostURL == o.PostURL &&
		slices.Equal(f.Rules, o.Rules)
}

// FindRule returns the rule with the same identity as key, if present.
func (f Filter) FindRule(key RuleKey) (Rule, bool) {
	for _, r := range f.Rules {
		if r.Key() == key {
			return r, true
		}
	}
	return Rule{}, false
}

// FilterRef selects a filter either by value or by name. The zero FilterRef
// selects no filter.
type FilterRef struct {
	name   string
	filter *Filter
}

// FilterByName refers to a filter by its name.
func FilterByName(name string) FilterRef {
	return FilterRef{name: name}
}

// FilterOf refers to a filter value; only its name is used for addressing.
func FilterOf(f Filter) FilterRef {
	return FilterRef{name: f.Name, filter: &f}
}

// Name returns the referenced filter's name.
func (r FilterRef) Name() string { return r.name }

// Filter returns the filter value when the reference was built from one.
func (r FilterRef) Filter() (Filter, bool) {
	if r.filter == nil {
		return Filter{}, false
	}
	return *r.filter, true
}

// IsZero reports whether r selects no filter.
func (r FilterRef) IsZero() bool { return r.name == "" && r.filter == nil }
