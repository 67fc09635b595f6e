package gnip

import (
	"github.com/gnip/gnip-go/internal/bucket"
	"github.com/gnip/gnip-go/internal/clock"
	"github.com/gnip/gnip-go/internal/codec"
	"github.com/gnip/gnip-go/internal/transport"
	"github.com/gnip/gnip-go/internal/types"
)

// Public type aliases so SDK consumers can import only the gnip package.
type (
	// Documents
	PublisherType = types.PublisherType
	Publisher     = types.Publisher
	Publishers    = types.Publishers
	RuleType      = types.RuleType
	Rule          = types.Rule
	RuleKey       = types.RuleKey
	Rules         = types.Rules
	Filter        = types.Filter
	FilterRef     = types.FilterRef
	Activities    = types.Activities
	Activity      = types.Activity
	GnipValue     = types.GnipValue
	Actor         = types.Actor
	Place         = types.Place
	MediaURL      = types.MediaURL
	Payload       = types.Payload
	Result        = types.Result

	// Addressing
	BucketAddress = bucket.Address

	// Collaborators
	Format            = codec.Format
	Transport         = transport.Transport
	TransportRequest  = transport.Request
	TransportResponse = transport.Response
	TransportFunc     = transport.Func
	Clock             = clock.Clock
	ClockFunc         = clock.Func
)

const (
	ScopeMy     = types.ScopeMy
	ScopePublic = types.ScopePublic
	ScopeGnip   = types.ScopeGnip

	RuleActor     = types.RuleActor
	RuleTag       = types.RuleTag
	RuleTo        = types.RuleTo
	RuleRegarding = types.RuleRegarding
	RuleSource    = types.RuleSource
	RuleKeyword   = types.RuleKeyword

	FormatXML  = codec.XML
	FormatJSON = codec.JSON

	// BucketGranularity is the width of one activity bucket.
	BucketGranularity = bucket.Granularity
)

var (
	NewPublisher  = types.NewPublisher
	NewFilter     = types.NewFilter
	NewRule       = types.NewRule
	NewRules      = types.NewRules
	NewActivity   = types.NewActivity
	NewActivities = types.NewActivities
	NewGnipValue  = types.NewGnipValue
	NewPayload    = types.NewPayload
	FilterByName  = types.FilterByName
	FilterOf      = types.FilterOf

	// LatestBucket addresses the most recent bucket.
	LatestBucket = bucket.Latest
	// ResolveBucket floors an already-corrected time to its bucket.
	ResolveBucket = bucket.Resolve
	// ParseBucket reads a bucket path segment such as "202401010001".
	ParseBucket = bucket.Parse
)
