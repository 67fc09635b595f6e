package types

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"io"
	"slices"
	"time"
)

// GnipValue is a scalar with an optional meta-URL annotation. Two values are
// equal when both the value and the meta-URL match, so plain == is the
// structural comparison.
type GnipValue struct {
	Value   string `xml:",chardata" json:"value"`
	MetaURL string `xml:"metaURL,attr,omitempty" json:"metaURL,omitempty"`
}

// NewGnipValue returns a value without a meta-URL.
func NewGnipValue(value string) GnipValue {
	return GnipValue{Value: value}
}

// Actor identifies who performed an activity.
type Actor struct {
	Value   string `xml:",chardata" json:"value"`
	UID     string `xml:"uid,attr,omitempty" json:"uid,omitempty"`
	MetaURL string `xml:"metaURL,attr,omitempty" json:"metaURL,omitempty"`
}

// Place is a geographic annotation on an activity.
type Place struct {
	Point           string  `xml:"point,omitempty" json:"point,omitempty"`
	Elev            float64 `xml:"elev,omitempty" json:"elev,omitempty"`
	Floor           int     `xml:"floor,omitempty" json:"floor,omitempty"`
	FeatureTypeTag  string  `xml:"featuretypetag,omitempty" json:"featureTypeTag,omitempty"`
	FeatureName     string  `xml:"featurename,omitempty" json:"featureName,omitempty"`
	RelationshipTag string  `xml:"relationshiptag,omitempty" json:"relationshipTag,omitempty"`
}

// MediaURL points at media attached to an activity payload.
type MediaURL struct {
	URL      string `xml:",chardata" json:"url"`
	Height   string `xml:"height,attr,omitempty" json:"height,omitempty"`
	Width    string `xml:"width,attr,omitempty" json:"width,omitempty"`
	Duration string `xml:"duration,attr,omitempty" json:"duration,omitempty"`
	MimeType string `xml:"mimeType,attr,omitempty" json:"mimeType,omitempty"`
	Type     string `xml:"type,attr,omitempty" json:"type,omitempty"`
}

// Payload carries the full data of an activity. Raw is the original
// document, gzipped and base64 encoded.
type Payload struct {
	Title     string     `xml:"title,omitempty" json:"title,omitempty"`
	Body      string     `xml:"body,omitempty" json:"body,omitempty"`
	MediaURLs []MediaURL `xml:"mediaURL,omitempty" json:"mediaURLs,omitempty"`
	Raw       string     `xml:"raw" json:"raw"`
}

// NewPayload builds a payload, compressing and encoding raw.
func NewPayload(title, body string, raw []byte) (*Payload, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}
	return &Payload{
		Title: title,
		Body:  body,
		Raw:   base64.StdEncoding.EncodeToString(buf.Bytes()),
	}, nil
}

// DecodedRaw reverses the base64 and gzip encoding of Raw.
func (p *Payload) DecodedRaw() ([]byte, error) {
	if p == nil || p.Raw == "" {
		return nil, nil
	}
	compressed, err := base64.StdEncoding.DecodeString(p.Raw)
	if err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}
	defer func() { _ = zr.Close() }()
	return io.ReadAll(zr)
}

func (p *Payload) equal(o *Payload) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.Title == o.Title &&
		p.Body == o.Body &&
		p.Raw == o.Raw &&
		slices.Equal(p.MediaURLs, o.MediaURLs)
}

// Activity is a single timestamped event.
type Activity struct {
	At              time.Time   `xml:"at" json:"at"`
	Action          string      `xml:"action" json:"action"`
	ActivityID      string      `xml:"activityID,omitempty" json:"activityID,omitempty"`
	URL             string      `xml:"URL,omitempty" json:"URL,omitempty"`
	Sources         []GnipValue `xml:"sources>source,omitempty" json:"sources,omitempty"`
	Keywords        []GnipValue `xml:"keywords>keyword,omitempty" json:"keywords,omitempty"`
	Places          []Place     `xml:"places>place,omitempty" json:"places,omitempty"`
	Actors          []Actor     `xml:"actors>actor,omitempty" json:"actors,omitempty"`
	DestinationURLs []GnipValue `xml:"destinationURLs>destinationURL,omitempty" json:"destinationURLs,omitempty"`
	Tags            []GnipValue `xml:"tags>tag,omitempty" json:"tags,omitempty"`
	Tos             []GnipValue `xml:"tos>to,omitempty" json:"tos,omitempty"`
	RegardingURLs   []GnipValue `xml:"regardingURLs>regardingURL,omitempty" json:"regardingURLs,omitempty"`
	Payload         *Payload    `xml:"payload,omitempty" json:"payload,omitempty"`
}

// NewActivity returns an activity performed by actor at the given time.
func NewActivity(at time.Time, action, actor string) Activity {
	return Activity{At: at, Action: action, Actors: []Actor{{Value: actor}}}
}

// Equal reports structural equality. Timestamps compare as instants.
func (a Activity) Equal(o Activity) bool {
	return a.At.Equal(o.At) &&
		a.Action == o.Action &&
		a.ActivityID == o.ActivityID &&
		a.URL == o.URL &&
		slices.Equal(a.Sources, o.Sources) &&
		slices.Equal(a.Keywords, o.Keywords) &&
		slices.Equal(a.Places, o.Places) &&
		slices.Equal(a.Actors, o.Actors) &&
		slices.Equal(a.DestinationURLs, o.DestinationURLs) &&
		slices.Equal(a.Tags, o.Tags) &&
		slices.Equal(a.Tos, o.Tos) &&
		slices.Equal(a.RegardingURLs, o.RegardingURLs) &&
		a.Payload.equal(o.Payload)
}

// Activities is the document exchanged for bucket reads and publishing.
type Activities struct {
	XMLName    xml.Name   `xml:"activities" json:"-"`
	Publisher  string     `xml:"publisher,attr,omitempty" json:"publisher,omitempty"`
	Activities []Activity `xml:"activity" json:"activities"`

	// Bucket is the address token the document was read from; empty for the
	// latest bucket and for documents built locally.
	Bucket string `xml:"-" json:"-"`
}

// NewActivities collects activities for publishing.
func NewActivities(activities ...Activity) Activities {
	return Activities{Activities: activities}
}

// Len returns the number of activities.
func (a Activities) Len() int { return len(a.Activities) }

// Equal compares the collections ignoring order.
func (a Activities) Equal(o Activities) bool {
	if a.Publisher != o.Publisher || len(a.Activities) != len(o.Activities) {
		return false
	}
	used := make([]bool, len(o.Activities))
	for _, x := range a.Activities {
		found := false
		for i, y := range o.Activities {
			if !used[i] && x.Equal(y) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
