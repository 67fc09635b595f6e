// Package bucket computes the addresses of the time slices the service
// stores activity and notification data in.
//
// A caller-supplied timestamp is first shifted by a Correction (the
// estimated server-minus-client clock delta) and then floored to the bucket
// granularity. The zero time.Time is the "latest bucket" sentinel: it is
// never shifted and resolves to an address with no path segment.
package bucket

import "time"

const (
	// Granularity is the width of one bucket.
	Granularity = time.Minute

	// Layout is the fixed-width token the service expects in bucket paths.
	Layout = "200601021504"
)

// Correction is the offset added to local timestamps to approximate server
// time. The zero value applies no correction.
type Correction time.Duration

// Apply returns t shifted by c. The latest-bucket sentinel is returned
// unchanged.
func (c Correction) Apply(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.Add(time.Duration(c))
}

// Duration returns c as a time.Duration.
func (c Correction) Duration() time.Duration { return time.Duration(c) }

// String formats c like a time.Duration.
func (c Correction) String() string { return time.Duration(c).String() }

// Address identifies one bucket. The zero Address is the latest bucket.
type Address struct {
	start time.Time
}

// Latest is the address of the most recent bucket.
var Latest = Address{}

// Resolve floors t to the bucket granularity in UTC. It performs no
// retention checks: the service decides whether the bucket exists.
func Resolve(t time.Time) Address {
	if t.IsZero() {
		return Latest
	}
	return Address{start: t.UTC().Truncate(Granularity)}
}

// ResolveCorrected applies c to t and resolves the result.
func ResolveCorrected(t time.Time, c Correction) Address {
	return Resolve(c.Apply(t))
}

// IsLatest reports whether a is the latest-bucket sentinel.
func (a Address) IsLatest() bool { return a.start.IsZero() }

// Start returns the first instant covered by the bucket, or the zero time
// for the latest bucket.
func (a Address) Start() time.Time { return a.start }

// End returns the first instant after the bucket.
func (a Address) End() time.Time {
	if a.IsLatest() {
		return time.Time{}
	}
	return a.start.Add(Granularity)
}

// Contains reports whether t falls inside the bucket.
func (a Address) Contains(t time.Time) bool {
	if a.IsLatest() {
		return false
	}
	return !t.Before(a.start) && t.Before(a.End())
}

// Next returns the bucket following a. The latest bucket has no successor
// and is returned unchanged.
func (a Address) Next() Address {
	if a.IsLatest() {
		return a
	}
	return Address{start: a.End()}
}

// Segment returns the path segment for the bucket, or "" for the latest
// bucket.
func (a Address) Segment() string {
	if a.IsLatest() {
		return ""
	}
	return a.start.Format(Layout)
}

// String returns the segment, or "latest".
func (a Address) String() string {
	if a.IsLatest() {
		return "latest"
	}
	return a.Segment()
}

// Parse reads a segment produced by Segment back into an Address.
func Parse(segment string) (Address, error) {
	if segment == "" {
		return Latest, nil
	}
	t, err := time.ParseInLocation(Layout, segment, time.UTC)
	if err != nil {
		return Address{}, err
	}
	return Address{start: t}, nil
}
