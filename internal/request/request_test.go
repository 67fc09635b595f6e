package request

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnip/gnip-go/internal/bucket"
	gerrors "github.com/gnip/gnip-go/internal/errors"
	"github.com/gnip/gnip-go/internal/types"
)

var twitter = types.NewPublisher(types.ScopeMy, "twitter")

func TestDeleteRule_PathMethodAndBody(t *testing.T) {
	rule := types.Rule{Type: types.RuleActor, Value: "bob", Tag: "ignored"}
	d, err := DeleteRule(twitter, types.FilterByName("f1"), rule)
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, d.Method)
	assert.Equal(t, "my/twitter/filters/f1/rules", d.Path)
	assert.Equal(t, types.Rule{Type: types.RuleActor, Value: "bob"}, d.Body)
	assert.Equal(t, "delete rule", d.Op)
}

func TestMethodMapping(t *testing.T) {
	f1 := types.NewFilter("f1", false, types.NewRule(types.RuleActor, "bob"))
	cases := []struct {
		name   string
		build  func() (Descriptor, error)
		method string
		path   string
	}{
		{"create publisher", func() (Descriptor, error) { return CreatePublisher(twitter) }, http.MethodPost, "my"},
		{"update publisher", func() (Descriptor, error) { return UpdatePublisher(twitter) }, http.MethodPut, "my/twitter"},
		{"get publisher", func() (Descriptor, error) { return GetPublisher(twitter) }, http.MethodGet, "my/twitter"},
		{"list publishers", func() (Descriptor, error) { return ListPublishers(types.ScopePublic) }, http.MethodGet, "public"},
		{"create filter", func() (Descriptor, error) { return CreateFilter(twitter, f1) }, http.MethodPost, "my/twitter/filters"},
		{"update filter", func() (Descriptor, error) { return UpdateFilter(twitter, f1) }, http.MethodPut, "my/twitter/filters/f1"},
		{"delete filter", func() (Descriptor, error) { return DeleteFilter(twitter, types.FilterOf(f1)) }, http.MethodDelete, "my/twitter/filters/f1"},
		{"get filter", func() (Descriptor, error) { return GetFilter(twitter, types.FilterByName("f1")) }, http.MethodGet, "my/twitter/filters/f1"},
		{"add rule", func() (Descriptor, error) {
			return AddRule(twitter, types.FilterByName("f1"), types.NewRule(types.RuleTag, "go"))
		}, http.MethodPost, "my/twitter/filters/f1/rules"},
		{"add rules", func() (Descriptor, error) {
			return AddRules(twitter, types.FilterByName("f1"), types.NewRules(types.NewRule(types.RuleTag, "go")))
		}, http.MethodPost, "my/twitter/filters/f1/rules"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := tc.build()
			require.NoError(t, err)
			assert.Equal(t, tc.method, d.Method)
			assert.Equal(t, tc.path, d.Path)
			assert.Equal(t, tc.name, d.Op)
		})
	}
}

func TestGetStream_BucketSegment(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 1, 59, 0, time.UTC)

	d, err := GetStream(twitter, types.FilterRef{}, Activity, bucket.Resolve(at))
	require.NoError(t, err)
	assert.Equal(t, "my/twitter/activity/202401010001", d.Path)
	assert.Equal(t, http.MethodGet, d.Method)
	assert.Nil(t, d.Body)

	d, err = GetStream(twitter, types.FilterByName("f1"), Notification, bucket.Latest)
	require.NoError(t, err)
	assert.Equal(t, "my/twitter/filters/f1/notification", d.Path)
	assert.Equal(t, "get notification", d.Op)
}

func TestBuild_BucketOnlyForReads(t *testing.T) {
	addr := bucket.Resolve(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	_, err := Build(Create, Target{Scope: types.ScopeMy, Publisher: "twitter", Stream: Activity, Bucket: addr}, nil)
	assert.Equal(t, gerrors.Validation, gerrors.KindOf(err))

	_, err = Build(Get, Target{Scope: types.ScopeMy, Publisher: "twitter", Bucket: addr}, nil)
	assert.Equal(t, gerrors.Validation, gerrors.KindOf(err))
}

func TestPublish_EmptyIsNoop(t *testing.T) {
	d, ok, err := Publish(twitter, types.Activities{})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, Descriptor{}, d)
}

func TestPublish_PostsToActivityStream(t *testing.T) {
	acts := types.NewActivities(types.NewActivity(time.Now(), "post", "joe"))
	d, ok, err := Publish(twitter, acts)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, http.MethodPost, d.Method)
	assert.Equal(t, "my/twitter/activity", d.Path)
	assert.Equal(t, "publish", d.Op)
	assert.Equal(t, acts, d.Body)
}

func TestValidationFailures(t *testing.T) {
	cases := map[string]func() error{
		"missing filter": func() error {
			_, err := GetFilter(twitter, types.FilterRef{})
			return err
		},
		"unsafe filter name": func() error {
			_, err := DeleteFilter(twitter, types.FilterByName("a/b"))
			return err
		},
		"empty rule value": func() error {
			_, err := AddRule(twitter, types.FilterByName("f1"), types.Rule{Type: types.RuleActor})
			return err
		},
		"empty rules batch": func() error {
			_, err := AddRules(twitter, types.FilterByName("f1"), types.Rules{})
			return err
		},
		"unknown scope": func() error {
			_, err := GetPublisher(types.NewPublisher("elsewhere", "twitter"))
			return err
		},
		"missing publisher": func() error {
			_, err := GetStream(types.Publisher{Scope: types.ScopeMy}, types.FilterRef{}, Activity, bucket.Latest)
			return err
		},
		"create without publisher": func() error {
			_, err := Build(Create, Target{Scope: types.ScopeMy}, nil)
			return err
		},
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			err := fn()
			require.Error(t, err)
			assert.Equal(t, gerrors.Validation, gerrors.KindOf(err))
		})
	}
}

func TestTarget_Path(t *testing.T) {
	tgt := Target{Scope: types.ScopeGnip, Publisher: "digg", Filter: "top", Rules: true}
	assert.Equal(t, "gnip/digg/filters/top/rules", tgt.Path())
}

func TestBuild_PostRulesRequiresRulesCollection(t *testing.T) {
	_, err := Build(PostRules, Target{Scope: types.ScopeMy, Publisher: "twitter", Filter: "f1"}, nil)
	assert.Equal(t, gerrors.Validation, gerrors.KindOf(err))

	d, err := Build(PostRules, Target{Scope: types.ScopeMy, Publisher: "twitter", Filter: "f1", Rules: true}, nil)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, d.Method)
	assert.Equal(t, "my/twitter/filters/f1/rules", d.Path)
	assert.Equal(t, "add rules", d.Op)
}
