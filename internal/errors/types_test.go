package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindForStatus(t *testing.T) {
	cases := []struct {
		status int
		want   Kind
	}{
		{400, Validation},
		{401, Authentication},
		{403, Authentication},
		{404, NotFound},
		{409, Validation},
		{422, Validation},
		{500, Service},
		{503, Service},
		{302, Service},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprint(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.want, KindForStatus(tc.status))
		})
	}
}

func TestFromStatus_PreservesBodyVerbatim(t *testing.T) {
	body := "<error>Filter f1 does not exist</error>\n"
	err := FromStatus("get filter", 404, body)

	assert.Equal(t, NotFound, err.Kind)
	assert.Equal(t, 404, err.StatusCode)
	assert.Equal(t, body, err.Message)
	assert.Contains(t, err.Error(), "HTTP 404")
	assert.Contains(t, err.Error(), "get filter")
}

func TestRetriable(t *testing.T) {
	assert.True(t, Connectivity.Retriable())
	assert.True(t, Service.Retriable())
	for _, k := range []Kind{Authentication, Validation, NotFound, Serialization} {
		assert.False(t, k.Retriable(), k.String())
	}
	assert.False(t, IsRetriable(stderrors.New("plain")))
	assert.True(t, IsRetriable(fmt.Errorf("wrapped: %w", FromStatus("x", 502, ""))))
}

func TestIs_MatchesByKind(t *testing.T) {
	err := fmt.Errorf("outer: %w", FromStatus("get", 404, "gone"))
	assert.True(t, stderrors.Is(err, &Error{Kind: NotFound}))
	assert.True(t, stderrors.Is(err, &Error{Kind: NotFound, StatusCode: 404}))
	assert.False(t, stderrors.Is(err, &Error{Kind: Service}))
}

func TestNewConnectivity_Unwraps(t *testing.T) {
	err := NewConnectivity("get", context.DeadlineExceeded)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, Connectivity, KindOf(err))
	assert.Equal(t, 0, err.StatusCode)
	assert.NotContains(t, err.Error(), "HTTP")
}

func TestError_FallsBackToUnderlyingMessage(t *testing.T) {
	err := FromStatus("delete filter", 500, "")
	assert.Contains(t, err.Error(), "delete filter failed: HTTP 500")
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Serialization", Serialization.String())
	assert.Equal(t, "Unknown(42)", Kind(42).String())
}
