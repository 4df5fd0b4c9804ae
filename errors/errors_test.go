package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestWrapf(t *testing.T) {
	original := New("original")
	wrapped := Wrapf(original, "wrapped: %d", 42)

	assert.Contains(t, wrapped.Error(), "wrapped: 42")
	assert.Contains(t, wrapped.Error(), "original")
}

func TestIs(t *testing.T) {
	err1 := New("error 1")
	err2 := New("error 2")
	wrapped := Wrap(err1, "wrapped")

	assert.True(t, Is(wrapped, err1))
	assert.False(t, Is(wrapped, err2))
	assert.False(t, Is(nil, err1))
}

func TestWithHint(t *testing.T) {
	err := New("error")
	withHint := WithHint(err, "upgrade the peer")

	hints := GetAllHints(withHint)
	require.Len(t, hints, 1)
	assert.Equal(t, "upgrade the peer", hints[0])
}

func TestWithDetail(t *testing.T) {
	err := New("error")
	withDetail := WithDetail(err, "detailed information")

	details := GetAllDetails(withDetail)
	require.Len(t, details, 1)
	assert.Equal(t, "detailed information", details[0])
}

func TestStackTrace(t *testing.T) {
	err := New("with stack")

	// Format with stack trace
	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "errors_test.go")
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithStack(nil))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.Nil(t, WithDetail(nil, "detail"))
}

func TestAssertionFailure(t *testing.T) {
	err := AssertionFailedf("invariant broken: %d", 7)
	require.NotNil(t, err)
	assert.True(t, HasAssertionFailure(err))
	assert.True(t, HasAssertionFailure(Wrap(err, "outer")))
	assert.False(t, HasAssertionFailure(New("plain")))
}

func TestIncompatiblePeerSentinel(t *testing.T) {
	err := Wrapf(ErrIncompatiblePeer, "peer version 1.2.400 is below required minimum 1.2.770")

	assert.True(t, IsIncompatiblePeer(err))
	assert.False(t, IsIncompatiblePeer(nil))
	assert.False(t, IsIncompatiblePeer(New("unrelated")))
}

func TestMalformedVersionSentinel(t *testing.T) {
	err := Wrap(ErrMalformedVersion, "build version \"garbage\"")

	assert.True(t, IsMalformedVersion(err))
	assert.False(t, IsMalformedVersion(nil))
	assert.False(t, IsMalformedVersion(ErrIncompatiblePeer))
}

func ExampleWrap() {
	baseErr := New("connection refused")
	err := Wrap(baseErr, "failed to reach metadata server")
	fmt.Println(err)
	// Output: failed to reach metadata server: connection refused
}
