package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	id := NewID()
	require.NoError(t, id.Validate())
	assert.False(t, id.IsZero())
	assert.NotEqual(t, id, NewID())
}

func TestParseID(t *testing.T) {
	id, err := ParseID("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	require.NoError(t, err)
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", id.String())

	_, err = ParseID("")
	require.Error(t, err)

	_, err = ParseID("not-a-uuid")
	require.Error(t, err)
}

func TestPlatformErrorFormatting(t *testing.T) {
	plain := NewError(STORE_QUERY_FAILED, "account lookup failed")
	assert.Equal(t, "[STORE_QUERY_FAILED] account lookup failed", plain.Error())

	cause := errors.New("disk full")
	wrapped := WrapError(CACHE_WRITE_FAILED, "failed to write cache file", cause)
	assert.Equal(t, "[CACHE_WRITE_FAILED] failed to write cache file: disk full", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
}

func TestPlatformErrorIsMatchesByCode(t *testing.T) {
	err := WrapError(SYNTHESIS_CALL_FAILED, "synthesis call failed", errors.New("quota"))

	assert.ErrorIs(t, err, NewError(SYNTHESIS_CALL_FAILED, "different message"))
	assert.NotErrorIs(t, err, NewError(SYNTHESIS_UNAVAILABLE, "other code"))
}

func TestRetryableError(t *testing.T) {
	assert.True(t, NewRetryableError(STORE_OPEN_FAILED, "transient").Retryable)
	assert.False(t, NewError(STORE_OPEN_FAILED, "permanent").Retryable)
}
