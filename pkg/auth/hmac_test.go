package auth

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalBody(t *testing.T) {
	t.Run("empty body canonicalizes to empty string", func(t *testing.T) {
		body, err := CanonicalBody(nil)
		require.NoError(t, err)
		assert.Equal(t, "", body)
	})

	t.Run("key order does not matter", func(t *testing.T) {
		a, err := CanonicalBody([]byte(`{"b":2,"a":1}`))
		require.NoError(t, err)
		b, err := CanonicalBody([]byte(`{"a":1,"b":2}`))
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("whitespace does not matter", func(t *testing.T) {
		a, err := CanonicalBody([]byte(`{ "a": 1 }`))
		require.NoError(t, err)
		b, err := CanonicalBody([]byte(`{"a":1}`))
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("invalid JSON is rejected", func(t *testing.T) {
		_, err := CanonicalBody([]byte(`{broken`))
		assert.Error(t, err)
	})
}

func TestVerifyHMAC(t *testing.T) {
	timeHeader := "1700000000.5"
	nonce := "nonce-1"
	digest := ComputeHMAC("GET", "/test/1", "since_id=5", "", timeHeader, nonce, "key")

	assert.True(t, VerifyHMAC(digest, "GET", "/test/1", "since_id=5", "", timeHeader, nonce, "key"))
	assert.False(t, VerifyHMAC(digest, "GET", "/test/1", "since_id=5", "", timeHeader, nonce, "other"))
	assert.False(t, VerifyHMAC(digest, "GET", "/test/2", "since_id=5", "", timeHeader, nonce, "key"))
	assert.False(t, VerifyHMAC(digest, "POST", "/test/1", "since_id=5", "", timeHeader, nonce, "key"))
	assert.False(t, VerifyHMAC(digest, "GET", "/test/1", "since_id=5", "", timeHeader, "nonce-2", "key"))
	assert.False(t, VerifyHMAC(digest[:10], "GET", "/test/1", "since_id=5", "", timeHeader, nonce, "key"))
	assert.False(t, VerifyHMAC("", "GET", "/test/1", "since_id=5", "", timeHeader, nonce, "key"))
}

func TestVerifyRequestTime(t *testing.T) {
	now := float64(time.Now().UnixNano()) / float64(time.Second)

	t.Run("fresh stamp passes", func(t *testing.T) {
		err := VerifyRequestTime(fmt.Sprintf("%f", now-1), 60)
		assert.NoError(t, err)
	})

	t.Run("missing stamp", func(t *testing.T) {
		err := VerifyRequestTime("", 60)
		assert.ErrorIs(t, err, ErrMissingTime)
	})

	t.Run("unparsable stamp", func(t *testing.T) {
		err := VerifyRequestTime("yesterday", 60)
		assert.ErrorIs(t, err, ErrBadTimeFormat)
	})

	t.Run("future stamp", func(t *testing.T) {
		err := VerifyRequestTime(fmt.Sprintf("%f", now+120), 60)
		assert.ErrorIs(t, err, ErrWrongTimeRange)
	})

	t.Run("expired stamp", func(t *testing.T) {
		err := VerifyRequestTime(fmt.Sprintf("%f", now-120), 60)
		assert.ErrorIs(t, err, ErrWrongTimeRange)
	})
}
