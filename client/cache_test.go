package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/r-huijts/LibreChat/schema"
)

func TestCacheUnloadedReportsNoConsent(t *testing.T) {
	cache := NewIdentityCache(&fakeFetcher{user: &schema.User{ID: "u"}})

	assert.Nil(t, cache.User())
	assert.True(t, cache.Stale())
	assert.False(t, cache.HasActiveConsent("gpt-4-vision"))
}

func TestCacheRefreshAndInvalidate(t *testing.T) {
	fetcher := &fakeFetcher{user: &schema.User{
		ID: "u",
		ModelConsents: []schema.UserModelConsent{
			{ModelName: "gpt-4-vision", AcceptedAt: time.Now().UTC()},
		},
	}}
	cache := NewIdentityCache(fetcher)

	assert.NoError(t, cache.Refresh(context.Background()))
	assert.False(t, cache.Stale())
	assert.True(t, cache.HasActiveConsent("gpt-4-vision"))

	cache.Invalidate()
	assert.True(t, cache.Stale())
	// the stale copy stays readable until the next refresh
	assert.True(t, cache.HasActiveConsent("gpt-4-vision"))
}

func TestCacheRefreshFailureKeepsOldState(t *testing.T) {
	fetcher := &fakeFetcher{user: &schema.User{ID: "u"}}
	cache := NewIdentityCache(fetcher)
	assert.NoError(t, cache.Refresh(context.Background()))

	fetcher.err = assert.AnError
	cache.Invalidate()
	assert.Error(t, cache.Refresh(context.Background()))
	assert.True(t, cache.Stale())
	assert.NotNil(t, cache.User())
}
