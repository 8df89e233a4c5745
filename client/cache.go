package client

import (
	"context"
	"sync"

	"github.com/r-huijts/LibreChat/schema"
)

// UserFetcher is the slice of the API client the cache needs.
type UserFetcher interface {
	GetUser(ctx context.Context) (*schema.User, error)
}

// IdentityCache holds the session-scoped copy of the user identity. The
// gate reads consent status from here only; the cache is refreshed
// explicitly after consent mutations, never implicitly.
type IdentityCache struct {
	mu      sync.RWMutex
	fetcher UserFetcher
	user    *schema.User
	stale   bool
}

func NewIdentityCache(fetcher UserFetcher) *IdentityCache {
	return &IdentityCache{
		fetcher: fetcher,
		stale:   true,
	}
}

// Refresh pulls a fresh user document and replaces the cached identity.
func (c *IdentityCache) Refresh(ctx context.Context) error {
	user, err := c.fetcher.GetUser(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.user = user
	c.stale = false
	c.mu.Unlock()
	return nil
}

// Invalidate marks the cached identity stale. The stale copy stays readable
// so the gate keeps failing closed until a refresh succeeds.
func (c *IdentityCache) Invalidate() {
	c.mu.Lock()
	c.stale = true
	c.mu.Unlock()
}

// Stale reports whether the cache has been invalidated since the last
// refresh.
func (c *IdentityCache) Stale() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stale
}

// User returns the cached identity, or nil when none is loaded.
func (c *IdentityCache) User() *schema.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user
}

// HasActiveConsent reads the embedded consent entries of the cached
// identity. It never fetches; a missing identity simply reports false.
func (c *IdentityCache) HasActiveConsent(modelName string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.user == nil {
		return false
	}
	_, ok := c.user.ActiveConsent(modelName)
	return ok
}
