package ephemeris

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// TokenSource fetches a fresh bearer token and its lifetime.
type TokenSource func(ctx context.Context) (token string, ttl time.Duration, err error)

// TokenCache holds the one piece of process-wide mutable state in the
// engine: the cached upstream credential. Refreshes are single-flight, so
// concurrent callers hitting an expired token trigger exactly one exchange
// and share its result. The token is refreshed shortly before expiry.
type TokenCache struct {
	fetch TokenSource
	skew  time.Duration

	mu     sync.RWMutex
	token  string
	expiry time.Time

	group singleflight.Group
}

// NewTokenCache creates a cache around a token source. skew is how long
// before expiry the cached token is treated as stale.
func NewTokenCache(fetch TokenSource, skew time.Duration) *TokenCache {
	if skew <= 0 {
		skew = 30 * time.Second
	}
	return &TokenCache{fetch: fetch, skew: skew}
}

// Token returns a valid bearer token, refreshing if needed.
func (c *TokenCache) Token(ctx context.Context) (string, error) {
	c.mu.RLock()
	token, ok := c.current()
	c.mu.RUnlock()
	if ok {
		return token, nil
	}

	v, err, _ := c.group.Do("refresh", func() (interface{}, error) {
		// Another caller may have refreshed while this one queued.
		c.mu.RLock()
		token, ok := c.current()
		c.mu.RUnlock()
		if ok {
			return token, nil
		}

		fresh, ttl, err := c.fetch(ctx)
		if err != nil {
			return "", err
		}

		c.mu.Lock()
		c.token = fresh
		c.expiry = time.Now().Add(ttl)
		c.mu.Unlock()
		return fresh, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Invalidate drops the cached token, forcing the next caller to refresh.
// Used after the upstream rejects a token early.
func (c *TokenCache) Invalidate() {
	c.mu.Lock()
	c.token = ""
	c.expiry = time.Time{}
	c.mu.Unlock()
}

// current returns the cached token if it is still fresh. Callers hold c.mu.
func (c *TokenCache) current() (string, bool) {
	if c.token == "" || time.Now().After(c.expiry.Add(-c.skew)) {
		return "", false
	}
	return c.token, true
}
