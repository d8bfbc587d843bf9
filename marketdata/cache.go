package marketdata

import (
	"context"
	"time"

	cache "github.com/patrickmn/go-cache"
)

// CachedProvider wraps a Provider with an in-memory TTL cache so repeated
// refreshes within the TTL do not hammer the feed.
type CachedProvider struct {
	inner Provider
	cache *cache.Cache
}

// NewCached wraps a provider with the given quote lifetime.
func NewCached(inner Provider, ttl time.Duration) *CachedProvider {
	return &CachedProvider{inner: inner, cache: cache.New(ttl, 2*ttl)}
}

// Quote implements Provider.
func (c *CachedProvider) Quote(ctx context.Context, ticker string) (Quote, error) {
	if v, ok := c.cache.Get(ticker); ok {
		return v.(Quote), nil
	}
	q, err := c.inner.Quote(ctx, ticker)
	if err != nil {
		return Quote{}, err
	}
	c.cache.SetDefault(ticker, q)
	return q, nil
}
