package fetch

import (
	"context"
	"sync"
	"time"
)

// DefaultCacheTTL is how long a fetched job description stays valid.
// Postings rarely change within a session, and users often tailor against
// the same URL several times in a row.
const DefaultCacheTTL = 15 * time.Minute

type cacheEntry struct {
	text      string
	fetchedAt time.Time
}

// CachedClient wraps a Client with an in-memory TTL cache keyed by URL.
type CachedClient struct {
	client *Client
	ttl    time.Duration

	mu      sync.RWMutex
	entries map[string]cacheEntry
}

// NewCachedClient builds a CachedClient around client. A non-positive
// ttl uses DefaultCacheTTL.
func NewCachedClient(client *Client, ttl time.Duration) *CachedClient {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedClient{
		client:  client,
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

// JobDescription returns the cached description for urlStr when fresh,
// fetching and caching it otherwise. Failures are never cached.
func (c *CachedClient) JobDescription(ctx context.Context, urlStr string) (string, error) {
	c.mu.RLock()
	entry, ok := c.entries[urlStr]
	c.mu.RUnlock()
	if ok && time.Since(entry.fetchedAt) < c.ttl {
		return entry.text, nil
	}

	text, err := c.client.JobDescription(ctx, urlStr)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.entries[urlStr] = cacheEntry{text: text, fetchedAt: time.Now()}
	c.mu.Unlock()
	return text, nil
}

// Invalidate drops the cached entry for urlStr, if any.
func (c *CachedClient) Invalidate(urlStr string) {
	c.mu.Lock()
	delete(c.entries, urlStr)
	c.mu.Unlock()
}
